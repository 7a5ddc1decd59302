package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

type deleteRecorder struct {
	ids []string
	err error
}

func (d *deleteRecorder) delete(_ context.Context, id string) error {
	d.ids = append(d.ids, id)
	return d.err
}

func TestConfirmFlow_CancelIssuesNoCalls(t *testing.T) {
	del := &deleteRecorder{}
	refreshes := 0
	f := NewConfirmFlow(del.delete, func(context.Context) error { refreshes++; return nil }, nil)

	f.RequestDelete(models.Location{ID: "loc-1", Name: "ATM Sudirman"})
	_, _, ok := f.Pending()
	require.True(t, ok)

	f.Cancel()
	_, _, ok = f.Pending()
	require.False(t, ok)
	require.Empty(t, del.ids)
	require.Zero(t, refreshes)
}

func TestConfirmFlow_ConfirmDeletesOnceAndRefreshes(t *testing.T) {
	del := &deleteRecorder{}
	refreshes := 0
	f := NewConfirmFlow(del.delete, func(context.Context) error { refreshes++; return nil }, nil)

	f.RequestDelete(models.Location{ID: "loc-2", Name: "ATM Thamrin"})
	require.NoError(t, f.Confirm(context.Background()))

	require.Equal(t, []string{"loc-2"}, del.ids)
	require.Equal(t, 1, refreshes)
	_, _, ok := f.Pending()
	require.False(t, ok)
}

func TestConfirmFlow_FailedDeleteSkipsRefreshAndClears(t *testing.T) {
	del := &deleteRecorder{err: errors.New("boom")}
	refreshes := 0
	f := NewConfirmFlow(del.delete, func(context.Context) error { refreshes++; return nil }, nil)

	f.RequestDelete(models.Comment{ID: "c-1", Text: "mesin rusak"})
	require.Error(t, f.Confirm(context.Background()))

	require.Zero(t, refreshes)
	_, _, ok := f.Pending()
	require.False(t, ok, "failed delete must be re-initiated from scratch")
}

func TestConfirmFlow_DeleteSucceedsDespiteFailedRefresh(t *testing.T) {
	del := &deleteRecorder{}
	f := NewConfirmFlow(del.delete, func(context.Context) error { return errors.New("backend down") }, nil)

	f.RequestDelete(models.Location{ID: "loc-3", Name: "ATM Kota"})

	// the record is gone; a stale list is not a delete failure
	require.NoError(t, f.Confirm(context.Background()))
	require.Equal(t, []string{"loc-3"}, del.ids)
}

func TestConfirmFlow_ConfirmWithoutRequest(t *testing.T) {
	del := &deleteRecorder{}
	f := NewConfirmFlow(del.delete, func(context.Context) error { return nil }, nil)

	require.ErrorIs(t, f.Confirm(context.Background()), ErrNoPendingDelete)
	require.Empty(t, del.ids)
}

func TestConfirmFlow_NewRequestReplacesPending(t *testing.T) {
	del := &deleteRecorder{}
	f := NewConfirmFlow(del.delete, func(context.Context) error { return nil }, nil)

	f.RequestDelete(models.Location{ID: "loc-1", Name: "ATM Sudirman"})
	f.RequestDelete(models.Location{ID: "loc-2", Name: "ATM Thamrin"})

	id, label, ok := f.Pending()
	require.True(t, ok)
	require.Equal(t, "loc-2", id)
	require.Equal(t, "ATM Thamrin", label)

	require.NoError(t, f.Confirm(context.Background()))
	require.Equal(t, []string{"loc-2"}, del.ids)
}

func TestConfirmFlow_LabelTruncatedAtFiftyRunes(t *testing.T) {
	long := strings.Repeat("x", 80)
	f := NewConfirmFlow(func(context.Context, string) error { return nil }, func(context.Context) error { return nil }, nil)

	f.RequestDelete(models.Comment{ID: "c-1", Text: long})
	_, label, _ := f.Pending()

	runes := []rune(label)
	require.Len(t, runes, 51)
	require.Equal(t, strings.Repeat("x", 50), string(runes[:50]))
	require.Equal(t, "…", string(runes[50]))
}

func TestTruncateLabel(t *testing.T) {
	require.Equal(t, "short", TruncateLabel("short"))

	exact := strings.Repeat("a", 50)
	require.Equal(t, exact, TruncateLabel(exact))

	// rune-aware, not byte-aware
	wide := strings.Repeat("ン", 60)
	got := TruncateLabel(wide)
	require.Equal(t, strings.Repeat("ン", 50)+"…", got)
}

// End-to-end over fakes: confirming a delete removes the record from the
// next refreshed collection.
func TestConfirmFlow_DeletedIDAbsentAfterRefresh(t *testing.T) {
	items := testLocations()

	coll := NewCollection(func(context.Context) ([]models.Location, error) { return items, nil }, nil)
	require.NoError(t, coll.Refresh(context.Background()))

	f := NewConfirmFlow(func(_ context.Context, id string) error {
		kept := items[:0:0]
		for _, l := range items {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		items = kept
		return nil
	}, coll.Refresh, nil)

	target, ok := coll.Find("loc-2")
	require.True(t, ok)
	f.RequestDelete(target)
	require.NoError(t, f.Confirm(context.Background()))

	_, ok = coll.Find("loc-2")
	require.False(t, ok)
	require.Len(t, coll.Items(), 2)
}
