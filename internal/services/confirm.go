package services

import (
	"context"
	"errors"

	"github.com/wardydev/bri-finder-admin/internal/logging"
	"github.com/wardydev/bri-finder-admin/internal/models"
)

// maxLabelRunes caps the confirmation label so prompts stay bounded no
// matter how long the record's display text is.
const maxLabelRunes = 50

const ellipsis = "…"

// ErrNoPendingDelete is returned by Confirm when no delete has been
// requested.
var ErrNoPendingDelete = errors.New("no pending delete")

// Deleter removes one record on the backend.
type Deleter func(ctx context.Context, id string) error

// ConfirmFlow serializes delete intent from delete execution: RequestDelete
// records the target, and only an explicit Confirm issues the backend call.
// A screen holds at most one pending request at a time.
type ConfirmFlow struct {
	delete  Deleter
	refresh Refresher
	log     logging.Logger

	pending  bool
	targetID string
	label    string
}

func NewConfirmFlow(del Deleter, refresh Refresher, log logging.Logger) *ConfirmFlow {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &ConfirmFlow{delete: del, refresh: refresh, log: log}
}

// RequestDelete opens a confirmation for the given record. A new request
// replaces any pending one.
func (f *ConfirmFlow) RequestDelete(r models.Record) {
	f.pending = true
	f.targetID = r.RecordID()
	f.label = TruncateLabel(r.Label())
}

// Pending returns the target id and display label of the open confirmation,
// if any.
func (f *ConfirmFlow) Pending() (id, label string, ok bool) {
	return f.targetID, f.label, f.pending
}

// Cancel discards the pending request without touching the backend.
func (f *ConfirmFlow) Cancel() {
	f.clear()
}

// Confirm executes the pending delete. On success the owning collection is
// refreshed; a refresh failure at that point is logged, not returned, since
// the record is gone. Whatever the outcome, the request is cleared; a
// failed delete must be re-initiated from scratch and leaves the collection
// unchanged.
func (f *ConfirmFlow) Confirm(ctx context.Context) error {
	if !f.pending {
		return ErrNoPendingDelete
	}
	id := f.targetID
	f.clear()

	if err := f.delete(ctx, id); err != nil {
		f.log.Error(ctx, "delete failed", "id", id, "error", err)
		return err
	}
	if err := f.refresh(ctx); err != nil {
		f.log.Error(ctx, "refresh after delete failed, list may be stale", "id", id, "error", err)
	}
	return nil
}

func (f *ConfirmFlow) clear() {
	f.pending = false
	f.targetID = ""
	f.label = ""
}

// TruncateLabel caps s at 50 runes, appending an ellipsis when cut.
func TruncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLabelRunes {
		return s
	}
	return string(runes[:maxLabelRunes]) + ellipsis
}
