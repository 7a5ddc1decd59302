package services

import (
	"context"
	"strings"

	"github.com/wardydev/bri-finder-admin/internal/logging"
	"github.com/wardydev/bri-finder-admin/internal/models"
)

// Lister fetches the authoritative record list for a screen.
type Lister[T models.Record] func(ctx context.Context) ([]T, error)

// Refresher re-requests a screen's collection after a mutation.
type Refresher func(ctx context.Context) error

// Collection owns the records fetched for one screen and a derived view
// narrowed by the current search query. The view is always a subsequence of
// the collection in original order; with an empty query the two are equal.
type Collection[T models.Record] struct {
	list Lister[T]
	log  logging.Logger

	items    []T
	query    string
	filtered []T
}

func NewCollection[T models.Record](list Lister[T], log logging.Logger) *Collection[T] {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Collection[T]{list: list, log: log}
}

// Refresh replaces the collection with the backend's current list and
// reapplies the query. On failure the previous collection and view are kept
// as-is (stale but consistent) and the error is reported to the caller.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	items, err := c.list(ctx)
	if err != nil {
		c.log.Error(ctx, "refresh failed, keeping previous records", "error", err)
		return err
	}
	c.items = items
	c.applyQuery()
	c.log.Debug(ctx, "collection refreshed", "count", len(items))
	return nil
}

// SetQuery updates the search query and recomputes the view. Matching is a
// case-insensitive substring test over each record's search fields; a query
// that trims to empty restores the full collection.
func (c *Collection[T]) SetQuery(q string) {
	c.query = q
	c.applyQuery()
}

func (c *Collection[T]) Query() string { return c.query }

// Items returns the full collection.
func (c *Collection[T]) Items() []T { return c.items }

// View returns the search-narrowed subsequence currently shown.
func (c *Collection[T]) View() []T { return c.filtered }

// Total reports the size of the full collection, regardless of query.
func (c *Collection[T]) Total() int { return len(c.items) }

// Find returns the record with the given id from the full collection.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, r := range c.items {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) applyQuery() {
	q := strings.ToLower(strings.TrimSpace(c.query))
	if q == "" {
		c.filtered = c.items
		return
	}
	filtered := make([]T, 0, len(c.items))
	for _, r := range c.items {
		if matchesQuery(r, q) {
			filtered = append(filtered, r)
		}
	}
	c.filtered = filtered
}

func matchesQuery(r models.Record, q string) bool {
	for _, f := range r.SearchFields() {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
