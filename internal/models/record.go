// Package models defines the directory records managed by the admin client
// and the behavior screens need from them: a stable identifier, the set of
// fields the search box matches against, and a human-readable label used in
// delete confirmations.
package models

// Record is one persisted entity as returned by the backend. Records are
// never patched locally; collections holding them are replaced wholesale
// on refresh.
type Record interface {
	// RecordID returns the backend-assigned identifier.
	RecordID() string

	// SearchFields returns the field values the list search matches against.
	SearchFields() []string

	// Label returns the display text naming this record in prompts.
	Label() string
}
