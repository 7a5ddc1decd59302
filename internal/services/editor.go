package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wardydev/bri-finder-admin/internal/api"
	"github.com/wardydev/bri-finder-admin/internal/logging"
)

// EditorMode tells whether the editor is closed or holds a create/edit draft.
type EditorMode int

const (
	ModeClosed EditorMode = iota
	ModeCreate
	ModeEdit
)

var (
	// ErrEditorClosed is returned by draft operations when no draft is open.
	ErrEditorClosed = errors.New("editor is not open")

	// ErrMissingField is returned by Submit when a mandatory field is empty.
	ErrMissingField = errors.New("field is required")
)

// CreateFunc issues the backend create for a finished draft.
type CreateFunc func(ctx context.Context, fields map[string]string, files []api.Upload) error

// UpdateFunc issues the backend update for a finished draft.
type UpdateFunc func(ctx context.Context, id string, fields map[string]string, files []api.Upload) error

// Attachment pairs a preview reference with the queued file behind it, if
// any. Existing remote images carry no file; newly attached files get a
// generated id so removal addresses the exact entry instead of matching
// recomputed values.
type Attachment struct {
	ID      string
	Preview string
	File    *api.Upload
}

// Queued reports whether this attachment is a not-yet-uploaded file.
func (a Attachment) Queued() bool { return a.File != nil }

// Editor is the form-backed create/update workflow for a single location.
// The draft lives only while the editor is open: Submit on success and
// Cancel both discard it.
type Editor struct {
	create  CreateFunc
	update  UpdateFunc
	refresh Refresher
	log     logging.Logger

	mode        EditorMode
	recordID    string
	fieldNames  []string
	fields      map[string]string
	attachments []Attachment
}

// NewEditor builds an editor over the given ordered field names. Every field
// is mandatory on submit.
func NewEditor(fieldNames []string, create CreateFunc, update UpdateFunc, refresh Refresher, log logging.Logger) *Editor {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Editor{
		create:     create,
		update:     update,
		refresh:    refresh,
		log:        log,
		fieldNames: fieldNames,
	}
}

// OpenCreate starts an empty draft.
func (e *Editor) OpenCreate() {
	e.mode = ModeCreate
	e.recordID = ""
	e.fields = make(map[string]string, len(e.fieldNames))
	for _, name := range e.fieldNames {
		e.fields[name] = ""
	}
	e.attachments = nil
}

// OpenEdit seeds a draft from an existing record's field values and its
// remote image references, in the record's image order.
func (e *Editor) OpenEdit(id string, fields map[string]string, images []string) {
	e.mode = ModeEdit
	e.recordID = id
	e.fields = make(map[string]string, len(e.fieldNames))
	for _, name := range e.fieldNames {
		e.fields[name] = fields[name]
	}
	e.attachments = make([]Attachment, 0, len(images))
	for _, img := range images {
		e.attachments = append(e.attachments, Attachment{ID: uuid.NewString(), Preview: img})
	}
}

func (e *Editor) Mode() EditorMode { return e.mode }

// RecordID returns the id of the record being edited, empty in create mode.
func (e *Editor) RecordID() string { return e.recordID }

// FieldNames returns the form's field names in entry order.
func (e *Editor) FieldNames() []string { return e.fieldNames }

// Field returns the draft value of one field.
func (e *Editor) Field(name string) string { return e.fields[name] }

// ChangeField sets one draft field. Unknown field names are rejected.
func (e *Editor) ChangeField(name, value string) error {
	if e.mode == ModeClosed {
		return ErrEditorClosed
	}
	if _, ok := e.fields[name]; !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	e.fields[name] = value
	return nil
}

// AttachFiles queues files for upload, appending one preview per file in
// attachment order.
func (e *Editor) AttachFiles(files ...api.Upload) error {
	if e.mode == ModeClosed {
		return ErrEditorClosed
	}
	for _, f := range files {
		f := f
		e.attachments = append(e.attachments, Attachment{
			ID:      uuid.NewString(),
			Preview: f.Name,
			File:    &f,
		})
	}
	return nil
}

// Attachments returns the paired preview/file entries in attachment order.
func (e *Editor) Attachments() []Attachment {
	out := make([]Attachment, len(e.attachments))
	copy(out, e.attachments)
	return out
}

// RemoveAttachment drops the entry with the given id. Addressing by id
// rather than position means a caller holding an entry from an earlier
// Attachments() snapshot always removes that exact entry. When the entry is
// a queued file, the file leaves the upload queue with it; remote previews
// are only removed from the draft's view, never deleted remotely.
func (e *Editor) RemoveAttachment(id string) error {
	if e.mode == ModeClosed {
		return ErrEditorClosed
	}
	for i, a := range e.attachments {
		if a.ID == id {
			e.attachments = append(e.attachments[:i], e.attachments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no attachment with id %s", id)
}

// Submit validates the draft and issues the create or update request with
// all fields and queued files in one multipart payload. On success the
// owning collection is refreshed and the draft is discarded; a refresh
// failure at that point is logged, not returned, since the record was
// saved. On a failed save the editor stays open with the draft intact so
// the operator can retry.
func (e *Editor) Submit(ctx context.Context) error {
	if e.mode == ModeClosed {
		return ErrEditorClosed
	}
	for _, name := range e.fieldNames {
		if strings.TrimSpace(e.fields[name]) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	fields := make(map[string]string, len(e.fields))
	for name, value := range e.fields {
		fields[name] = value
	}
	files := make([]api.Upload, 0, len(e.attachments))
	for _, a := range e.attachments {
		if a.Queued() {
			files = append(files, *a.File)
		}
	}

	var err error
	if e.mode == ModeEdit {
		err = e.update(ctx, e.recordID, fields, files)
	} else {
		err = e.create(ctx, fields, files)
	}
	if err != nil {
		e.log.Error(ctx, "submit failed, keeping draft", "mode", e.mode, "error", err)
		return err
	}

	if err := e.refresh(ctx); err != nil {
		e.log.Error(ctx, "refresh after save failed, list may be stale", "error", err)
	}
	e.Cancel()
	return nil
}

// Cancel closes the editor and discards the draft.
func (e *Editor) Cancel() {
	e.mode = ModeClosed
	e.recordID = ""
	e.fields = nil
	e.attachments = nil
}
