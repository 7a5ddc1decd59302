package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wardydev/bri-finder-admin/internal/api"
	"github.com/wardydev/bri-finder-admin/internal/filex"
	"github.com/wardydev/bri-finder-admin/internal/models"
	"github.com/wardydev/bri-finder-admin/internal/services"
)

var fieldPrompts = map[string]string{
	models.FieldName:    "ATM name",
	models.FieldBank:    "Bank",
	models.FieldAddress: "Address",
	models.FieldHours:   "Operating hours",
	models.FieldLat:     "Latitude",
	models.FieldLng:     "Longitude",
}

// ShowLocations switches to the ATM directory screen, refreshes it and
// renders the list. A failed refresh keeps showing the previous list.
func (a *App) ShowLocations(ctx context.Context) error {
	a.screen = ScreenLocations
	if err := a.locations.collection.Refresh(ctx); err != nil {
		a.log.Error(ctx, "locations refresh failed", "error", err)
	}
	a.renderLocations()
	return nil
}

func (a *App) renderLocations() {
	coll := a.locations.collection
	printlnFn(fmt.Sprintf("ATM Locations (%d total)", coll.Total()))

	view := coll.View()
	if len(view) == 0 {
		if strings.TrimSpace(coll.Query()) != "" {
			printlnFn("No locations match the search")
		} else {
			printlnFn("No locations")
		}
		return
	}
	printlnFn(renderLocationTable(view))
}

// Search narrows the current screen's list. The collection itself is not
// refetched; only the derived view changes.
func (a *App) Search(ctx context.Context, query string) error {
	switch a.screen {
	case ScreenComments:
		a.comments.collection.SetQuery(query)
		a.renderComments()
	default:
		a.locations.collection.SetQuery(query)
		a.renderLocations()
	}
	return nil
}

// Add opens an empty draft for a new location.
func (a *App) Add(ctx context.Context) error {
	if a.screen != ScreenLocations {
		printlnFn("Add is only available on the locations screen")
		return nil
	}
	a.locations.editor.OpenCreate()
	return a.runEditor(ctx)
}

// Edit opens a draft seeded from the location with the given id.
func (a *App) Edit(ctx context.Context, id string) error {
	if a.screen != ScreenLocations {
		printlnFn("Edit is only available on the locations screen")
		return nil
	}
	loc, ok := a.locations.collection.Find(id)
	if !ok {
		printlnFn("No location with id", id)
		return nil
	}
	a.locations.editor.OpenEdit(loc.ID, loc.FieldMap(), loc.Images)
	return a.runEditor(ctx)
}

// runEditor walks the operator through the open draft: field values, image
// staging, then submit. A failed submit keeps the draft so the operator can
// retry or discard.
func (a *App) runEditor(ctx context.Context) error {
	ed := a.locations.editor

	for _, name := range ed.FieldNames() {
		v, err := getTextWithDefault(a.reader, fieldPrompts[name], ed.Field(name), os.Stdout)
		if err != nil {
			ed.Cancel()
			return err
		}
		if err := ed.ChangeField(name, v); err != nil {
			a.log.Error(ctx, "change field failed", "field", name, "error", err)
		}
	}

	if err := a.stageImages(ed); err != nil {
		ed.Cancel()
		return err
	}

	for {
		err := ed.Submit(ctx)
		if err == nil {
			printlnFn("Saved")
			a.renderLocations()
			return nil
		}
		printlnFn("Save failed:", err.Error())

		answer, rerr := getSimpleText(a.reader, "Retry save? (y/n)", os.Stdout)
		if rerr != nil || !strings.EqualFold(answer, "y") {
			ed.Cancel()
			printlnFn("Draft discarded")
			return err
		}
	}
}

// stageImages runs the attachment loop: paths queue new images, -<n> removes
// an entry (existing or queued), an empty line finishes.
func (a *App) stageImages(ed *services.Editor) error {
	for {
		atts := ed.Attachments()
		a.printAttachments(atts)

		line, err := getSimpleText(a.reader, "Image path to attach, -<n> to remove, empty line to continue", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		if strings.HasPrefix(line, "-") {
			n, convErr := strconv.Atoi(strings.TrimPrefix(line, "-"))
			if convErr != nil || n < 1 || n > len(atts) {
				printlnFn("Usage: -<n>")
				continue
			}
			// resolve the number against the listing just shown, then
			// remove by identity
			if err := ed.RemoveAttachment(atts[n-1].ID); err != nil {
				printlnFn(err.Error())
			}
			continue
		}

		name, contentType, data, err := filex.ReadImage(line)
		if err != nil {
			printlnFn("Cannot attach:", err.Error())
			continue
		}
		_ = ed.AttachFiles(api.Upload{Name: name, ContentType: contentType, Data: data})
	}
}

func (a *App) printAttachments(atts []services.Attachment) {
	if len(atts) == 0 {
		return
	}
	printlnFn("Images:")
	for i, att := range atts {
		marker := "existing"
		if att.Queued() {
			marker = "new"
		}
		printlnFn(fmt.Sprintf("  %d. %s (%s)", i+1, att.Preview, marker))
	}
}

func (a *App) showLocation(loc models.Location) {
	printlnFn("Name:   ", loc.Name)
	printlnFn("Bank:   ", loc.Bank)
	printlnFn("Address:", loc.Address)
	printlnFn("Hours:  ", loc.Hours)
	printlnFn(fmt.Sprintf("Coords:  %g, %g", loc.Lat, loc.Lng))
	for _, img := range loc.Images {
		printlnFn("Image:  ", img)
	}
}
