package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/wardydev/bri-finder-admin/internal/services"
)

// Delete starts the confirmation flow for the record with the given id on
// the current screen. Nothing is removed until the operator answers yes.
func (a *App) Delete(ctx context.Context, id string) error {
	switch a.screen {
	case ScreenComments:
		rec, ok := a.comments.collection.Find(id)
		if !ok {
			printlnFn("No comment with id", id)
			return nil
		}
		a.comments.confirm.RequestDelete(rec)
		return a.confirmDelete(ctx, a.comments.confirm, "comment")
	default:
		rec, ok := a.locations.collection.Find(id)
		if !ok {
			printlnFn("No location with id", id)
			return nil
		}
		a.locations.confirm.RequestDelete(rec)
		return a.confirmDelete(ctx, a.locations.confirm, "location")
	}
}

func (a *App) confirmDelete(ctx context.Context, flow *services.ConfirmFlow, kind string) error {
	_, label, ok := flow.Pending()
	if !ok {
		return nil
	}

	prompt := fmt.Sprintf("Delete %s %q? This cannot be undone. (y/n)", kind, label)
	answer, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		flow.Cancel()
		return err
	}

	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		flow.Cancel()
		printlnFn("Cancelled")
		return nil
	}

	if err := flow.Confirm(ctx); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted")

	if a.screen == ScreenComments {
		a.renderComments()
	} else {
		a.renderLocations()
	}
	return nil
}
