package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

// ShowComments switches to the moderation screen, refreshes it and renders
// the list. A failed refresh keeps showing the previous list.
func (a *App) ShowComments(ctx context.Context) error {
	a.screen = ScreenComments
	if err := a.comments.collection.Refresh(ctx); err != nil {
		a.log.Error(ctx, "comments refresh failed", "error", err)
	}
	a.renderComments()
	return nil
}

func (a *App) renderComments() {
	coll := a.comments.collection
	printlnFn(fmt.Sprintf("Comments (%d total)", coll.Total()))

	view := coll.View()
	if len(view) == 0 {
		if strings.TrimSpace(coll.Query()) != "" {
			printlnFn("No comments match the search")
		} else {
			printlnFn("No comments")
		}
		return
	}
	printlnFn(renderCommentTable(view))
}

func (a *App) showComment(c models.Comment) {
	printlnFn("Author:", c.Author)
	printlnFn("Date:  ", FormatDate(c.CreatedAt))
	printlnFn("Text:  ", c.Text)
}
