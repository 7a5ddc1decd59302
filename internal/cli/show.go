package cli

import "context"

// Show prints one record from the current screen in full.
func (a *App) Show(ctx context.Context, id string) error {
	switch a.screen {
	case ScreenComments:
		c, ok := a.comments.collection.Find(id)
		if !ok {
			printlnFn("No comment with id", id)
			return nil
		}
		a.showComment(c)
	default:
		loc, ok := a.locations.collection.Find(id)
		if !ok {
			printlnFn("No location with id", id)
			return nil
		}
		a.showLocation(loc)
	}
	return nil
}
