package api

import (
	"context"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

// Client is the transport-agnostic contract the service layer programs
// against. HTTPClient is the concrete implementation; tests provide fakes.
//
// All calls are single-shot: no retry, no timeout policy beyond what the
// underlying transport applies. A failed call reports its error and leaves
// no partial state behind for the caller to clean up.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	Profile(ctx context.Context) (models.Profile, error)

	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, fields map[string]string, files []Upload) (models.Location, error)
	UpdateLocation(ctx context.Context, id string, fields map[string]string, files []Upload) (models.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	ListComments(ctx context.Context) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}
