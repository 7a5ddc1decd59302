package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

type listCommentsResponse struct {
	Data []models.Comment `json:"data"`
}

// ListComments fetches all user-submitted comments.
func (c *HTTPClient) ListComments(ctx context.Context) ([]models.Comment, error) {
	var out listCommentsResponse
	if err := c.do(ctx, http.MethodGet, "comment", nil, "", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DeleteComment removes the comment with the given id.
func (c *HTTPClient) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "comment/"+url.PathEscape(id), nil, "", nil)
}
