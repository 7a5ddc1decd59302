package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

type listLocationsResponse struct {
	Data []models.Location `json:"data"`
}

type locationResponse struct {
	Data models.Location `json:"data"`
}

// ListLocations fetches the full location directory.
func (c *HTTPClient) ListLocations(ctx context.Context) ([]models.Location, error) {
	var out listLocationsResponse
	if err := c.do(ctx, http.MethodGet, "map-location", nil, "", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateLocation posts a new location with its attached images as one
// multipart request.
func (c *HTTPClient) CreateLocation(ctx context.Context, fields map[string]string, files []Upload) (models.Location, error) {
	body, contentType, err := buildMultipart(fields, files)
	if err != nil {
		return models.Location{}, err
	}

	var out locationResponse
	if err := c.do(ctx, http.MethodPost, "map-location", body, contentType, &out); err != nil {
		return models.Location{}, err
	}
	return out.Data, nil
}

// UpdateLocation patches an existing location; newly attached images ride in
// the same multipart request.
func (c *HTTPClient) UpdateLocation(ctx context.Context, id string, fields map[string]string, files []Upload) (models.Location, error) {
	body, contentType, err := buildMultipart(fields, files)
	if err != nil {
		return models.Location{}, err
	}

	var out locationResponse
	if err := c.do(ctx, http.MethodPatch, "map-location/"+url.PathEscape(id), body, contentType, &out); err != nil {
		return models.Location{}, err
	}
	return out.Data, nil
}

// DeleteLocation removes the location with the given id.
func (c *HTTPClient) DeleteLocation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "map-location/"+url.PathEscape(id), nil, "", nil)
}
