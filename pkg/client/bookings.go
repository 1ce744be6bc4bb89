package client

import (
	"context"
	"time"

	apperrors "drivedesk/pkg/errors"
	"drivedesk/pkg/model"
)

const genericFetchFailure = "Failed to fetch bookings"

// BookingsClient talks to the remote bookings service. It only reads;
// booking creation and management live upstream.
type BookingsClient struct {
	httpClient *HttpClient
}

func NewBookingsClient(baseURL string, timeout time.Duration) *BookingsClient {
	return &BookingsClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// ListMine fetches the caller's bookings with a single authenticated
// request. A missing or null "bookings" field in a success body is an
// empty list, not an error: the backend is degraded but reachable, and
// a spurious failure state helps nobody.
func (c *BookingsClient) ListMine(ctx context.Context, token model.Token) ([]model.Booking, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/bookings/mine", map[string]string{
		"Authorization": "Bearer " + string(token),
	})
	if err != nil {
		return nil, apperrors.Upstream(genericFetchFailure, err)
	}

	if !resp.OK() {
		msg := ErrorMessage(resp)
		if msg == "" {
			msg = genericFetchFailure
		}
		return nil, apperrors.Upstream(msg, nil).WithDetails(map[string]any{
			"status": resp.StatusCode,
		})
	}

	var body struct {
		Bookings []model.Booking `json:"bookings"`
	}
	if err := resp.DecodeJSON(&body); err != nil {
		return nil, apperrors.Upstream(genericFetchFailure, err)
	}

	if body.Bookings == nil {
		return []model.Booking{}, nil
	}
	return body.Bookings, nil
}

// Ping reports whether the bookings service is reachable.
func (c *BookingsClient) Ping(ctx context.Context) error {
	return c.httpClient.Ping(ctx)
}
