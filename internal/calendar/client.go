package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/pkg/apperror"
)

// Client fetches the published delivery calendar document. The document is
// treated as read-only configuration and re-fetched on every call; there is
// no caching layer.
type Client struct {
	calendarURL string
	httpClient  *http.Client
}

// NewClient creates a calendar-source client for the given document URL.
func NewClient(calendarURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		calendarURL: calendarURL,
		httpClient:  httpClient,
	}
}

// FetchCalendar retrieves and decodes the delivery calendar.
func (c *Client) FetchCalendar(ctx context.Context) (Calendar, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.calendarURL, nil)
	if err != nil {
		return Calendar{}, apperror.Wrap(err, http.StatusInternalServerError, "cannot build calendar request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Calendar{}, apperror.Wrap(err, http.StatusBadGateway, "delivery calendar unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Calendar{}, apperror.Wrap(
			fmt.Errorf("calendar source returned status %d", resp.StatusCode),
			http.StatusBadGateway, "delivery calendar unavailable",
		)
	}

	var cal Calendar
	if err := json.NewDecoder(resp.Body).Decode(&cal); err != nil {
		return Calendar{}, apperror.Wrap(err, http.StatusBadGateway, "cannot decode delivery calendar")
	}
	return cal, nil
}
