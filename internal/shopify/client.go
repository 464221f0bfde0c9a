package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pen-dragon-house/delivery-slot-backend/internal/pkg/apperror"
)

// orderQuery fetches the most recent orders with their custom attributes.
// The fetch size is the Admin API page limit; pagination beyond one page is
// deliberately not performed.
const orderQuery = `{
  orders(first: %d) {
    edges {
      node {
        id
        name
        customAttributes {
          key
          value
        }
      }
    }
  }
}`

// Client fetches recent orders from the Shopify Admin GraphQL API.
type Client struct {
	apiURL      string
	accessToken string
	fetchLimit  int
	httpClient  *http.Client
}

// NewClient creates an order-source client. Endpoint and credentials are
// fixed at construction; the core computation never sees them.
func NewClient(apiURL, accessToken string, fetchLimit int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiURL:      apiURL,
		accessToken: accessToken,
		fetchLimit:  fetchLimit,
		httpClient:  httpClient,
	}
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type ordersResponse struct {
	Data struct {
		// Pointer so that a response without orders data (error-only
		// bodies still come back as HTTP 200) is distinguishable from an
		// empty order list.
		Orders *struct {
			Edges []struct {
				Node Order `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchOrders retrieves up to the configured number of recent orders.
func (c *Client) FetchOrders(ctx context.Context) ([]Order, error) {
	body, err := json.Marshal(graphqlRequest{Query: fmt.Sprintf(orderQuery, c.fetchLimit)})
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "cannot encode order query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "cannot build order request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusBadGateway, "order source unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.Wrap(
			fmt.Errorf("order source returned status %d", resp.StatusCode),
			http.StatusBadGateway, "order source unavailable",
		)
	}

	var decoded ordersResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperror.Wrap(err, http.StatusBadGateway, "cannot decode order response")
	}

	// GraphQL reports throttling and query errors inside a 200 body.
	if len(decoded.Errors) > 0 {
		return nil, apperror.Wrap(
			fmt.Errorf("order source error: %s", decoded.Errors[0].Message),
			http.StatusBadGateway, "order source unavailable",
		)
	}
	if decoded.Data.Orders == nil {
		return nil, apperror.Wrap(
			fmt.Errorf("order response carries no orders data"),
			http.StatusBadGateway, "order source unavailable",
		)
	}

	orders := make([]Order, 0, len(decoded.Data.Orders.Edges))
	for _, edge := range decoded.Data.Orders.Edges {
		orders = append(orders, edge.Node)
	}
	return orders, nil
}
