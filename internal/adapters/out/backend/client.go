// Package backend is the storefront's HTTP client for the order backend.
// It implements the catalog, submission and status ports.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

const (
	DefaultTimeout = 10 * time.Second

	apiSegment      = "api"
	productsSegment = "products"
	ordersSegment   = "orders"

	maxErrorBody = 512
)

// ErrUnaddressableOrderID is returned for ids that cannot form a single path
// segment.
var ErrUnaddressableOrderID = errors.New("order id cannot be used in a request path")

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client talks to the order backend. Every operation makes exactly one
// request and never retries.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client rooted at baseURL. A nil httpClient gets one
// with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: u,
		http:    httpClient,
		logger:  logger.With("component", "backend_client"),
	}, nil
}

// ListProducts implements ports.CatalogSource.
func (c *Client) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, c.endpoint(apiSegment, productsSegment), nil, &dtos); err != nil {
		c.logger.WarnContext(ctx, "List products failed", "error", err)
		return nil, ports.ErrCatalogUnavailable
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toProduct(dto)
		if err != nil {
			c.logger.WarnContext(ctx, "Malformed product in catalog", "id", string(dto.ID), "error", err)
			return nil, ports.ErrCatalogUnavailable
		}
		products = append(products, p)
	}
	return products, nil
}

// SubmitOrder implements ports.OrderSubmitter.
func (c *Client) SubmitOrder(ctx context.Context, d order.Draft) (string, error) {
	lines := d.Lines()
	req := orderRequest{
		CustomerName:  d.CustomerName(),
		CustomerEmail: d.CustomerEmail(),
		Items:         make([]orderItemRequest, 0, len(lines)),
	}
	for _, line := range lines {
		req.Items = append(req.Items, orderItemRequest{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
		})
	}

	var resp orderCreatedResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint(apiSegment, ordersSegment), req, &resp); err != nil {
		c.logger.WarnContext(ctx, "Submit order failed", "error", err)
		return "", ports.ErrSubmissionFailed
	}
	if resp.OrderID == "" {
		c.logger.WarnContext(ctx, "Submit order response carried no order_id")
		return "", ports.ErrSubmissionFailed
	}
	return string(resp.OrderID), nil
}

// FetchStatus implements ports.OrderStatusSource. The id is sent as one
// escaped path segment; "." and ".." are refused before any request.
func (c *Client) FetchStatus(ctx context.Context, orderID string) (order.Record, error) {
	if orderID == "." || orderID == ".." {
		c.logger.WarnContext(ctx, "Fetch order status refused", "order_id", orderID, "error", ErrUnaddressableOrderID)
		return order.Record{}, fmt.Errorf("%w: %w", ports.ErrLookupFailed, ErrUnaddressableOrderID)
	}

	var dto orderRecordDTO
	if err := c.do(ctx, http.MethodGet, c.endpoint(apiSegment, ordersSegment, orderID), nil, &dto); err != nil {
		c.logger.WarnContext(ctx, "Fetch order status failed", "order_id", orderID, "error", err)
		return order.Record{}, ports.ErrLookupFailed
	}

	record, err := toRecord(dto)
	if err != nil {
		c.logger.WarnContext(ctx, "Malformed order record", "order_id", orderID, "error", err)
		return order.Record{}, ports.ErrLookupFailed
	}
	if record.OrderID == "" {
		record.OrderID = orderID
	}
	return record, nil
}

// endpoint appends segments to the base URL path, keeping any prefix it
// carries. Each segment is escaped on its own.
func (c *Client) endpoint(segments ...string) *url.URL {
	u := *c.baseURL
	u.RawQuery, u.Fragment, u.RawFragment = "", "", ""

	path := strings.TrimSuffix(u.Path, "/")
	raw := strings.TrimSuffix(u.EscapedPath(), "/")
	for _, s := range segments {
		path += "/" + s
		raw += "/" + url.PathEscape(s)
	}
	u.Path, u.RawPath = path, raw
	return &u
}

func (c *Client) do(ctx context.Context, method string, u *url.URL, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, Path: u.EscapedPath(), Code: resp.StatusCode, Body: string(snippet)}
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func toProduct(dto productDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(string(dto.ID), dto.Name, dto.Description, price, dto.Category)
}

func toRecord(dto orderRecordDTO) (order.Record, error) {
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return order.Record{}, err
	}

	items := make([]order.RecordItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		price, priceErr := kernel.NewMoney(it.Price)
		if priceErr != nil {
			return order.Record{}, priceErr
		}
		items = append(items, order.RecordItem{Name: it.Name, Price: price, Quantity: it.Quantity})
	}

	return order.Record{
		OrderID:      string(dto.OrderID),
		CustomerName: dto.CustomerName,
		CreatedAt:    time.Time(dto.CreatedAt),
		Status:       order.Status(dto.Status),
		TotalAmount:  total,
		Items:        items,
	}, nil
}
