package backend_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery/internal/adapters/out/backend"
	"bakery/internal/core/domain/model/draft"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := backend.NewClient(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func mustDraft(t *testing.T, items ...draft.LineItem) order.Draft {
	t.Helper()
	d, err := order.Validate("Ann", "a@x.com", items)
	require.NoError(t, err)
	return d
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := backend.NewClient("localhost", nil, logger)
	require.Error(t, err)

	_, err = backend.NewClient("http://%zz", nil, logger)
	require.Error(t, err)
}

func TestClient_ListProducts(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 1, "name": "Baguette", "description": "Crusty", "price": 3.0, "category": "bread"},
			{"id": "p2", "name": "Croissant", "description": "", "price": "2.50", "category": "pastry"}
		]`)
	}))

	products, err := c.ListProducts(t.Context())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "1", products[0].ID())
	assert.Equal(t, "Baguette", products[0].Name())
	assert.Equal(t, "3.00", products[0].Price().String())
	assert.Equal(t, "p2", products[1].ID())
	assert.Equal(t, "Croissant ($2.50)", products[1].Label())
}

func TestClient_ListProducts_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"bad json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"not":"a list"}`)
		},
		"negative price": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `[{"id":1,"name":"X","price":-1}]`)
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newClient(t, h).ListProducts(t.Context())
			require.ErrorIs(t, err, ports.ErrCatalogUnavailable)
		})
	}
}

func TestClient_SubmitOrder_ReturnsOrderID(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"order_id":"O123","status":"pending"}`)
	}))

	orderID, err := c.SubmitOrder(t.Context(), mustDraft(t, draft.LineItem{ProductID: "p1", Quantity: draft.NewQuantity(1)}))
	require.NoError(t, err)
	assert.Equal(t, "O123", orderID)
}

func TestClient_SubmitOrder_NumericOrderID(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"order_id":42,"status":"pending"}`)
	}))

	orderID, err := c.SubmitOrder(t.Context(), mustDraft(t, draft.LineItem{ProductID: "p1", Quantity: draft.NewQuantity(1)}))
	require.NoError(t, err)
	assert.Equal(t, "42", orderID)
}

func TestClient_SubmitOrder_SendsEveryLineInOrder(t *testing.T) {
	type item struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	var got struct {
		CustomerName  string `json:"customer_name"`
		CustomerEmail string `json:"customer_email"`
		Items         []item `json:"items"`
	}

	calls := 0
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"order_id":"O1"}`)
	}))

	items := []draft.LineItem{
		{ProductID: "p3", Quantity: draft.NewQuantity(1)},
		{ProductID: "", Quantity: draft.NewQuantity(4)},
		{ProductID: "p1", Quantity: draft.NewQuantity(7)},
		{ProductID: "p3", Quantity: draft.NewQuantity(2)},
	}
	_, err := c.SubmitOrder(t.Context(), mustDraft(t, items...))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Ann", got.CustomerName)
	assert.Equal(t, "a@x.com", got.CustomerEmail)
	assert.Equal(t, []item{{"p3", 1}, {"p1", 7}, {"p3", 2}}, got.Items)
}

func TestClient_SubmitOrder_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"bad request": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"Missing required fields"}`)
		},
		"not found": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		"missing order id": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"status":"pending"}`)
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newClient(t, h).SubmitOrder(t.Context(),
				mustDraft(t, draft.LineItem{ProductID: "p1", Quantity: draft.NewQuantity(1)}))
			require.ErrorIs(t, err, ports.ErrSubmissionFailed)
		})
	}
}

func TestClient_SubmitOrder_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := backend.NewClient(srv.URL, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = c.SubmitOrder(t.Context(), mustDraft(t, draft.LineItem{ProductID: "p1", Quantity: draft.NewQuantity(1)}))
	require.ErrorIs(t, err, ports.ErrSubmissionFailed)
}

func TestClient_FetchStatus_CompletedOrder(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/O123", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"order_id": "O123",
			"customer_name": "Ann",
			"created_at": "2024-03-01T09:30:00.123456",
			"status": "completed",
			"total_amount": 12.50,
			"items": [{"name": "Croissant", "price": 2.5, "quantity": 5}]
		}`)
	}))

	record, err := c.FetchStatus(t.Context(), "O123")
	require.NoError(t, err)

	assert.Equal(t, "O123", record.OrderID)
	assert.Equal(t, order.Completed, record.Status)
	assert.True(t, record.IsFinal())
	assert.Equal(t, "12.50", record.TotalAmount.String())
	require.Len(t, record.Items, 1)
	assert.Equal(t, "12.50", record.Items[0].Amount().String())
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 123456000, time.UTC), record.CreatedAt)
}

func TestClient_FetchStatus_RFC3339AndUnknownStatus(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{
			"order_id": 7,
			"customer_name": "Bob",
			"created_at": "2024-03-01T10:30:00+01:00",
			"status": "on_hold",
			"total_amount": 0,
			"items": []
		}`)
	}))

	record, err := c.FetchStatus(t.Context(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", record.OrderID)
	assert.Equal(t, order.Status("on_hold"), record.Status)
	assert.Empty(t, record.Status.Class())
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), record.CreatedAt)
}

func TestClient_FetchStatus_SendsOrderIDAsOneSegment(t *testing.T) {
	cases := map[string]string{
		"O123":  "/api/orders/O123",
		"a/b":   "/api/orders/a%2Fb",
		"O 123": "/api/orders/O%20123",
		"50%":   "/api/orders/50%25",
	}

	for id, want := range cases {
		t.Run(id, func(t *testing.T) {
			var got string
			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.EscapedPath()
				_, _ = io.WriteString(w, `{"status":"pending","total_amount":0,"items":[]}`)
			}))

			record, err := c.FetchStatus(t.Context(), id)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, id, record.OrderID)
		})
	}
}

func TestClient_FetchStatus_RefusesDotSegments(t *testing.T) {
	called := false
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	for _, id := range []string{".", ".."} {
		_, err := c.FetchStatus(t.Context(), id)
		require.ErrorIs(t, err, ports.ErrLookupFailed)
		require.ErrorIs(t, err, backend.ErrUnaddressableOrderID)
	}
	assert.False(t, called)
}

func TestClient_KeepsBaseURLPathPrefix(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		switch r.Method {
		case http.MethodPost:
			_, _ = io.WriteString(w, `{"order_id":"O1"}`)
		default:
			if r.URL.Path == "/bakery/api/products" {
				_, _ = io.WriteString(w, `[]`)
				return
			}
			_, _ = io.WriteString(w, `{"status":"pending","total_amount":0,"items":[]}`)
		}
	}))
	t.Cleanup(srv.Close)

	c, err := backend.NewClient(srv.URL+"/bakery/", srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = c.ListProducts(t.Context())
	require.NoError(t, err)
	_, err = c.SubmitOrder(t.Context(), mustDraft(t, draft.LineItem{ProductID: "p1", Quantity: draft.NewQuantity(1)}))
	require.NoError(t, err)
	_, err = c.FetchStatus(t.Context(), "O1")
	require.NoError(t, err)

	assert.Equal(t, []string{"/bakery/api/products", "/bakery/api/orders", "/bakery/api/orders/O1"}, paths)
}

func TestClient_FetchStatus_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"unknown order": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"Order not found"}`)
		},
		"server error": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"bad timestamp": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"order_id":"x","created_at":"yesterday","status":"pending","total_amount":1,"items":[]}`)
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			record, err := newClient(t, h).FetchStatus(t.Context(), "unknown")
			require.ErrorIs(t, err, ports.ErrLookupFailed)
			assert.Equal(t, order.Record{}, record)
		})
	}
}
