package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordersbot/internal/service"
)

type fakeRows struct {
	rows [][]string
	err  error
}

func (f *fakeRows) Rows(ctx context.Context) ([][]string, error) {
	return f.rows, f.err
}

func TestOrdersHandler(t *testing.T) {
	source := &fakeRows{rows: [][]string{
		{"2024-01-01", "Acme", "Widget", "10", "5,00", "50", "2024-01-10", "2024-01-15", "ordered", "C1"},
		{"broken row"},
	}}
	h := OrdersHandler(service.NewOrderService(source))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var orders []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("len(orders) = %d, want 1 (broken row dropped)", len(orders))
	}
	if orders[0]["order_code"] != "C1" {
		t.Errorf("order_code = %v, want C1", orders[0]["order_code"])
	}
	if orders[0]["ready_date"] != "2024-01-10" {
		t.Errorf("ready_date = %v, want 2024-01-10", orders[0]["ready_date"])
	}
}

func TestOrdersHandlerFetchFailure(t *testing.T) {
	h := OrdersHandler(service.NewOrderService(&fakeRows{err: errors.New("unreachable")}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestSuppliersHandlerEmptySheet(t *testing.T) {
	h := SuppliersHandler(service.NewOrderService(&fakeRows{}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/suppliers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}
