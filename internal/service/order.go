package service

import (
	"context"
	"fmt"
	"log/slog"

	"ordersbot/internal/model"
)

// RowSource supplies the raw sheet rows for one read cycle.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// OrderService turns the remote sheet into a parsed order snapshot. Nothing
// is cached between calls; every snapshot re-reads the source so concurrent
// callers never share state.
type OrderService struct {
	source RowSource
}

func NewOrderService(source RowSource) *OrderService {
	return &OrderService{source: source}
}

// Snapshot fetches the sheet and parses it. A fetch failure is returned to
// the caller; malformed rows are dropped and only logged.
func (s *OrderService) Snapshot(ctx context.Context) ([]model.Order, error) {
	rows, err := s.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	orders, rejected := ParseRows(rows)
	if rejected > 0 {
		slog.Debug("rows rejected during parse", "rejected", rejected, "parsed", len(orders))
	}
	return orders, nil
}
