package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ordersbot/internal/service"
)

// OrdersHandler returns the current parsed order snapshot as JSON. The
// snapshot is built fresh per request, same as every other trigger.
func OrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := orderSvc.Snapshot(r.Context())
		if err != nil {
			slog.Error("snapshot failed", "error", err)
			http.Error(w, "fetch failed", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

// SuppliersHandler returns the distinct supplier names in first-seen order.
func SuppliersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := orderSvc.Snapshot(r.Context())
		if err != nil {
			slog.Error("snapshot failed", "error", err)
			http.Error(w, "fetch failed", http.StatusBadGateway)
			return
		}

		suppliers := service.DistinctSuppliers(orders)
		if suppliers == nil {
			suppliers = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suppliers); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
