package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// CycleRunner runs one notification cycle on demand.
type CycleRunner interface {
	RunOnce(ctx context.Context) error
}

// NotifyHandler triggers one notification cycle outside the fixed schedule.
func NotifyHandler(runner CycleRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := runner.RunOnce(r.Context()); err != nil {
			slog.Error("manual notification cycle failed", "error", err)
			http.Error(w, "fetch failed", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// HealthHandler reports process liveness.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
