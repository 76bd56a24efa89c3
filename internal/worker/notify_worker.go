package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordersbot/internal/model"
	"ordersbot/internal/service"
)

// OrderSource builds a fresh order snapshot for one cycle.
type OrderSource interface {
	Snapshot(ctx context.Context) ([]model.Order, error)
}

// Messenger delivers one text message to one chat.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// SubscriberSource lists the chats subscribed to daily reminders.
type SubscriberSource interface {
	List(ctx context.Context) ([]int64, error)
}

// NotifyWorker runs the milestone notification cycle on a fixed interval.
// The first cycle fires immediately on start. A failed cycle is logged and
// the loop keeps waiting for the next tick.
type NotifyWorker struct {
	orders      OrderSource
	notifier    *service.Notifier
	subscribers SubscriberSource
	messenger   Messenger
	defaultChat int64
	interval    time.Duration
}

func NewNotifyWorker(orders OrderSource, notifier *service.Notifier, subscribers SubscriberSource, messenger Messenger, defaultChat int64, interval time.Duration) *NotifyWorker {
	return &NotifyWorker{
		orders:      orders,
		notifier:    notifier,
		subscribers: subscribers,
		messenger:   messenger,
		defaultChat: defaultChat,
		interval:    interval,
	}
}

func (w *NotifyWorker) Start(ctx context.Context) {
	slog.Info("starting notify worker", "interval", w.interval)

	if err := w.RunOnce(ctx); err != nil {
		slog.Error("notification cycle failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("notify worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				slog.Error("notification cycle failed", "error", err)
			}
		}
	}
}

// RunOnce executes a single notification cycle: fetch, evaluate, deliver.
// A fetch failure aborts the cycle before anything is sent. A delivery
// failure is logged per message and does not stop the rest of the batch.
func (w *NotifyWorker) RunOnce(ctx context.Context) error {
	orders, err := w.orders.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot orders: %w", err)
	}

	messages := w.notifier.Build(orders)

	for _, chatID := range w.recipients(ctx) {
		for _, text := range messages {
			if err := w.messenger.SendText(ctx, chatID, text); err != nil {
				slog.Error("failed to deliver notification", "chat_id", chatID, "error", err)
			}
		}
	}
	return nil
}

// recipients is the default chat plus every subscriber, de-duplicated. When
// the subscriber store is unavailable the default chat still gets notified.
func (w *NotifyWorker) recipients(ctx context.Context) []int64 {
	chatIDs := []int64{w.defaultChat}

	subscribed, err := w.subscribers.List(ctx)
	if err != nil {
		slog.Error("failed to list subscribers", "error", err)
		return chatIDs
	}

	seen := map[int64]struct{}{w.defaultChat: {}}
	for _, id := range subscribed {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		chatIDs = append(chatIDs, id)
	}
	return chatIDs
}
