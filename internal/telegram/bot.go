package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ordersbot/internal/service"
)

const (
	ordersButton           = "📦 Orders"
	supplierCallbackPrefix = "supplier:"
	fetchFailedMessage     = "⚠️ Could not read the orders sheet, try again later."
)

// Bot routes inbound Telegram updates to the order services and delivers
// outbound messages. It is also the Messenger used by the notify worker.
type Bot struct {
	api           *tgbotapi.BotAPI
	orders        *service.OrderService
	subscriptions *service.SubscriptionService
}

func NewBot(token string, orders *service.OrderService, subscriptions *service.SubscriptionService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Bot{api: api, orders: orders, subscriptions: subscriptions}, nil
}

// SendText delivers one Markdown message to one chat.
func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Run consumes the long-polling update stream until the context is
// cancelled. Each update is handled independently; a failure in one never
// stops the loop.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	slog.Info("bot is running", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			slog.Info("bot stopped")
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Text {
	case "/start":
		if err := b.subscriptions.Subscribe(ctx, chatID); err != nil {
			slog.Error("subscribe failed", "chat_id", chatID, "error", err)
		}
		reply := tgbotapi.NewMessage(chatID, "Hello! You are subscribed to daily order reminders. Choose:")
		reply.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ordersButton)),
		)
		if _, err := b.api.Send(reply); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}

	case "/stop":
		if err := b.subscriptions.Unsubscribe(ctx, chatID); err != nil {
			slog.Error("unsubscribe failed", "chat_id", chatID, "error", err)
		}
		if err := b.SendText(ctx, chatID, "You will no longer receive daily reminders."); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}

	case "/orders", ordersButton:
		b.sendSupplierMenu(ctx, chatID)

	default:
		if err := b.SendText(ctx, chatID, "Send /orders"); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}
	}
}

// sendSupplierMenu builds the supplier menu from a fresh snapshot, two
// buttons per row, each bound to a supplier callback payload.
func (b *Bot) sendSupplierMenu(ctx context.Context, chatID int64) {
	orders, err := b.orders.Snapshot(ctx)
	if err != nil {
		slog.Error("snapshot failed", "error", err)
		if err := b.SendText(ctx, chatID, fetchFailedMessage); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, supplier := range service.DistinctSuppliers(orders) {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(supplier, supplierCallbackPrefix+supplier))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	msg := tgbotapi.NewMessage(chatID, "Please choose a supplier:")
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("send failed", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		slog.Error("callback ack failed", "error", err)
	}

	if cq.Message == nil || !strings.HasPrefix(cq.Data, supplierCallbackPrefix) {
		return
	}
	chatID := cq.Message.Chat.ID
	supplier := strings.TrimPrefix(cq.Data, supplierCallbackPrefix)

	orders, err := b.orders.Snapshot(ctx)
	if err != nil {
		slog.Error("snapshot failed", "error", err)
		if err := b.SendText(ctx, chatID, fetchFailedMessage); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}
		return
	}

	matched := service.OrdersForSupplier(orders, supplier)
	if len(matched) == 0 {
		if err := b.SendText(ctx, chatID, service.SupplierNotFoundMessage(supplier)); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}
		return
	}

	for _, g := range service.GroupByOrderCode(matched) {
		if err := b.SendText(ctx, chatID, service.RenderSupplierReport(supplier, g)); err != nil {
			slog.Error("send failed", "chat_id", chatID, "error", err)
		}
	}
}
