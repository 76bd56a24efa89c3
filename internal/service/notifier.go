package service

import (
	"fmt"
	"strings"
	"time"

	"ordersbot/internal/model"
)

// Orders are announced 5 days before each milestone and on the day itself.
const notifyLeadDays = 5

const NoNotificationMessage = "No notification needed today."

type reason int

const (
	reasonReadySoon reason = iota
	reasonArrivalSoon
	reasonReadyToday
	reasonArrivalToday
	reasonCount
)

var reasonText = [reasonCount]string{
	"⏳ *5 days* until ready",
	"⏳ *5 days* until arrival",
	"✅ *Ready today*",
	"📦 *Arrives today*",
}

// Notifier decides which order groups deserve a reminder on a given day.
// It holds no state between runs; every call works on a fresh snapshot.
type Notifier struct {
	now func() time.Time
}

func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Build evaluates the milestone triggers against the given orders and
// returns the messages to deliver: a header with today's date followed by
// one message per triggered order-code group, groups in first-seen order.
// When nothing triggers it returns the single no-notification message.
func (n *Notifier) Build(orders []model.Order) []string {
	today := dateOnly(n.now())

	var due []model.Order
	for _, o := range orders {
		if len(reasonsFor(o, today)) > 0 {
			due = append(due, o)
		}
	}
	if len(due) == 0 {
		return []string{NoNotificationMessage}
	}

	messages := []string{fmt.Sprintf("Today is %s.", today.Format("2006-01-02"))}
	for _, g := range GroupByOrderCode(due) {
		messages = append(messages, renderGroup(g, today))
	}
	return messages
}

func reasonsFor(o model.Order, today time.Time) []reason {
	var rs []reason
	if daysUntil(today, o.ReadyDate) == notifyLeadDays {
		rs = append(rs, reasonReadySoon)
	}
	if daysUntil(today, o.ArrivalDate) == notifyLeadDays {
		rs = append(rs, reasonArrivalSoon)
	}
	if sameDay(o.ReadyDate, today) {
		rs = append(rs, reasonReadyToday)
	}
	if sameDay(o.ArrivalDate, today) {
		rs = append(rs, reasonArrivalToday)
	}
	return rs
}

// groupReasons is the union of every line's reasons, de-duplicated, in the
// fixed reason order. Lines of one order normally share dates, but the sheet
// does not enforce that, so no single line is trusted on its own.
func groupReasons(g OrderGroup, today time.Time) []reason {
	var have [reasonCount]bool
	for _, o := range g.Orders {
		for _, r := range reasonsFor(o, today) {
			have[r] = true
		}
	}
	var rs []reason
	for r := reason(0); r < reasonCount; r++ {
		if have[r] {
			rs = append(rs, r)
		}
	}
	return rs
}

func renderGroup(g OrderGroup, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📢 *Reminder* — 🆔 order *%s*:\n", g.Code)

	if rs := groupReasons(g, today); len(rs) > 0 {
		b.WriteString("\n")
		for _, r := range rs {
			b.WriteString(reasonText[r])
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n🙍 *Supplier:* %s\n", g.Orders[0].Supplier)

	for _, o := range g.Orders {
		fmt.Fprintf(&b, "\n📦 *%s*\n", o.ProductName)
		fmt.Fprintf(&b, "🔢 %d × %s$ = %s$\n", o.Quantity, o.Price, o.Total)
		fmt.Fprintf(&b, "🗓 Ordered: %s\n", o.OrderDate.Format("2006-01-02"))
		fmt.Fprintf(&b, "🏷 %s\n", o.Status)
	}
	return b.String()
}

// dateOnly drops the time-of-day component so milestone comparisons work on
// whole calendar days regardless of location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysUntil(today, target time.Time) int {
	return int(dateOnly(target).Sub(today).Hours() / 24)
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
