package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SupplierNotFoundMessage is the reply for a supplier with no order lines.
func SupplierNotFoundMessage(name string) string {
	return fmt.Sprintf("❌ No orders found for '%s'.", name)
}

// RenderSupplierReport formats one order-code group for the on-demand
// supplier view: every line of the group plus the group's total.
func RenderSupplierReport(supplier string, g OrderGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 *%s*\n", supplier)

	total := decimal.Zero
	for _, o := range g.Orders {
		fmt.Fprintf(&b, "\n📦 *%s* (%d × %s$) = %s$\n", o.ProductName, o.Quantity, o.Price, o.Total)
		fmt.Fprintf(&b, "📅 %s | ✅ %s | 🚚 %s\n",
			o.OrderDate.Format("2006-01-02"),
			o.ReadyDate.Format("2006-01-02"),
			o.ArrivalDate.Format("2006-01-02"))
		fmt.Fprintf(&b, "🏷 %s\n", o.Status)
		total = total.Add(o.Total)
	}

	fmt.Fprintf(&b, "\n💲 Total: *%s*", total)
	return b.String()
}
