package service

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

func validRow() []string {
	return []string{"2024-01-01", "Acme", "Widget", "10", "5,00", "50", "2024-01-10", "2024-01-15", "ordered", "C1"}
}

func TestParseRowValid(t *testing.T) {
	order, err := ParseRow(validRow())
	if err != nil {
		t.Fatalf("ParseRow() error = %v", err)
	}

	if got := order.OrderDate.Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("OrderDate = %s, want 2024-01-01", got)
	}
	if order.Supplier != "Acme" {
		t.Errorf("Supplier = %q, want Acme", order.Supplier)
	}
	if order.ProductName != "Widget" {
		t.Errorf("ProductName = %q, want Widget", order.ProductName)
	}
	if order.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10", order.Quantity)
	}
	if !order.Price.Equal(decimal.RequireFromString("5")) {
		t.Errorf("Price = %s, want 5", order.Price)
	}
	if !order.Total.Equal(decimal.RequireFromString("50")) {
		t.Errorf("Total = %s, want 50", order.Total)
	}
	if got := order.ReadyDate.Format("2006-01-02"); got != "2024-01-10" {
		t.Errorf("ReadyDate = %s, want 2024-01-10", got)
	}
	if got := order.ArrivalDate.Format("2006-01-02"); got != "2024-01-15" {
		t.Errorf("ArrivalDate = %s, want 2024-01-15", got)
	}
	if order.Status != "ordered" {
		t.Errorf("Status = %q, want ordered", order.Status)
	}
	if order.OrderCode != "C1" {
		t.Errorf("OrderCode = %q, want C1", order.OrderCode)
	}
}

func TestParseRowRejects(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"empty row", nil},
		{"nine cells", validRow()[:9]},
		{"blank supplier", replaceCell(validRow(), 1, "")},
		{"whitespace cell", replaceCell(validRow(), 8, "   ")},
		{"bad order date", replaceCell(validRow(), 0, "not-a-date")},
		{"bad quantity", replaceCell(validRow(), 3, "ten")},
		{"bad price", replaceCell(validRow(), 4, "abc")},
		{"bad total", replaceCell(validRow(), 5, "abc")},
		{"bad ready date", replaceCell(validRow(), 6, "2024-13-99")},
		{"bad arrival date", replaceCell(validRow(), 7, "soon")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRow(tt.row); err == nil {
				t.Errorf("ParseRow(%v) expected error", tt.row)
			}
		})
	}
}

// Any row that is too short or has any blank cell must never become an
// order, no matter which cell is affected.
func TestParseRowBlankProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		row := validRow()
		if rng.Intn(2) == 0 {
			row = row[:rng.Intn(sheetColumns)]
		} else {
			blanks := []string{"", " ", "\t", "  \t "}
			row[rng.Intn(sheetColumns)] = blanks[rng.Intn(len(blanks))]
		}
		if _, err := ParseRow(row); err == nil {
			t.Fatalf("ParseRow(%q) expected error", row)
		}
	}
}

// Parsing then re-formatting the typed fields must reproduce equivalent
// values under the fixed conventions.
func TestParseRowRoundTrip(t *testing.T) {
	row := []string{"2024-03-07", "Supplies Inc", "Bolt M8", "250", "1,25", "312.50", "2024-03-20", "2024-03-28", "paid", "X9"}

	order, err := ParseRow(row)
	if err != nil {
		t.Fatalf("ParseRow() error = %v", err)
	}

	if got := order.OrderDate.Format("2006-01-02"); got != row[0] {
		t.Errorf("OrderDate round trip = %s, want %s", got, row[0])
	}
	if got := strconv.Itoa(order.Quantity); got != row[3] {
		t.Errorf("Quantity round trip = %s, want %s", got, row[3])
	}
	if !order.Price.Equal(decimal.RequireFromString("1.25")) {
		t.Errorf("Price = %s, want 1.25", order.Price)
	}
	if !order.Total.Equal(decimal.RequireFromString("312.50")) {
		t.Errorf("Total = %s, want 312.50", order.Total)
	}
	if got := order.ReadyDate.Format("2006-01-02"); got != row[6] {
		t.Errorf("ReadyDate round trip = %s, want %s", got, row[6])
	}
}

// The sheet uses the decimal comma for the price column but the dot
// convention for the total column. The split is inherited from the source
// data and must be preserved as-is.
func TestParseRowNumericConventions(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		total   string
		wantErr bool
	}{
		{"comma price, dot total", "5,00", "50.00", false},
		{"dot price accepted too", "5.00", "50", false},
		{"comma total rejected", "5,00", "50,00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := replaceCell(replaceCell(validRow(), 4, tt.price), 5, tt.total)
			_, err := ParseRow(row)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRow() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRowsCountsRejected(t *testing.T) {
	rows := [][]string{
		validRow(),
		{"garbage"},
		replaceCell(validRow(), 3, "not-a-number"),
		replaceCell(validRow(), 9, "C2"),
	}

	orders, rejected := ParseRows(rows)
	if len(orders) != 2 {
		t.Errorf("len(orders) = %d, want 2", len(orders))
	}
	if rejected != 2 {
		t.Errorf("rejected = %d, want 2", rejected)
	}
	// Sheet order survives.
	if orders[0].OrderCode != "C1" || orders[1].OrderCode != "C2" {
		t.Errorf("order codes = %s, %s; want C1, C2", orders[0].OrderCode, orders[1].OrderCode)
	}
}

func replaceCell(row []string, i int, v string) []string {
	out := make([]string, len(row))
	copy(out, row)
	out[i] = v
	return out
}
