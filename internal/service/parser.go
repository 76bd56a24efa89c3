package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ordersbot/internal/model"
)

const sheetColumns = 10

var (
	ErrShortRow  = errors.New("row has fewer than 10 cells")
	ErrBlankCell = errors.New("row has a blank cell")
)

// Date formats accepted from the sheet. ISO first, then the day-first form
// the suppliers tend to type by hand.
var dateLayouts = []string{"2006-01-02", "02.01.2006", "2006/01/02"}

// ParseRow converts one sheet row into an Order. A row is rejected when it
// has fewer than 10 cells, when any cell is blank after trimming, or when
// any field fails to parse. Callers treat a rejection as a skipped row, not
// a failure of the whole read cycle.
func ParseRow(cells []string) (model.Order, error) {
	if len(cells) < sheetColumns {
		return model.Order{}, ErrShortRow
	}
	for i := 0; i < sheetColumns; i++ {
		if strings.TrimSpace(cells[i]) == "" {
			return model.Order{}, ErrBlankCell
		}
	}

	orderDate, err := parseDate(cells[0])
	if err != nil {
		return model.Order{}, fmt.Errorf("order date: %w", err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(cells[3]))
	if err != nil {
		return model.Order{}, fmt.Errorf("quantity: %w", err)
	}
	price, err := parsePrice(cells[4])
	if err != nil {
		return model.Order{}, fmt.Errorf("price: %w", err)
	}
	total, err := parseTotal(cells[5])
	if err != nil {
		return model.Order{}, fmt.Errorf("total: %w", err)
	}
	readyDate, err := parseDate(cells[6])
	if err != nil {
		return model.Order{}, fmt.Errorf("ready date: %w", err)
	}
	arrivalDate, err := parseDate(cells[7])
	if err != nil {
		return model.Order{}, fmt.Errorf("arrival date: %w", err)
	}

	return model.Order{
		OrderDate:   orderDate,
		Supplier:    strings.TrimSpace(cells[1]),
		ProductName: strings.TrimSpace(cells[2]),
		Quantity:    quantity,
		Price:       price,
		Total:       total,
		ReadyDate:   readyDate,
		ArrivalDate: arrivalDate,
		Status:      strings.TrimSpace(cells[8]),
		OrderCode:   strings.TrimSpace(cells[9]),
	}, nil
}

// ParseRows parses a full read cycle. Rejected rows are dropped and counted;
// the surviving orders keep their sheet order.
func ParseRows(rows [][]string) ([]model.Order, int) {
	orders := make([]model.Order, 0, len(rows))
	rejected := 0
	for _, row := range rows {
		order, err := ParseRow(row)
		if err != nil {
			rejected++
			continue
		}
		orders = append(orders, order)
	}
	return orders, rejected
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parsePrice accepts the decimal-comma convention the sheet uses for the
// unit price column ("5,00"), alongside the plain dot form.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return decimal.NewFromString(s)
}

// parseTotal parses the total column with the dot convention only. The two
// columns really do use different conventions in the source sheet; keep the
// split until the sheet itself is fixed.
func parseTotal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
