package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Order is one product line from the purchase-order sheet. Several lines may
// share the same OrderCode; that code ties them into one logical purchase
// order and is the grouping key for all notifications and reports.
type Order struct {
	OrderDate   time.Time       `json:"order_date"`
	Supplier    string          `json:"supplier"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	ReadyDate   time.Time       `json:"ready_date"`
	ArrivalDate time.Time       `json:"arrival_date"`
	Status      string          `json:"status"`
	OrderCode   string          `json:"order_code"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		OrderDate   string `json:"order_date"`
		ReadyDate   string `json:"ready_date"`
		ArrivalDate string `json:"arrival_date"`
		*Alias
	}{
		OrderDate:   o.OrderDate.Format("2006-01-02"),
		ReadyDate:   o.ReadyDate.Format("2006-01-02"),
		ArrivalDate: o.ArrivalDate.Format("2006-01-02"),
		Alias:       (*Alias)(&o),
	})
}
