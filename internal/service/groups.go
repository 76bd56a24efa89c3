package service

import "ordersbot/internal/model"

// OrderGroup is one order code with its product lines in sheet order.
type OrderGroup struct {
	Code   string
	Orders []model.Order
}

// DistinctSuppliers returns supplier names in first-seen order.
func DistinctSuppliers(orders []model.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	var suppliers []string
	for _, o := range orders {
		if _, ok := seen[o.Supplier]; ok {
			continue
		}
		seen[o.Supplier] = struct{}{}
		suppliers = append(suppliers, o.Supplier)
	}
	return suppliers
}

// OrdersForSupplier returns the lines whose supplier matches name exactly,
// case-sensitive. An empty result means this supplier has no orders; it is
// not an error.
func OrdersForSupplier(orders []model.Order, name string) []model.Order {
	var matched []model.Order
	for _, o := range orders {
		if o.Supplier == name {
			matched = append(matched, o)
		}
	}
	return matched
}

// GroupByOrderCode groups lines by order code. Groups come out in first-seen
// order and lines keep their order within each group.
func GroupByOrderCode(orders []model.Order) []OrderGroup {
	index := make(map[string]int, len(orders))
	var groups []OrderGroup
	for _, o := range orders {
		i, ok := index[o.OrderCode]
		if !ok {
			i = len(groups)
			index[o.OrderCode] = i
			groups = append(groups, OrderGroup{Code: o.OrderCode})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	return groups
}
