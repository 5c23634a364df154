package order

import "time"

// OrderPaidEvent is a domain event emitted when a payment finalizes an order.
// It is intended to be handled by downstream subscribers (e.g., receipts).
type OrderPaidEvent struct {
	OrderID    string
	CustomerID string
	Total      int64
	OccurredAt time.Time
}

func (OrderPaidEvent) EventName() string { return "order.paid" }

func NewOrderPaidEvent(o *Order) OrderPaidEvent {
	return OrderPaidEvent{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
		OccurredAt: time.Now().UTC(),
	}
}
