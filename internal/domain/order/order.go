package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("order: not found")
	ErrConflict    = errors.New("order: already exists")
	ErrAlreadyPaid = errors.New("order: already paid")
)

type Status string

const (
	StatusOpen Status = "open"
	StatusPaid Status = "paid"
)

// LineItem is a single purchasable entry on an order.
// UnitPrice is expressed in minor currency units.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

type Order struct {
	ID         string
	CustomerID string
	Items      []LineItem
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New creates an empty open order. Items are added afterwards via AddItem.
func New(id, customerID string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Status:     StatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddItem appends a line item. Quantity and price are recorded as given;
// the model does not police signs.
func (o *Order) AddItem(name string, quantity int, unitPrice int64) {
	o.Items = append(o.Items, LineItem{Name: name, Quantity: quantity, UnitPrice: unitPrice})
	o.touch()
}

// Total returns the sum of quantity times unit price over all items.
// An empty order totals zero.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Quantity) * item.UnitPrice
	}
	return total
}

// MarkPaid transitions the order to paid. Only a successful payment
// calls this; there is no way back to open.
func (o *Order) MarkPaid() error {
	if o.Status == StatusPaid {
		return ErrAlreadyPaid
	}
	o.Status = StatusPaid
	o.touch()
	return nil
}

func (o *Order) Paid() bool { return o.Status == StatusPaid }

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]LineItem(nil), o.Items...)
	return &clone
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now().UTC()
}
