package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrderIsOpenAndEmpty(t *testing.T) {
	o := New("order-1", "customer-1")

	require.Equal(t, StatusOpen, o.Status)
	require.Empty(t, o.Items)
	require.Equal(t, int64(0), o.Total())
}

func TestAddItemAppends(t *testing.T) {
	o := New("order-1", "customer-1")

	o.AddItem("Keyboard", 1, 50)
	o.AddItem("SSD", 1, 150)

	require.Len(t, o.Items, 2)
	require.Equal(t, LineItem{Name: "Keyboard", Quantity: 1, UnitPrice: 50}, o.Items[0])
	require.Equal(t, LineItem{Name: "SSD", Quantity: 1, UnitPrice: 150}, o.Items[1])
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  int64
	}{
		{name: "empty", want: 0},
		{name: "single item", items: []LineItem{{"Keyboard", 1, 50}}, want: 50},
		{
			name: "multiple items",
			items: []LineItem{
				{"Keyboard", 1, 50},
				{"SSD", 1, 150},
				{"USB Cable", 2, 5},
			},
			want: 210,
		},
		{
			name: "quantity multiplies price",
			items: []LineItem{
				{"Mouse", 3, 25},
				{"Monitor", 2, 200},
			},
			want: 475,
		},
		{
			name: "signs pass through unchecked",
			items: []LineItem{
				{"Refund", -1, 100},
				{"Keyboard", 1, 50},
			},
			want: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New("order-1", "customer-1")
			for _, item := range tt.items {
				o.AddItem(item.Name, item.Quantity, item.UnitPrice)
			}
			require.Equal(t, tt.want, o.Total())
		})
	}
}

func TestMarkPaid(t *testing.T) {
	o := New("order-1", "customer-1")

	require.NoError(t, o.MarkPaid())
	require.Equal(t, StatusPaid, o.Status)
	require.True(t, o.Paid())

	require.ErrorIs(t, o.MarkPaid(), ErrAlreadyPaid)
}

func TestCloneIsIndependent(t *testing.T) {
	o := New("order-1", "customer-1")
	o.AddItem("Keyboard", 1, 50)

	clone := o.Clone()
	clone.AddItem("SSD", 1, 150)
	require.NoError(t, clone.MarkPaid())

	require.Len(t, o.Items, 1)
	require.Equal(t, StatusOpen, o.Status)
}

func TestOrderPaidEventCarriesTotal(t *testing.T) {
	o := New("order-1", "customer-1")
	o.AddItem("Keyboard", 1, 50)
	o.AddItem("USB Cable", 2, 5)

	evt := NewOrderPaidEvent(o)
	require.Equal(t, "order.paid", evt.EventName())
	require.Equal(t, "order-1", evt.OrderID)
	require.Equal(t, "customer-1", evt.CustomerID)
	require.Equal(t, int64(60), evt.Total)
	require.False(t, evt.OccurredAt.IsZero())
}
