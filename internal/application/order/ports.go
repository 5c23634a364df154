package order

// IDGenerator issues identifiers for new orders.
type IDGenerator interface {
	NewID() string
}
