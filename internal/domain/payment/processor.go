package payment

import (
	"context"
	"errors"

	"github.com/quickmart/checkout/internal/domain/order"
)

// ErrNotAuthorized is returned when a processor requires prior
// authorization and none was given.
var ErrNotAuthorized = errors.New("payment: not authorized")

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Processor finalizes an order's payment. A successful Pay marks the
// order paid; a failed Pay leaves it untouched.
type Processor interface {
	Pay(ctx context.Context, o *order.Order) error
}
