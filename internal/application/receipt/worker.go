package receipt

import (
	"context"

	domorder "github.com/quickmart/checkout/internal/domain/order"
	domoutbox "github.com/quickmart/checkout/internal/domain/outbox"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

const componentReceipt = "receipt_worker"

// Worker emits a receipt log line for every paid order.
type Worker struct {
	subscriber domoutbox.Subscriber
	log        observability.Logger
}

func New(subscriber domoutbox.Subscriber, logger observability.Logger) *Worker {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Worker{
		subscriber: subscriber,
		log:        logger.With(observability.F("component", componentReceipt)),
	}
}

func (w *Worker) Start() {
	if w.subscriber == nil {
		return
	}
	w.subscriber.Subscribe(domorder.OrderPaidEvent{}.EventName(), w.handleOrderPaid)
}

func (w *Worker) handleOrderPaid(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(domorder.OrderPaidEvent)
	if !ok {
		return nil
	}

	logger := logctx.FromOr(ctx, w.log)
	logger.Info("receipt_issued",
		observability.F("order_id", evt.OrderID),
		observability.F("customer_id", evt.CustomerID),
		observability.F("total", evt.Total),
	)
	return nil
}
