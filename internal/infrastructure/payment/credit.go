package payment

import (
	"context"

	"github.com/quickmart/checkout/internal/domain/order"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

// CreditProcessor charges a credit card identified by its security code.
type CreditProcessor struct {
	securityCode string
	log          observability.Logger
}

func NewCreditProcessor(securityCode string, logger observability.Logger) *CreditProcessor {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &CreditProcessor{
		securityCode: securityCode,
		log:          logger.With(observability.F("processor", "credit")),
	}
}

func (p *CreditProcessor) Pay(ctx context.Context, o *order.Order) error {
	logger := logctx.FromOr(ctx, p.log)
	logger.Info("processing_payment",
		observability.F("order_id", o.ID),
		observability.F("security_code", p.securityCode),
	)
	return o.MarkPaid()
}
