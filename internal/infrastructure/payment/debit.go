package payment

import (
	"context"

	"github.com/quickmart/checkout/internal/domain/auth"
	"github.com/quickmart/checkout/internal/domain/order"
	dompay "github.com/quickmart/checkout/internal/domain/payment"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

// DebitProcessor charges a debit card. Unlike the other processors it
// requires a prior out-of-band authorization; Pay is refused while the
// authorizer reports false.
type DebitProcessor struct {
	securityCode string
	authorizer   auth.Authorizer
	log          observability.Logger
}

func NewDebitProcessor(securityCode string, authorizer auth.Authorizer, logger observability.Logger) *DebitProcessor {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &DebitProcessor{
		securityCode: securityCode,
		authorizer:   authorizer,
		log:          logger.With(observability.F("processor", "debit")),
	}
}

func (p *DebitProcessor) Pay(ctx context.Context, o *order.Order) error {
	logger := logctx.FromOr(ctx, p.log)
	if p.authorizer == nil || !p.authorizer.IsAuthorized() {
		logger.Warn("payment_refused",
			observability.F("order_id", o.ID),
		)
		return dompay.ErrNotAuthorized
	}
	logger.Info("processing_payment",
		observability.F("order_id", o.ID),
		observability.F("security_code", p.securityCode),
	)
	return o.MarkPaid()
}
