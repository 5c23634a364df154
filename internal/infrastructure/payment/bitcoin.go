package payment

import (
	"context"

	"github.com/quickmart/checkout/internal/domain/order"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

// BitcoinProcessor settles an order against a wallet.
type BitcoinProcessor struct {
	walletID string
	log      observability.Logger
}

func NewBitcoinProcessor(walletID string, logger observability.Logger) *BitcoinProcessor {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &BitcoinProcessor{
		walletID: walletID,
		log:      logger.With(observability.F("processor", "bitcoin")),
	}
}

func (p *BitcoinProcessor) Pay(ctx context.Context, o *order.Order) error {
	logger := logctx.FromOr(ctx, p.log)
	logger.Info("processing_payment",
		observability.F("order_id", o.ID),
		observability.F("wallet_id", p.walletID),
	)
	return o.MarkPaid()
}
