package checkout

import (
	"context"
	"errors"
	"time"

	domorder "github.com/quickmart/checkout/internal/domain/order"
	domoutbox "github.com/quickmart/checkout/internal/domain/outbox"
	dompay "github.com/quickmart/checkout/internal/domain/payment"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	checkoutService = "checkout-service"
	useCaseCharge   = "checkout.charge"
	chargeSpanName  = "ChargeOrder"
	spanPrefix      = "UC."
)

type ChargeOrderInput struct {
	OrderID string
}

type ChargeOrderResult struct {
	Status dompay.Status
	Total  int64
}

// ChargeOrderUseCase finalizes payment for an order through the
// configured processor and publishes the paid event on success.
type ChargeOrderUseCase struct {
	orderRepo  domorder.Repository
	processor  dompay.Processor
	publisher  domoutbox.Publisher
	tel        observability.Observability
	log        observability.Logger
	reqCounter observability.Counter
	durHist    observability.Histogram
}

func NewChargeOrderUseCase(
	orderRepo domorder.Repository,
	processor dompay.Processor,
	publisher domoutbox.Publisher,
	tel observability.Observability,
) *ChargeOrderUseCase {
	baseLog := observability.NopLogger().With(
		observability.F("service", checkoutService),
	)
	metricsProvider := observability.NopMetrics()
	if tel != nil {
		baseLog = tel.Logger().With(
			observability.F("service", checkoutService),
		)
		metricsProvider = tel.Metrics()
	}

	return &ChargeOrderUseCase{
		orderRepo:  orderRepo,
		processor:  processor,
		publisher:  publisher,
		tel:        tel,
		log:        baseLog,
		reqCounter: metricsProvider.Counter(observability.MUsecaseRequests),
		durHist:    metricsProvider.Histogram(observability.MUsecaseDuration),
	}
}

// Execute loads the order, delegates to the payment processor, persists
// the paid order, and publishes order.paid. An unauthorized processor
// refusal leaves the order untouched.
func (uc *ChargeOrderUseCase) Execute(ctx context.Context, cmd ChargeOrderInput) (_ *ChargeOrderResult, err error) {
	logger := logctx.FromOr(ctx, uc.log).With(
		observability.F("use_case", useCaseCharge),
		observability.F("order_id", cmd.OrderID),
	)

	// downstream components (processor, bus) log through the
	// request-scoped logger
	ctx = logctx.With(ctx, logger)

	tracer := observability.NopTracer()
	if uc.tel != nil {
		tracer = uc.tel.Tracer()
	}

	ctx, span := tracer.Start(ctx, spanPrefix+chargeSpanName,
		attribute.String("use_case", useCaseCharge),
		attribute.String("order.id", cmd.OrderID),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"
	result := &ChargeOrderResult{Status: dompay.StatusFailed}

	defer func() {
		if span != nil {
			span.SetAttributes(
				attribute.String("payment.status", string(result.Status)),
			)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		latency := time.Since(start).Seconds()
		if uc.reqCounter != nil {
			uc.reqCounter.Add(1,
				observability.L("use_case", useCaseCharge),
				observability.L("outcome", outcome),
			)
		}
		if uc.durHist != nil {
			uc.durHist.Observe(latency,
				observability.L("use_case", useCaseCharge),
			)
		}

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", latency),
			observability.F("payment_status", string(result.Status)),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if cmd.OrderID == "" {
		outcome, statusText = "error", "ORDER_ID_REQUIRED"
		return nil, errors.New("checkout: order id is required")
	}

	order, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		outcome, statusText = "error", "ORDER_LOOKUP_FAILED"
		return nil, err
	}
	if order.Paid() {
		outcome, statusText = "error", "ORDER_ALREADY_PAID"
		return nil, domorder.ErrAlreadyPaid
	}
	result.Total = order.Total()

	if err = uc.processor.Pay(ctx, order); err != nil {
		if errors.Is(err, dompay.ErrNotAuthorized) {
			outcome, statusText = "error", "NOT_AUTHORIZED"
		} else {
			outcome, statusText = "error", "PAYMENT_FAILED"
		}
		return result, err
	}
	result.Status = dompay.StatusSuccess

	if err = uc.orderRepo.Update(ctx, order); err != nil {
		outcome, statusText = "error", "ORDER_UPDATE_FAILED"
		result.Status = dompay.StatusFailed
		return result, err
	}

	if uc.publisher != nil {
		if pubErr := uc.publisher.Publish(ctx, domorder.NewOrderPaidEvent(order)); pubErr != nil {
			logger.Warn("order_paid_publish_failed",
				observability.F("error", pubErr.Error()),
			)
		}
	}

	return result, nil
}
