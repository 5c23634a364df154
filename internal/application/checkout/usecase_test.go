package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickmart/checkout/internal/domain/auth"
	domorder "github.com/quickmart/checkout/internal/domain/order"
	domoutbox "github.com/quickmart/checkout/internal/domain/outbox"
	dompay "github.com/quickmart/checkout/internal/domain/payment"
	"github.com/quickmart/checkout/internal/infrastructure/memory"
	"github.com/quickmart/checkout/internal/infrastructure/observability/telemetry"
	"github.com/quickmart/checkout/internal/infrastructure/outbox"
	infrapay "github.com/quickmart/checkout/internal/infrastructure/payment"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

func seedOrder(t *testing.T, repo *memory.OrderRepository) *domorder.Order {
	t.Helper()
	o := domorder.New("order-1", "customer-1")
	o.AddItem("Keyboard", 1, 50)
	o.AddItem("SSD", 1, 150)
	o.AddItem("USB Cable", 2, 5)
	require.NoError(t, repo.Save(context.Background(), o))
	return o
}

func TestChargeWithCreditProcessor(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo)

	uc := NewChargeOrderUseCase(repo, infrapay.NewCreditProcessor("1234", nil), nil, nil)

	res, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "order-1"})
	require.NoError(t, err)
	require.Equal(t, dompay.StatusSuccess, res.Status)
	require.Equal(t, int64(210), res.Total)

	stored, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	require.Equal(t, domorder.StatusPaid, stored.Status)
}

func TestChargePublishesOrderPaid(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo)
	bus := outbox.NewBus(nil)

	var events []domorder.OrderPaidEvent
	bus.Subscribe(domorder.OrderPaidEvent{}.EventName(), func(ctx context.Context, e domoutbox.Event) error {
		if evt, ok := e.(domorder.OrderPaidEvent); ok {
			events = append(events, evt)
		}
		return nil
	})

	uc := NewChargeOrderUseCase(repo, infrapay.NewBitcoinProcessor("wallet123", nil), bus, nil)

	_, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "order-1"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	require.Equal(t, "order-1", events[0].OrderID)
	require.Equal(t, int64(210), events[0].Total)
}

func TestChargeUnauthorizedDebitLeavesOrderOpen(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo)

	uc := NewChargeOrderUseCase(repo, infrapay.NewDebitProcessor("9876", auth.NewSMSAuth(), nil), nil, nil)

	res, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "order-1"})
	require.ErrorIs(t, err, dompay.ErrNotAuthorized)
	require.Equal(t, dompay.StatusFailed, res.Status)

	stored, lookupErr := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, lookupErr)
	require.Equal(t, domorder.StatusOpen, stored.Status)
}

func TestChargeAuthorizedDebit(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo)

	authorizer := auth.NewNotARobot()
	authorizer.Confirm()
	uc := NewChargeOrderUseCase(repo, infrapay.NewDebitProcessor("9876", authorizer, nil), nil, nil)

	res, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "order-1"})
	require.NoError(t, err)
	require.Equal(t, dompay.StatusSuccess, res.Status)
}

func TestChargeAlreadyPaid(t *testing.T) {
	repo := memory.NewOrderRepository()
	o := seedOrder(t, repo)
	require.NoError(t, o.MarkPaid())
	require.NoError(t, repo.Update(context.Background(), o))

	uc := NewChargeOrderUseCase(repo, infrapay.NewCreditProcessor("1234", nil), nil, nil)

	_, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "order-1"})
	require.ErrorIs(t, err, domorder.ErrAlreadyPaid)
}

func TestChargeRequiresOrderID(t *testing.T) {
	uc := NewChargeOrderUseCase(memory.NewOrderRepository(), infrapay.NewCreditProcessor("1234", nil), nil, nil)
	_, err := uc.Execute(context.Background(), ChargeOrderInput{})
	require.Error(t, err)
}

func TestChargeMissingOrder(t *testing.T) {
	uc := NewChargeOrderUseCase(memory.NewOrderRepository(), infrapay.NewCreditProcessor("1234", nil), nil, nil)
	_, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "missing"})
	require.ErrorIs(t, err, domorder.ErrNotFound)
}

type recordingLogger struct {
	entries *[]string
}

func newRecordingLogger() (*recordingLogger, *[]string) {
	entries := []string{}
	return &recordingLogger{entries: &entries}, &entries
}

func (l *recordingLogger) With(...observability.Field) observability.Logger { return l }

func (l *recordingLogger) Debug(msg string, _ ...observability.Field) {
	*l.entries = append(*l.entries, msg)
}

func (l *recordingLogger) Info(msg string, _ ...observability.Field) {
	*l.entries = append(*l.entries, msg)
}

func (l *recordingLogger) Warn(msg string, _ ...observability.Field) {
	*l.entries = append(*l.entries, msg)
}

func (l *recordingLogger) Error(msg string, _ ...observability.Field) {
	*l.entries = append(*l.entries, msg)
}

// ctxLoggerProcessor logs through the context logger, the way the real
// processors do via logctx.FromOr.
type ctxLoggerProcessor struct {
	sawLogger bool
}

func (p *ctxLoggerProcessor) Pay(ctx context.Context, o *domorder.Order) error {
	if logger := logctx.From(ctx); logger != nil {
		p.sawLogger = true
		logger.Info("processor_charged")
	}
	return o.MarkPaid()
}

func TestChargeInstallsContextLogger(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo)

	logger, entries := newRecordingLogger()
	tel := telemetry.New(nil, logger, nil, nil)

	proc := &ctxLoggerProcessor{}
	uc := NewChargeOrderUseCase(repo, proc, nil, tel)

	_, err := uc.Execute(context.Background(), ChargeOrderInput{OrderID: "order-1"})
	require.NoError(t, err)

	require.True(t, proc.sawLogger)
	require.Contains(t, *entries, "processor_charged")
	require.Contains(t, *entries, "use_case_done")
}
