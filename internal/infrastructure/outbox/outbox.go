package outbox

import (
	"context"
	"sync"

	domoutbox "github.com/quickmart/checkout/internal/domain/outbox"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

const componentOutbox = "outbox"

// Bus is an in-process event bus. Publish dispatches to subscribers
// inline, on the caller's goroutine; handler errors are logged and do
// not fail the publish. It is not durable; a real deployment would
// persist events (true outbox pattern) and dispatch from a worker.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]domoutbox.Handler
	log  observability.Logger
}

func NewBus(logger observability.Logger) *Bus {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Bus{
		subs: make(map[string][]domoutbox.Handler),
		log:  logger.With(observability.F("component", componentOutbox)),
	}
}

func (b *Bus) Subscribe(eventName string, h domoutbox.Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[eventName] = append(b.subs[eventName], h)
}

func (b *Bus) Publish(ctx context.Context, e domoutbox.Event) error {
	if e == nil {
		return nil
	}
	name := e.EventName()

	b.mu.RLock()
	handlers := append([]domoutbox.Handler(nil), b.subs[name]...)
	b.mu.RUnlock()

	logger := logctx.FromOr(ctx, b.log).With(observability.F("event", name))
	if len(handlers) == 0 {
		logger.Debug("event_dropped_no_subscriber")
		return nil
	}

	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			logger.Warn("event_handler_failed",
				observability.F("error", err.Error()),
			)
		}
	}
	return nil
}
