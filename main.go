package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appcheckout "github.com/quickmart/checkout/internal/application/checkout"
	apporder "github.com/quickmart/checkout/internal/application/order"
	appreceipt "github.com/quickmart/checkout/internal/application/receipt"
	"github.com/quickmart/checkout/internal/config"
	"github.com/quickmart/checkout/internal/domain/auth"
	"github.com/quickmart/checkout/internal/infrastructure/id"
	"github.com/quickmart/checkout/internal/infrastructure/memory"
	"github.com/quickmart/checkout/internal/infrastructure/observability/oteltrace"
	"github.com/quickmart/checkout/internal/infrastructure/observability/prometrics"
	"github.com/quickmart/checkout/internal/infrastructure/observability/telemetry"
	"github.com/quickmart/checkout/internal/infrastructure/observability/zaplogger"
	"github.com/quickmart/checkout/internal/infrastructure/outbox"
	infrapay "github.com/quickmart/checkout/internal/infrastructure/payment"
	"github.com/quickmart/checkout/internal/observability"
)

func main() {
	cfg := config.Load()

	logger := zaplogger.New(
		cfg.LogFile,
		observability.F("service", cfg.ServiceName),
		observability.F("env", cfg.Env),
	)

	registry := prometrics.New("", cfg.ServiceName)
	tel := telemetry.New(
		oteltrace.New(cfg.ServiceName),
		logger,
		map[observability.MetricKey]observability.Counter{
			observability.MUsecaseRequests: registry.Counter(
				string(observability.MUsecaseRequests),
				"Total number of use case invocations.",
				"use_case", "outcome",
			),
		},
		map[observability.MetricKey]observability.Histogram{
			observability.MUsecaseDuration: registry.Histogram(
				string(observability.MUsecaseDuration),
				"Duration of use case execution in seconds.",
				prometheus.DefBuckets,
				"use_case",
			),
		},
	)

	orderRepo := memory.NewOrderRepository()
	bus := outbox.NewBus(logger)

	receiptWorker := appreceipt.New(bus, logger)
	receiptWorker.Start()

	orderService := apporder.NewService(orderRepo, id.NewUUIDGenerator(), logger)

	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, "customer-demo")
	if err != nil {
		logger.Error("create_order_failed", observability.F("error", err.Error()))
		os.Exit(1)
	}
	for _, item := range []struct {
		name  string
		qty   int
		price int64
	}{
		{"Keyboard", 1, 50},
		{"SSD", 1, 150},
		{"USB Cable", 2, 5},
	} {
		if _, err := orderService.AddItem(ctx, order.ID, item.name, item.qty, item.price); err != nil {
			logger.Error("add_item_failed", observability.F("error", err.Error()))
			os.Exit(1)
		}
	}

	authorizer := auth.NewNotARobot()
	authorizer.Confirm()

	charge := appcheckout.NewChargeOrderUseCase(
		orderRepo,
		infrapay.NewDebitProcessor("9876", authorizer, logger),
		bus,
		tel,
	)

	result, err := charge.Execute(ctx, appcheckout.ChargeOrderInput{OrderID: order.ID})
	if err != nil {
		logger.Error("charge_failed", observability.F("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("demo_done",
		observability.F("order_id", order.ID),
		observability.F("total", result.Total),
		observability.F("payment_status", string(result.Status)),
	)

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, logger)
	}
}

// serveMetrics exposes /metrics until SIGINT/SIGTERM.
func serveMetrics(addr string, logger observability.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Info("metrics_listening", observability.F("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics_server_failed", observability.F("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics_shutdown_failed", observability.F("error", err.Error()))
	}
}
