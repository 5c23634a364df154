package order

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/quickmart/checkout/internal/domain/order"
	"github.com/quickmart/checkout/internal/observability"
	"github.com/quickmart/checkout/internal/observability/logctx"
)

const componentOrderService = "order_service"

type Service struct {
	repo        domain.Repository
	idGenerator IDGenerator
	log         observability.Logger
}

func NewService(repo domain.Repository, idGen IDGenerator, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		repo:        repo,
		idGenerator: idGen,
		log:         logger.With(observability.F("component", componentOrderService)),
	}
}

// CreateOrder opens an empty order for the customer and persists it.
func (s *Service) CreateOrder(ctx context.Context, customerID string) (*domain.Order, error) {
	logger := logctx.FromOr(ctx, s.log)
	if customerID == "" {
		return nil, errors.New("order: customer id is required")
	}

	entity := domain.New(s.idGenerator.NewID(), customerID)
	if err := s.repo.Save(ctx, entity); err != nil {
		logger.Error("order_save_failed",
			observability.F("order_id", entity.ID),
			observability.F("error", err.Error()),
		)
		return nil, fmt.Errorf("order: save: %w", err)
	}

	logger.Info("order_created",
		observability.F("order_id", entity.ID),
		observability.F("customer_id", customerID),
	)
	return entity, nil
}

// AddItem appends a line item to an open order and returns the updated total.
func (s *Service) AddItem(ctx context.Context, orderID, name string, quantity int, unitPrice int64) (int64, error) {
	logger := logctx.FromOr(ctx, s.log)
	if orderID == "" {
		return 0, errors.New("order: id is required")
	}

	entity, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return 0, err
	}

	entity.AddItem(name, quantity, unitPrice)
	if err := s.repo.Update(ctx, entity); err != nil {
		logger.Error("order_update_failed",
			observability.F("order_id", orderID),
			observability.F("error", err.Error()),
		)
		return 0, fmt.Errorf("order: update: %w", err)
	}

	logger.Info("order_item_added",
		observability.F("order_id", orderID),
		observability.F("item", name),
		observability.F("quantity", quantity),
		observability.F("unit_price", unitPrice),
		observability.F("total", entity.Total()),
	)
	return entity.Total(), nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, errors.New("order: id is required")
	}
	return s.repo.FindByID(ctx, orderID)
}

// Total returns the current total for the order.
func (s *Service) Total(ctx context.Context, orderID string) (int64, error) {
	entity, err := s.Get(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return entity.Total(), nil
}
