package service

import (
	"context"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"

	"github.com/sirupsen/logrus"
)

// OrderSideEffect applies order approval outcomes: confirming the order on
// full approval and marking it rejected on rejection.
type OrderSideEffect struct {
	orderDAO OrderStore
	logger   *logrus.Logger
}

// NewOrderSideEffect creates a new OrderSideEffect instance
func NewOrderSideEffect(orderDAO OrderStore, logger *logrus.Logger) *OrderSideEffect {
	return &OrderSideEffect{
		orderDAO: orderDAO,
		logger:   logger,
	}
}

// OnRejected marks the order rejected inside the deciding transaction
func (e *OrderSideEffect) OnRejected(ctx context.Context, tx *database.Transaction, referenceID, actedBy int64) error {
	if err := e.orderDAO.ApplyRejectionWithTx(ctx, tx, referenceID); err != nil {
		return fmt.Errorf("failed to reject order %d: %w", referenceID, err)
	}

	e.logger.WithFields(logrus.Fields{
		"orderID": referenceID,
		"actedBy": actedBy,
	}).Info("Order marked rejected")
	return nil
}

// OnFullyApproved confirms the order inside the deciding transaction
func (e *OrderSideEffect) OnFullyApproved(ctx context.Context, tx *database.Transaction, referenceID, actedBy int64) error {
	if err := e.orderDAO.ApplyApprovalWithTx(ctx, tx, referenceID, actedBy); err != nil {
		return fmt.Errorf("failed to confirm order %d: %w", referenceID, err)
	}

	e.logger.WithFields(logrus.Fields{
		"orderID": referenceID,
		"actedBy": actedBy,
	}).Info("Order confirmed")
	return nil
}

// AfterApproved has no post-commit work for orders
func (e *OrderSideEffect) AfterApproved(_ context.Context, _ int64) {}
