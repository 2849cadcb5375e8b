package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// OrderDAO handles database operations for orders touched by approval
// side effects
type OrderDAO struct {
	db *database.DB
}

// NewOrderDAO creates a new OrderDAO instance
func NewOrderDAO(db *database.DB) *OrderDAO {
	return &OrderDAO{db: db}
}

// GetByID retrieves an order by ID. Returns nil when not found.
func (dao *OrderDAO) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	query := `
		SELECT id, order_number, customer_name, total_amount, status,
		       approval_status, approved_by, approved_at
		FROM sfa_orders
		WHERE id = ?
	`

	var order models.Order
	err := dao.db.GetContext(ctx, &order, query, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// ApplyApprovalWithTx confirms an order after its request clears every
// approval level, inside the same transaction as the final action
func (dao *OrderDAO) ApplyApprovalWithTx(ctx context.Context, tx *database.Transaction, orderID, approvedBy int64) error {
	query := `
		UPDATE sfa_orders
		SET status = ?, approval_status = ?, approved_by = ?, approved_at = ?
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		models.OrderStatusConfirmed, models.OrderApprovalApproved,
		approvedBy, time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("failed to apply order approval: %w", err)
	}
	return nil
}

// ApplyRejectionWithTx marks an order rejected inside the same transaction
// as the rejecting action
func (dao *OrderDAO) ApplyRejectionWithTx(ctx context.Context, tx *database.Transaction, orderID int64) error {
	query := `
		UPDATE sfa_orders
		SET status = ?, approval_status = ?
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		models.OrderStatusRejected, models.OrderApprovalRejected, orderID)
	if err != nil {
		return fmt.Errorf("failed to apply order rejection: %w", err)
	}
	return nil
}
