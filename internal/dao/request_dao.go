package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// RequestDAO handles database operations for approval requests
type RequestDAO struct {
	db *database.DB
}

// NewRequestDAO creates a new RequestDAO instance
func NewRequestDAO(db *database.DB) *RequestDAO {
	return &RequestDAO{db: db}
}

// CreateWithTx inserts a request row inside an existing transaction
func (dao *RequestDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, request *models.Request) error {
	query := `
		INSERT INTO sfa_requests
			(request_number, request_type, requester_id, reference_id,
			 request_data, status, overall_status, workflow_scope,
			 created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := tx.ExecContext(ctx, query,
		request.RequestNumber, request.RequestType, request.RequesterID,
		request.ReferenceID, request.RequestData, request.Status,
		request.OverallStatus, request.WorkflowScope, request.CreatedBy, now)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get request ID: %w", err)
	}

	request.ID = id
	request.CreatedAt = now
	return nil
}

// GetByID retrieves a request by ID. Returns nil when not found.
func (dao *RequestDAO) GetByID(ctx context.Context, requestID int64) (*models.Request, error) {
	query := `
		SELECT id, request_number, request_type, requester_id, reference_id,
		       request_data, status, overall_status, workflow_scope,
		       created_by, created_at, updated_at
		FROM sfa_requests
		WHERE id = ?
	`

	var request models.Request
	err := dao.db.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return &request, nil
}

// GetByIDWithTx retrieves a request inside an existing transaction
func (dao *RequestDAO) GetByIDWithTx(ctx context.Context, tx *database.Transaction, requestID int64) (*models.Request, error) {
	query := `
		SELECT id, request_number, request_type, requester_id, reference_id,
		       request_data, status, overall_status, workflow_scope,
		       created_by, created_at, updated_at
		FROM sfa_requests
		WHERE id = ?
	`

	var request models.Request
	err := tx.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return &request, nil
}

// UpdateStatusWithTx sets the per-level and overall status of a request
// inside an existing transaction
func (dao *RequestDAO) UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, requestID int64, status, overallStatus string) error {
	query := `
		UPDATE sfa_requests
		SET status = ?, overall_status = ?, updated_at = ?
		WHERE id = ?
	`

	if _, err := tx.ExecContext(ctx, query, status, overallStatus, time.Now(), requestID); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return nil
}

// List retrieves requests matching the given filters, newest first
func (dao *RequestDAO) List(ctx context.Context, filters models.RequestSearchFilters) ([]models.Request, int, error) {
	baseWhere := " WHERE 1=1"
	args := []interface{}{}

	if filters.RequestType != "" {
		baseWhere += " AND request_type = ?"
		args = append(args, filters.RequestType)
	}
	if filters.OverallStatus != "" {
		baseWhere += " AND overall_status = ?"
		args = append(args, filters.OverallStatus)
	}
	if filters.RequesterID != nil {
		baseWhere += " AND requester_id = ?"
		args = append(args, *filters.RequesterID)
	}

	countQuery := "SELECT COUNT(*) FROM sfa_requests" + baseWhere
	var total int
	if err := dao.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	query := `
		SELECT id, request_number, request_type, requester_id, reference_id,
		       request_data, status, overall_status, workflow_scope,
		       created_by, created_at, updated_at
		FROM sfa_requests` + baseWhere + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, filters.Limit, filters.Offset)

	var requests []models.Request
	if err := dao.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	return requests, total, nil
}
