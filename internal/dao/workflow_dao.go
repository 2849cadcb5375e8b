package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// WorkflowDAO handles database operations for approval workflow definitions
type WorkflowDAO struct {
	db *database.DB
}

// NewWorkflowDAO creates a new WorkflowDAO instance
func NewWorkflowDAO(db *database.DB) *WorkflowDAO {
	return &WorkflowDAO{db: db}
}

// FindSteps retrieves the active workflow steps for a request type at one
// scope. A nil zoneID or depotID matches rows where the column IS NULL, so
// each call targets exactly one scope tier. Steps come back ordered by
// sequence ascending.
func (dao *WorkflowDAO) FindSteps(ctx context.Context, requestType string, zoneID, depotID *int64) ([]models.WorkflowStep, error) {
	query := `
		SELECT id, request_type, zone_id, depot_id, sequence, approver_id,
		       is_active, created_by, created_at, updated_at
		FROM sfa_approval_workflows
		WHERE request_type = ?
		  AND is_active = 1
	`
	args := []interface{}{requestType}

	if zoneID != nil {
		query += " AND zone_id = ?"
		args = append(args, *zoneID)
	} else {
		query += " AND zone_id IS NULL"
	}

	if depotID != nil {
		query += " AND depot_id = ?"
		args = append(args, *depotID)
	} else {
		query += " AND depot_id IS NULL"
	}

	query += " ORDER BY sequence ASC"

	var steps []models.WorkflowStep
	if err := dao.db.SelectContext(ctx, &steps, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find workflow steps: %w", err)
	}

	return steps, nil
}

// Create inserts a workflow step definition
func (dao *WorkflowDAO) Create(ctx context.Context, step *models.WorkflowStep) error {
	query := `
		INSERT INTO sfa_approval_workflows
			(request_type, zone_id, depot_id, sequence, approver_id, is_active,
			 created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := dao.db.ExecContext(ctx, query,
		step.RequestType, step.ZoneID, step.DepotID, step.Sequence,
		step.ApproverID, step.IsActive, step.CreatedBy, now)
	if err != nil {
		return fmt.Errorf("failed to create workflow step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get workflow step ID: %w", err)
	}

	step.ID = id
	step.CreatedAt = now
	return nil
}

// List retrieves workflow step definitions with optional request type filter
func (dao *WorkflowDAO) List(ctx context.Context, requestType string, limit, offset int) ([]models.WorkflowStep, int, error) {
	baseWhere := " WHERE 1=1"
	args := []interface{}{}

	if requestType != "" {
		baseWhere += " AND request_type = ?"
		args = append(args, requestType)
	}

	countQuery := "SELECT COUNT(*) FROM sfa_approval_workflows" + baseWhere
	var total int
	if err := dao.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count workflow steps: %w", err)
	}

	query := `
		SELECT id, request_type, zone_id, depot_id, sequence, approver_id,
		       is_active, created_by, created_at, updated_at
		FROM sfa_approval_workflows` + baseWhere + `
		ORDER BY request_type, zone_id, depot_id, sequence
		LIMIT ? OFFSET ?
	`
	args = append(args, limit, offset)

	var steps []models.WorkflowStep
	if err := dao.db.SelectContext(ctx, &steps, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list workflow steps: %w", err)
	}

	return steps, total, nil
}

// Deactivate marks a workflow step inactive so it no longer participates in
// resolution. Returns the number of rows affected.
func (dao *WorkflowDAO) Deactivate(ctx context.Context, stepID int64) (int64, error) {
	query := `
		UPDATE sfa_approval_workflows
		SET is_active = 0, updated_at = ?
		WHERE id = ?
	`

	result, err := dao.db.ExecContext(ctx, query, time.Now(), stepID)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate workflow step: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected, nil
}
