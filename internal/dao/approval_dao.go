package dao

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// ApprovalDAO handles database operations for per-level approval rows
type ApprovalDAO struct {
	db *database.DB
}

// NewApprovalDAO creates a new ApprovalDAO instance
func NewApprovalDAO(db *database.DB) *ApprovalDAO {
	return &ApprovalDAO{db: db}
}

// BulkCreateWithTx inserts all approval rows for a request in one statement,
// inside an existing transaction
func (dao *ApprovalDAO) BulkCreateWithTx(ctx context.Context, tx *database.Transaction, approvals []models.Approval) error {
	if len(approvals) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO sfa_request_approvals
			(request_id, approver_id, sequence, status, created_at)
		VALUES `)

	now := time.Now()
	args := make([]interface{}, 0, len(approvals)*5)
	for i, a := range approvals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, a.RequestID, a.ApproverID, a.Sequence, a.Status, now)
	}

	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to create approvals: %w", err)
	}
	return nil
}

// GetByIDForUpdateWithTx retrieves an approval row and locks it for the
// duration of the transaction, serializing concurrent actions on the same
// step. Returns nil when not found.
func (dao *ApprovalDAO) GetByIDForUpdateWithTx(ctx context.Context, tx *database.Transaction, approvalID, requestID int64) (*models.Approval, error) {
	query := `
		SELECT id, request_id, approver_id, sequence, status, remarks,
		       action_at, created_at
		FROM sfa_request_approvals
		WHERE id = ? AND request_id = ?
		FOR UPDATE
	`

	var approval models.Approval
	err := tx.GetContext(ctx, &approval, query, approvalID, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock approval: %w", err)
	}

	return &approval, nil
}

// ListBelowSequenceWithTx retrieves the approval rows of a request with a
// lower sequence than the given one, inside an existing transaction
func (dao *ApprovalDAO) ListBelowSequenceWithTx(ctx context.Context, tx *database.Transaction, requestID int64, sequence int) ([]models.Approval, error) {
	query := `
		SELECT id, request_id, approver_id, sequence, status, remarks,
		       action_at, created_at
		FROM sfa_request_approvals
		WHERE request_id = ? AND sequence < ?
		ORDER BY sequence ASC
	`

	var approvals []models.Approval
	if err := tx.SelectContext(ctx, &approvals, query, requestID, sequence); err != nil {
		return nil, fmt.Errorf("failed to list prior approvals: %w", err)
	}
	return approvals, nil
}

// NextPendingWithTx retrieves the lowest-sequence pending approval of a
// request, inside an existing transaction. Returns nil when every level has
// been acted on.
func (dao *ApprovalDAO) NextPendingWithTx(ctx context.Context, tx *database.Transaction, requestID int64) (*models.Approval, error) {
	query := `
		SELECT id, request_id, approver_id, sequence, status, remarks,
		       action_at, created_at
		FROM sfa_request_approvals
		WHERE request_id = ? AND status = ?
		ORDER BY sequence ASC
		LIMIT 1
	`

	var approval models.Approval
	err := tx.GetContext(ctx, &approval, query, requestID, models.StatusPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get next pending approval: %w", err)
	}

	return &approval, nil
}

// UpdateActionWithTx records the decision on one approval row inside an
// existing transaction
func (dao *ApprovalDAO) UpdateActionWithTx(ctx context.Context, tx *database.Transaction, approvalID int64, status string, remarks *string, actionAt time.Time) error {
	query := `
		UPDATE sfa_request_approvals
		SET status = ?, remarks = ?, action_at = ?
		WHERE id = ?
	`

	if _, err := tx.ExecContext(ctx, query, status, remarks, actionAt, approvalID); err != nil {
		return fmt.Errorf("failed to update approval: %w", err)
	}
	return nil
}

// ListByRequest retrieves every approval row of a request ordered by sequence
func (dao *ApprovalDAO) ListByRequest(ctx context.Context, requestID int64) ([]models.Approval, error) {
	query := `
		SELECT id, request_id, approver_id, sequence, status, remarks,
		       action_at, created_at
		FROM sfa_request_approvals
		WHERE request_id = ?
		ORDER BY sequence ASC
	`

	var approvals []models.Approval
	if err := dao.db.SelectContext(ctx, &approvals, query, requestID); err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	return approvals, nil
}

// ListPendingForApprover retrieves the approval steps currently actionable by
// one approver: pending rows on requests that are still pending overall,
// joined with the parent request.
func (dao *ApprovalDAO) ListPendingForApprover(ctx context.Context, approverID int64, limit, offset int) ([]models.PendingApproval, int, error) {
	baseQuery := `
		FROM sfa_request_approvals a
		JOIN sfa_requests r ON r.id = a.request_id
		WHERE a.approver_id = ?
		  AND a.status = ?
		  AND r.overall_status = ?
	`
	args := []interface{}{approverID, models.StatusPending, models.OverallPending}

	var total int
	if err := dao.db.GetContext(ctx, &total, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count pending approvals: %w", err)
	}

	query := `
		SELECT a.id, a.request_id, a.approver_id, a.sequence, a.status,
		       a.remarks, a.action_at, a.created_at,
		       r.request_type, r.requester_id, r.reference_id,
		       r.status AS request_status` +
		baseQuery + `
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, limit, offset)

	var pending []models.PendingApproval
	if err := dao.db.SelectContext(ctx, &pending, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list pending approvals: %w", err)
	}

	return pending, total, nil
}
