package service

import (
	"context"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// TxRunner runs a function inside a database transaction, committing when it
// returns nil and rolling back otherwise
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(tx *database.Transaction) error) error
}

// UserStore is the directory lookup surface the engine needs
type UserStore interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByIDs(ctx context.Context, userIDs []int64) (map[int64]models.User, error)
}

// WorkflowStore is the workflow definition surface the resolver reads and
// the admin API writes
type WorkflowStore interface {
	FindSteps(ctx context.Context, requestType string, zoneID, depotID *int64) ([]models.WorkflowStep, error)
	Create(ctx context.Context, step *models.WorkflowStep) error
	List(ctx context.Context, requestType string, limit, offset int) ([]models.WorkflowStep, int, error)
	Deactivate(ctx context.Context, stepID int64) (int64, error)
}

// RequestStore is the request persistence surface
type RequestStore interface {
	CreateWithTx(ctx context.Context, tx *database.Transaction, request *models.Request) error
	GetByID(ctx context.Context, requestID int64) (*models.Request, error)
	GetByIDWithTx(ctx context.Context, tx *database.Transaction, requestID int64) (*models.Request, error)
	UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, requestID int64, status, overallStatus string) error
	List(ctx context.Context, filters models.RequestSearchFilters) ([]models.Request, int, error)
}

// ApprovalStore is the per-level approval persistence surface
type ApprovalStore interface {
	BulkCreateWithTx(ctx context.Context, tx *database.Transaction, approvals []models.Approval) error
	GetByIDForUpdateWithTx(ctx context.Context, tx *database.Transaction, approvalID, requestID int64) (*models.Approval, error)
	ListBelowSequenceWithTx(ctx context.Context, tx *database.Transaction, requestID int64, sequence int) ([]models.Approval, error)
	NextPendingWithTx(ctx context.Context, tx *database.Transaction, requestID int64) (*models.Approval, error)
	UpdateActionWithTx(ctx context.Context, tx *database.Transaction, approvalID int64, status string, remarks *string, actionAt time.Time) error
	ListByRequest(ctx context.Context, requestID int64) ([]models.Approval, error)
	ListPendingForApprover(ctx context.Context, approverID int64, limit, offset int) ([]models.PendingApproval, int, error)
}

// OrderStore is the order surface touched by order approval side effects
type OrderStore interface {
	GetByID(ctx context.Context, orderID int64) (*models.Order, error)
	ApplyApprovalWithTx(ctx context.Context, tx *database.Transaction, orderID, approvedBy int64) error
	ApplyRejectionWithTx(ctx context.Context, tx *database.Transaction, orderID int64) error
}

// AssetStore is the asset surface touched by asset movement side effects
type AssetStore interface {
	GetMovementByID(ctx context.Context, movementID int64) (*models.AssetMovement, error)
	GetMovementByIDWithTx(ctx context.Context, tx *database.Transaction, movementID int64) (*models.AssetMovement, error)
	ApplyMovementApprovalWithTx(ctx context.Context, tx *database.Transaction, movementID, approvedBy int64) error
	ApplyMovementRejectionWithTx(ctx context.Context, tx *database.Transaction, movementID int64) error
	BulkUpdateAssetStatusWithTx(ctx context.Context, tx *database.Transaction, assetIDs []int64, status string, location *string) error
	CreateMaintenanceRecordWithTx(ctx context.Context, tx *database.Transaction, record *models.MaintenanceRecord) error
	DeleteContractsByMovement(ctx context.Context, movementID int64) error
	CreateContract(ctx context.Context, contract *models.AssetContract) error
}
