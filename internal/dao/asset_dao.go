package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// AssetDAO handles database operations for asset movements and the asset
// records they update
type AssetDAO struct {
	db *database.DB
}

// NewAssetDAO creates a new AssetDAO instance
func NewAssetDAO(db *database.DB) *AssetDAO {
	return &AssetDAO{db: db}
}

// GetMovementByID retrieves an asset movement by ID. Returns nil when not
// found.
func (dao *AssetDAO) GetMovementByID(ctx context.Context, movementID int64) (*models.AssetMovement, error) {
	query := movementSelect + " WHERE id = ?"

	var movement models.AssetMovement
	err := dao.db.GetContext(ctx, &movement, query, movementID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset movement: %w", err)
	}

	return &movement, nil
}

// GetMovementByIDWithTx retrieves an asset movement inside an existing
// transaction
func (dao *AssetDAO) GetMovementByIDWithTx(ctx context.Context, tx *database.Transaction, movementID int64) (*models.AssetMovement, error) {
	query := movementSelect + " WHERE id = ?"

	var movement models.AssetMovement
	err := tx.GetContext(ctx, &movement, query, movementID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset movement: %w", err)
	}

	return &movement, nil
}

const movementSelect = `
	SELECT id, movement_number, movement_type, from_location, to_location,
	       asset_ids, approval_status, approved_by, approved_at,
	       requested_by, created_at
	FROM sfa_asset_movements`

// ApplyMovementApprovalWithTx marks a movement approved inside the same
// transaction as the final action
func (dao *AssetDAO) ApplyMovementApprovalWithTx(ctx context.Context, tx *database.Transaction, movementID, approvedBy int64) error {
	query := `
		UPDATE sfa_asset_movements
		SET approval_status = ?, approved_by = ?, approved_at = ?
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		models.StatusApproved, approvedBy, time.Now(), movementID)
	if err != nil {
		return fmt.Errorf("failed to apply movement approval: %w", err)
	}
	return nil
}

// ApplyMovementRejectionWithTx marks a movement rejected inside the same
// transaction as the rejecting action
func (dao *AssetDAO) ApplyMovementRejectionWithTx(ctx context.Context, tx *database.Transaction, movementID int64) error {
	query := `
		UPDATE sfa_asset_movements
		SET approval_status = ?
		WHERE id = ?
	`

	if _, err := tx.ExecContext(ctx, query, models.StatusRejected, movementID); err != nil {
		return fmt.Errorf("failed to apply movement rejection: %w", err)
	}
	return nil
}

// BulkUpdateAssetStatusWithTx sets the status, and optionally the location,
// of every asset carried by a movement
func (dao *AssetDAO) BulkUpdateAssetStatusWithTx(ctx context.Context, tx *database.Transaction, assetIDs []int64, status string, location *string) error {
	if len(assetIDs) == 0 {
		return nil
	}

	set := "SET status = ?"
	args := []interface{}{status}
	if location != nil {
		set += ", current_location = ?"
		args = append(args, *location)
	}

	query, inArgs, err := buildInQuery(
		"UPDATE sfa_assets "+set+" WHERE id IN (?)",
		append(args, assetIDs)...)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, inArgs...); err != nil {
		return fmt.Errorf("failed to bulk update assets: %w", err)
	}
	return nil
}

// CreateMaintenanceRecordWithTx inserts one maintenance history row
func (dao *AssetDAO) CreateMaintenanceRecordWithTx(ctx context.Context, tx *database.Transaction, record *models.MaintenanceRecord) error {
	query := `
		INSERT INTO sfa_asset_maintenance
			(asset_id, movement_id, description, performed_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := tx.ExecContext(ctx, query,
		record.AssetID, record.MovementID, record.Description,
		record.PerformedBy, now)
	if err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get maintenance record ID: %w", err)
	}

	record.ID = id
	record.CreatedAt = now
	return nil
}

// DeleteContractsByMovement removes every generated contract for a movement
// ahead of regeneration
func (dao *AssetDAO) DeleteContractsByMovement(ctx context.Context, movementID int64) error {
	query := "DELETE FROM sfa_asset_contracts WHERE movement_id = ?"

	if _, err := dao.db.ExecContext(ctx, query, movementID); err != nil {
		return fmt.Errorf("failed to delete contracts: %w", err)
	}
	return nil
}

// CreateContract inserts a freshly generated contract
func (dao *AssetDAO) CreateContract(ctx context.Context, contract *models.AssetContract) error {
	query := `
		INSERT INTO sfa_asset_contracts
			(contract_number, movement_id, document, generated_at)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now()
	result, err := dao.db.ExecContext(ctx, query,
		contract.ContractNumber, contract.MovementID, contract.Document, now)
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get contract ID: %w", err)
	}

	contract.ID = id
	contract.GeneratedAt = now
	return nil
}
