package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AssetMovementSideEffect applies asset movement approval outcomes: stamping
// the movement, rolling the carried assets to their post-movement status and
// location, recording maintenance history, and regenerating the movement
// contract after commit.
type AssetMovementSideEffect struct {
	assetDAO AssetStore
	logger   *logrus.Logger
}

// NewAssetMovementSideEffect creates a new AssetMovementSideEffect instance
func NewAssetMovementSideEffect(assetDAO AssetStore, logger *logrus.Logger) *AssetMovementSideEffect {
	return &AssetMovementSideEffect{
		assetDAO: assetDAO,
		logger:   logger,
	}
}

// assetStatusForMovement maps a movement type to the status its assets land
// in once the movement completes
func assetStatusForMovement(movementType string) string {
	switch movementType {
	case models.MovementTypeTransfer, models.MovementTypeReturn:
		return models.AssetStatusAvailable
	case models.MovementTypeInstallation:
		return models.AssetStatusInstalled
	case models.MovementTypeDisposal:
		return models.AssetStatusRetired
	case models.MovementTypeMaintenance, models.MovementTypeRepair:
		return models.AssetStatusUnderMaintenance
	default:
		return models.AssetStatusAvailable
	}
}

// OnRejected marks the movement rejected inside the deciding transaction
func (e *AssetMovementSideEffect) OnRejected(ctx context.Context, tx *database.Transaction, referenceID, actedBy int64) error {
	if err := e.assetDAO.ApplyMovementRejectionWithTx(ctx, tx, referenceID); err != nil {
		return fmt.Errorf("failed to reject asset movement %d: %w", referenceID, err)
	}

	e.logger.WithFields(logrus.Fields{
		"movementID": referenceID,
		"actedBy":    actedBy,
	}).Info("Asset movement marked rejected")
	return nil
}

// OnFullyApproved stamps the movement approved and rolls its assets forward,
// all inside the deciding transaction. Maintenance history rows are best
// effort: a failed insert logs and does not abort the approval.
func (e *AssetMovementSideEffect) OnFullyApproved(ctx context.Context, tx *database.Transaction, referenceID, actedBy int64) error {
	movement, err := e.assetDAO.GetMovementByIDWithTx(ctx, tx, referenceID)
	if err != nil {
		return fmt.Errorf("failed to load asset movement %d: %w", referenceID, err)
	}
	if movement == nil {
		return fmt.Errorf("asset movement %d: %w", referenceID, ErrReferenceNotFound)
	}

	if err := e.assetDAO.ApplyMovementApprovalWithTx(ctx, tx, referenceID, actedBy); err != nil {
		return fmt.Errorf("failed to approve asset movement %d: %w", referenceID, err)
	}

	assetIDs, err := decodeAssetIDs(movement.AssetIDs)
	if err != nil {
		return fmt.Errorf("failed to decode asset ids for movement %d: %w", referenceID, err)
	}
	if len(assetIDs) == 0 {
		return nil
	}

	status := assetStatusForMovement(movement.MovementType)
	location := movementLocation(movement)
	if err := e.assetDAO.BulkUpdateAssetStatusWithTx(ctx, tx, assetIDs, status, location); err != nil {
		return fmt.Errorf("failed to update assets for movement %d: %w", referenceID, err)
	}

	if movement.MovementType == models.MovementTypeMaintenance || movement.MovementType == models.MovementTypeRepair {
		description := fmt.Sprintf("%s via movement %s", movement.MovementType, movement.MovementNumber)
		for _, assetID := range assetIDs {
			record := &models.MaintenanceRecord{
				AssetID:     assetID,
				MovementID:  referenceID,
				Description: description,
				PerformedBy: actedBy,
			}
			if err := e.assetDAO.CreateMaintenanceRecordWithTx(ctx, tx, record); err != nil {
				e.logger.WithError(err).WithFields(logrus.Fields{
					"movementID": referenceID,
					"assetID":    assetID,
				}).Warn("Failed to create maintenance record")
			}
		}
	}

	e.logger.WithFields(logrus.Fields{
		"movementID": referenceID,
		"assets":     len(assetIDs),
		"status":     status,
	}).Info("Asset movement approved")
	return nil
}

// AfterApproved regenerates the movement contract after commit. Stale
// artifacts are deleted first so at most one contract exists per movement.
// Failures log only.
func (e *AssetMovementSideEffect) AfterApproved(ctx context.Context, referenceID int64) {
	movement, err := e.assetDAO.GetMovementByID(ctx, referenceID)
	if err != nil || movement == nil {
		e.logger.WithError(err).WithField("movementID", referenceID).
			Warn("Failed to load movement for contract regeneration")
		return
	}

	if err := e.assetDAO.DeleteContractsByMovement(ctx, referenceID); err != nil {
		e.logger.WithError(err).WithField("movementID", referenceID).
			Warn("Failed to delete stale contracts")
		return
	}

	document, err := json.Marshal(map[string]interface{}{
		"movementNumber": movement.MovementNumber,
		"movementType":   movement.MovementType,
		"fromLocation":   movement.FromLocation,
		"toLocation":     movement.ToLocation,
		"assetIds":       movement.AssetIDs,
		"approvedBy":     movement.ApprovedBy,
		"approvedAt":     movement.ApprovedAt,
	})
	if err != nil {
		e.logger.WithError(err).WithField("movementID", referenceID).
			Warn("Failed to build contract document")
		return
	}

	contract := &models.AssetContract{
		ContractNumber: utils.GenerateContractNumber(referenceID),
		MovementID:     referenceID,
		Document:       models.JSON(document),
	}
	if err := e.assetDAO.CreateContract(ctx, contract); err != nil {
		e.logger.WithError(err).WithField("movementID", referenceID).
			Warn("Failed to regenerate contract")
		return
	}

	e.logger.WithFields(logrus.Fields{
		"movementID":     referenceID,
		"contractNumber": contract.ContractNumber,
	}).Info("Contract regenerated")
}

// movementLocation computes the post-movement location for the carried
// assets: the destination when one is set, otherwise the origin.
func movementLocation(movement *models.AssetMovement) *string {
	if movement.ToLocation != nil && *movement.ToLocation != "" {
		return movement.ToLocation
	}
	return movement.FromLocation
}

func decodeAssetIDs(raw models.JSON) ([]int64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
