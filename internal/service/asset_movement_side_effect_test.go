package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/service/mocks"
)

// TestAssetStatusForMovement tests the movement type to asset status mapping
func TestAssetStatusForMovement(t *testing.T) {
	cases := []struct {
		movementType string
		expected     string
	}{
		{models.MovementTypeTransfer, models.AssetStatusAvailable},
		{models.MovementTypeReturn, models.AssetStatusAvailable},
		{models.MovementTypeInstallation, models.AssetStatusInstalled},
		{models.MovementTypeDisposal, models.AssetStatusRetired},
		{models.MovementTypeMaintenance, models.AssetStatusUnderMaintenance},
		{models.MovementTypeRepair, models.AssetStatusUnderMaintenance},
		{"somewhere-new", models.AssetStatusAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.movementType, func(t *testing.T) {
			assert.Equal(t, tc.expected, assetStatusForMovement(tc.movementType))
		})
	}
}

func transferMovement(id int64) *models.AssetMovement {
	to := "Depot B"
	from := "Depot A"
	return &models.AssetMovement{
		ID:             id,
		MovementNumber: "MOV-001",
		MovementType:   models.MovementTypeTransfer,
		FromLocation:   &from,
		ToLocation:     &to,
		AssetIDs:       models.JSON(`[11, 12, 13]`),
		ApprovalStatus: models.StatusPending,
		RequestedBy:    100,
	}
}

// TestMovementFullyApproved_TransfersAssets tests the bulk status and
// location rollover on an approved transfer
func TestMovementFullyApproved_TransfersAssets(t *testing.T) {
	assetDAO := new(mocks.MockAssetDAO)
	movement := transferMovement(900)

	assetDAO.On("GetMovementByIDWithTx", mock.Anything, mock.Anything, int64(900)).Return(movement, nil)
	assetDAO.On("ApplyMovementApprovalWithTx", mock.Anything, mock.Anything, int64(900), int64(202)).Return(nil)
	assetDAO.On("BulkUpdateAssetStatusWithTx", mock.Anything, mock.Anything,
		[]int64{11, 12, 13}, models.AssetStatusAvailable, movement.ToLocation).Return(nil)

	effect := NewAssetMovementSideEffect(assetDAO, testLogger())
	err := effect.OnFullyApproved(context.Background(), nil, 900, 202)

	assert.NoError(t, err)
	assetDAO.AssertExpectations(t)
	assetDAO.AssertNotCalled(t, "CreateMaintenanceRecordWithTx", mock.Anything, mock.Anything, mock.Anything)
}

// TestMovementFullyApproved_MaintenanceRecordsPerAsset tests that a
// maintenance movement writes one history row per asset and survives a
// failed insert
func TestMovementFullyApproved_MaintenanceRecordsPerAsset(t *testing.T) {
	assetDAO := new(mocks.MockAssetDAO)
	movement := transferMovement(901)
	movement.MovementType = models.MovementTypeRepair

	assetDAO.On("GetMovementByIDWithTx", mock.Anything, mock.Anything, int64(901)).Return(movement, nil)
	assetDAO.On("ApplyMovementApprovalWithTx", mock.Anything, mock.Anything, int64(901), int64(202)).Return(nil)
	assetDAO.On("BulkUpdateAssetStatusWithTx", mock.Anything, mock.Anything,
		[]int64{11, 12, 13}, models.AssetStatusUnderMaintenance, movement.ToLocation).Return(nil)
	assetDAO.On("CreateMaintenanceRecordWithTx", mock.Anything, mock.Anything,
		mock.MatchedBy(func(r *models.MaintenanceRecord) bool { return r.AssetID == 11 })).
		Return(assert.AnError)
	assetDAO.On("CreateMaintenanceRecordWithTx", mock.Anything, mock.Anything,
		mock.MatchedBy(func(r *models.MaintenanceRecord) bool { return r.AssetID != 11 })).
		Return(nil)

	effect := NewAssetMovementSideEffect(assetDAO, testLogger())
	err := effect.OnFullyApproved(context.Background(), nil, 901, 202)

	// a failed history row never fails the approval
	assert.NoError(t, err)
	assetDAO.AssertNumberOfCalls(t, "CreateMaintenanceRecordWithTx", 3)
}

// TestMovementRejected tests the rejection stamp
func TestMovementRejected(t *testing.T) {
	assetDAO := new(mocks.MockAssetDAO)

	assetDAO.On("ApplyMovementRejectionWithTx", mock.Anything, mock.Anything, int64(900)).Return(nil)

	effect := NewAssetMovementSideEffect(assetDAO, testLogger())
	err := effect.OnRejected(context.Background(), nil, 900, 202)

	assert.NoError(t, err)
	assetDAO.AssertExpectations(t)
}

// TestAfterApproved_RegeneratesContract tests post-commit contract
// regeneration with stale artifact cleanup
func TestAfterApproved_RegeneratesContract(t *testing.T) {
	assetDAO := new(mocks.MockAssetDAO)
	movement := transferMovement(900)
	movement.ApprovalStatus = models.StatusApproved

	assetDAO.On("GetMovementByID", mock.Anything, int64(900)).Return(movement, nil)
	assetDAO.On("DeleteContractsByMovement", mock.Anything, int64(900)).Return(nil)
	assetDAO.On("CreateContract", mock.Anything, mock.MatchedBy(func(c *models.AssetContract) bool {
		return c.MovementID == 900 && c.ContractNumber != ""
	})).Return(nil)

	effect := NewAssetMovementSideEffect(assetDAO, testLogger())
	effect.AfterApproved(context.Background(), 900)

	assetDAO.AssertExpectations(t)
}

// TestAfterApproved_DeleteFailureSkipsCreate tests that contract creation is
// skipped when stale cleanup fails
func TestAfterApproved_DeleteFailureSkipsCreate(t *testing.T) {
	assetDAO := new(mocks.MockAssetDAO)
	movement := transferMovement(900)

	assetDAO.On("GetMovementByID", mock.Anything, int64(900)).Return(movement, nil)
	assetDAO.On("DeleteContractsByMovement", mock.Anything, int64(900)).Return(assert.AnError)

	effect := NewAssetMovementSideEffect(assetDAO, testLogger())
	effect.AfterApproved(context.Background(), 900)

	assetDAO.AssertNotCalled(t, "CreateContract", mock.Anything, mock.Anything)
}

// TestSideEffectRegistry tests registration and lookup behavior
func TestSideEffectRegistry(t *testing.T) {
	registry := NewSideEffectRegistry()
	effect := NewOrderSideEffect(new(mocks.MockOrderDAO), testLogger())

	assert.NoError(t, registry.Register(models.RequestTypeOrderApproval, effect))
	assert.Error(t, registry.Register(models.RequestTypeOrderApproval, effect))

	assert.NotNil(t, registry.Lookup(models.RequestTypeOrderApproval))
	assert.Nil(t, registry.Lookup("UNKNOWN"))
}
