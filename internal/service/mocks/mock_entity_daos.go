package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/notification"
)

// MockOrderDAO is a mock implementation of OrderStore
type MockOrderDAO struct {
	mock.Mock
}

func (m *MockOrderDAO) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderDAO) ApplyApprovalWithTx(ctx context.Context, tx *database.Transaction, orderID, approvedBy int64) error {
	args := m.Called(ctx, tx, orderID, approvedBy)
	return args.Error(0)
}

func (m *MockOrderDAO) ApplyRejectionWithTx(ctx context.Context, tx *database.Transaction, orderID int64) error {
	args := m.Called(ctx, tx, orderID)
	return args.Error(0)
}

// MockAssetDAO is a mock implementation of AssetStore
type MockAssetDAO struct {
	mock.Mock
}

func (m *MockAssetDAO) GetMovementByID(ctx context.Context, movementID int64) (*models.AssetMovement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetMovement), args.Error(1)
}

func (m *MockAssetDAO) GetMovementByIDWithTx(ctx context.Context, tx *database.Transaction, movementID int64) (*models.AssetMovement, error) {
	args := m.Called(ctx, tx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetMovement), args.Error(1)
}

func (m *MockAssetDAO) ApplyMovementApprovalWithTx(ctx context.Context, tx *database.Transaction, movementID, approvedBy int64) error {
	args := m.Called(ctx, tx, movementID, approvedBy)
	return args.Error(0)
}

func (m *MockAssetDAO) ApplyMovementRejectionWithTx(ctx context.Context, tx *database.Transaction, movementID int64) error {
	args := m.Called(ctx, tx, movementID)
	return args.Error(0)
}

func (m *MockAssetDAO) BulkUpdateAssetStatusWithTx(ctx context.Context, tx *database.Transaction, assetIDs []int64, status string, location *string) error {
	args := m.Called(ctx, tx, assetIDs, status, location)
	return args.Error(0)
}

func (m *MockAssetDAO) CreateMaintenanceRecordWithTx(ctx context.Context, tx *database.Transaction, record *models.MaintenanceRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockAssetDAO) DeleteContractsByMovement(ctx context.Context, movementID int64) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

func (m *MockAssetDAO) CreateContract(ctx context.Context, contract *models.AssetContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

// MockTxRunner runs the transactional closure with a nil transaction so
// service logic can be exercised without a database
type MockTxRunner struct {
	mock.Mock
}

func (m *MockTxRunner) WithTransaction(ctx context.Context, fn func(tx *database.Transaction) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

// MockDispatcher is a mock implementation of notification.Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, message *notification.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
