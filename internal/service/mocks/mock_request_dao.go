package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// MockRequestDAO is a mock implementation of RequestStore
type MockRequestDAO struct {
	mock.Mock
}

func (m *MockRequestDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, request *models.Request) error {
	args := m.Called(ctx, tx, request)
	return args.Error(0)
}

func (m *MockRequestDAO) GetByID(ctx context.Context, requestID int64) (*models.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestDAO) GetByIDWithTx(ctx context.Context, tx *database.Transaction, requestID int64) (*models.Request, error) {
	args := m.Called(ctx, tx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestDAO) UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, requestID int64, status, overallStatus string) error {
	args := m.Called(ctx, tx, requestID, status, overallStatus)
	return args.Error(0)
}

func (m *MockRequestDAO) List(ctx context.Context, filters models.RequestSearchFilters) ([]models.Request, int, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Request), args.Int(1), args.Error(2)
}
