package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// MockWorkflowDAO is a mock implementation of WorkflowStore
type MockWorkflowDAO struct {
	mock.Mock
}

func (m *MockWorkflowDAO) FindSteps(ctx context.Context, requestType string, zoneID, depotID *int64) ([]models.WorkflowStep, error) {
	args := m.Called(ctx, requestType, zoneID, depotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkflowStep), args.Error(1)
}

func (m *MockWorkflowDAO) Create(ctx context.Context, step *models.WorkflowStep) error {
	args := m.Called(ctx, step)
	return args.Error(0)
}

func (m *MockWorkflowDAO) List(ctx context.Context, requestType string, limit, offset int) ([]models.WorkflowStep, int, error) {
	args := m.Called(ctx, requestType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.WorkflowStep), args.Int(1), args.Error(2)
}

func (m *MockWorkflowDAO) Deactivate(ctx context.Context, stepID int64) (int64, error) {
	args := m.Called(ctx, stepID)
	return args.Get(0).(int64), args.Error(1)
}
