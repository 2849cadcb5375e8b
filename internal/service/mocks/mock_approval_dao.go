package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// MockApprovalDAO is a mock implementation of ApprovalStore
type MockApprovalDAO struct {
	mock.Mock
}

func (m *MockApprovalDAO) BulkCreateWithTx(ctx context.Context, tx *database.Transaction, approvals []models.Approval) error {
	args := m.Called(ctx, tx, approvals)
	return args.Error(0)
}

func (m *MockApprovalDAO) GetByIDForUpdateWithTx(ctx context.Context, tx *database.Transaction, approvalID, requestID int64) (*models.Approval, error) {
	args := m.Called(ctx, tx, approvalID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Approval), args.Error(1)
}

func (m *MockApprovalDAO) ListBelowSequenceWithTx(ctx context.Context, tx *database.Transaction, requestID int64, sequence int) ([]models.Approval, error) {
	args := m.Called(ctx, tx, requestID, sequence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Approval), args.Error(1)
}

func (m *MockApprovalDAO) NextPendingWithTx(ctx context.Context, tx *database.Transaction, requestID int64) (*models.Approval, error) {
	args := m.Called(ctx, tx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Approval), args.Error(1)
}

func (m *MockApprovalDAO) UpdateActionWithTx(ctx context.Context, tx *database.Transaction, approvalID int64, status string, remarks *string, actionAt time.Time) error {
	args := m.Called(ctx, tx, approvalID, status, remarks, actionAt)
	return args.Error(0)
}

func (m *MockApprovalDAO) ListByRequest(ctx context.Context, requestID int64) ([]models.Approval, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Approval), args.Error(1)
}

func (m *MockApprovalDAO) ListPendingForApprover(ctx context.Context, approverID int64, limit, offset int) ([]models.PendingApproval, int, error) {
	args := m.Called(ctx, approverID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.PendingApproval), args.Int(1), args.Error(2)
}
