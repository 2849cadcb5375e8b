package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// MockUserDAO is a mock implementation of UserStore
type MockUserDAO struct {
	mock.Mock
}

func (m *MockUserDAO) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserDAO) GetByIDs(ctx context.Context, userIDs []int64) (map[int64]models.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.User), args.Error(1)
}
