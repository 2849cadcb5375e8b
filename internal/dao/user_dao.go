package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
)

// UserDAO handles database operations for the user directory
type UserDAO struct {
	db *database.DB
}

// NewUserDAO creates a new UserDAO instance
func NewUserDAO(db *database.DB) *UserDAO {
	return &UserDAO{db: db}
}

// GetByID retrieves a user by ID. Returns nil when the user does not exist.
func (dao *UserDAO) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT id, name, email, zone_id, depot_id, is_active
		FROM sfa_users
		WHERE id = ?
	`

	var user models.User
	err := dao.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetByIDs retrieves multiple users keyed by ID
func (dao *UserDAO) GetByIDs(ctx context.Context, userIDs []int64) (map[int64]models.User, error) {
	if len(userIDs) == 0 {
		return map[int64]models.User{}, nil
	}

	query, args, err := buildInQuery(`
		SELECT id, name, email, zone_id, depot_id, is_active
		FROM sfa_users
		WHERE id IN (?)`, userIDs)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := dao.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	result := make(map[int64]models.User, len(users))
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}
