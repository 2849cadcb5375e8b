package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// buildInQuery expands an IN (?) clause for the given arguments
func buildInQuery(query string, args ...interface{}) (string, []interface{}, error) {
	q, a, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build IN query: %w", err)
	}
	return q, a, nil
}
