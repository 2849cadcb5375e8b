package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Status codes shared by requests and approvals
const (
	StatusPending  = "P"
	StatusApproved = "A"
	StatusRejected = "R"
)

// Overall status labels mirrored on the request row
const (
	OverallPending  = "PENDING"
	OverallApproved = "APPROVED"
	OverallRejected = "REJECTED"
)

// Built-in request types with side-effect appliers
const (
	RequestTypeOrderApproval         = "ORDER_APPROVAL"
	RequestTypeAssetMovementApproval = "ASSET_MOVEMENT_APPROVAL"
)

// Error codes returned in API error responses
const (
	ErrCodeBadRequest      = "SFA-4000"
	ErrCodeValidationError = "SFA-4001"
	ErrCodeNotFound        = "SFA-4004"
	ErrCodeConflict        = "SFA-4009"
	ErrCodeInternalError   = "SFA-5000"
	ErrCodeDatabaseError   = "SFA-5001"
)

// ErrorResponse is the common API error body
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// JSON type for handling JSON fields in MySQL
type JSON json.RawMessage

// Scan implements the sql.Scanner interface for JSON
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSON: %T", value)
	}

	var temp interface{}
	if err := json.Unmarshal(bytes, &temp); err != nil {
		return fmt.Errorf("invalid JSON data: %w", err)
	}

	cleanBytes, err := json.Marshal(temp)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	*j = JSON(cleanBytes)
	return nil
}

// Value implements the driver.Valuer interface for JSON
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return []byte(j), nil
}

// MarshalJSON implements json.Marshaler
func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return fmt.Errorf("JSON: UnmarshalJSON on nil pointer")
	}
	*j = append((*j)[0:0], data...)
	return nil
}
