package service

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to handlers, which map them onto HTTP statuses
// and SFA error codes.
var (
	ErrRequesterNotFound       = errors.New("requester not found or inactive")
	ErrRequestNotFound         = errors.New("request not found")
	ErrApprovalNotFound        = errors.New("approval not found for request")
	ErrAlreadyProcessed        = errors.New("approval has already been processed")
	ErrRequestAlreadyFinalized = errors.New("request has already been finalized")
	ErrInvalidAction           = errors.New("action must be A or R")
	ErrReferenceNotFound       = errors.New("referenced entity not found")
)

// WorkflowNotFoundError means no workflow definition matched the request
// type at any scope. Request creation fails hard on it.
type WorkflowNotFoundError struct {
	RequestType string
	ZoneID      *int64
	DepotID     *int64
}

func (e *WorkflowNotFoundError) Error() string {
	return fmt.Sprintf("no approval workflow configured for request type %s", e.RequestType)
}

// SequenceGateError means a lower-sequence approval is still pending, so
// this level cannot approve yet.
type SequenceGateError struct {
	PendingSequence int
}

func (e *SequenceGateError) Error() string {
	return fmt.Sprintf("approval at level %d is still pending", e.PendingSequence)
}
