package service

import (
	"context"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
)

// SideEffectApplier applies the domain consequences of a terminal approval
// decision for one request type. OnRejected and OnFullyApproved run inside
// the deciding transaction, so a failure aborts the whole action.
// AfterApproved runs after commit and is best effort.
type SideEffectApplier interface {
	OnRejected(ctx context.Context, tx *database.Transaction, referenceID, actedBy int64) error
	OnFullyApproved(ctx context.Context, tx *database.Transaction, referenceID, actedBy int64) error
	AfterApproved(ctx context.Context, referenceID int64)
}

// SideEffectRegistry maps request types to their appliers. Request types
// without an applier carry no side effects, which is valid: the request
// record itself is the outcome.
type SideEffectRegistry struct {
	appliers map[string]SideEffectApplier
}

// NewSideEffectRegistry creates an empty registry
func NewSideEffectRegistry() *SideEffectRegistry {
	return &SideEffectRegistry{appliers: make(map[string]SideEffectApplier)}
}

// Register binds an applier to a request type. Re-registering a type is a
// wiring bug and fails loudly.
func (r *SideEffectRegistry) Register(requestType string, applier SideEffectApplier) error {
	if _, exists := r.appliers[requestType]; exists {
		return fmt.Errorf("side effect applier already registered for %s", requestType)
	}
	r.appliers[requestType] = applier
	return nil
}

// Lookup returns the applier for a request type, or nil when none is bound
func (r *SideEffectRegistry) Lookup(requestType string) SideEffectApplier {
	return r.appliers[requestType]
}
