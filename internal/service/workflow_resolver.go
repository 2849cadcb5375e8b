package service

import (
	"context"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"

	"github.com/sirupsen/logrus"
)

// WorkflowResolver picks the workflow definition that governs a request,
// walking scopes from most to least specific: zone+depot, zone, depot,
// global. The first scope with at least one active step wins outright, even
// when a broader scope defines more steps.
type WorkflowResolver struct {
	workflowDAO WorkflowStore
	logger      *logrus.Logger
}

// NewWorkflowResolver creates a new WorkflowResolver instance
func NewWorkflowResolver(workflowDAO WorkflowStore, logger *logrus.Logger) *WorkflowResolver {
	return &WorkflowResolver{
		workflowDAO: workflowDAO,
		logger:      logger,
	}
}

// Resolve returns the ordered steps governing requestType for a requester in
// the given zone and depot. Returns WorkflowNotFoundError when no scope
// matches.
func (r *WorkflowResolver) Resolve(ctx context.Context, requestType string, zoneID, depotID *int64) (*models.ResolvedWorkflow, error) {
	type candidate struct {
		scope   models.WorkflowScope
		zoneID  *int64
		depotID *int64
		usable  bool
	}

	candidates := []candidate{
		{models.ScopeZoneDepotSpecific, zoneID, depotID, zoneID != nil && depotID != nil},
		{models.ScopeZoneSpecific, zoneID, nil, zoneID != nil},
		{models.ScopeDepotSpecific, nil, depotID, depotID != nil},
		{models.ScopeGlobal, nil, nil, true},
	}

	for _, c := range candidates {
		if !c.usable {
			continue
		}

		steps, err := r.workflowDAO.FindSteps(ctx, requestType, c.zoneID, c.depotID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve workflow: %w", err)
		}
		if len(steps) == 0 {
			continue
		}

		r.logger.WithFields(logrus.Fields{
			"requestType": requestType,
			"scope":       c.scope,
			"steps":       len(steps),
		}).Debug("Workflow resolved")

		return &models.ResolvedWorkflow{Steps: steps, Scope: c.scope}, nil
	}

	return nil, &WorkflowNotFoundError{
		RequestType: requestType,
		ZoneID:      zoneID,
		DepotID:     depotID,
	}
}
