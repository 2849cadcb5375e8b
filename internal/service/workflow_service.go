package service

import (
	"context"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/pkg/utils"

	"github.com/sirupsen/logrus"
)

// WorkflowService manages approval workflow definitions
type WorkflowService struct {
	workflowDAO WorkflowStore
	userDAO     UserStore
	logger      *logrus.Logger
}

// NewWorkflowService creates a new WorkflowService instance
func NewWorkflowService(workflowDAO WorkflowStore, userDAO UserStore, logger *logrus.Logger) *WorkflowService {
	return &WorkflowService{
		workflowDAO: workflowDAO,
		userDAO:     userDAO,
		logger:      logger,
	}
}

// CreateStep registers one workflow step definition. The approver must be an
// existing active user.
func (s *WorkflowService) CreateStep(ctx context.Context, input *models.WorkflowStepCreateRequest) (*models.WorkflowStep, error) {
	if err := utils.ValidateRequestType(input.RequestType); err != nil {
		return nil, err
	}
	if input.Sequence <= 0 {
		return nil, fmt.Errorf("sequence must be positive")
	}

	approver, err := s.userDAO.GetByID(ctx, input.ApproverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approver: %w", err)
	}
	if approver == nil || !approver.IsActive {
		return nil, fmt.Errorf("approver %d not found or inactive", input.ApproverID)
	}

	step := &models.WorkflowStep{
		RequestType: input.RequestType,
		ZoneID:      input.ZoneID,
		DepotID:     input.DepotID,
		Sequence:    input.Sequence,
		ApproverID:  input.ApproverID,
		IsActive:    true,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.workflowDAO.Create(ctx, step); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"stepID":      step.ID,
		"requestType": step.RequestType,
		"sequence":    step.Sequence,
	}).Info("Workflow step created")

	return step, nil
}

// ListSteps retrieves workflow step definitions
func (s *WorkflowService) ListSteps(ctx context.Context, requestType string, limit, offset int) ([]models.WorkflowStep, *models.ListMetadata, error) {
	steps, total, err := s.workflowDAO.List(ctx, requestType, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	metadata := &models.ListMetadata{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Count:  len(steps),
	}
	return steps, metadata, nil
}

// DeactivateStep retires a workflow step from resolution
func (s *WorkflowService) DeactivateStep(ctx context.Context, stepID int64) error {
	affected, err := s.workflowDAO.Deactivate(ctx, stepID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("workflow step %d not found", stepID)
	}

	s.logger.WithField("stepID", stepID).Info("Workflow step deactivated")
	return nil
}
