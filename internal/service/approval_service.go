package service

import (
	"context"
	"fmt"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/notification"
	"github.com/manikantxampleserv/dcc-sfa-sub007/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ApprovalService drives the approval state machine: creating requests with
// their resolved approval chain, and processing approve/reject actions level
// by level.
type ApprovalService struct {
	userDAO     UserStore
	requestDAO  RequestStore
	approvalDAO ApprovalStore
	resolver    *WorkflowResolver
	registry    *SideEffectRegistry
	details     *DetailFetcher
	dispatcher  notification.Dispatcher
	txRunner    TxRunner
	txTimeout   time.Duration
	logger      *logrus.Logger
}

// NewApprovalService creates a new approval service instance
func NewApprovalService(
	userDAO UserStore,
	requestDAO RequestStore,
	approvalDAO ApprovalStore,
	resolver *WorkflowResolver,
	registry *SideEffectRegistry,
	details *DetailFetcher,
	dispatcher notification.Dispatcher,
	txRunner TxRunner,
	txTimeout time.Duration,
	logger *logrus.Logger,
) *ApprovalService {
	return &ApprovalService{
		userDAO:     userDAO,
		requestDAO:  requestDAO,
		approvalDAO: approvalDAO,
		resolver:    resolver,
		registry:    registry,
		details:     details,
		dispatcher:  dispatcher,
		txRunner:    txRunner,
		txTimeout:   txTimeout,
		logger:      logger,
	}
}

// CreateRequest creates an approval request together with one approval row
// per resolved workflow step, atomically. Resolution failure aborts the whole
// operation so no request without approvals is ever left behind.
func (s *ApprovalService) CreateRequest(ctx context.Context, input *models.CreateRequestInput) (*models.RequestResponse, error) {
	if err := utils.ValidateRequestType(input.RequestType); err != nil {
		return nil, err
	}

	requester, err := s.userDAO.GetByID(ctx, input.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester: %w", err)
	}
	if requester == nil || !requester.IsActive {
		return nil, ErrRequesterNotFound
	}

	resolved, err := s.resolver.Resolve(ctx, input.RequestType, requester.ZoneID, requester.DepotID)
	if err != nil {
		return nil, err
	}

	createdBy := input.CreatedBy
	if createdBy == 0 {
		createdBy = input.RequesterID
	}

	request := &models.Request{
		RequestNumber: utils.GenerateRequestNumber(),
		RequestType:   input.RequestType,
		RequesterID:   input.RequesterID,
		ReferenceID:   input.ReferenceID,
		RequestData:   input.RequestData,
		Status:        models.StatusPending,
		OverallStatus: models.OverallPending,
		WorkflowScope: string(resolved.Scope),
		CreatedBy:     createdBy,
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	err = s.txRunner.WithTransaction(txCtx, func(tx *database.Transaction) error {
		if err := s.requestDAO.CreateWithTx(txCtx, tx, request); err != nil {
			return err
		}

		approvals := make([]models.Approval, 0, len(resolved.Steps))
		for i, step := range resolved.Steps {
			sequence := step.Sequence
			if sequence <= 0 {
				sequence = i + 1
			}
			approvals = append(approvals, models.Approval{
				RequestID:  request.ID,
				ApproverID: step.ApproverID,
				Sequence:   sequence,
				Status:     models.StatusPending,
			})
		}
		return s.approvalDAO.BulkCreateWithTx(txCtx, tx, approvals)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"requestID":     request.ID,
		"requestNumber": request.RequestNumber,
		"requestType":   request.RequestType,
		"scope":         request.WorkflowScope,
		"levels":        len(resolved.Steps),
	}).Info("Approval request created")

	response, err := s.GetRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	s.notifyFirstApprover(ctx, response)

	return response, nil
}

// TakeAction processes one approve or reject decision on an approval step.
// Everything through the request-level transition and in-transaction side
// effects runs inside a single transaction; the target approval row is
// locked for its duration so concurrent actions on the same step serialize.
func (s *ApprovalService) TakeAction(ctx context.Context, input *models.TakeActionInput) (*models.ActionResult, error) {
	if err := utils.ValidateAction(input.Action); err != nil {
		return nil, ErrInvalidAction
	}

	var (
		request      *models.Request
		result       *models.ActionResult
		nextApprover *models.Approval
	)

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	err := s.txRunner.WithTransaction(txCtx, func(tx *database.Transaction) error {
		var err error
		request, err = s.requestDAO.GetByIDWithTx(txCtx, tx, input.RequestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrRequestNotFound
		}
		// A terminal request never transitions again, even when a mid-chain
		// rejection left earlier steps pending
		if request.Status != models.StatusPending {
			return ErrRequestAlreadyFinalized
		}

		approval, err := s.approvalDAO.GetByIDForUpdateWithTx(txCtx, tx, input.ApprovalID, input.RequestID)
		if err != nil {
			return err
		}
		if approval == nil {
			return ErrApprovalNotFound
		}
		if approval.Status != models.StatusPending {
			return ErrAlreadyProcessed
		}

		// Rejection is never sequence-gated
		if input.Action == models.StatusApproved && approval.Sequence > 1 {
			prior, err := s.approvalDAO.ListBelowSequenceWithTx(txCtx, tx, input.RequestID, approval.Sequence)
			if err != nil {
				return err
			}
			for _, p := range prior {
				if p.Status != models.StatusApproved {
					return &SequenceGateError{PendingSequence: p.Sequence}
				}
			}
		}

		now := time.Now()
		if err := s.approvalDAO.UpdateActionWithTx(txCtx, tx, approval.ID, input.Action, input.Remarks, now); err != nil {
			return err
		}

		applier := s.registry.Lookup(request.RequestType)

		if input.Action == models.StatusRejected {
			if err := s.requestDAO.UpdateStatusWithTx(txCtx, tx, request.ID, models.StatusRejected, models.OverallRejected); err != nil {
				return err
			}
			if applier != nil && request.ReferenceID != nil {
				if err := applier.OnRejected(txCtx, tx, *request.ReferenceID, input.ActedBy); err != nil {
					return err
				}
			}
			result = &models.ActionResult{Status: models.OutcomeRejected}
			return nil
		}

		nextApprover, err = s.approvalDAO.NextPendingWithTx(txCtx, tx, request.ID)
		if err != nil {
			return err
		}

		if nextApprover == nil {
			if err := s.requestDAO.UpdateStatusWithTx(txCtx, tx, request.ID, models.StatusApproved, models.OverallApproved); err != nil {
				return err
			}
			if applier != nil && request.ReferenceID != nil {
				if err := applier.OnFullyApproved(txCtx, tx, *request.ReferenceID, input.ActedBy); err != nil {
					return err
				}
			}
			result = &models.ActionResult{Status: models.OutcomeFullyApproved}
			return nil
		}

		result = &models.ActionResult{Status: models.OutcomeNextLevel}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"requestID":  input.RequestID,
		"approvalID": input.ApprovalID,
		"action":     input.Action,
		"outcome":    result.Status,
	}).Info("Approval action processed")

	if result.Status == models.OutcomeNextLevel && nextApprover != nil {
		if user, err := s.userDAO.GetByID(ctx, nextApprover.ApproverID); err == nil {
			result.NextApprover = user
		} else {
			s.logger.WithError(err).Warn("Failed to load next approver")
		}
	}

	s.notifyOutcome(ctx, request, result, input, nextApprover)

	if result.Status == models.OutcomeFullyApproved && request.ReferenceID != nil {
		if applier := s.registry.Lookup(request.RequestType); applier != nil {
			applier.AfterApproved(ctx, *request.ReferenceID)
		}
	}

	return result, nil
}

// GetRequest retrieves a request with its requester and ordered approvals
func (s *ApprovalService) GetRequest(ctx context.Context, requestID int64) (*models.RequestResponse, error) {
	request, err := s.requestDAO.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	approvals, err := s.approvalDAO.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approvals: %w", err)
	}

	response := &models.RequestResponse{
		Request:   *request,
		Approvals: approvals,
	}

	if requester, err := s.userDAO.GetByID(ctx, request.RequesterID); err == nil {
		response.Requester = requester
	} else {
		s.logger.WithError(err).WithField("requestID", requestID).Warn("Failed to load requester")
	}

	return response, nil
}

// ListRequests retrieves requests matching the given filters
func (s *ApprovalService) ListRequests(ctx context.Context, filters models.RequestSearchFilters) (*models.RequestListResponse, error) {
	requests, total, err := s.requestDAO.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &models.RequestListResponse{
		Data: requests,
		Metadata: models.ListMetadata{
			Total:  total,
			Limit:  filters.Limit,
			Offset: filters.Offset,
			Count:  len(requests),
		},
	}, nil
}

// ListPendingApprovals retrieves the steps currently awaiting action by one
// approver
func (s *ApprovalService) ListPendingApprovals(ctx context.Context, approverID int64, limit, offset int) ([]models.PendingApproval, *models.ListMetadata, error) {
	pending, total, err := s.approvalDAO.ListPendingForApprover(ctx, approverID, limit, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}

	metadata := &models.ListMetadata{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Count:  len(pending),
	}
	return pending, metadata, nil
}
