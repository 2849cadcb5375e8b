package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/notification"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/service/mocks"
)

type approvalFixture struct {
	userDAO     *mocks.MockUserDAO
	requestDAO  *mocks.MockRequestDAO
	approvalDAO *mocks.MockApprovalDAO
	workflowDAO *mocks.MockWorkflowDAO
	orderDAO    *mocks.MockOrderDAO
	assetDAO    *mocks.MockAssetDAO
	txRunner    *mocks.MockTxRunner
	service     *ApprovalService
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()

	f := &approvalFixture{
		userDAO:     new(mocks.MockUserDAO),
		requestDAO:  new(mocks.MockRequestDAO),
		approvalDAO: new(mocks.MockApprovalDAO),
		workflowDAO: new(mocks.MockWorkflowDAO),
		orderDAO:    new(mocks.MockOrderDAO),
		assetDAO:    new(mocks.MockAssetDAO),
		txRunner:    new(mocks.MockTxRunner),
	}

	logger := testLogger()
	registry := NewSideEffectRegistry()
	assert.NoError(t, registry.Register(models.RequestTypeOrderApproval, NewOrderSideEffect(f.orderDAO, logger)))
	assert.NoError(t, registry.Register(models.RequestTypeAssetMovementApproval, NewAssetMovementSideEffect(f.assetDAO, logger)))

	f.service = NewApprovalService(
		f.userDAO,
		f.requestDAO,
		f.approvalDAO,
		NewWorkflowResolver(f.workflowDAO, logger),
		registry,
		NewDetailFetcher(f.orderDAO, f.assetDAO, logger),
		notification.NoopDispatcher{},
		f.txRunner,
		30*time.Second,
		logger,
	)
	return f
}

func activeUser(id int64, zoneID, depotID *int64) *models.User {
	return &models.User{
		ID:       id,
		Name:     "Test User",
		Email:    "user@example.com",
		ZoneID:   zoneID,
		DepotID:  depotID,
		IsActive: true,
	}
}

// TestCreateRequest_HappyPath tests atomic creation of a request with one
// approval row per resolved step
func TestCreateRequest_HappyPath(t *testing.T) {
	f := newApprovalFixture(t)
	zone, depot := int64Ptr(1), int64Ptr(2)
	requester := activeUser(100, zone, depot)

	f.userDAO.On("GetByID", mock.Anything, int64(100)).Return(requester, nil)
	f.workflowDAO.On("FindSteps", mock.Anything, "ORDER_APPROVAL", zone, depot).
		Return(steps(201, 202), nil)
	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)

	f.requestDAO.On("CreateWithTx", mock.Anything, mock.Anything, mock.MatchedBy(func(r *models.Request) bool {
		return r.Status == models.StatusPending &&
			r.OverallStatus == models.OverallPending &&
			r.WorkflowScope == string(models.ScopeZoneDepotSpecific)
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*models.Request).ID = 55
	}).Return(nil)

	f.approvalDAO.On("BulkCreateWithTx", mock.Anything, mock.Anything, mock.MatchedBy(func(approvals []models.Approval) bool {
		return len(approvals) == 2 &&
			approvals[0].RequestID == 55 && approvals[0].Sequence == 1 &&
			approvals[0].ApproverID == 201 && approvals[0].Status == models.StatusPending &&
			approvals[1].Sequence == 2 && approvals[1].ApproverID == 202
	})).Return(nil)

	created := &models.Request{
		ID:            55,
		RequestType:   "ORDER_APPROVAL",
		RequesterID:   100,
		Status:        models.StatusPending,
		OverallStatus: models.OverallPending,
	}
	f.requestDAO.On("GetByID", mock.Anything, int64(55)).Return(created, nil)
	f.approvalDAO.On("ListByRequest", mock.Anything, int64(55)).Return([]models.Approval{
		{ID: 1, RequestID: 55, ApproverID: 201, Sequence: 1, Status: models.StatusPending},
		{ID: 2, RequestID: 55, ApproverID: 202, Sequence: 2, Status: models.StatusPending},
	}, nil)
	f.userDAO.On("GetByID", mock.Anything, int64(201)).Return(activeUser(201, nil, nil), nil)

	response, err := f.service.CreateRequest(context.Background(), &models.CreateRequestInput{
		RequesterID: 100,
		RequestType: "ORDER_APPROVAL",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), response.ID)
	assert.Len(t, response.Approvals, 2)
	f.requestDAO.AssertExpectations(t)
	f.approvalDAO.AssertExpectations(t)
}

// TestCreateRequest_NoWorkflowAborts tests that resolution failure prevents
// any insert
func TestCreateRequest_NoWorkflowAborts(t *testing.T) {
	f := newApprovalFixture(t)
	requester := activeUser(100, int64Ptr(1), int64Ptr(2))

	f.userDAO.On("GetByID", mock.Anything, int64(100)).Return(requester, nil)
	f.workflowDAO.On("FindSteps", mock.Anything, "ORDER_APPROVAL", mock.Anything, mock.Anything).
		Return([]models.WorkflowStep{}, nil)

	response, err := f.service.CreateRequest(context.Background(), &models.CreateRequestInput{
		RequesterID: 100,
		RequestType: "ORDER_APPROVAL",
	})

	assert.Nil(t, response)
	var notFound *WorkflowNotFoundError
	assert.ErrorAs(t, err, &notFound)
	f.requestDAO.AssertNotCalled(t, "CreateWithTx", mock.Anything, mock.Anything, mock.Anything)
	f.txRunner.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

// TestCreateRequest_RequesterNotFound tests the missing-requester failure
func TestCreateRequest_RequesterNotFound(t *testing.T) {
	f := newApprovalFixture(t)

	f.userDAO.On("GetByID", mock.Anything, int64(100)).Return(nil, nil)

	response, err := f.service.CreateRequest(context.Background(), &models.CreateRequestInput{
		RequesterID: 100,
		RequestType: "ORDER_APPROVAL",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrRequesterNotFound)
}

func pendingOrderRequest(id, refID int64) *models.Request {
	ref := refID
	return &models.Request{
		ID:            id,
		RequestType:   models.RequestTypeOrderApproval,
		RequesterID:   100,
		ReferenceID:   &ref,
		Status:        models.StatusPending,
		OverallStatus: models.OverallPending,
	}
}

// TestTakeAction_RejectIsTerminal tests that a rejection at any level ends
// the request and applies the rejection side effect in-transaction
func TestTakeAction_RejectIsTerminal(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(2), int64(55)).
		Return(&models.Approval{ID: 2, RequestID: 55, ApproverID: 202, Sequence: 2, Status: models.StatusPending}, nil)
	f.approvalDAO.On("UpdateActionWithTx", mock.Anything, mock.Anything, int64(2), models.StatusRejected, mock.Anything, mock.Anything).
		Return(nil)
	f.requestDAO.On("UpdateStatusWithTx", mock.Anything, mock.Anything, int64(55), models.StatusRejected, models.OverallRejected).
		Return(nil)
	f.orderDAO.On("ApplyRejectionWithTx", mock.Anything, mock.Anything, int64(900)).Return(nil)

	// post-commit notification lookups
	f.userDAO.On("GetByID", mock.Anything, int64(100)).Return(activeUser(100, nil, nil), nil)
	f.userDAO.On("GetByID", mock.Anything, int64(202)).Return(activeUser(202, nil, nil), nil)
	f.orderDAO.On("GetByID", mock.Anything, int64(900)).Return(&models.Order{ID: 900, OrderNumber: "ORD-1"}, nil)

	remarks := "price too high"
	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 2,
		Action:     models.StatusRejected,
		Remarks:    &remarks,
		ActedBy:    202,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, result.Status)
	// rejection is never sequence-gated
	f.approvalDAO.AssertNotCalled(t, "ListBelowSequenceWithTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.orderDAO.AssertExpectations(t)
	f.requestDAO.AssertExpectations(t)
}

// TestTakeAction_SequenceGateBlocksEarlyApproval tests that approving level 2
// while level 1 is pending fails without touching any row
func TestTakeAction_SequenceGateBlocksEarlyApproval(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(2), int64(55)).
		Return(&models.Approval{ID: 2, RequestID: 55, ApproverID: 202, Sequence: 2, Status: models.StatusPending}, nil)
	f.approvalDAO.On("ListBelowSequenceWithTx", mock.Anything, mock.Anything, int64(55), 2).
		Return([]models.Approval{
			{ID: 1, RequestID: 55, Sequence: 1, Status: models.StatusPending},
		}, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 2,
		Action:     models.StatusApproved,
		ActedBy:    202,
	})

	assert.Nil(t, result)
	var gate *SequenceGateError
	assert.ErrorAs(t, err, &gate)
	assert.Equal(t, 1, gate.PendingSequence)
	f.approvalDAO.AssertNotCalled(t, "UpdateActionWithTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestTakeAction_AlreadyProcessed tests the double-processing guard
func TestTakeAction_AlreadyProcessed(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(1), int64(55)).
		Return(&models.Approval{ID: 1, RequestID: 55, Sequence: 1, Status: models.StatusApproved}, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 1,
		Action:     models.StatusApproved,
		ActedBy:    201,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

// TestTakeAction_IntermediateApprovalMovesToNextLevel tests that a non-final
// approval leaves the request pending and reports the next approver
func TestTakeAction_IntermediateApprovalMovesToNextLevel(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(1), int64(55)).
		Return(&models.Approval{ID: 1, RequestID: 55, ApproverID: 201, Sequence: 1, Status: models.StatusPending}, nil)
	f.approvalDAO.On("UpdateActionWithTx", mock.Anything, mock.Anything, int64(1), models.StatusApproved, mock.Anything, mock.Anything).
		Return(nil)
	f.approvalDAO.On("NextPendingWithTx", mock.Anything, mock.Anything, int64(55)).
		Return(&models.Approval{ID: 2, RequestID: 55, ApproverID: 202, Sequence: 2, Status: models.StatusPending}, nil)

	nextApprover := activeUser(202, nil, nil)
	f.userDAO.On("GetByID", mock.Anything, int64(202)).Return(nextApprover, nil)
	f.orderDAO.On("GetByID", mock.Anything, int64(900)).Return(&models.Order{ID: 900, OrderNumber: "ORD-1"}, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 1,
		Action:     models.StatusApproved,
		ActedBy:    201,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeNextLevel, result.Status)
	assert.NotNil(t, result.NextApprover)
	assert.Equal(t, int64(202), result.NextApprover.ID)
	// no request-level transition yet
	f.requestDAO.AssertNotCalled(t, "UpdateStatusWithTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestTakeAction_FinalApprovalConfirmsOrder tests that the last approval
// completes the request and confirms the order in the same transaction
func TestTakeAction_FinalApprovalConfirmsOrder(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(2), int64(55)).
		Return(&models.Approval{ID: 2, RequestID: 55, ApproverID: 202, Sequence: 2, Status: models.StatusPending}, nil)
	f.approvalDAO.On("ListBelowSequenceWithTx", mock.Anything, mock.Anything, int64(55), 2).
		Return([]models.Approval{
			{ID: 1, RequestID: 55, Sequence: 1, Status: models.StatusApproved},
		}, nil)
	f.approvalDAO.On("UpdateActionWithTx", mock.Anything, mock.Anything, int64(2), models.StatusApproved, mock.Anything, mock.Anything).
		Return(nil)
	f.approvalDAO.On("NextPendingWithTx", mock.Anything, mock.Anything, int64(55)).Return(nil, nil)
	f.requestDAO.On("UpdateStatusWithTx", mock.Anything, mock.Anything, int64(55), models.StatusApproved, models.OverallApproved).
		Return(nil)
	f.orderDAO.On("ApplyApprovalWithTx", mock.Anything, mock.Anything, int64(900), int64(202)).Return(nil)

	// post-commit notification lookups
	f.userDAO.On("GetByID", mock.Anything, int64(100)).Return(activeUser(100, nil, nil), nil)
	f.orderDAO.On("GetByID", mock.Anything, int64(900)).Return(&models.Order{ID: 900, OrderNumber: "ORD-1"}, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 2,
		Action:     models.StatusApproved,
		ActedBy:    202,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFullyApproved, result.Status)
	f.orderDAO.AssertExpectations(t)
	f.requestDAO.AssertExpectations(t)
}

// TestTakeAction_RejectedRequestRefusesLeftoverSteps tests that a step left
// pending by a mid-chain rejection can never be acted on afterwards: the
// request stays rejected and no side effect fires
func TestTakeAction_RejectedRequestRefusesLeftoverSteps(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)
	request.Status = models.StatusRejected
	request.OverallStatus = models.OverallRejected

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 1,
		Action:     models.StatusApproved,
		ActedBy:    201,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRequestAlreadyFinalized)
	f.approvalDAO.AssertNotCalled(t, "UpdateActionWithTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.requestDAO.AssertNotCalled(t, "UpdateStatusWithTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.orderDAO.AssertNotCalled(t, "ApplyApprovalWithTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestTakeAction_ApprovedRequestRefusesFurtherActions tests the same guard
// on an already fully approved request
func TestTakeAction_ApprovedRequestRefusesFurtherActions(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)
	request.Status = models.StatusApproved
	request.OverallStatus = models.OverallApproved

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 2,
		Action:     models.StatusRejected,
		ActedBy:    202,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRequestAlreadyFinalized)
	f.orderDAO.AssertNotCalled(t, "ApplyRejectionWithTx",
		mock.Anything, mock.Anything, mock.Anything)
}

// TestTakeAction_RequestNotFound tests the missing-request failure
func TestTakeAction_RequestNotFound(t *testing.T) {
	f := newApprovalFixture(t)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  99,
		ApprovalID: 1,
		Action:     models.StatusApproved,
		ActedBy:    201,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

// TestTakeAction_ApprovalNotFound tests acting on an approval that does not
// belong to the request
func TestTakeAction_ApprovalNotFound(t *testing.T) {
	f := newApprovalFixture(t)
	request := pendingOrderRequest(55, 900)

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(77), int64(55)).Return(nil, nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 77,
		Action:     models.StatusApproved,
		ActedBy:    201,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrApprovalNotFound)
}

// TestTakeAction_InvalidAction tests the A/R action validation
func TestTakeAction_InvalidAction(t *testing.T) {
	f := newApprovalFixture(t)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 1,
		Action:     "X",
		ActedBy:    201,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidAction)
	f.txRunner.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

// TestTakeAction_UnknownTypeHasNoSideEffect tests that request types without
// an applier still complete normally
func TestTakeAction_UnknownTypeHasNoSideEffect(t *testing.T) {
	f := newApprovalFixture(t)
	ref := int64(900)
	request := &models.Request{
		ID:            55,
		RequestType:   "LEAVE_APPROVAL",
		RequesterID:   100,
		ReferenceID:   &ref,
		Status:        models.StatusPending,
		OverallStatus: models.OverallPending,
	}

	f.txRunner.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	f.requestDAO.On("GetByIDWithTx", mock.Anything, mock.Anything, int64(55)).Return(request, nil)
	f.approvalDAO.On("GetByIDForUpdateWithTx", mock.Anything, mock.Anything, int64(1), int64(55)).
		Return(&models.Approval{ID: 1, RequestID: 55, ApproverID: 201, Sequence: 1, Status: models.StatusPending}, nil)
	f.approvalDAO.On("UpdateActionWithTx", mock.Anything, mock.Anything, int64(1), models.StatusApproved, mock.Anything, mock.Anything).
		Return(nil)
	f.approvalDAO.On("NextPendingWithTx", mock.Anything, mock.Anything, int64(55)).Return(nil, nil)
	f.requestDAO.On("UpdateStatusWithTx", mock.Anything, mock.Anything, int64(55), models.StatusApproved, models.OverallApproved).
		Return(nil)
	f.userDAO.On("GetByID", mock.Anything, int64(100)).Return(activeUser(100, nil, nil), nil)

	result, err := f.service.TakeAction(context.Background(), &models.TakeActionInput{
		RequestID:  55,
		ApprovalID: 1,
		Action:     models.StatusApproved,
		ActedBy:    201,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFullyApproved, result.Status)
	f.orderDAO.AssertNotCalled(t, "ApplyApprovalWithTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
