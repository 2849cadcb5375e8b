package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/service"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/utils"
	pkgutils "github.com/manikantxampleserv/dcc-sfa-sub007/pkg/utils"
)

// RequestHandler handles approval request HTTP endpoints
type RequestHandler struct {
	approvalService *service.ApprovalService
}

// NewRequestHandler creates a new request handler instance
func NewRequestHandler(approvalService *service.ApprovalService) *RequestHandler {
	return &RequestHandler{approvalService: approvalService}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input models.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	if err := pkgutils.ValidateRequestType(input.RequestType); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	response, err := h.approvalService.CreateRequest(c.Request.Context(), &input)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	utils.SendCreatedResponse(c, gin.H{"data": response})
}

// TakeAction handles POST /requests/action
func (h *RequestHandler) TakeAction(c *gin.Context) {
	var input models.TakeActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	if err := pkgutils.ValidateAction(input.Action); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	result, err := h.approvalService.TakeAction(c.Request.Context(), &input)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, gin.H{
		"message": actionMessage(result.Status),
		"data":    result,
	})
}

// GetRequest handles GET /requests/:requestId
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || requestID <= 0 {
		utils.SendBadRequestError(c, "Invalid request ID", c.Param("requestId"))
		return
	}

	response, err := h.approvalService.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, gin.H{"data": response})
}

// ListRequests handles GET /requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	filters := models.RequestSearchFilters{
		RequestType:   c.Query("request_type"),
		OverallStatus: c.Query("status"),
		Limit:         pkgutils.ValidateLimit(queryInt(c, "limit")),
		Offset:        pkgutils.ValidateOffset(queryInt(c, "offset")),
	}

	if raw := c.Query("requester_id"); raw != "" {
		requesterID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.SendBadRequestError(c, "Invalid requester_id", raw)
			return
		}
		filters.RequesterID = &requesterID
	}

	response, err := h.approvalService.ListRequests(c.Request.Context(), filters)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}

// ListPendingApprovals handles GET /approvals/pending
func (h *RequestHandler) ListPendingApprovals(c *gin.Context) {
	approverID, err := strconv.ParseInt(c.Query("approver_id"), 10, 64)
	if err != nil || approverID <= 0 {
		utils.SendBadRequestError(c, "Invalid approver_id", c.Query("approver_id"))
		return
	}

	limit := pkgutils.ValidateLimit(queryInt(c, "limit"))
	offset := pkgutils.ValidateOffset(queryInt(c, "offset"))

	pending, metadata, err := h.approvalService.ListPendingApprovals(c.Request.Context(), approverID, limit, offset)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, gin.H{
		"data":     pending,
		"metadata": metadata,
	})
}

func actionMessage(outcome string) string {
	switch outcome {
	case models.OutcomeRejected:
		return "Request rejected"
	case models.OutcomeFullyApproved:
		return "Request fully approved"
	default:
		return "Approval recorded, moved to next level"
	}
}

func queryInt(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}

// sendServiceError maps service errors onto HTTP statuses and SFA error
// codes. The sequence gate is the one client error takeAction distinguishes;
// workflow resolution failure is surfaced as a server error with its message.
func sendServiceError(c *gin.Context, err error) {
	var gateErr *service.SequenceGateError
	var workflowErr *service.WorkflowNotFoundError

	switch {
	case errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrApprovalNotFound),
		errors.Is(err, service.ErrRequesterNotFound):
		utils.SendNotFoundError(c, err.Error())
	case errors.Is(err, service.ErrAlreadyProcessed),
		errors.Is(err, service.ErrRequestAlreadyFinalized):
		utils.SendConflictError(c, err.Error())
	case errors.Is(err, service.ErrInvalidAction):
		utils.SendBadRequestError(c, "Invalid action", err.Error())
	case errors.As(err, &gateErr):
		utils.SendBadRequestError(c, "Out-of-order approval", gateErr.Error())
	case errors.As(err, &workflowErr):
		utils.SendInternalServerError(c, "Workflow resolution failed", workflowErr.Error())
	default:
		utils.SendInternalServerError(c, "Request processing failed", err.Error())
	}
}
