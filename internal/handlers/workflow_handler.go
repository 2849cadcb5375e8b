package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/service"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/utils"
	pkgutils "github.com/manikantxampleserv/dcc-sfa-sub007/pkg/utils"
)

// WorkflowHandler handles workflow definition HTTP endpoints
type WorkflowHandler struct {
	workflowService *service.WorkflowService
}

// NewWorkflowHandler creates a new workflow handler instance
func NewWorkflowHandler(workflowService *service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

// CreateStep handles POST /workflows
func (h *WorkflowHandler) CreateStep(c *gin.Context) {
	var input models.WorkflowStepCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	step, err := h.workflowService.CreateStep(c.Request.Context(), &input)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "must be") {
			utils.SendValidationError(c, err.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to create workflow step", err.Error())
		return
	}

	utils.SendCreatedResponse(c, gin.H{"data": step})
}

// ListSteps handles GET /workflows
func (h *WorkflowHandler) ListSteps(c *gin.Context) {
	limit := pkgutils.ValidateLimit(queryInt(c, "limit"))
	offset := pkgutils.ValidateOffset(queryInt(c, "offset"))

	steps, metadata, err := h.workflowService.ListSteps(c.Request.Context(), c.Query("request_type"), limit, offset)
	if err != nil {
		utils.SendInternalServerError(c, "Failed to list workflow steps", err.Error())
		return
	}

	utils.SendOKResponse(c, gin.H{
		"data":     steps,
		"metadata": metadata,
	})
}

// DeactivateStep handles DELETE /workflows/:stepId
func (h *WorkflowHandler) DeactivateStep(c *gin.Context) {
	stepID, err := strconv.ParseInt(c.Param("stepId"), 10, 64)
	if err != nil || stepID <= 0 {
		utils.SendBadRequestError(c, "Invalid step ID", c.Param("stepId"))
		return
	}

	if err := h.workflowService.DeactivateStep(c.Request.Context(), stepID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.SendNotFoundError(c, err.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to deactivate workflow step", err.Error())
		return
	}

	utils.SendOKResponse(c, gin.H{"message": "Workflow step deactivated"})
}
