package models

import "time"

// WorkflowScope identifies the specificity level at which a workflow was resolved
type WorkflowScope string

const (
	ScopeZoneDepotSpecific WorkflowScope = "ZONE_DEPOT_SPECIFIC"
	ScopeZoneSpecific      WorkflowScope = "ZONE_SPECIFIC"
	ScopeDepotSpecific     WorkflowScope = "DEPOT_SPECIFIC"
	ScopeGlobal            WorkflowScope = "GLOBAL"
)

// WorkflowStep represents one row of the sfa_approval_workflows configuration
// table: (request_type, zone?, depot?, sequence) -> approver.
type WorkflowStep struct {
	ID          int64     `db:"id" json:"id"`
	RequestType string    `db:"request_type" json:"requestType"`
	ZoneID      *int64    `db:"zone_id" json:"zoneId,omitempty"`
	DepotID     *int64    `db:"depot_id" json:"depotId,omitempty"`
	Sequence    int       `db:"sequence" json:"sequence"`
	ApproverID  int64     `db:"approver_id" json:"approverId"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedBy   *int64    `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ResolvedWorkflow is the outcome of workflow resolution: the ordered steps
// that apply to a request plus the scope they were found at.
type ResolvedWorkflow struct {
	Steps []WorkflowStep `json:"steps"`
	Scope WorkflowScope  `json:"scope"`
}

// WorkflowStepCreateRequest is the admin API payload for defining a step
type WorkflowStepCreateRequest struct {
	RequestType string `json:"request_type" binding:"required"`
	ZoneID      *int64 `json:"zone_id"`
	DepotID     *int64 `json:"depot_id"`
	Sequence    int    `json:"sequence" binding:"required"`
	ApproverID  int64  `json:"approver_id" binding:"required"`
	CreatedBy   *int64 `json:"created_by"`
}
