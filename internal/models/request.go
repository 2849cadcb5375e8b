package models

import "time"

// Request represents the sfa_requests table: one approval-bearing business
// intent, tagged with a request type and optionally pointing at the entity
// awaiting approval.
type Request struct {
	ID            int64     `db:"id" json:"id"`
	RequestNumber string    `db:"request_number" json:"requestNumber"`
	RequesterID   int64     `db:"requester_id" json:"requesterId"`
	RequestType   string    `db:"request_type" json:"requestType"`
	ReferenceID   *int64    `db:"reference_id" json:"referenceId,omitempty"`
	RequestData   JSON      `db:"request_data" json:"requestData,omitempty"`
	Status        string    `db:"status" json:"status"`
	OverallStatus string    `db:"overall_status" json:"overallStatus"`
	WorkflowScope string    `db:"workflow_scope" json:"workflowScope"`
	CreatedBy     int64     `db:"created_by" json:"createdBy"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Approval represents the sfa_request_approvals table: one ordered sign-off
// step bound to a request and a specific approver.
type Approval struct {
	ID         int64      `db:"id" json:"id"`
	RequestID  int64      `db:"request_id" json:"requestId"`
	ApproverID int64      `db:"approver_id" json:"approverId"`
	Sequence   int        `db:"sequence" json:"sequence"`
	Status     string     `db:"status" json:"status"`
	Remarks    *string    `db:"remarks" json:"remarks,omitempty"`
	ActionAt   *time.Time `db:"action_at" json:"actionAt,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// CreateRequestInput is the engine-facing payload for request creation
type CreateRequestInput struct {
	RequesterID int64  `json:"requester_id" binding:"required"`
	RequestType string `json:"request_type"`
	ReferenceID *int64 `json:"reference_id"`
	RequestData JSON   `json:"request_data"`
	CreatedBy   int64  `json:"created_by"`
}

// TakeActionInput is the engine-facing payload for acting on one approval step
type TakeActionInput struct {
	RequestID  int64   `json:"request_id" binding:"required"`
	ApprovalID int64   `json:"approval_id" binding:"required"`
	Action     string  `json:"action"`
	Remarks    *string `json:"remarks"`
	ActedBy    int64   `json:"acted_by"`
}

// Action outcome statuses returned by TakeAction
const (
	OutcomeRejected      = "rejected"
	OutcomeFullyApproved = "fully_approved"
	OutcomeNextLevel     = "next_level"
)

// ActionResult is the outcome of one take-action call
type ActionResult struct {
	Status       string `json:"status"`
	NextApprover *User  `json:"nextApprover,omitempty"`
}

// RequestResponse is the API representation of a request with its requester
// and ordered approvals.
type RequestResponse struct {
	Request
	Requester *User      `json:"requester,omitempty"`
	Approvals []Approval `json:"approvals"`
}

// RequestSearchFilters narrows request listing
type RequestSearchFilters struct {
	OverallStatus string
	RequestType   string
	RequesterID   *int64
	Limit         int
	Offset        int
}

// RequestListResponse is the paginated list body
type RequestListResponse struct {
	Data     []Request    `json:"data"`
	Metadata ListMetadata `json:"metadata"`
}

// PendingApproval is one step awaiting action from a given approver,
// joined with its parent request.
type PendingApproval struct {
	Approval
	RequestType   string `db:"request_type" json:"requestType"`
	RequesterID   int64  `db:"requester_id" json:"requesterId"`
	ReferenceID   *int64 `db:"reference_id" json:"referenceId,omitempty"`
	RequestStatus string `db:"request_status" json:"requestStatus"`
}

// ListMetadata is the common pagination metadata block
type ListMetadata struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}
