package models

import "time"

// Order statuses touched by the approval side effects
const (
	OrderStatusConfirmed = "confirmed"
	OrderStatusRejected  = "rejected"

	OrderApprovalApproved = "approved"
	OrderApprovalRejected = "rejected"
)

// Order represents the sfa_orders table (only the columns the approval
// engine reads or writes).
type Order struct {
	ID             int64      `db:"id" json:"id"`
	OrderNumber    string     `db:"order_number" json:"orderNumber"`
	CustomerName   string     `db:"customer_name" json:"customerName"`
	TotalAmount    float64    `db:"total_amount" json:"totalAmount"`
	Status         string     `db:"status" json:"status"`
	ApprovalStatus string     `db:"approval_status" json:"approvalStatus"`
	ApprovedBy     *int64     `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
}
