package models

import "time"

// Asset movement types
const (
	MovementTypeTransfer     = "transfer"
	MovementTypeReturn       = "return"
	MovementTypeInstallation = "installation"
	MovementTypeDisposal     = "disposal"
	MovementTypeMaintenance  = "maintenance"
	MovementTypeRepair       = "repair"
)

// Asset statuses derived from a completed movement
const (
	AssetStatusAvailable        = "Available"
	AssetStatusInstalled        = "Installed"
	AssetStatusRetired          = "Retired"
	AssetStatusUnderMaintenance = "Under Maintenance"
)

// AssetMovement represents the sfa_asset_movements table. AssetIDs is a JSON
// array column holding the ids of every asset carried by the movement.
type AssetMovement struct {
	ID             int64      `db:"id" json:"id"`
	MovementNumber string     `db:"movement_number" json:"movementNumber"`
	MovementType   string     `db:"movement_type" json:"movementType"`
	FromLocation   *string    `db:"from_location" json:"fromLocation,omitempty"`
	ToLocation     *string    `db:"to_location" json:"toLocation,omitempty"`
	AssetIDs       JSON       `db:"asset_ids" json:"assetIds"`
	ApprovalStatus string     `db:"approval_status" json:"approvalStatus"`
	ApprovedBy     *int64     `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
	RequestedBy    int64      `db:"requested_by" json:"requestedBy"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// Asset represents the sfa_assets table (approval-relevant columns only)
type Asset struct {
	ID              int64  `db:"id" json:"id"`
	AssetTag        string `db:"asset_tag" json:"assetTag"`
	Status          string `db:"status" json:"status"`
	CurrentLocation string `db:"current_location" json:"currentLocation"`
}

// MaintenanceRecord represents one sfa_asset_maintenance history row,
// created per moved asset when a maintenance/repair movement is approved.
type MaintenanceRecord struct {
	ID          int64     `db:"id" json:"id"`
	AssetID     int64     `db:"asset_id" json:"assetId"`
	MovementID  int64     `db:"movement_id" json:"movementId"`
	Description string    `db:"description" json:"description"`
	PerformedBy int64     `db:"performed_by" json:"performedBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// AssetContract represents one generated contract artifact for an approved
// asset movement. Regeneration deletes any prior contracts for the movement.
type AssetContract struct {
	ID             int64     `db:"id" json:"id"`
	ContractNumber string    `db:"contract_number" json:"contractNumber"`
	MovementID     int64     `db:"movement_id" json:"movementId"`
	Document       JSON      `db:"document" json:"document"`
	GeneratedAt    time.Time `db:"generated_at" json:"generatedAt"`
}
