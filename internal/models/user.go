package models

// User represents the sfa_users table. Zone and depot place the user in the
// sales-force organizational hierarchy and drive workflow resolution.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	ZoneID   *int64 `db:"zone_id" json:"zoneId,omitempty"`
	DepotID  *int64 `db:"depot_id" json:"depotId,omitempty"`
	IsActive bool   `db:"is_active" json:"isActive"`
}
