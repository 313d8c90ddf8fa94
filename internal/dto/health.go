package dto

import "time"

// HealthResponse reports API and database status plus process uptime.
type HealthResponse struct {
	StatusAPI      string    `json:"statusApi"`
	StatusDatabase string    `json:"statusDatabase"`
	DatabaseError  string    `json:"databaseError,omitempty"`
	CheckedAt      time.Time `json:"checkedAt"`
	UptimeSeconds  int64     `json:"uptimeSeconds"`
}
