package audit

import "time"

// Action enum
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Log - immutable change-history record. Written by administrative services;
// the payroll engine never reads or writes these.
type Log struct {
	ID        string         `json:"id"`
	TableName string         `json:"table_name"`
	RecordID  string         `json:"record_id"`
	Action    Action         `json:"action"`
	OldValues map[string]any `json:"old_values,omitempty"`
	NewValues map[string]any `json:"new_values,omitempty"`
	ChangedBy *string        `json:"changed_by,omitempty"`
	ChangedAt time.Time      `json:"changed_at"`
}
