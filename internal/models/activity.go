package models

import "time"

// Activity types.
const (
	ActivityMachineCreated     = "MACHINE_CREATED"
	ActivityMachineUpdated     = "MACHINE_UPDATED"
	ActivityMachineDeleted     = "MACHINE_DELETED"
	ActivityMaintenanceCreated = "MAINTENANCE_CREATED"
	ActivityMaintenanceUpdated = "MAINTENANCE_UPDATED"
	ActivityMaintenanceDeleted = "MAINTENANCE_DELETED"
	ActivityUserRoleChanged    = "USER_ROLE_CHANGED"
	ActivityUserDeleted        = "USER_DELETED"
)

// Activity is a single audit log entry.
type Activity struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}

var activityTypes = map[string]struct{}{
	ActivityMachineCreated:     {},
	ActivityMachineUpdated:     {},
	ActivityMachineDeleted:     {},
	ActivityMaintenanceCreated: {},
	ActivityMaintenanceUpdated: {},
	ActivityMaintenanceDeleted: {},
	ActivityUserRoleChanged:    {},
	ActivityUserDeleted:        {},
}

// ValidActivityType reports whether t is one of the recorded activity types.
func ValidActivityType(t string) bool {
	_, ok := activityTypes[t]
	return ok
}
