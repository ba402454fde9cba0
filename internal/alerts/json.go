package alerts

import "encoding/json"

// alertJSON is the serialized shape of an Alert.
type alertJSON struct {
	ID            string `json:"id"`
	MachineID     string `json:"machineId"`
	MachineName   string `json:"machineName"`
	Type          string `json:"type"`
	DueDate       string `json:"dueDate"`
	Urgency       string `json:"urgency"`
	DaysOverdue   *int   `json:"daysOverdue,omitempty"`
	DaysRemaining *int   `json:"daysRemaining,omitempty"`
}

// MarshalJSON renders labels in Portuguese and the due date as dd/MM/yyyy.
func (a Alert) MarshalJSON() ([]byte, error) {
	return json.Marshal(alertJSON{
		ID:            a.ID,
		MachineID:     a.MachineID,
		MachineName:   a.MachineName,
		Type:          a.Type.String(),
		DueDate:       FormatDate(a.DueDate),
		Urgency:       a.Urgency.String(),
		DaysOverdue:   a.DaysOverdue,
		DaysRemaining: a.DaysRemaining,
	})
}
