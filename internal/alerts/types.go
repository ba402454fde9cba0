// Package alerts computes maintenance due-date alerts for hospital equipment.
//
// The engine is a pure function over an in-memory snapshot: it never reads the
// clock, never touches storage and never mutates its input. "Today" is always
// passed in by the caller.
package alerts

import "time"

// ScheduleType is one of the two maintenance obligations tracked per machine.
type ScheduleType int

const (
	Preventive ScheduleType = iota
	Calibration
)

// Labels used in maintenance records and on the wire.
const (
	LabelPreventive  = "Preventiva"
	LabelCalibration = "Calibração"
)

// scheduleTypes is the evaluation order for every machine.
var scheduleTypes = []ScheduleType{Preventive, Calibration}

// String returns the wire label.
func (s ScheduleType) String() string {
	switch s {
	case Preventive:
		return LabelPreventive
	case Calibration:
		return LabelCalibration
	default:
		return "unknown"
	}
}

// ParseScheduleType maps a record label to a schedule type. Matching is exact;
// any other label (e.g. "Corretiva") reports false.
func ParseScheduleType(label string) (ScheduleType, bool) {
	switch label {
	case LabelPreventive:
		return Preventive, true
	case LabelCalibration:
		return Calibration, true
	default:
		return 0, false
	}
}

// Urgency classifies how close a due date is. Lower values sort first.
type Urgency int

const (
	Overdue Urgency = iota
	Urgent
	Upcoming
)

// Classification thresholds, in days until due.
const (
	UrgentWindowDays   = 7
	UpcomingWindowDays = 30
)

func (u Urgency) String() string {
	switch u {
	case Overdue:
		return "Vencida"
	case Urgent:
		return "Urgente"
	case Upcoming:
		return "Próxima"
	default:
		return "unknown"
	}
}

// MaintenanceEvent is one entry of a machine's maintenance history as seen by
// the engine. Only NextScheduledDate feeds the schedule; the date the work was
// actually performed is not used.
type MaintenanceEvent struct {
	Type              string
	NextScheduledDate *time.Time
}

// MachineSnapshot is a read-only view of a machine and its history.
// Intervals that are nil or <= 0 mean the schedule is not tracked.
type MachineSnapshot struct {
	ID                        string
	Name                      string
	AcquisitionDate           *time.Time
	MaintenanceIntervalMonths *int
	CalibrationIntervalMonths *int
	History                   []MaintenanceEvent
}

// Alert is a single due or overdue obligation. Exactly one of DaysOverdue and
// DaysRemaining is set, depending on Urgency.
type Alert struct {
	ID            string
	MachineID     string
	MachineName   string
	Type          ScheduleType
	DueDate       time.Time
	Urgency       Urgency
	DaysOverdue   *int
	DaysRemaining *int
}

// Summary counts alerts per urgency.
type Summary struct {
	Overdue  int `json:"overdue"`
	Urgent   int `json:"urgent"`
	Upcoming int `json:"upcoming"`
	Total    int `json:"total"`
}
