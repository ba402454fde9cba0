package alerts

import (
	"sort"
	"time"
)

// ComputeAlerts returns the ranked maintenance alerts for machines as of today.
//
// For every machine the preventive and calibration schedules are evaluated
// independently. The reference date is the latest of the acquisition date and
// every NextScheduledDate of matching history entries; the due date is that
// reference plus the interval in months. Only obligations due within
// UpcomingWindowDays (or already overdue) produce an alert.
//
// Result order: Overdue (most overdue first), then Urgent and Upcoming (soonest
// first). Ties keep machine input order, preventive before calibration.
func ComputeAlerts(machines []MachineSnapshot, today time.Time) []Alert {
	today = TruncateToDay(today)

	out := make([]Alert, 0, len(machines))
	for _, m := range machines {
		for _, st := range scheduleTypes {
			if a, ok := evaluate(m, st, today); ok {
				out = append(out, a)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// Summarize counts alerts per urgency.
func Summarize(list []Alert) Summary {
	var s Summary
	for _, a := range list {
		switch a.Urgency {
		case Overdue:
			s.Overdue++
		case Urgent:
			s.Urgent++
		case Upcoming:
			s.Upcoming++
		}
	}
	s.Total = len(list)
	return s
}

// evaluate runs one schedule type for one machine.
func evaluate(m MachineSnapshot, st ScheduleType, today time.Time) (Alert, bool) {
	interval := intervalFor(m, st)
	if interval <= 0 {
		return Alert{}, false
	}

	ref, ok := referenceDate(m, st)
	if !ok {
		return Alert{}, false
	}

	due := AddMonths(ref, interval)
	diff := DaysBetween(today, due)

	a := Alert{
		ID:          m.ID + "-" + st.String(),
		MachineID:   m.ID,
		MachineName: m.Name,
		Type:        st,
		DueDate:     due,
	}
	switch {
	case diff < 0:
		overdue := -diff
		a.Urgency = Overdue
		a.DaysOverdue = &overdue
	case diff <= UrgentWindowDays:
		a.Urgency = Urgent
		a.DaysRemaining = &diff
	case diff <= UpcomingWindowDays:
		a.Urgency = Upcoming
		a.DaysRemaining = &diff
	default:
		return Alert{}, false
	}
	return a, true
}

func intervalFor(m MachineSnapshot, st ScheduleType) int {
	var p *int
	switch st {
	case Preventive:
		p = m.MaintenanceIntervalMonths
	case Calibration:
		p = m.CalibrationIntervalMonths
	}
	if p == nil {
		return 0
	}
	return *p
}

// referenceDate picks the most recent of the acquisition date and the next
// scheduled dates of history entries of type st.
func referenceDate(m MachineSnapshot, st ScheduleType) (time.Time, bool) {
	var (
		ref   time.Time
		found bool
	)
	consider := func(d *time.Time) {
		if d == nil || d.IsZero() {
			return
		}
		day := TruncateToDay(*d)
		if !found || day.After(ref) {
			ref = day
			found = true
		}
	}

	consider(m.AcquisitionDate)
	for _, ev := range m.History {
		if t, ok := ParseScheduleType(ev.Type); !ok || t != st {
			continue
		}
		consider(ev.NextScheduledDate)
	}
	return ref, found
}

// less orders by urgency rank, then by days overdue (desc) or days remaining (asc).
func less(a, b Alert) bool {
	if a.Urgency != b.Urgency {
		return a.Urgency < b.Urgency
	}
	if a.Urgency == Overdue {
		return *a.DaysOverdue > *b.DaysOverdue
	}
	return *a.DaysRemaining < *b.DaysRemaining
}
