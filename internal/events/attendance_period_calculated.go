package events

import "time"

const AttendancePeriodCalculatedTopic = "payroll.attendance.period.v1"

// AttendancePeriodCalculatedEvent announces that the OT aggregates for a
// period are persisted and ready for the monetary payroll step.
type AttendancePeriodCalculatedEvent struct {
	EventType          string    `json:"event_type"`
	PeriodID           string    `json:"period_id"`
	EmployeesProcessed int       `json:"employees_processed"`
	FailedEmployeeIDs  []string  `json:"failed_employee_ids,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
