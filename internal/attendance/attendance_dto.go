package attendance

type CalculateRequest struct {
	PeriodID string `json:"period_id" binding:"required,uuid"`
}

// EmployeeRunResult is one employee's line in the run summary.
type EmployeeRunResult struct {
	EmployeeID   string  `json:"employee_id"`
	TotalOTHours float64 `json:"total_ot_hours"`
	WorkDays     int     `json:"work_days"`
}

// RunSummary reports one aggregation pass over a period. Failed employees
// are listed so the operator can re-run selectively.
type RunSummary struct {
	PeriodID           string              `json:"period_id"`
	EmployeesProcessed int                 `json:"employees_processed"`
	ScansInPeriod      int                 `json:"scans_in_period"`
	FailedEmployeeIDs  []string            `json:"failed_employee_ids,omitempty"`
	Results            []EmployeeRunResult `json:"results"`
}

type DailyAttendanceResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	PeriodID           string          `json:"period_id"`
	PeriodStart        string          `json:"period_start"`
	PeriodEnd          string          `json:"period_end"`
	Days               []DailyOTResult `json:"days"`
	TotalWorkDays      int             `json:"total_work_days"`
	RegularOTHours     float64         `json:"regular_ot_hours"`
	SundayOTHours      float64         `json:"sunday_ot_hours"`
	SundayOTCalculated float64         `json:"sunday_ot_calculated"`
	TotalOTHours       float64         `json:"total_ot_hours"`
}
