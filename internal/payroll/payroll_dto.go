package payroll

type CalculateRequest struct {
	PeriodID string `json:"period_id" binding:"required,uuid"`
}

type CalculateSummary struct {
	PeriodID             string  `json:"period_id"`
	EmployeesCalculated  int     `json:"employees_calculated"`
	TotalOTAmount        float64 `json:"total_ot_amount"`
	TotalGrossSalary     float64 `json:"total_gross_salary"`
	MissingEmployeeRates []string `json:"missing_employee_rates,omitempty"`
}

type CalculationResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	PeriodID       string  `json:"period_id"`
	TotalDays      int     `json:"total_days"`
	RegularOTHours float64 `json:"regular_ot_hours"`
	HolidayOTHours float64 `json:"holiday_ot_hours"`
	TotalOTHours   float64 `json:"total_ot_hours"`
	BaseSalary     float64 `json:"base_salary"`
	OTAmount       float64 `json:"ot_amount"`
	GrossSalary    float64 `json:"gross_salary"`
}
