package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=SICK PERSONAL ANNUAL"`
	Reason     string `json:"reason"`
}

type CreateLeaveResult struct {
	EmployeeID   string   `json:"employee_id"`
	LeaveType    string   `json:"leave_type"`
	DaysRecorded int      `json:"days_recorded"`
	Dates        []string `json:"dates"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveDate  string `json:"leave_date"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason,omitempty"`
}

type ListLeaveQuery struct {
	EmployeeID string `form:"employee_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}
