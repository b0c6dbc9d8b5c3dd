package scan

type ImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// ImportSummary reports one import pass. Skipped counts scans referencing
// employees missing from the directory; they are dropped, not errors.
type ImportSummary struct {
	ScansImported int      `json:"scans_imported"`
	ScansSkipped  int      `json:"scans_skipped"`
	UnknownIDs    []string `json:"unknown_employee_ids,omitempty"`
}

type ScanResponse struct {
	ID         string `json:"id"`
	TerminalID string `json:"terminal_id"`
	ScanDate   string `json:"scan_date"`
	ScanTime   string `json:"scan_time"`
	EmployeeID string `json:"employee_id"`
	Direction  int    `json:"direction"`
}

type ListScansQuery struct {
	EmployeeID string `form:"employee_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}
