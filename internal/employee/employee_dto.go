package employee

type EmployeeResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position,omitempty"`
	HireDate   string  `json:"hire_date,omitempty"`
	BaseSalary float64 `json:"base_salary"`
	OTRate     float64 `json:"ot_rate"`
	Status     string  `json:"status"`
}

// Directory is the bulk lookup the engine consumes: department per employee
// id, which doubles as the valid-id set for the importer.
type Directory struct {
	Departments map[string]string
}

// Has reports whether the employee id exists in the directory.
func (d Directory) Has(employeeID string) bool {
	_, ok := d.Departments[employeeID]
	return ok
}
