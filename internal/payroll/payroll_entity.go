package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayrollCalculation is the money side of one (employee, period): the
// attendance aggregate priced at the employee's overtime rate. Recalculation
// overwrites the row.
type PayrollCalculation struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:uq_payroll_calculations_employee_period"`
	PeriodID   uuid.UUID `gorm:"column:period_id;type:uuid;not null;uniqueIndex:uq_payroll_calculations_employee_period"`

	TotalDays      int     `gorm:"column:total_days;not null;default:0"`
	RegularOTHours float64 `gorm:"column:regular_ot_hours;type:numeric(8,2);not null;default:0"`
	HolidayOTHours float64 `gorm:"column:holiday_ot_hours;type:numeric(8,2);not null;default:0"`
	TotalOTHours   float64 `gorm:"column:total_ot_hours;type:numeric(8,2);not null;default:0"`

	BaseSalary  float64 `gorm:"column:base_salary;type:numeric(12,2);not null;default:0"`
	OTAmount    float64 `gorm:"column:ot_amount;type:numeric(12,2);not null;default:0"`
	GrossSalary float64 `gorm:"column:gross_salary;type:numeric(12,2);not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PayrollCalculation) TableName() string {
	return "payroll_calculations"
}
