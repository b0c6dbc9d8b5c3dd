package period

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
	StatusPaid      = "paid"
)

// PayrollPeriod bounds one attendance/payroll run, inclusive on both dates.
type PayrollPeriod struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodName string    `gorm:"column:period_name;type:varchar(100);not null;unique"`
	StartDate  time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time `gorm:"column:end_date;type:date;not null"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:draft"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}
