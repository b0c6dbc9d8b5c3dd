package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeSick     = "SICK"
	TypePersonal = "PERSONAL"
	TypeAnnual   = "ANNUAL"
)

// LeaveRecord stores one approved leave day. Multi-day leave requests are
// expanded into one row per date so the attendance aggregator can test a
// single (employee, date) key.
type LeaveRecord struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:uq_leave_records_employee_date"`
	LeaveDate  time.Time `gorm:"column:leave_date;type:date;not null;uniqueIndex:uq_leave_records_employee_date"`
	LeaveType  string    `gorm:"column:leave_type;type:varchar(20);not null"`
	Reason     string    `gorm:"column:reason;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (LeaveRecord) TableName() string {
	return "leave_records"
}
