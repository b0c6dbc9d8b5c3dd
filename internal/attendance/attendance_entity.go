package attendance

import (
	"time"

	"github.com/google/uuid"
)

// DailyAttendance is the persisted period aggregate, one row per
// (employee, period). Days holds the full day-indexed sequence of
// DailyOTResult as JSONB; recomputation overwrites the row in place.
type DailyAttendance struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:uq_daily_attendance_employee_period"`
	PeriodID    uuid.UUID `gorm:"column:period_id;type:uuid;not null;uniqueIndex:uq_daily_attendance_employee_period"`
	PeriodStart time.Time `gorm:"column:period_start;type:date;not null"`
	PeriodEnd   time.Time `gorm:"column:period_end;type:date;not null"`

	Days []byte `gorm:"column:days;type:jsonb;not null"`

	TotalWorkDays      int     `gorm:"column:total_work_days;not null;default:0"`
	RegularOTHours     float64 `gorm:"column:regular_ot_hours;type:numeric(8,2);not null;default:0"`
	SundayOTHours      float64 `gorm:"column:sunday_ot_hours;type:numeric(8,2);not null;default:0"`
	SundayOTCalculated float64 `gorm:"column:sunday_ot_calculated;type:numeric(8,2);not null;default:0"`
	TotalOTHours       float64 `gorm:"column:total_ot_hours;type:numeric(8,2);not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (DailyAttendance) TableName() string {
	return "daily_attendance"
}
