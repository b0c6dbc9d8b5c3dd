package scan

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceScan is one persisted terminal punch. Rows are append-only; the
// engine rereads them in bulk per period, so no row is ever updated.
type AttendanceScan struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TerminalID string    `gorm:"column:terminal_id;type:varchar(10);not null"`
	ScanDate   time.Time `gorm:"column:scan_date;type:date;not null;index:idx_attendance_scans_date"`
	ScanTime   string    `gorm:"column:scan_time;type:time;not null"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(20);not null;index:idx_attendance_scans_employee"`
	Direction  int       `gorm:"column:direction;type:smallint;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (AttendanceScan) TableName() string {
	return "attendance_scans"
}
