package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PeriodRef is the slice of a payroll period the aggregator needs.
type PeriodRef struct {
	ID        uuid.UUID `gorm:"column:id"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
}

// EmployeeRef is one entry of the employee directory.
type EmployeeRef struct {
	EmployeeID string `gorm:"column:employee_id"`
	Department string `gorm:"column:department"`
}

type scanRow struct {
	TerminalID string    `gorm:"column:terminal_id"`
	ScanDate   time.Time `gorm:"column:scan_date"`
	ScanTime   string    `gorm:"column:scan_time"`
	EmployeeID string    `gorm:"column:employee_id"`
	Direction  int       `gorm:"column:direction"`
}

type leaveRow struct {
	EmployeeID string    `gorm:"column:employee_id"`
	LeaveDate  time.Time `gorm:"column:leave_date"`
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindPeriodByID(ctx context.Context, id string) (*PeriodRef, error)
	FindEmployeeDirectory(ctx context.Context) ([]EmployeeRef, error)
	FindScansInRange(ctx context.Context, start, end time.Time) ([]ScanPunch, error)
	FindLeaveDates(ctx context.Context, start, end time.Time) (map[string]struct{}, error)
	Upsert(ctx context.Context, row *DailyAttendance) error
	FindAllByPeriod(ctx context.Context, periodID string) ([]DailyAttendance, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*DailyAttendance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindPeriodByID(ctx context.Context, id string) (*PeriodRef, error) {
	var p PeriodRef
	err := r.db.WithContext(ctx).
		Table("payroll_periods").
		Select("id", "start_date", "end_date").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindEmployeeDirectory(ctx context.Context) ([]EmployeeRef, error) {
	var refs []EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_id", "department").
		Where("status = ?", "active").
		Order("employee_id ASC").
		Find(&refs).Error
	return refs, err
}

func (r *repository) FindScansInRange(ctx context.Context, start, end time.Time) ([]ScanPunch, error) {
	var rows []scanRow
	err := r.db.WithContext(ctx).
		Table("attendance_scans").
		Select("terminal_id", "scan_date", "scan_time", "employee_id", "direction").
		Where("scan_date >= ? AND scan_date <= ?", start.Format(dateLayout), end.Format(dateLayout)).
		Order("scan_date ASC, scan_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	punches := make([]ScanPunch, len(rows))
	for i, row := range rows {
		punches[i] = ScanPunch{
			TerminalID: row.TerminalID,
			Date:       row.ScanDate.Format(dateLayout),
			Time:       row.ScanTime,
			EmployeeID: row.EmployeeID,
			Direction:  row.Direction,
		}
	}
	return punches, nil
}

func (r *repository) FindLeaveDates(ctx context.Context, start, end time.Time) (map[string]struct{}, error) {
	var rows []leaveRow
	err := r.db.WithContext(ctx).
		Table("leave_records").
		Select("employee_id", "leave_date").
		Where("leave_date >= ? AND leave_date <= ?", start.Format(dateLayout), end.Format(dateLayout)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	onLeave := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		onLeave[LeaveKey(row.EmployeeID, row.LeaveDate.Format(dateLayout))] = struct{}{}
	}
	return onLeave, nil
}

// Upsert overwrites any prior aggregate for the same (employee, period) key,
// so recomputation stays idempotent.
func (r *repository) Upsert(ctx context.Context, row *DailyAttendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "period_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"period_start", "period_end", "days",
				"total_work_days", "regular_ot_hours",
				"sunday_ot_hours", "sunday_ot_calculated", "total_ot_hours",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) FindAllByPeriod(ctx context.Context, periodID string) ([]DailyAttendance, error) {
	var rows []DailyAttendance
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*DailyAttendance, error) {
	var row DailyAttendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("period_id = ?", periodID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
