package payroll

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// attendanceRow is the slice of a daily_attendance aggregate payroll needs.
type attendanceRow struct {
	EmployeeID         string    `gorm:"column:employee_id"`
	PeriodID           uuid.UUID `gorm:"column:period_id"`
	TotalWorkDays      int       `gorm:"column:total_work_days"`
	RegularOTHours     float64   `gorm:"column:regular_ot_hours"`
	SundayOTCalculated float64   `gorm:"column:sunday_ot_calculated"`
	TotalOTHours       float64   `gorm:"column:total_ot_hours"`
}

// employeeRateRow carries the pay fields read off the employee directory.
type employeeRateRow struct {
	EmployeeID string  `gorm:"column:employee_id"`
	BaseSalary float64 `gorm:"column:base_salary"`
	OTRate     float64 `gorm:"column:ot_rate"`
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	PeriodExists(ctx context.Context, id string) (bool, error)
	FindAttendanceByPeriod(ctx context.Context, periodID string) ([]attendanceRow, error)
	FindEmployeeRates(ctx context.Context) (map[string]employeeRateRow, error)
	Upsert(ctx context.Context, row *PayrollCalculation) error
	FindAllByPeriod(ctx context.Context, periodID string) ([]PayrollCalculation, error)
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

func (r *repository) PeriodExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("payroll_periods").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAttendanceByPeriod(ctx context.Context, periodID string) ([]attendanceRow, error) {
	var rows []attendanceRow
	err := r.db.WithContext(ctx).
		Table("daily_attendance").
		Select("employee_id", "period_id", "total_work_days",
			"regular_ot_hours", "sunday_ot_calculated", "total_ot_hours").
		Where("period_id = ?", periodID).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEmployeeRates(ctx context.Context) (map[string]employeeRateRow, error) {
	var rows []employeeRateRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_id", "base_salary", "ot_rate").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	rates := make(map[string]employeeRateRow, len(rows))
	for _, row := range rows {
		rates[row.EmployeeID] = row
	}
	return rates, nil
}

// Upsert keeps payroll recalculation idempotent on (employee, period).
func (r *repository) Upsert(ctx context.Context, row *PayrollCalculation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "period_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_days", "regular_ot_hours", "holiday_ot_hours", "total_ot_hours",
				"base_salary", "ot_amount", "gross_salary", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) FindAllByPeriod(ctx context.Context, periodID string) ([]PayrollCalculation, error) {
	var rows []PayrollCalculation
	err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}
