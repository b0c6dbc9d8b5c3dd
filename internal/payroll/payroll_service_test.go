package payroll

import (
	"context"
	"database/sql"
	"testing"

	payrollerrors "github.com/natthaphattoichatturat/payroll-system/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn          func(tx *sql.Tx) Repository
	periodExistsFn    func(ctx context.Context, id string) (bool, error)
	findAttendanceFn  func(ctx context.Context, periodID string) ([]attendanceRow, error)
	findRatesFn       func(ctx context.Context) (map[string]employeeRateRow, error)
	upsertFn          func(ctx context.Context, row *PayrollCalculation) error
	findAllByPeriodFn func(ctx context.Context, periodID string) ([]PayrollCalculation, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) PeriodExists(ctx context.Context, id string) (bool, error) {
	return f.periodExistsFn(ctx, id)
}
func (f *fakeRepo) FindAttendanceByPeriod(ctx context.Context, periodID string) ([]attendanceRow, error) {
	return f.findAttendanceFn(ctx, periodID)
}
func (f *fakeRepo) FindEmployeeRates(ctx context.Context) (map[string]employeeRateRow, error) {
	return f.findRatesFn(ctx)
}
func (f *fakeRepo) Upsert(ctx context.Context, row *PayrollCalculation) error {
	return f.upsertFn(ctx, row)
}
func (f *fakeRepo) FindAllByPeriod(ctx context.Context, periodID string) ([]PayrollCalculation, error) {
	return f.findAllByPeriodFn(ctx, periodID)
}

func TestPayrollService_CalculatePeriod(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	periodID := uuid.New()

	var saved []PayrollCalculation
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.periodExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.findAttendanceFn = func(ctx context.Context, pid string) ([]attendanceRow, error) {
		return []attendanceRow{
			{EmployeeID: "EMP001", PeriodID: periodID, TotalWorkDays: 10, RegularOTHours: 8, SundayOTCalculated: 6, TotalOTHours: 14},
			{EmployeeID: "EMP002", PeriodID: periodID, TotalWorkDays: 0, TotalOTHours: 0},
		}, nil
	}
	repo.findRatesFn = func(ctx context.Context) (map[string]employeeRateRow, error) {
		return map[string]employeeRateRow{
			"EMP001": {EmployeeID: "EMP001", BaseSalary: 15000, OTRate: 93.75},
			"EMP002": {EmployeeID: "EMP002", BaseSalary: 12000, OTRate: 75},
		}, nil
	}
	repo.upsertFn = func(ctx context.Context, row *PayrollCalculation) error {
		saved = append(saved, *row)
		return nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, repo)
	summary, err := svc.CalculatePeriod(context.Background(), periodID.String())

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.EmployeesCalculated)
	assert.Empty(t, summary.MissingEmployeeRates)
	assert.Len(t, saved, 2)

	// 14h x 93.75 = 1312.50 on top of base salary.
	assert.Equal(t, 1312.5, saved[0].OTAmount)
	assert.Equal(t, 16312.5, saved[0].GrossSalary)
	assert.Equal(t, 6.0, saved[0].HolidayOTHours)

	// Zero OT still produces a row: base salary only.
	assert.Equal(t, 0.0, saved[1].OTAmount)
	assert.Equal(t, 12000.0, saved[1].GrossSalary)

	assert.Equal(t, 1312.5, summary.TotalOTAmount)
	assert.Equal(t, 28312.5, summary.TotalGrossSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollService_CalculatePeriod_MissingRates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	periodID := uuid.New()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.periodExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.findAttendanceFn = func(ctx context.Context, pid string) ([]attendanceRow, error) {
		return []attendanceRow{
			{EmployeeID: "EMP001", PeriodID: periodID, TotalOTHours: 4},
			{EmployeeID: "EMP404", PeriodID: periodID, TotalOTHours: 2},
		}, nil
	}
	repo.findRatesFn = func(ctx context.Context) (map[string]employeeRateRow, error) {
		return map[string]employeeRateRow{
			"EMP001": {EmployeeID: "EMP001", BaseSalary: 15000, OTRate: 100},
		}, nil
	}
	repo.upsertFn = func(ctx context.Context, row *PayrollCalculation) error { return nil }

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, repo)
	summary, err := svc.CalculatePeriod(context.Background(), periodID.String())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.EmployeesCalculated)
	assert.Equal(t, []string{"EMP404"}, summary.MissingEmployeeRates)
}

func TestPayrollService_CalculatePeriod_PeriodNotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.periodExistsFn = func(ctx context.Context, id string) (bool, error) { return false, nil }

	svc := NewService(db, repo)
	_, err := svc.CalculatePeriod(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotFound)
}

func TestPayrollService_CalculatePeriod_NoAttendance(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.periodExistsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	repo.findAttendanceFn = func(ctx context.Context, pid string) ([]attendanceRow, error) {
		return nil, nil
	}

	svc := NewService(db, repo)
	_, err := svc.CalculatePeriod(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, payrollerrors.ErrNoAttendance)
}
