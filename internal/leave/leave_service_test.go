package leave

import (
	"context"
	"database/sql"
	"testing"

	leaveerrors "github.com/natthaphattoichatturat/payroll-system/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn         func(tx *sql.Tx) Repository
	employeeExistsFn func(ctx context.Context, employeeID string) (bool, error)
	createBatchFn    func(ctx context.Context, rows []LeaveRecord) error
	findAllFn        func(ctx context.Context, query ListLeaveQuery) ([]LeaveRecord, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}
func (f *fakeRepo) CreateBatch(ctx context.Context, rows []LeaveRecord) error {
	return f.createBatchFn(ctx, rows)
}
func (f *fakeRepo) FindAll(ctx context.Context, query ListLeaveQuery) ([]LeaveRecord, error) {
	return f.findAllFn(ctx, query)
}

func TestLeaveService_Create_ExpandsRange(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved []LeaveRecord
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return true, nil }
	repo.createBatchFn = func(ctx context.Context, rows []LeaveRecord) error {
		saved = rows
		return nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, repo)
	result, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP001",
		StartDate:  "2025-01-15",
		EndDate:    "2025-01-17",
		LeaveType:  TypeSick,
		Reason:     "flu",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.DaysRecorded)
	assert.Equal(t, []string{"2025-01-15", "2025-01-16", "2025-01-17"}, result.Dates)
	assert.Len(t, saved, 3)
	assert.Equal(t, TypeSick, saved[0].LeaveType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveService_Create_SingleDay(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return true, nil }
	repo.createBatchFn = func(ctx context.Context, rows []LeaveRecord) error { return nil }

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, repo)
	result, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP001",
		StartDate:  "2025-01-15",
		EndDate:    "2025-01-15",
		LeaveType:  TypePersonal,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.DaysRecorded)
}

func TestLeaveService_Create_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP001",
		StartDate:  "2025-01-17",
		EndDate:    "2025-01-15",
		LeaveType:  TypeAnnual,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return false, nil }

	svc := NewService(db, repo)
	_, err := svc.Create(context.Background(), CreateLeaveRequest{
		EmployeeID: "EMP999",
		StartDate:  "2025-01-15",
		EndDate:    "2025-01-15",
		LeaveType:  TypeSick,
	})

	assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
}

func TestLeaveService_GetAll(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllFn = func(ctx context.Context, query ListLeaveQuery) ([]LeaveRecord, error) {
		assert.Equal(t, "EMP001", query.EmployeeID)
		return nil, nil
	}

	svc := NewService(db, repo)
	resp, err := svc.GetAll(context.Background(), ListLeaveQuery{EmployeeID: "EMP001"})

	assert.NoError(t, err)
	assert.Empty(t, resp)
}
