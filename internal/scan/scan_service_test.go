package scan

import (
	"context"
	"database/sql"
	"testing"

	"github.com/natthaphattoichatturat/payroll-system/internal/employee"
	scanerrors "github.com/natthaphattoichatturat/payroll-system/internal/scan/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn      func(tx *sql.Tx) Repository
	createBatchFn func(ctx context.Context, rows []AttendanceScan) error
	findAllFn     func(ctx context.Context, query ListScansQuery) ([]AttendanceScan, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) CreateBatch(ctx context.Context, rows []AttendanceScan) error {
	return f.createBatchFn(ctx, rows)
}
func (f *fakeRepo) FindAll(ctx context.Context, query ListScansQuery) ([]AttendanceScan, error) {
	return f.findAllFn(ctx, query)
}

type fakeDirectory struct {
	departments map[string]string
}

func (f *fakeDirectory) GetDirectory(ctx context.Context) (employee.Directory, error) {
	return employee.Directory{Departments: f.departments}, nil
}

func TestScanService_Import(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved []AttendanceScan
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createBatchFn = func(ctx context.Context, rows []AttendanceScan) error {
		saved = rows
		return nil
	}
	directory := &fakeDirectory{departments: map[string]string{
		"EMP001": "production",
		"EMP002": "production",
	}}

	text := `T001 15-01-2025 08:01:30 'EMP001 1
T001 15-01-2025 17:35:00 'EMP001 2
T001 15-01-2025 07:58:00 'EMP999 1
bad line`

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, repo, directory)
	summary, err := svc.Import(context.Background(), ImportRequest{Text: text})

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.ScansImported)
	assert.Equal(t, 1, summary.ScansSkipped)
	assert.Equal(t, []string{"EMP999"}, summary.UnknownIDs)
	assert.Len(t, saved, 2)
	assert.Equal(t, "EMP001", saved[0].EmployeeID)
	assert.Equal(t, "2025-01-15", saved[0].ScanDate.Format("2006-01-02"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanService_Import_NoValidRecords(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeDirectory{})
	_, err := svc.Import(context.Background(), ImportRequest{Text: "garbage\nmore garbage"})

	assert.ErrorIs(t, err, scanerrors.ErrNoValidRecords)
}

func TestScanService_Import_AllUnknownEmployees(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeDirectory{departments: map[string]string{}})
	_, err := svc.Import(context.Background(), ImportRequest{
		Text: "T001 15-01-2025 08:01:30 'EMP999 1",
	})

	assert.ErrorIs(t, err, scanerrors.ErrNoKnownEmployees)
}

func TestScanService_GetAll(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllFn = func(ctx context.Context, query ListScansQuery) ([]AttendanceScan, error) {
		assert.Equal(t, "EMP001", query.EmployeeID)
		return nil, nil
	}

	svc := NewService(db, repo, &fakeDirectory{})
	resp, err := svc.GetAll(context.Background(), ListScansQuery{EmployeeID: "EMP001"})

	assert.NoError(t, err)
	assert.Empty(t, resp)
}
