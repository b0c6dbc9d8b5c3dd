package period

import (
	"context"
	"database/sql"
	"testing"

	perioderrors "github.com/natthaphattoichatturat/payroll-system/internal/period/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, row *PayrollPeriod) error
	findAllFn  func(ctx context.Context) ([]PayrollPeriod, error)
	findByIDFn func(ctx context.Context, id string) (*PayrollPeriod, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, row *PayrollPeriod) error {
	return f.createFn(ctx, row)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]PayrollPeriod, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*PayrollPeriod, error) {
	return f.findByIDFn(ctx, id)
}

func TestPeriodService_Create(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var saved PayrollPeriod
	repo := &fakeRepo{
		createFn: func(ctx context.Context, row *PayrollPeriod) error {
			saved = *row
			return nil
		},
	}

	svc := NewService(db, repo)
	resp, err := svc.Create(context.Background(), CreatePeriodRequest{
		PeriodName: "2025-01 first half",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusDraft, resp.Status)
	assert.Equal(t, "2025-01-01", resp.StartDate)
	assert.Equal(t, "2025-01-15", resp.EndDate)
	assert.Equal(t, StatusDraft, saved.Status)
}

func TestPeriodService_Create_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.Create(context.Background(), CreatePeriodRequest{
		PeriodName: "backwards",
		StartDate:  "2025-01-15",
		EndDate:    "2025-01-01",
	})

	assert.ErrorIs(t, err, perioderrors.ErrInvalidDateRange)
}

func TestPeriodService_Create_DuplicateName(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, row *PayrollPeriod) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}

	svc := NewService(db, repo)
	_, err := svc.Create(context.Background(), CreatePeriodRequest{
		PeriodName: "2025-01 first half",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-15",
	})

	assert.ErrorIs(t, err, perioderrors.ErrDuplicatePeriodName)
}

func TestPeriodService_GetByID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, got string) (*PayrollPeriod, error) {
			assert.Equal(t, id.String(), got)
			return &PayrollPeriod{ID: id, PeriodName: "p", Status: StatusDraft}, nil
		},
	}

	svc := NewService(db, repo)
	resp, err := svc.GetByID(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
}

func TestPeriodService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*PayrollPeriod, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo)
	_, err := svc.GetByID(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, perioderrors.ErrPeriodNotFound)
}

func TestPeriodService_GetByID_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.GetByID(context.Background(), "nope")

	assert.Error(t, err)
}
