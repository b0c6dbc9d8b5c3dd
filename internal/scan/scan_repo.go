package scan

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=scan_repo.go -destination=mock/scan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, rows []AttendanceScan) error
	FindAll(ctx context.Context, query ListScansQuery) ([]AttendanceScan, error)
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

func (r *repository) CreateBatch(ctx context.Context, rows []AttendanceScan) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 500).Error
}

func (r *repository) FindAll(ctx context.Context, query ListScansQuery) ([]AttendanceScan, error) {
	q := r.db.WithContext(ctx).Model(&AttendanceScan{})

	if query.EmployeeID != "" {
		q = q.Where("employee_id = ?", query.EmployeeID)
	}
	if query.StartDate != "" {
		q = q.Where("scan_date >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		q = q.Where("scan_date <= ?", query.EndDate)
	}

	var rows []AttendanceScan
	err := q.Order("scan_date ASC, scan_time ASC").Find(&rows).Error
	return rows, err
}
