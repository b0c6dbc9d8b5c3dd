package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	CreateBatch(ctx context.Context, rows []LeaveRecord) error
	FindAll(ctx context.Context, query ListLeaveQuery) ([]LeaveRecord, error)
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

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

// CreateBatch records one row per leave date. Re-submitting the same range
// is a no-op for dates already on file.
func (r *repository) CreateBatch(ctx context.Context, rows []LeaveRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_date"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *repository) FindAll(ctx context.Context, query ListLeaveQuery) ([]LeaveRecord, error) {
	db := r.db.WithContext(ctx).Model(&LeaveRecord{})

	if query.EmployeeID != "" {
		db = db.Where("employee_id = ?", query.EmployeeID)
	}
	if query.StartDate != "" {
		db = db.Where("leave_date >= ?", query.StartDate)
	}
	if query.EndDate != "" {
		db = db.Where("leave_date <= ?", query.EndDate)
	}

	var rows []LeaveRecord
	err := db.Order("leave_date ASC, employee_id ASC").Find(&rows).Error
	return rows, err
}
