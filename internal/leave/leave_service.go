package leave

import (
	"context"
	"database/sql"
	"time"

	leaveerrors "github.com/natthaphattoichatturat/payroll-system/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResult, error)
	GetAll(ctx context.Context, query ListLeaveQuery) ([]LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create expands [start_date, end_date] into one LeaveRecord per day. The
// attendance aggregator only checks set membership per (employee, date), so
// the original range is not kept.
func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResult, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return CreateLeaveResult{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return CreateLeaveResult{}, leaveerrors.ErrInvalidDateRange
	}
	if start.After(end) {
		return CreateLeaveResult{}, leaveerrors.ErrInvalidDateRange
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return CreateLeaveResult{}, err
	}
	if !exists {
		return CreateLeaveResult{}, leaveerrors.ErrEmployeeNotFound
	}

	var rows []LeaveRecord
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rows = append(rows, LeaveRecord{
			ID:         uuid.New(),
			EmployeeID: req.EmployeeID,
			LeaveDate:  d,
			LeaveType:  req.LeaveType,
			Reason:     req.Reason,
		})
		dates = append(dates, d.Format(dateLayout))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CreateLeaveResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateBatch(ctx, rows); err != nil {
		return CreateLeaveResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return CreateLeaveResult{}, err
	}

	s.logger.Info("leave recorded",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("days", len(rows)),
	)

	return CreateLeaveResult{
		EmployeeID:   req.EmployeeID,
		LeaveType:    req.LeaveType,
		DaysRecorded: len(rows),
		Dates:        dates,
	}, nil
}

func (s *service) GetAll(ctx context.Context, query ListLeaveQuery) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(rows))
	for i, row := range rows {
		resp[i] = LeaveResponse{
			ID:         row.ID.String(),
			EmployeeID: row.EmployeeID,
			LeaveDate:  row.LeaveDate.Format(dateLayout),
			LeaveType:  row.LeaveType,
			Reason:     row.Reason,
		}
	}
	return resp, nil
}
