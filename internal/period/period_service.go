package period

import (
	"context"
	"database/sql"
	"errors"
	"time"

	perioderrors "github.com/natthaphattoichatturat/payroll-system/internal/period/errors"
	"github.com/natthaphattoichatturat/payroll-system/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=period_service.go -destination=mock/period_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetAll(ctx context.Context) ([]PeriodResponse, error)
	GetByID(ctx context.Context, id string) (PeriodResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("period.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("period.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return PeriodResponse{}, perioderrors.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return PeriodResponse{}, perioderrors.ErrInvalidDateRange
	}
	if start.After(end) {
		return PeriodResponse{}, perioderrors.ErrInvalidDateRange
	}

	row := PayrollPeriod{
		ID:         uuid.New(),
		PeriodName: req.PeriodName,
		StartDate:  start,
		EndDate:    end,
		Status:     StatusDraft,
	}

	if err := s.repo.Create(ctx, &row); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return PeriodResponse{}, perioderrors.ErrDuplicatePeriodName
		}
		return PeriodResponse{}, err
	}

	s.logger.Info("payroll period created",
		zap.String("period_id", row.ID.String()),
		zap.String("period_name", row.PeriodName),
	)

	return mapToResponse(row), nil
}

func (s *service) GetAll(ctx context.Context) ([]PeriodResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PeriodResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PeriodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PeriodResponse{}, apperror.InvalidField("period_id")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PeriodResponse{}, perioderrors.ErrPeriodNotFound
		}
		return PeriodResponse{}, err
	}
	return mapToResponse(*row), nil
}

func mapToResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:         p.ID.String(),
		PeriodName: p.PeriodName,
		StartDate:  p.StartDate.Format(dateLayout),
		EndDate:    p.EndDate.Format(dateLayout),
		Status:     p.Status,
	}
}
