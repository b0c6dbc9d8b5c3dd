package payroll

import (
	"context"
	"database/sql"
	"math"
	"sort"

	payrollerrors "github.com/natthaphattoichatturat/payroll-system/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CalculatePeriod(ctx context.Context, periodID string) (CalculateSummary, error)
	GetAllByPeriod(ctx context.Context, periodID string) ([]CalculationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// CalculatePeriod prices every attendance aggregate of the period at the
// employee's overtime rate. Employees missing from the directory keep their
// aggregate but get no payroll row; they are reported in the summary.
func (s *service) CalculatePeriod(ctx context.Context, periodID string) (CalculateSummary, error) {
	exists, err := s.repo.PeriodExists(ctx, periodID)
	if err != nil {
		return CalculateSummary{}, err
	}
	if !exists {
		return CalculateSummary{}, payrollerrors.ErrPeriodNotFound
	}

	aggregates, err := s.repo.FindAttendanceByPeriod(ctx, periodID)
	if err != nil {
		return CalculateSummary{}, err
	}
	if len(aggregates) == 0 {
		return CalculateSummary{}, payrollerrors.ErrNoAttendance
	}

	rates, err := s.repo.FindEmployeeRates(ctx)
	if err != nil {
		return CalculateSummary{}, err
	}

	summary := CalculateSummary{PeriodID: periodID}
	missing := make(map[string]struct{})

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CalculateSummary{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, agg := range aggregates {
		rate, ok := rates[agg.EmployeeID]
		if !ok {
			s.logger.Warn("skipping payroll for employee without pay rates",
				zap.String("employee_id", agg.EmployeeID),
			)
			missing[agg.EmployeeID] = struct{}{}
			continue
		}

		otAmount := roundMoney(agg.TotalOTHours * rate.OTRate)
		row := PayrollCalculation{
			ID:             uuid.New(),
			EmployeeID:     agg.EmployeeID,
			PeriodID:       agg.PeriodID,
			TotalDays:      agg.TotalWorkDays,
			RegularOTHours: agg.RegularOTHours,
			HolidayOTHours: agg.SundayOTCalculated,
			TotalOTHours:   agg.TotalOTHours,
			BaseSalary:     rate.BaseSalary,
			OTAmount:       otAmount,
			GrossSalary:    roundMoney(rate.BaseSalary + otAmount),
		}

		if err := qtx.Upsert(ctx, &row); err != nil {
			return CalculateSummary{}, err
		}

		summary.EmployeesCalculated++
		summary.TotalOTAmount = roundMoney(summary.TotalOTAmount + row.OTAmount)
		summary.TotalGrossSalary = roundMoney(summary.TotalGrossSalary + row.GrossSalary)
	}

	if err := tx.Commit(); err != nil {
		return CalculateSummary{}, err
	}

	for id := range missing {
		summary.MissingEmployeeRates = append(summary.MissingEmployeeRates, id)
	}
	sort.Strings(summary.MissingEmployeeRates)

	s.logger.Info("payroll period calculated",
		zap.String("period_id", periodID),
		zap.Int("employees", summary.EmployeesCalculated),
		zap.Float64("total_ot_amount", summary.TotalOTAmount),
	)

	return summary, nil
}

func (s *service) GetAllByPeriod(ctx context.Context, periodID string) ([]CalculationResponse, error) {
	rows, err := s.repo.FindAllByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	resp := make([]CalculationResponse, len(rows))
	for i, row := range rows {
		resp[i] = CalculationResponse{
			ID:             row.ID.String(),
			EmployeeID:     row.EmployeeID,
			PeriodID:       row.PeriodID.String(),
			TotalDays:      row.TotalDays,
			RegularOTHours: row.RegularOTHours,
			HolidayOTHours: row.HolidayOTHours,
			TotalOTHours:   row.TotalOTHours,
			BaseSalary:     row.BaseSalary,
			OTAmount:       row.OTAmount,
			GrossSalary:    row.GrossSalary,
		}
	}
	return resp, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
