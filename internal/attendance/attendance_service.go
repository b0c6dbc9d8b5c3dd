package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	attendanceerrors "github.com/natthaphattoichatturat/payroll-system/internal/attendance/errors"
	"github.com/natthaphattoichatturat/payroll-system/internal/events"
	"github.com/natthaphattoichatturat/payroll-system/internal/messaging/kafka"
	"github.com/natthaphattoichatturat/payroll-system/internal/shared/apperror"
	"github.com/natthaphattoichatturat/payroll-system/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CalculatePeriod(ctx context.Context, periodID string) (RunSummary, error)
	GetAllByPeriod(ctx context.Context, periodID string) ([]DailyAttendanceResponse, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (DailyAttendanceResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	workers int
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		outbox:  outboxRepo,
		workers: runtime.GOMAXPROCS(0),
		logger:  l,
	}
}

// CalculatePeriod runs the whole attendance-to-overtime batch for one
// payroll period. All inputs are fetched in bulk up front; employees are
// then computed in parallel with no shared mutable state. A failing
// employee is skipped and reported, never aborting the rest of the batch.
func (s *service) CalculatePeriod(ctx context.Context, periodID string) (RunSummary, error) {
	if _, err := uuid.Parse(periodID); err != nil {
		return RunSummary{}, apperror.ErrInvalidInput
	}

	period, err := s.repo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RunSummary{}, attendanceerrors.ErrPeriodNotFound
		}
		return RunSummary{}, err
	}

	employees, err := s.repo.FindEmployeeDirectory(ctx)
	if err != nil {
		return RunSummary{}, err
	}
	if len(employees) == 0 {
		return RunSummary{}, attendanceerrors.ErrNoEmployees
	}

	scans, err := s.repo.FindScansInRange(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return RunSummary{}, err
	}

	onLeave, err := s.repo.FindLeaveDates(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return RunSummary{}, err
	}

	scansByEmployee := make(map[string][]ScanPunch)
	for _, punch := range scans {
		scansByEmployee[punch.EmployeeID] = append(scansByEmployee[punch.EmployeeID], punch)
	}

	s.logger.Info("period calculation started",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("period_id", periodID),
		zap.Int("employees", len(employees)),
		zap.Int("scans", len(scans)),
	)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []EmployeeRunResult
		failed  []string
	)

	sem := make(chan struct{}, s.workers)
	for _, emp := range employees {
		wg.Add(1)
		go func(emp EmployeeRef) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := s.computeAndStore(ctx, emp, scansByEmployee[emp.EmployeeID], onLeave, period)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error("employee calculation failed",
					zap.String("period_id", periodID),
					zap.String("employee_id", emp.EmployeeID),
					zap.Error(err),
				)
				failed = append(failed, emp.EmployeeID)
				return
			}
			results = append(results, result)
		}(emp)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].EmployeeID < results[j].EmployeeID })
	sort.Strings(failed)

	summary := RunSummary{
		PeriodID:           periodID,
		EmployeesProcessed: len(results),
		ScansInPeriod:      len(scans),
		FailedEmployeeIDs:  failed,
		Results:            results,
	}

	if err := s.publishPeriodCalculated(ctx, summary); err != nil {
		s.logger.Error("enqueue period calculated event failed",
			zap.String("period_id", periodID),
			zap.Error(err),
		)
	}

	s.logger.Info("period calculation finished",
		zap.String("period_id", periodID),
		zap.Int("processed", summary.EmployeesProcessed),
		zap.Int("failed", len(failed)),
	)

	return summary, nil
}

// computeAndStore builds one employee's aggregate and upserts it in its own
// transaction, so a failure here never leaves a partial row behind.
func (s *service) computeAndStore(
	ctx context.Context,
	emp EmployeeRef,
	punches []ScanPunch,
	onLeave map[string]struct{},
	period *PeriodRef,
) (EmployeeRunResult, error) {
	agg := BuildPeriodAggregate(emp.EmployeeID, emp.Department, punches, onLeave, period.StartDate, period.EndDate)

	days, err := json.Marshal(agg.Days)
	if err != nil {
		return EmployeeRunResult{}, err
	}

	row := &DailyAttendance{
		ID:                 uuid.New(),
		EmployeeID:         agg.EmployeeID,
		PeriodID:           period.ID,
		PeriodStart:        agg.PeriodStart,
		PeriodEnd:          agg.PeriodEnd,
		Days:               days,
		TotalWorkDays:      agg.TotalWorkDays,
		RegularOTHours:     agg.RegularOTHours,
		SundayOTHours:      agg.SundayOTHours,
		SundayOTCalculated: agg.SundayOTCalculated,
		TotalOTHours:       agg.TotalOTHours,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeRunResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, row); err != nil {
		return EmployeeRunResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return EmployeeRunResult{}, err
	}

	return EmployeeRunResult{
		EmployeeID:   agg.EmployeeID,
		TotalOTHours: agg.TotalOTHours,
		WorkDays:     agg.TotalWorkDays,
	}, nil
}

func (s *service) publishPeriodCalculated(ctx context.Context, summary RunSummary) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.AttendancePeriodCalculatedEvent{
		EventType:          "attendance.period.calculated",
		PeriodID:           summary.PeriodID,
		EmployeesProcessed: summary.EmployeesProcessed,
		FailedEmployeeIDs:  summary.FailedEmployeeIDs,
		OccurredAt:         time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll_period",
		AggregateID:   summary.PeriodID,
		EventType:     "attendance.period.calculated",
		Topic:         events.AttendancePeriodCalculatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetAllByPeriod(ctx context.Context, periodID string) ([]DailyAttendanceResponse, error) {
	if _, err := uuid.Parse(periodID); err != nil {
		return nil, apperror.ErrInvalidInput
	}

	rows, err := s.repo.FindAllByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	resp := make([]DailyAttendanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (DailyAttendanceResponse, error) {
	if _, err := uuid.Parse(periodID); err != nil {
		return DailyAttendanceResponse{}, apperror.ErrInvalidInput
	}

	row, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DailyAttendanceResponse{}, attendanceerrors.ErrAggregateNotFound
		}
		return DailyAttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func mapToResponse(row DailyAttendance) DailyAttendanceResponse {
	var days []DailyOTResult
	_ = json.Unmarshal(row.Days, &days)

	return DailyAttendanceResponse{
		ID:                 row.ID.String(),
		EmployeeID:         row.EmployeeID,
		PeriodID:           row.PeriodID.String(),
		PeriodStart:        row.PeriodStart.Format(dateLayout),
		PeriodEnd:          row.PeriodEnd.Format(dateLayout),
		Days:               days,
		TotalWorkDays:      row.TotalWorkDays,
		RegularOTHours:     row.RegularOTHours,
		SundayOTHours:      row.SundayOTHours,
		SundayOTCalculated: row.SundayOTCalculated,
		TotalOTHours:       row.TotalOTHours,
	}
}
