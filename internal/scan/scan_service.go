package scan

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/natthaphattoichatturat/payroll-system/internal/employee"
	scanerrors "github.com/natthaphattoichatturat/payroll-system/internal/scan/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DirectoryLookup is the slice of the employee service the importer needs:
// the valid-id set it filters against.
type DirectoryLookup interface {
	GetDirectory(ctx context.Context) (employee.Directory, error)
}

//go:generate mockgen -source=scan_service.go -destination=mock/scan_service_mock.go -package=mock
type Service interface {
	Import(ctx context.Context, req ImportRequest) (ImportSummary, error)
	GetAll(ctx context.Context, query ListScansQuery) ([]ScanResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory DirectoryLookup
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory DirectoryLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("scan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("scan.service")
	}
	return &service{db: db, repo: repo, directory: directory, logger: l}
}

// Import parses a raw terminal dump, drops scans for employees missing from
// the directory, and appends the rest to the scan log. Dropped scans are
// reported in the summary, never as errors.
func (s *service) Import(ctx context.Context, req ImportRequest) (ImportSummary, error) {
	parsed := ParseText(req.Text, s.logger)
	if len(parsed) == 0 {
		return ImportSummary{}, scanerrors.ErrNoValidRecords
	}

	directory, err := s.directory.GetDirectory(ctx)
	if err != nil {
		return ImportSummary{}, err
	}

	rows := make([]AttendanceScan, 0, len(parsed))
	unknown := make(map[string]struct{})
	skipped := 0

	for _, ev := range parsed {
		if !directory.Has(ev.EmployeeID) {
			s.logger.Warn("skipping scan for unknown employee",
				zap.String("employee_id", ev.EmployeeID),
			)
			unknown[ev.EmployeeID] = struct{}{}
			skipped++
			continue
		}

		scanDate, err := time.Parse(dateLayout, ev.Date)
		if err != nil {
			s.logger.Warn("skipping scan with malformed date",
				zap.String("employee_id", ev.EmployeeID),
				zap.String("scan_date", ev.Date),
			)
			skipped++
			continue
		}

		rows = append(rows, AttendanceScan{
			ID:         uuid.New(),
			TerminalID: ev.TerminalID,
			ScanDate:   scanDate,
			ScanTime:   ev.Time,
			EmployeeID: ev.EmployeeID,
			Direction:  ev.Direction,
		})
	}

	if len(rows) == 0 {
		return ImportSummary{}, scanerrors.ErrNoKnownEmployees
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateBatch(ctx, rows); err != nil {
		return ImportSummary{}, err
	}
	if err := tx.Commit(); err != nil {
		return ImportSummary{}, err
	}

	unknownIDs := make([]string, 0, len(unknown))
	for id := range unknown {
		unknownIDs = append(unknownIDs, id)
	}
	sort.Strings(unknownIDs)

	s.logger.Info("scan import finished",
		zap.Int("imported", len(rows)),
		zap.Int("skipped", skipped),
	)

	return ImportSummary{
		ScansImported: len(rows),
		ScansSkipped:  skipped,
		UnknownIDs:    unknownIDs,
	}, nil
}

func (s *service) GetAll(ctx context.Context, query ListScansQuery) ([]ScanResponse, error) {
	rows, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := make([]ScanResponse, len(rows))
	for i, row := range rows {
		resp[i] = ScanResponse{
			ID:         row.ID.String(),
			TerminalID: row.TerminalID,
			ScanDate:   row.ScanDate.Format(dateLayout),
			ScanTime:   row.ScanTime,
			EmployeeID: row.EmployeeID,
			Direction:  row.Direction,
		}
	}
	return resp, nil
}
