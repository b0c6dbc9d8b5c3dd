package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const directoryCacheKey = "employees:directory"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetDirectory(ctx context.Context) (Directory, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

// GetDirectory returns the employeeId -> department lookup. Concurrent
// callers collapse onto a single database load, and the result is cached
// briefly in Redis since the directory changes far less often than scans
// arrive.
func (s *service) GetDirectory(ctx context.Context) (Directory, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, directoryCacheKey).Result(); err == nil {
			var departments map[string]string
			if json.Unmarshal([]byte(cached), &departments) == nil {
				return Directory{Departments: departments}, nil
			}
		}
	}

	v, err, _ := s.sf.Do(directoryCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}

		departments := make(map[string]string, len(rows))
		for _, row := range rows {
			departments[row.EmployeeID] = row.Department
		}

		if s.rdb != nil {
			if data, err := json.Marshal(departments); err == nil {
				s.rdb.Set(ctx, directoryCacheKey, data, 10*time.Minute)
			}
		}

		return departments, nil
	})
	if err != nil {
		return Directory{}, err
	}

	return Directory{Departments: v.(map[string]string)}, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		BaseSalary: e.BaseSalary,
		OTRate:     e.OTRate,
		Status:     e.Status,
	}
	if !e.HireDate.IsZero() {
		resp.HireDate = e.HireDate.Format("2006-01-02")
	}
	return resp
}
