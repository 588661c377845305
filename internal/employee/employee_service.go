package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
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

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hireDate, termDate, err := parseEmploymentDates(req.HireDate, req.TerminationDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Position:        req.Position,
		Department:      req.Department,
		Location:        req.Location,
		BasicSalary:     req.BasicSalary,
		HourRate:        req.HourRate,
		HireDate:        hireDate,
		TerminationDate: termDate,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the stampede when the cache is cold.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOption{ID: e.ID, Name: e.FullName()}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	hireDate, termDate, err := parseEmploymentDates(req.HireDate, req.TerminationDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Position = req.Position
	empl.Department = req.Department
	empl.Location = req.Location
	empl.BasicSalary = req.BasicSalary
	empl.HourRate = req.HourRate
	empl.HireDate = hireDate
	empl.TerminationDate = termDate

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.Int64("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func parseEmploymentDates(hire, termination string) (*time.Time, *time.Time, error) {
	var hireDate, termDate *time.Time

	if hire != "" {
		t, err := time.Parse(dateLayout, hire)
		if err != nil {
			return nil, nil, employeeerrors.ErrInvalidDateFormat
		}
		hireDate = &t
	}
	if termination != "" {
		t, err := time.Parse(dateLayout, termination)
		if err != nil {
			return nil, nil, employeeerrors.ErrInvalidDateFormat
		}
		termDate = &t
	}
	if hireDate != nil && termDate != nil && termDate.Before(*hireDate) {
		return nil, nil, employeeerrors.ErrTerminationBeforeHire
	}

	return hireDate, termDate, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          empl.ID,
		FirstName:   empl.FirstName,
		LastName:    empl.LastName,
		Email:       empl.Email,
		Phone:       empl.Phone,
		Position:    empl.Position,
		Department:  empl.Department,
		Location:    empl.Location,
		BasicSalary: empl.BasicSalary.String(),
	}
	if empl.HourRate != nil {
		v := empl.HourRate.String()
		resp.HourRate = &v
	}
	if empl.HireDate != nil {
		resp.HireDate = empl.HireDate.Format(dateLayout)
	}
	if empl.TerminationDate != nil {
		resp.TerminationDate = empl.TerminationDate.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
