package employee

import (
	"context"
	"time"

	employeeerrors "hr-payroll/internal/employee/errors"
	"hr-payroll/internal/shared/contextutil"
	"hr-payroll/internal/shared/counter"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID int64) error
	Count(ctx context.Context) (int64, error)
	TotalSalary(ctx context.Context) (float64, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joined, err := time.Parse(dateLayout, req.DateOfJoining)
	if err != nil {
		s.logger.Warn("create employee invalid date_of_joining",
			zap.String("date_of_joining", req.DateOfJoining),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
	}

	nextID, err := s.counter.NextValue(ctx, counter.KindEmployee)
	if err != nil {
		s.logger.Error("create employee allocate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		EmployeeID:    nextID,
		Name:          req.Name,
		Email:         req.Email,
		Categories:    req.Categories,
		Salary:        *req.Salary,
		DateOfJoining: joined,
		Designation:   req.Designation,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.EmployeeID),
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

func (s *service) GetByEmployeeID(ctx context.Context, employeeID int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee by id failed",
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Update replaces exactly the fields the caller supplied and leaves the
// rest untouched. The allocated employeeId is never writable.
func (s *service) Update(ctx context.Context, employeeID int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Categories != nil {
		fields["categories"] = *req.Categories
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.DateOfJoining != nil {
		joined, err := time.Parse(dateLayout, *req.DateOfJoining)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
		}
		fields["date_of_joining"] = joined
	}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}

	if len(fields) > 0 {
		updated, err := s.repo.UpdateFields(ctx, employeeID, fields)
		if err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
		if updated == 0 {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
	}

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Int64("employee_id", employeeID))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, employeeID int64) error {
	deleted, err := s.repo.Delete(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if deleted == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.Int64("employee_id", employeeID))
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	return total, nil
}

func (s *service) TotalSalary(ctx context.Context) (float64, error) {
	total, err := s.repo.SumSalary(ctx)
	if err != nil {
		s.logger.Error("sum salary failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	return total, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    empl.EmployeeID,
		Name:          empl.Name,
		Email:         empl.Email,
		Categories:    empl.Categories,
		Salary:        empl.Salary,
		DateOfJoining: empl.DateOfJoining.Format(dateLayout),
		Designation:   empl.Designation,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
