package employeecode

import (
	"context"

	employeecodeerrors "hr-payroll/internal/employeecode/errors"
	"hr-payroll/internal/shared/contextutil"
	"hr-payroll/internal/shared/counter"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employeecode_service.go -destination=mock/employeecode_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeCodeRequest) (EmployeeCodeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeCodeResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) (EmployeeCodeResponse, error)
	Update(ctx context.Context, employeeID int64, req UpdateEmployeeCodeRequest) (EmployeeCodeResponse, error)
	Delete(ctx context.Context, employeeID int64) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeecode.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeecode.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeCodeRequest) (EmployeeCodeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	employeeID := *req.EmployeeID
	s.logger.Debug("create employee code requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", employeeID),
	)

	exists, err := s.repo.ExistsForEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("create employee code pre-check failed", zap.Error(err))
		return EmployeeCodeResponse{}, err
	}
	if exists {
		s.logger.Warn("create employee code duplicate assignment",
			zap.Int64("employee_id", employeeID),
		)
		return EmployeeCodeResponse{}, employeecodeerrors.ErrEmployeeAlreadyHasCode
	}

	nextID, err := s.counter.NextValue(ctx, counter.KindEmployeeCode)
	if err != nil {
		s.logger.Error("create employee code allocate id failed", zap.Error(err))
		return EmployeeCodeResponse{}, err
	}

	ec := &EmployeeCode{
		EmployeeCodeID: nextID,
		EmployeeID:     employeeID,
		EmployeeCode:   req.EmployeeCode,
	}

	if err := s.repo.Create(ctx, ec); err != nil {
		s.logger.Error("create employee code persist failed", zap.Error(err))
		return EmployeeCodeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee code success",
		zap.String("request_id", rid),
		zap.Int64("employee_code_id", ec.EmployeeCodeID),
	)

	return mapToResponse(*ec), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeCodeResponse, error) {
	codes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employee codes failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeCodeResponse, len(codes))
	for i, ec := range codes {
		res[i] = mapToResponse(ec)
	}
	return res, nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID int64) (EmployeeCodeResponse, error) {
	ec, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee code failed",
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeCodeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*ec), nil
}

// Update replaces the code value outright; the prior value is gone.
func (s *service) Update(ctx context.Context, employeeID int64, req UpdateEmployeeCodeRequest) (EmployeeCodeResponse, error) {
	updated, err := s.repo.UpdateCode(ctx, employeeID, req.EmployeeCode)
	if err != nil {
		s.logger.Error("update employee code persist failed", zap.Error(err))
		return EmployeeCodeResponse{}, mapRepositoryError(err)
	}
	if updated == 0 {
		return EmployeeCodeResponse{}, employeecodeerrors.ErrCodeNotFound
	}

	ec, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeCodeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee code success", zap.Int64("employee_id", employeeID))
	return mapToResponse(*ec), nil
}

func (s *service) Delete(ctx context.Context, employeeID int64) error {
	deleted, err := s.repo.Delete(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee code failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if deleted == 0 {
		return employeecodeerrors.ErrCodeNotFound
	}

	s.logger.Info("delete employee code success", zap.Int64("employee_id", employeeID))
	return nil
}

func mapToResponse(ec EmployeeCode) EmployeeCodeResponse {
	return EmployeeCodeResponse{
		EmployeeCodeID: ec.EmployeeCodeID,
		EmployeeID:     ec.EmployeeID,
		EmployeeCode:   ec.EmployeeCode,
	}
}
