package user

import (
	"context"

	"hr-payroll/internal/shared/contextutil"
	usererrors "hr-payroll/internal/user/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	Register(ctx context.Context, req CreateUserRequest) error
	DeleteByEmail(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = UserResponse{Email: u.Email, Password: u.Password}
	}
	return resp, nil
}

func (s *service) Register(ctx context.Context, req CreateUserRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	u := &User{
		Email:    req.Email,
		Password: req.Password,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("register user persist failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("register user success", zap.String("request_id", rid), zap.String("email", req.Email))
	return nil
}

func (s *service) DeleteByEmail(ctx context.Context, email string) error {
	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		s.logger.Error("delete user failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if deleted == 0 {
		return usererrors.ErrUserNotFound
	}

	s.logger.Info("delete user success", zap.String("email", email))
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count users failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	return total, nil
}
