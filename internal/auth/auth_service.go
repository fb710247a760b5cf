package auth

import (
	"context"
	"errors"
	"time"

	autherrors "hr-payroll/internal/auth/errors"
	"hr-payroll/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type service struct {
	userRepo user.Repository
	secret   []byte
	logger   *zap.Logger
}

func NewService(userRepo user.Repository, secret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{userRepo: userRepo, secret: []byte(secret), logger: l}
}

// Login is a one-shot credential check: both fields are compared
// verbatim against the stored account and nothing downstream ever
// validates the issued token again.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login rejected", zap.String("email", email))
			return "", autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return "", err
	}

	token, err := s.generateToken(u.Email, tokenTTL)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return "", autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("email", u.Email))
	return token, nil
}

func (s *service) generateToken(email string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
