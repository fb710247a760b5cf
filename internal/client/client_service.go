package client

import (
	"context"
	"errors"

	clienterrors "hr-payroll/internal/client/errors"
	"hr-payroll/internal/shared/contextutil"
	"hr-payroll/internal/shared/counter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetAll(ctx context.Context) ([]ClientResponse, error)
	GetByClientID(ctx context.Context, clientID int64) (ClientResponse, error)
	Update(ctx context.Context, clientID int64, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, clientID int64) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

// Create rejects a duplicate email before any write happens. The check
// only guards this path; updates may still produce duplicates, which is
// the documented behavior.
func (s *service) Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create client requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create client email pre-check failed", zap.Error(err))
		return ClientResponse{}, err
	}
	if exists {
		s.logger.Warn("create client duplicate email", zap.String("email", req.Email))
		return ClientResponse{}, clienterrors.ErrEmailAlreadyExists
	}

	nextID, err := s.counter.NextValue(ctx, counter.KindClient)
	if err != nil {
		s.logger.Error("create client allocate id failed", zap.Error(err))
		return ClientResponse{}, err
	}

	cl := &Client{
		ClientID: nextID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
	}

	if err := s.repo.Create(ctx, cl); err != nil {
		s.logger.Error("create client persist failed", zap.Error(err))
		return ClientResponse{}, err
	}

	s.logger.Info("create client success",
		zap.String("request_id", rid),
		zap.Int64("client_id", cl.ClientID),
	)

	return mapToResponse(*cl), nil
}

func (s *service) GetAll(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all clients failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(clients), nil
}

func (s *service) GetByClientID(ctx context.Context, clientID int64) (ClientResponse, error) {
	cl, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientResponse{}, clienterrors.ErrClientNotFound
		}
		s.logger.Error("get client by id failed", zap.Error(err))
		return ClientResponse{}, err
	}

	return mapToResponse(*cl), nil
}

func (s *service) Update(ctx context.Context, clientID int64, req UpdateClientRequest) (ClientResponse, error) {
	fields := map[string]any{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"address":  req.Address,
		"city":     req.City,
		"state":    req.State,
		"zip_code": req.ZipCode,
	}

	updated, err := s.repo.UpdateProfile(ctx, clientID, fields)
	if err != nil {
		s.logger.Error("update client persist failed", zap.Error(err))
		return ClientResponse{}, err
	}
	if updated == 0 {
		return ClientResponse{}, clienterrors.ErrClientNotFound
	}

	cl, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return ClientResponse{}, err
	}

	s.logger.Info("update client success", zap.Int64("client_id", clientID))
	return mapToResponse(*cl), nil
}

func (s *service) Delete(ctx context.Context, clientID int64) error {
	deleted, err := s.repo.Delete(ctx, clientID)
	if err != nil {
		s.logger.Error("delete client failed", zap.Error(err))
		return err
	}
	if deleted == 0 {
		return clienterrors.ErrClientNotFound
	}

	s.logger.Info("delete client success", zap.Int64("client_id", clientID))
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count clients failed", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func mapToResponse(cl Client) ClientResponse {
	return ClientResponse{
		ClientID: cl.ClientID,
		Name:     cl.Name,
		Email:    cl.Email,
		Phone:    cl.Phone,
		Address:  cl.Address,
		City:     cl.City,
		State:    cl.State,
		ZipCode:  cl.ZipCode,
	}
}

func mapToListResponse(clients []Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		res[i] = mapToResponse(cl)
	}
	return res
}
