package tds

import (
	"context"

	"hr-payroll/internal/shared/contextutil"
	"hr-payroll/internal/shared/counter"
	tdserrors "hr-payroll/internal/tds/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=tds_service.go -destination=mock/tds_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTDSRequest) (TDSResponse, error)
	GetAll(ctx context.Context) ([]TDSResponse, error)
	Update(ctx context.Context, tdsID int64, req UpdateTDSRequest) (TDSResponse, error)
	Delete(ctx context.Context, tdsID int64) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("tds.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tds.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTDSRequest) (TDSResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create tds record requested",
		zap.String("request_id", rid),
		zap.String("party_name", req.PartyName),
	)

	exists, err := s.repo.ExistsByPan(ctx, req.PanCardNo)
	if err != nil {
		s.logger.Error("create tds record pan pre-check failed", zap.Error(err))
		return TDSResponse{}, err
	}
	if exists {
		s.logger.Warn("create tds record duplicate pan")
		return TDSResponse{}, tdserrors.ErrPanAlreadyExists
	}

	nextID, err := s.counter.NextValue(ctx, counter.KindTDSRecord)
	if err != nil {
		s.logger.Error("create tds record allocate id failed", zap.Error(err))
		return TDSResponse{}, err
	}

	rec := &TDSRecord{
		TDSID:     nextID,
		PartyName: req.PartyName,
		PanCardNo: req.PanCardNo,
		Refrence:  req.Refrence,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("create tds record persist failed", zap.Error(err))
		return TDSResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create tds record success",
		zap.String("request_id", rid),
		zap.Int64("tds_id", rec.TDSID),
	)

	return mapToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]TDSResponse, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all tds records failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]TDSResponse, len(recs))
	for i, rec := range recs {
		res[i] = mapToResponse(rec)
	}
	return res, nil
}

// Update rejects a PAN held by any other record; keeping one's own PAN
// unchanged is always allowed.
func (s *service) Update(ctx context.Context, tdsID int64, req UpdateTDSRequest) (TDSResponse, error) {
	exists, err := s.repo.ExistsByPanExcluding(ctx, req.PanCardNo, tdsID)
	if err != nil {
		s.logger.Error("update tds record pan pre-check failed", zap.Error(err))
		return TDSResponse{}, err
	}
	if exists {
		s.logger.Warn("update tds record pan collision", zap.Int64("tds_id", tdsID))
		return TDSResponse{}, tdserrors.ErrPanAlreadyExists
	}

	fields := map[string]any{
		"party_name":  req.PartyName,
		"pan_card_no": req.PanCardNo,
		"refrence":    req.Refrence,
	}

	updated, err := s.repo.UpdateRecord(ctx, tdsID, fields)
	if err != nil {
		s.logger.Error("update tds record persist failed", zap.Error(err))
		return TDSResponse{}, mapRepositoryError(err)
	}
	if updated == 0 {
		return TDSResponse{}, tdserrors.ErrRecordNotFound
	}

	rec, err := s.repo.FindByTDSID(ctx, tdsID)
	if err != nil {
		return TDSResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update tds record success", zap.Int64("tds_id", tdsID))
	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, tdsID int64) error {
	deleted, err := s.repo.Delete(ctx, tdsID)
	if err != nil {
		s.logger.Error("delete tds record failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if deleted == 0 {
		return tdserrors.ErrRecordNotFound
	}

	s.logger.Info("delete tds record success", zap.Int64("tds_id", tdsID))
	return nil
}

func mapToResponse(rec TDSRecord) TDSResponse {
	return TDSResponse{
		TDSID:     rec.TDSID,
		PartyName: rec.PartyName,
		PanCardNo: rec.PanCardNo,
		Refrence:  rec.Refrence,
	}
}
