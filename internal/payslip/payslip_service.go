package payslip

import (
	"context"
	"errors"
	"net/http"

	paysliperrors "hr-payroll/internal/payslip/errors"
	"hr-payroll/internal/shared/apperror"
	"hr-payroll/internal/shared/contextutil"
	"hr-payroll/internal/shared/counter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID int64, payPeriod string, pdf []byte) (PayslipResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]PayslipResponse, error)
	ListByEmployeeAndPeriod(ctx context.Context, employeeID int64, payPeriod string) ([]PayslipResponse, error)
	Delete(ctx context.Context, payslipID int64) error
	Download(ctx context.Context, payslipID int64) ([]byte, error)
	Count(ctx context.Context) (int64, error)
	CountByMonth(ctx context.Context) ([]MonthCount, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{repo: repo, counter: counter, logger: l}
}

// Create stores the uploaded PDF as supplied. The employeeId is not
// checked against the employees table; orphaned payslips are allowed.
func (s *service) Create(ctx context.Context, employeeID int64, payPeriod string, pdf []byte) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payslip requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", employeeID),
		zap.String("pay_period", payPeriod),
	)

	if len(pdf) == 0 {
		return PayslipResponse{}, paysliperrors.ErrMissingFile
	}

	nextID, err := s.counter.NextValue(ctx, counter.KindPayslip)
	if err != nil {
		s.logger.Error("create payslip allocate id failed", zap.Error(err))
		return PayslipResponse{}, saveFailed(err)
	}

	p := &Payslip{
		PayslipID:  nextID,
		EmployeeID: employeeID,
		PayPeriod:  payPeriod,
		PDFFile:    pdf,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create payslip persist failed", zap.Error(err))
		return PayslipResponse{}, saveFailed(err)
	}

	s.logger.Info("create payslip success",
		zap.String("request_id", rid),
		zap.Int64("payslip_id", p.PayslipID),
		zap.Int("pdf_bytes", len(pdf)),
	)

	return mapToResponse(*p), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID int64) ([]PayslipResponse, error) {
	slips, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Error("list payslips failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(slips), nil
}

func (s *service) ListByEmployeeAndPeriod(ctx context.Context, employeeID int64, payPeriod string) ([]PayslipResponse, error) {
	slips, err := s.repo.FindByEmployeeIDAndPeriod(ctx, employeeID, payPeriod)
	if err != nil {
		s.logger.Error("list payslips by period failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(slips), nil
}

func (s *service) Delete(ctx context.Context, payslipID int64) error {
	deleted, err := s.repo.Delete(ctx, payslipID)
	if err != nil {
		s.logger.Error("delete payslip failed", zap.Error(err))
		return err
	}
	if deleted == 0 {
		return paysliperrors.ErrPayslipNotFound
	}

	s.logger.Info("delete payslip success", zap.Int64("payslip_id", payslipID))
	return nil
}

// Download returns the raw PDF bytes; a missing id surfaces as a
// not-found error so the handler writes a JSON 404, never a broken
// binary body.
func (s *service) Download(ctx context.Context, payslipID int64) ([]byte, error) {
	p, err := s.repo.FindByPayslipID(ctx, payslipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paysliperrors.ErrPayslipNotFound
		}
		s.logger.Error("download payslip failed", zap.Error(err))
		return nil, err
	}
	return p.PDFFile, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count payslips failed", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// CountByMonth groups on the raw payPeriod string, ascending, matching
// the dashboard chart's expectation.
func (s *service) CountByMonth(ctx context.Context) ([]MonthCount, error) {
	rows, err := s.repo.CountByPayPeriod(ctx)
	if err != nil {
		s.logger.Error("count payslips by month failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func saveFailed(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"An error occurred while saving the payslip.",
		http.StatusInternalServerError,
	)
}

func mapToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		PayslipID:  p.PayslipID,
		EmployeeID: p.EmployeeID,
		PayPeriod:  p.PayPeriod,
		CreatedAt:  p.CreatedAt,
		PDFFile:    p.PDFFile,
	}
}

func mapToListResponse(slips []Payslip) []PayslipResponse {
	res := make([]PayslipResponse, len(slips))
	for i, p := range slips {
		res[i] = mapToResponse(p)
	}
	return res
}
