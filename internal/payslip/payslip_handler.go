package payslip

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"hr-payroll/internal/middleware"
	paysliperrors "hr-payroll/internal/payslip/errors"
	"hr-payroll/internal/shared/apperror"
	"hr-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func parseID(c *gin.Context, param string, invalid error) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, invalid)
		return 0, false
	}
	return id, true
}

// Upload accepts multipart form data: employeeId, payPeriod and the
// PDF under the "payslip" field, as the dashboard has always sent it.
func (h *Handler) Upload(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.PostForm("employeeId"), 10, 64)
	if err != nil {
		middleware.ReleaseIdempotentLock(c, h.rdb)
		response.Error(c, paysliperrors.ErrInvalidEmployeeID)
		return
	}

	payPeriod := c.PostForm("payPeriod")
	if payPeriod == "" {
		middleware.ReleaseIdempotentLock(c, h.rdb)
		response.Error(c, apperror.RequiredField("payPeriod"))
		return
	}

	fileHeader, err := c.FormFile("payslip")
	if err != nil {
		middleware.ReleaseIdempotentLock(c, h.rdb)
		response.Error(c, paysliperrors.ErrMissingFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.ReleaseIdempotentLock(c, h.rdb)
		response.Error(c, err)
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(file)
	if err != nil {
		middleware.ReleaseIdempotentLock(c, h.rdb)
		response.Error(c, err)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), employeeID, payPeriod, pdf); err != nil {
		middleware.ReleaseIdempotentLock(c, h.rdb)
		response.Error(c, err)
		return
	}

	body := gin.H{"message": "Payslip uploaded and saved in database"}
	middleware.StoreIdempotentResult(c, h.rdb, http.StatusCreated, body)
	response.JSON(c, http.StatusCreated, body)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	employeeID, ok := parseID(c, "employeeId", paysliperrors.ErrInvalidEmployeeID)
	if !ok {
		return
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) ListByEmployeeAndPeriod(c *gin.Context) {
	employeeID, ok := parseID(c, "employeeId", paysliperrors.ErrInvalidEmployeeID)
	if !ok {
		return
	}

	resp, err := h.service.ListByEmployeeAndPeriod(c.Request.Context(), employeeID, c.Param("payPeriod"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	payslipID, ok := parseID(c, "id", paysliperrors.ErrInvalidPayslipID)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), payslipID); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Payslip deleted")
}

func (h *Handler) Download(c *gin.Context) {
	payslipID, ok := parseID(c, "payslipId", paysliperrors.ErrInvalidPayslipID)
	if !ok {
		return
	}

	pdf, err := h.service.Download(c.Request.Context(), payslipID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payslip_%d.pdf", payslipID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"total": total})
}

func (h *Handler) CountByMonth(c *gin.Context) {
	rows, err := h.service.CountByMonth(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows)
}
