package employeecode

import (
	"net/http"
	"strconv"

	employeecodeerrors "hr-payroll/internal/employeecode/errors"
	"hr-payroll/internal/shared/apperror"
	"hr-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employeecode.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeecode.handler")
	}
	return &Handler{service: service, logger: l}
}

func parseEmployeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("employeeId"), 10, 64)
	if err != nil {
		response.Error(c, employeecodeerrors.ErrInvalidEmployeeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee code validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByEmployeeID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee code validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Employee code deleted successfully")
}
