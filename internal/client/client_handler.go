package client

import (
	"net/http"
	"strconv"

	clienterrors "hr-payroll/internal/client/errors"
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
	l := zap.L().Named("client.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.handler")
	}
	return &Handler{service: service, logger: l}
}

func parseClientID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("clientId"), 10, 64)
	if err != nil {
		response.Error(c, clienterrors.ErrInvalidClientID)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create client validation failed", zap.Error(err))
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

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByClientID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update client validation failed", zap.Error(err))
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
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Client deleted successfully")
}

func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"total": total})
}
