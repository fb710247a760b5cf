package user

import (
	"net/http"

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
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Register(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register user validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "User registered successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http delete user validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.DeleteByEmail(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User removed successfully")
}

func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"total": total})
}
