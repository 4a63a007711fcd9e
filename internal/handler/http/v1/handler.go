package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/config"
	"github.com/shenikar/wildfire_console/internal/service"
)

type Handler struct {
	consoleService service.ConsoleService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(consoleService service.ConsoleService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		consoleService: consoleService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// bindJSON разбирает и валидирует тело запроса. При ошибке ответ уже записан.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON как bindJSON, но пустое тело допустимо
func (h *Handler) bindOptionalJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// @Summary Get console overview
// @Description Get headline counters for the console landing page
// @Tags System
// @Produce json
// @Success 200 {object} service.Overview
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /overview [get]
func (h *Handler) getOverview(c *gin.Context) {
	log := h.logger.WithField("method", "getOverview")

	overview, err := h.consoleService.Overview(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "operator": h.cfg.OperatorName})
}
