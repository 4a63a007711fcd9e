package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/service"
)

// @Summary List alerts
// @Description Get alerts, optionally filtered by status and severity
// @Tags Alerts
// @Produce json
// @Param status query string false "Alert status"
// @Param severity query string false "Alert severity"
// @Success 200 {array} AlertResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	filter := service.AlertFilter{
		Status:   models.AlertStatus(c.Query("status")),
		Severity: models.Severity(c.Query("severity")),
	}

	alerts, err := h.consoleService.ListAlerts(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alert by ID
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.consoleService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Acknowledge an alert
// @Description Mark an alert as acknowledged by the current operator
// @Tags Alerts
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	if err := h.consoleService.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Dismiss an alert
// @Description Dismiss an alert with an optional reason
// @Tags Alerts
// @Accept json
// @Param id path string true "Alert ID"
// @Param body body DismissAlertRequest false "Dismiss reason"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id}/dismiss [post]
func (h *Handler) dismissAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "dismissAlert").WithField("id", id)

	var input DismissAlertRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}

	if err := h.consoleService.DismissAlert(c.Request.Context(), id, input.Reason); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resolve an alert
// @Tags Alerts
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	if err := h.consoleService.ResolveAlert(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Escalate an alert
// @Description Create a new incident from the alert and escalate the alert
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 201 {object} CreatedResponse
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id}/escalate [post]
func (h *Handler) escalateAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "escalateAlert").WithField("id", id)

	incidentID, err := h.consoleService.EscalateAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: incidentID})
}

// @Summary Link an alert to an incident
// @Tags Alerts
// @Accept json
// @Param id path string true "Alert ID"
// @Param body body LinkAlertRequest true "Target incident"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Alert or incident not found"
// @Router /alerts/{id}/link [post]
func (h *Handler) linkAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "linkAlert").WithField("id", id)

	var input LinkAlertRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.consoleService.LinkAlert(c.Request.Context(), id, input.IncidentID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
