package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/service"
)

// @Summary List incidents
// @Tags Incidents
// @Produce json
// @Param status query string false "Incident status"
// @Param priority query string false "Incident priority"
// @Success 200 {array} IncidentResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	filter := service.IncidentFilter{
		Status:   models.IncidentStatus(c.Query("status")),
		Priority: models.Priority(c.Query("priority")),
	}

	incidents, err := h.consoleService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Create a new incident
// @Description Create a standalone incident with placeholder coordinates in the default region
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")

	var input CreateIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	id, err := h.consoleService.CreateIncident(c.Request.Context(), input.Name, models.Priority(input.Priority))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.consoleService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Any known status may follow any other
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param body body UpdateIncidentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.consoleService.UpdateIncidentStatus(c.Request.Context(), id, models.IncidentStatus(input.Status)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Run a spread prediction
// @Tags Predictions
// @Produce json
// @Param id path string true "Incident ID"
// @Success 201 {object} CreatedResponse
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id}/predictions [post]
func (h *Handler) runPrediction(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "runPrediction").WithField("id", id)

	runID, err := h.consoleService.RunPrediction(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: runID})
}

// @Summary List prediction runs of an incident
// @Tags Predictions
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {array} models.PredictionRun
// @Router /incidents/{id}/predictions [get]
func (h *Handler) listIncidentPredictions(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "listIncidentPredictions").WithField("id", id)

	runs, err := h.consoleService.ListPredictionRuns(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}
