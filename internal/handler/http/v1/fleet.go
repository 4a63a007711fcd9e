package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/wildfire_console/internal/models"
)

// @Summary List sensor stations
// @Tags Fleet
// @Produce json
// @Success 200 {array} models.SensorStation
// @Router /stations [get]
func (h *Handler) listStations(c *gin.Context) {
	log := h.logger.WithField("method", "listStations")

	stations, err := h.consoleService.ListStations(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

// @Summary List drones
// @Tags Fleet
// @Produce json
// @Success 200 {array} models.DroneAsset
// @Router /drones [get]
func (h *Handler) listDrones(c *gin.Context) {
	log := h.logger.WithField("method", "listDrones")

	drones, err := h.consoleService.ListDrones(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, drones)
}

// @Summary List UAV missions
// @Tags Fleet
// @Produce json
// @Success 200 {array} MissionResponse
// @Router /missions [get]
func (h *Handler) listMissions(c *gin.Context) {
	log := h.logger.WithField("method", "listMissions")

	missions, err := h.consoleService.ListMissions(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMissionResponses(missions))
}

// @Summary Get UAV mission by ID
// @Tags Fleet
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} MissionResponse
// @Failure 404 {object} ErrorResponse "Mission not found"
// @Router /missions/{id} [get]
func (h *Handler) getMission(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getMission").WithField("id", id)

	mission, err := h.consoleService.GetMission(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMissionResponse(mission))
}

// @Summary Plan a UAV mission
// @Tags Fleet
// @Accept json
// @Produce json
// @Param mission body CreateMissionRequest true "Mission request"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Drone not found"
// @Router /missions [post]
func (h *Handler) createMission(c *gin.Context) {
	log := h.logger.WithField("method", "createMission")

	var input CreateMissionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	id, err := h.consoleService.CreateMission(c.Request.Context(), input.DroneID, models.MissionType(input.Type))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// @Summary Start a planned mission
// @Tags Fleet
// @Param id path string true "Mission ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Mission not found"
// @Failure 409 {object} ErrorResponse "Mission cannot be started"
// @Router /missions/{id}/start [post]
func (h *Handler) startMission(c *gin.Context) {
	h.missionAction(c, "startMission", h.consoleService.StartMission)
}

// @Summary Abort a mission
// @Tags Fleet
// @Param id path string true "Mission ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Mission not found"
// @Failure 409 {object} ErrorResponse "Mission cannot be aborted"
// @Router /missions/{id}/abort [post]
func (h *Handler) abortMission(c *gin.Context) {
	h.missionAction(c, "abortMission", h.consoleService.AbortMission)
}

// @Summary Mark a mission completed
// @Tags Fleet
// @Param id path string true "Mission ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Mission not found"
// @Failure 409 {object} ErrorResponse "Mission is not in progress"
// @Router /missions/{id}/complete [post]
func (h *Handler) completeMission(c *gin.Context) {
	h.missionAction(c, "completeMission", h.consoleService.CompleteMission)
}

// @Summary Cancel a planned mission
// @Tags Fleet
// @Param id path string true "Mission ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Mission not found"
// @Failure 409 {object} ErrorResponse "Mission is not planned"
// @Router /missions/{id}/cancel [post]
func (h *Handler) cancelMission(c *gin.Context) {
	h.missionAction(c, "cancelMission", h.consoleService.CancelMission)
}

func (h *Handler) missionAction(c *gin.Context, method string, action func(ctx context.Context, id string) error) {
	id := c.Param("id")
	log := h.logger.WithField("method", method).WithField("id", id)

	if err := action(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
