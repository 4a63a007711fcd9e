package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/wildfire_console/internal/models"
)

// @Summary Get map viewport state
// @Tags Map
// @Produce json
// @Success 200 {object} mapview.Snapshot
// @Router /map/view [get]
func (h *Handler) getMapView(c *gin.Context) {
	log := h.logger.WithField("method", "getMapView")

	snap, err := h.consoleService.MapSnapshot(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Move the map camera
// @Tags Map
// @Accept json
// @Produce json
// @Param body body CameraRequest true "Camera"
// @Success 200 {object} mapview.Snapshot
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /map/camera [put]
func (h *Handler) setCamera(c *gin.Context) {
	log := h.logger.WithField("method", "setCamera")

	var input CameraRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	snap, err := h.consoleService.SetCamera(c.Request.Context(), models.LatLng{Lat: input.Lat, Lng: input.Lng}, input.Zoom)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Open or close the details panel
// @Description The map keeps its camera while the container resizes
// @Tags Map
// @Accept json
// @Produce json
// @Param body body PanelRequest true "Panel state"
// @Success 200 {object} mapview.Snapshot
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /map/panel [put]
func (h *Handler) setPanel(c *gin.Context) {
	log := h.logger.WithField("method", "setPanel")

	var input PanelRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	snap, err := h.consoleService.SetPanelOpen(c.Request.Context(), *input.Open)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Resize the console window
// @Tags Map
// @Accept json
// @Produce json
// @Param body body WindowRequest true "Window size"
// @Success 200 {object} mapview.Snapshot
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /map/window [put]
func (h *Handler) resizeWindow(c *gin.Context) {
	log := h.logger.WithField("method", "resizeWindow")

	var input WindowRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	snap, err := h.consoleService.ResizeWindow(c.Request.Context(), input.Width, input.Height)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Rotate the screen
// @Tags Map
// @Produce json
// @Success 200 {object} mapview.Snapshot
// @Router /map/orientation [post]
func (h *Handler) rotateOrientation(c *gin.Context) {
	log := h.logger.WithField("method", "rotateOrientation")

	snap, err := h.consoleService.RotateOrientation(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
