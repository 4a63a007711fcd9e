package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List prediction runs
// @Tags Predictions
// @Produce json
// @Param incident_id query string false "Incident ID"
// @Success 200 {array} models.PredictionRun
// @Router /predictions/runs [get]
func (h *Handler) listPredictionRuns(c *gin.Context) {
	log := h.logger.WithField("method", "listPredictionRuns")

	runs, err := h.consoleService.ListPredictionRuns(c.Request.Context(), c.Query("incident_id"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

// @Summary List spread envelopes
// @Tags Predictions
// @Produce json
// @Param run_id query string false "Prediction run ID"
// @Success 200 {array} models.SpreadEnvelope
// @Router /predictions/envelopes [get]
func (h *Handler) listSpreadEnvelopes(c *gin.Context) {
	log := h.logger.WithField("method", "listSpreadEnvelopes")

	envelopes, err := h.consoleService.ListSpreadEnvelopes(c.Request.Context(), c.Query("run_id"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, envelopes)
}

// @Summary Get the latest impact summary
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.ImpactSummary
// @Failure 404 {object} ErrorResponse "No prediction has been run"
// @Router /predictions/impact [get]
func (h *Handler) getImpactSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getImpactSummary")

	summary, err := h.consoleService.ImpactSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
