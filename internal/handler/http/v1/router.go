package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/overview", h.getOverview)

	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/acknowledge", h.acknowledgeAlert)
		alerts.POST("/:id/dismiss", h.dismissAlert)
		alerts.POST("/:id/resolve", h.resolveAlert)
		alerts.POST("/:id/escalate", h.escalateAlert)
		alerts.POST("/:id/link", h.linkAlert)
	}

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id/status", h.updateIncidentStatus)
		incidents.POST("/:id/predictions", h.runPrediction)
		incidents.GET("/:id/predictions", h.listIncidentPredictions)
	}

	predictions := api.Group("/predictions")
	{
		predictions.GET("/runs", h.listPredictionRuns)
		predictions.GET("/envelopes", h.listSpreadEnvelopes)
		predictions.GET("/impact", h.getImpactSummary)
	}

	// Датчики и БПЛА
	api.GET("/stations", h.listStations)
	api.GET("/drones", h.listDrones)
	missions := api.Group("/missions")
	{
		missions.GET("", h.listMissions)
		missions.POST("", h.createMission)
		missions.GET("/:id", h.getMission)
		missions.POST("/:id/start", h.startMission)
		missions.POST("/:id/abort", h.abortMission)
		missions.POST("/:id/complete", h.completeMission)
		missions.POST("/:id/cancel", h.cancelMission)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/users", h.listUsers)
		admin.POST("/users", h.addUser)
		admin.POST("/users/:id/toggle", h.toggleUserStatus)
		admin.GET("/api-keys", h.listAPIKeys)
		admin.POST("/api-keys", h.generateAPIKey)
		admin.POST("/api-keys/:id/revoke", h.revokeAPIKey)
		admin.GET("/audit", h.getAuditLog)
		admin.GET("/settings", h.getSettings)
		admin.POST("/settings/notifications/toggle", h.toggleNotifications)
		admin.PUT("/settings/retention", h.setRetention)
		admin.PUT("/settings/region", h.setRegion)
	}

	// Вьюпорт карты
	mapGroup := api.Group("/map")
	{
		mapGroup.GET("/view", h.getMapView)
		mapGroup.PUT("/camera", h.setCamera)
		mapGroup.PUT("/panel", h.setPanel)
		mapGroup.PUT("/window", h.resizeWindow)
		mapGroup.POST("/orientation", h.rotateOrientation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
