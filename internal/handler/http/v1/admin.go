package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/wildfire_console/internal/models"
)

const defaultAuditLimit = 100

// @Summary List users
// @Tags Admin
// @Produce json
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.consoleService.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Add a user
// @Tags Admin
// @Accept json
// @Produce json
// @Param user body AddUserRequest true "User"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /admin/users [post]
func (h *Handler) addUser(c *gin.Context) {
	log := h.logger.WithField("method", "addUser")

	var input AddUserRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	id, err := h.consoleService.AddUser(c.Request.Context(), input.Name, input.Email, models.Role(input.Role))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// @Summary Toggle user status
// @Description Switch a user between active and inactive
// @Tags Admin
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /admin/users/{id}/toggle [post]
func (h *Handler) toggleUserStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "toggleUserStatus").WithField("id", id)

	if err := h.consoleService.ToggleUserStatus(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List API keys
// @Tags Admin
// @Produce json
// @Success 200 {array} models.APIKey
// @Router /admin/api-keys [get]
func (h *Handler) listAPIKeys(c *gin.Context) {
	log := h.logger.WithField("method", "listAPIKeys")

	keys, err := h.consoleService.ListAPIKeys(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, keys)
}

// @Summary Generate an API key
// @Description The secret is returned once, as a file attachment, and cannot be retrieved again
// @Tags Admin
// @Accept json
// @Produce json
// @Param key body GenerateAPIKeyRequest true "Key label"
// @Success 201 {object} service.SecretExport
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /admin/api-keys [post]
func (h *Handler) generateAPIKey(c *gin.Context) {
	log := h.logger.WithField("method", "generateAPIKey")

	var input GenerateAPIKeyRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	export, err := h.consoleService.GenerateAPIKey(c.Request.Context(), input.Label)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=api-key-%s.json", export.ID))
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, export)
}

// @Summary Revoke an API key
// @Tags Admin
// @Param id path string true "Key ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Key not found"
// @Failure 409 {object} ErrorResponse "Key already revoked"
// @Router /admin/api-keys/{id}/revoke [post]
func (h *Handler) revokeAPIKey(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "revokeAPIKey").WithField("id", id)

	if err := h.consoleService.RevokeAPIKey(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get audit log
// @Description Newest entries first
// @Tags Admin
// @Produce json
// @Param limit query int false "Maximum number of entries" default(100)
// @Success 200 {array} models.AuditLogEntry
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /admin/audit [get]
func (h *Handler) getAuditLog(c *gin.Context) {
	log := h.logger.WithField("method", "getAuditLog")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		return
	}

	entries, err := h.consoleService.AuditLog(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Get system settings
// @Tags Admin
// @Produce json
// @Success 200 {object} models.SystemSettings
// @Router /admin/settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	log := h.logger.WithField("method", "getSettings")

	settings, err := h.consoleService.Settings(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Toggle notifications
// @Tags Admin
// @Produce json
// @Success 200 {object} models.SystemSettings
// @Router /admin/settings/notifications/toggle [post]
func (h *Handler) toggleNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "toggleNotifications")

	settings, err := h.consoleService.ToggleNotifications(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Set data retention
// @Description Values outside [1, 365] are clamped
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body RetentionRequest true "Retention in days"
// @Success 200 {object} models.SystemSettings
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /admin/settings/retention [put]
func (h *Handler) setRetention(c *gin.Context) {
	log := h.logger.WithField("method", "setRetention")

	var input RetentionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	settings, err := h.consoleService.SetRetentionDays(c.Request.Context(), *input.Days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Set default region
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body RegionRequest true "Region"
// @Success 200 {object} models.SystemSettings
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /admin/settings/region [put]
func (h *Handler) setRegion(c *gin.Context) {
	log := h.logger.WithField("method", "setRegion")

	var input RegionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	settings, err := h.consoleService.SetDefaultRegion(c.Request.Context(), input.Region)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
