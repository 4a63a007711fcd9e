package v1

import (
	"time"

	"github.com/shenikar/wildfire_console/internal/models"
)

// CreatedResponse DTO с идентификатором созданной сущности
// @Description DTO с идентификатором созданной сущности
type CreatedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// DismissAlertRequest DTO для отклонения алерта
// @Description DTO для отклонения алерта
type DismissAlertRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// LinkAlertRequest DTO для привязки алерта к инциденту
// @Description DTO для привязки алерта к инциденту
type LinkAlertRequest struct {
	IncidentID string `json:"incident_id" validate:"required,max=64"`
}

// AlertResponse DTO для ответа с информацией об алерте
// @Description DTO для ответа с информацией об алерте
type AlertResponse struct {
	ID                string                   `json:"id"`
	Title             string                   `json:"title"`
	Severity          models.Severity          `json:"severity"`
	Confidence        int                      `json:"confidence"`
	Status            models.AlertStatus       `json:"status"`
	Sources           []models.DetectionSource `json:"sources"`
	Location          models.LatLng            `json:"location"`
	Region            string                   `json:"region"`
	RecommendedAction string                   `json:"recommended_action"`
	DetectedAt        time.Time                `json:"detected_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
	AcknowledgedAt    *time.Time               `json:"acknowledged_at,omitempty"`
	AcknowledgedBy    string                   `json:"acknowledged_by,omitempty"`
	IncidentID        string                   `json:"incident_id,omitempty"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=critical high medium low"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=suspected confirmed contained controlled extinguished false_alarm"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Status       models.IncidentStatus `json:"status"`
	Priority     models.Priority       `json:"priority"`
	Confidence   int                   `json:"confidence"`
	Location     models.LatLng         `json:"location"`
	AlertIDs     []string              `json:"alert_ids"`
	CommanderID  string                `json:"commander_id,omitempty"`
	AreaHectares float64               `json:"area_hectares"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CreateMissionRequest DTO для планирования миссии
// @Description DTO для планирования миссии
type CreateMissionRequest struct {
	DroneID string `json:"drone_id" validate:"required,max=64"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=reconnaissance thermal_scan perimeter_mapping hotspot_watch"`
}

// MissionResponse DTO для ответа с информацией о миссии
// @Description DTO для ответа с информацией о миссии
type MissionResponse struct {
	ID             string               `json:"id"`
	DroneID        string               `json:"drone_id"`
	Type           models.MissionType   `json:"type"`
	Status         models.MissionStatus `json:"status"`
	AreaOfInterest []models.LatLng      `json:"area_of_interest"`
	Assignee       string               `json:"assignee"`
	CreatedAt      time.Time            `json:"created_at"`
	StartTime      *time.Time           `json:"start_time,omitempty"`
	EndTime        *time.Time           `json:"end_time,omitempty"`
}

// AddUserRequest DTO для добавления пользователя
// @Description DTO для добавления пользователя
type AddUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin incident_commander analyst operator viewer"`
}

// GenerateAPIKeyRequest DTO для создания API-ключа
// @Description DTO для создания API-ключа
type GenerateAPIKeyRequest struct {
	Label string `json:"label" validate:"required,min=2,max=100"`
}

// RetentionRequest DTO срока хранения данных; значение вне [1, 365] ограничивается
// @Description DTO срока хранения данных
type RetentionRequest struct {
	Days *int `json:"days" validate:"required"`
}

// RegionRequest DTO региона по умолчанию
// @Description DTO региона по умолчанию
type RegionRequest struct {
	Region string `json:"region" validate:"required,max=255"`
}

// CameraRequest DTO положения камеры
// @Description DTO положения камеры
type CameraRequest struct {
	Lat  float64 `json:"lat" validate:"latitude"`
	Lng  float64 `json:"lng" validate:"longitude"`
	Zoom float64 `json:"zoom" validate:"gte=0,lte=20"`
}

// PanelRequest DTO состояния боковой панели
// @Description DTO состояния боковой панели
type PanelRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// WindowRequest DTO размера окна
// @Description DTO размера окна
type WindowRequest struct {
	Width  int `json:"width" validate:"required,gt=0,lte=10000"`
	Height int `json:"height" validate:"required,gt=0,lte=10000"`
}
