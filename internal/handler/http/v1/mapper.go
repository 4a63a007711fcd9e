package v1

import (
	"errors"
	"net/http"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/service"
)

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(a *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:                a.ID,
		Title:             a.Title,
		Severity:          a.Severity,
		Confidence:        a.Confidence,
		Status:            a.Status,
		Sources:           a.Sources,
		Location:          a.Location,
		Region:            a.Region,
		RecommendedAction: a.RecommendedAction,
		DetectedAt:        a.DetectedAt,
		UpdatedAt:         a.UpdatedAt,
		AcknowledgedAt:    a.AcknowledgedAt,
		AcknowledgedBy:    a.AcknowledgedBy,
		IncidentID:        a.IncidentID,
	}
}

func ModelsToAlertResponses(alerts []models.Alert) []*AlertResponse {
	return lo.Map(alerts, func(a models.Alert, _ int) *AlertResponse {
		return ModelToAlertResponse(&a)
	})
}

func ModelToIncidentResponse(inc *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           inc.ID,
		Name:         inc.Name,
		Status:       inc.Status,
		Priority:     inc.Priority,
		Confidence:   inc.Confidence,
		Location:     inc.Location,
		AlertIDs:     inc.AlertIDs,
		CommanderID:  inc.CommanderID,
		AreaHectares: inc.AreaHectares,
		CreatedAt:    inc.CreatedAt,
		UpdatedAt:    inc.UpdatedAt,
	}
}

func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	return lo.Map(incidents, func(inc models.Incident, _ int) *IncidentResponse {
		return ModelToIncidentResponse(&inc)
	})
}

func ModelToMissionResponse(m *models.UavMission) *MissionResponse {
	return &MissionResponse{
		ID:             m.ID,
		DroneID:        m.DroneID,
		Type:           m.Type,
		Status:         m.Status,
		AreaOfInterest: m.AreaOfInterest,
		Assignee:       m.Assignee,
		CreatedAt:      m.CreatedAt,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
	}
}

func ModelsToMissionResponses(missions []models.UavMission) []*MissionResponse {
	return lo.Map(missions, func(m models.UavMission, _ int) *MissionResponse {
		return ModelToMissionResponse(&m)
	})
}

// statusFromError выбирает HTTP-код по ошибке сервиса
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
