package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

type IncidentFilter struct {
	Status   models.IncidentStatus
	Priority models.Priority
}

func (s *consoleService) ListIncidents(ctx context.Context, filter IncidentFilter) ([]models.Incident, error) {
	log := s.entry("ListIncidents", logrus.Fields{"status": filter.Status, "priority": filter.Priority})

	incidents := lo.Filter(s.store.Incidents(), func(inc models.Incident, _ int) bool {
		return (filter.Status == "" || inc.Status == filter.Status) &&
			(filter.Priority == "" || inc.Priority == filter.Priority)
	})

	log.WithField("count", len(incidents)).Debug("Incidents listed")
	return incidents, nil
}

func (s *consoleService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.entry("GetIncident", logrus.Fields{"incident_id": id})

	inc, err := s.store.Incident(id)
	if err != nil {
		return nil, fail(log, err, "get incident")
	}
	return &inc, nil
}

// CreateIncident создает инцидент вручную, без исходного алерта
func (s *consoleService) CreateIncident(ctx context.Context, name string, priority models.Priority) (string, error) {
	log := s.entry("CreateIncident", logrus.Fields{"name": name, "priority": priority})
	log.Info("Attempting to create a new incident")

	id, err := s.store.CreateIncident(name, priority)
	if err != nil {
		return "", fail(log, err, "create incident")
	}

	log.WithField("incident_id", id).Info("Incident created successfully")
	return id, nil
}

func (s *consoleService) UpdateIncidentStatus(ctx context.Context, id string, status models.IncidentStatus) error {
	log := s.entry("UpdateIncidentStatus", logrus.Fields{"incident_id": id, "status": status})
	log.Info("Updating incident status")

	if err := s.store.UpdateIncidentStatus(id, status); err != nil {
		return fail(log, err, "update incident status")
	}

	log.Info("Incident status updated")
	return nil
}
