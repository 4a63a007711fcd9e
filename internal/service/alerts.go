package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

// AlertFilter - необязательные фильтры списка алертов
type AlertFilter struct {
	Status   models.AlertStatus
	Severity models.Severity
}

func (f AlertFilter) match(a models.Alert) bool {
	return (f.Status == "" || a.Status == f.Status) &&
		(f.Severity == "" || a.Severity == f.Severity)
}

// ListAlerts возвращает алерты, подходящие под фильтр
func (s *consoleService) ListAlerts(ctx context.Context, filter AlertFilter) ([]models.Alert, error) {
	log := s.entry("ListAlerts", logrus.Fields{"status": filter.Status, "severity": filter.Severity})

	alerts := lo.Filter(s.store.Alerts(), func(a models.Alert, _ int) bool {
		return filter.match(a)
	})

	log.WithField("count", len(alerts)).Debug("Alerts listed")
	return alerts, nil
}

func (s *consoleService) GetAlert(ctx context.Context, id string) (*models.Alert, error) {
	log := s.entry("GetAlert", logrus.Fields{"alert_id": id})

	alert, err := s.store.Alert(id)
	if err != nil {
		return nil, fail(log, err, "get alert")
	}
	return &alert, nil
}

// AcknowledgeAlert принимает алерт в работу от имени текущего оператора
func (s *consoleService) AcknowledgeAlert(ctx context.Context, id string) error {
	log := s.entry("AcknowledgeAlert", logrus.Fields{"alert_id": id})
	log.Info("Acknowledging alert")

	if err := s.store.AcknowledgeAlert(id); err != nil {
		return fail(log, err, "acknowledge alert")
	}

	log.Info("Alert acknowledged")
	return nil
}

func (s *consoleService) DismissAlert(ctx context.Context, id, reason string) error {
	log := s.entry("DismissAlert", logrus.Fields{"alert_id": id, "reason": reason})
	log.Info("Dismissing alert")

	if err := s.store.DismissAlert(id, reason); err != nil {
		return fail(log, err, "dismiss alert")
	}

	log.Info("Alert dismissed")
	return nil
}

func (s *consoleService) ResolveAlert(ctx context.Context, id string) error {
	log := s.entry("ResolveAlert", logrus.Fields{"alert_id": id})
	log.Info("Resolving alert")

	if err := s.store.ResolveAlert(id); err != nil {
		return fail(log, err, "resolve alert")
	}

	log.Info("Alert resolved")
	return nil
}

// EscalateAlert заводит инцидент на основе алерта и возвращает его ID
func (s *consoleService) EscalateAlert(ctx context.Context, id string) (string, error) {
	log := s.entry("EscalateAlert", logrus.Fields{"alert_id": id})
	log.Info("Escalating alert to incident")

	incidentID, err := s.store.CreateIncidentFromAlert(id)
	if err != nil {
		return "", fail(log, err, "escalate alert")
	}

	log.WithField("incident_id", incidentID).Info("Incident created from alert")
	return incidentID, nil
}

func (s *consoleService) LinkAlert(ctx context.Context, alertID, incidentID string) error {
	log := s.entry("LinkAlert", logrus.Fields{"alert_id": alertID, "incident_id": incidentID})
	log.Info("Linking alert to incident")

	if err := s.store.LinkAlertToIncident(alertID, incidentID); err != nil {
		return fail(log, err, "link alert")
	}

	log.Info("Alert linked")
	return nil
}
