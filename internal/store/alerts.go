package store

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/models"
)

const (
	minDerivedConfidence = 55
	maxDerivedConfidence = 99
)

// Alerts возвращает снимок всех алертов в порядке загрузки
func (s *Store) Alerts() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.alertOrder, func(id string, _ int) models.Alert {
		return s.alerts[id].Clone()
	})
}

func (s *Store) Alert(id string) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.alerts[id]
	if !ok {
		return models.Alert{}, notFound("alert", id)
	}
	return a.Clone(), nil
}

// AcknowledgeAlert отмечает алерт как принятый текущим оператором
func (s *Store) AcknowledgeAlert(id string) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		a, ok := s.alerts[id]
		if !ok {
			return auditRecord{}, notFound("alert", id)
		}
		ackAt := now
		a.Status = models.AlertAcknowledged
		a.AcknowledgedAt = &ackAt
		a.AcknowledgedBy = s.actor
		a.UpdatedAt = now
		return auditRecord{action: "Alert acknowledged", target: id}, nil
	})
}

// DismissAlert отклоняет алерт; непустая причина заменяет рекомендованное действие
func (s *Store) DismissAlert(id, reason string) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		a, ok := s.alerts[id]
		if !ok {
			return auditRecord{}, notFound("alert", id)
		}
		a.Status = models.AlertDismissed
		if reason != "" {
			a.RecommendedAction = fmt.Sprintf("Dismissed: %s", reason)
		}
		a.UpdatedAt = now
		return auditRecord{action: "Alert dismissed", target: id, detail: reason}, nil
	})
}

func (s *Store) ResolveAlert(id string) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		a, ok := s.alerts[id]
		if !ok {
			return auditRecord{}, notFound("alert", id)
		}
		a.Status = models.AlertResolved
		a.UpdatedAt = now
		return auditRecord{action: "Alert resolved", target: id}, nil
	})
}

// CreateIncidentFromAlert заводит инцидент на основе алерта и эскалирует сам алерт.
// Обе сущности меняются в одной критической секции; при отсутствии алерта ничего не меняется.
func (s *Store) CreateIncidentFromAlert(alertID string) (string, error) {
	var incidentID string

	err := s.apply(func(now time.Time) (auditRecord, error) {
		a, ok := s.alerts[alertID]
		if !ok {
			return auditRecord{}, notFound("alert", alertID)
		}

		confidence := lo.Clamp(a.Confidence+s.randInt(-5, 8), minDerivedConfidence, maxDerivedConfidence)
		name := a.Title
		if name == "" {
			name = fmt.Sprintf("Incident from %s", alertID)
		}

		incidentID = s.newID("incident")
		inc := &models.Incident{
			ID:         incidentID,
			Name:       name,
			Status:     models.IncidentSuspected,
			Priority:   models.PriorityFromSeverity(a.Severity),
			Confidence: confidence,
			Location:   a.Location,
			AlertIDs:   []string{alertID},
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		s.detachAlertLocked(a, now)
		s.incidents[incidentID] = inc
		s.incidentOrder = append([]string{incidentID}, s.incidentOrder...)

		a.Status = models.AlertEscalated
		a.IncidentID = incidentID
		a.UpdatedAt = now

		return auditRecord{action: "Incident created from alert", target: alertID, detail: incidentID}, nil
	})
	if err != nil {
		return "", err
	}
	return incidentID, nil
}

// LinkAlertToIncident привязывает алерт к существующему инциденту. Повторная привязка ничего не дублирует.
func (s *Store) LinkAlertToIncident(alertID, incidentID string) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		a, ok := s.alerts[alertID]
		if !ok {
			return auditRecord{}, notFound("alert", alertID)
		}
		inc, ok := s.incidents[incidentID]
		if !ok {
			return auditRecord{}, notFound("incident", incidentID)
		}

		if a.IncidentID != incidentID {
			s.detachAlertLocked(a, now)
		}
		if !lo.Contains(inc.AlertIDs, alertID) {
			inc.AlertIDs = append(inc.AlertIDs, alertID)
			inc.UpdatedAt = now
		}

		a.Status = models.AlertVerifying
		a.IncidentID = incidentID
		a.UpdatedAt = now

		return auditRecord{action: "Alert linked to incident", target: alertID, detail: incidentID}, nil
	})
}

// detachAlertLocked убирает алерт из списка инцидента, на который он ссылался ранее
func (s *Store) detachAlertLocked(a *models.Alert, now time.Time) {
	if a.IncidentID == "" {
		return
	}
	prev, ok := s.incidents[a.IncidentID]
	if !ok {
		return
	}
	if lo.Contains(prev.AlertIDs, a.ID) {
		prev.AlertIDs = lo.Without(prev.AlertIDs, a.ID)
		prev.UpdatedAt = now
	}
}
