package store

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/models"
)

var fallbackBounds = models.Bounds{MinLat: 34.45, MinLng: -120.05, MaxLat: 35.05, MaxLng: -118.95}

func (s *Store) Incidents() []models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.incidentOrder, func(id string, _ int) models.Incident {
		return s.incidents[id].Clone()
	})
}

func (s *Store) Incident(id string) (models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return models.Incident{}, notFound("incident", id)
	}
	return inc.Clone(), nil
}

// CreateIncident заводит самостоятельный инцидент со случайными координатами внутри региона.
// Пустой приоритет означает high.
func (s *Store) CreateIncident(name string, priority models.Priority) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("incident name is blank: %w", ErrInvalidInput)
	}
	if priority == "" {
		priority = models.PriorityHigh
	}
	if !priority.Valid() {
		return "", fmt.Errorf("unknown priority %q: %w", priority, ErrInvalidInput)
	}

	var id string
	err := s.apply(func(now time.Time) (auditRecord, error) {
		b := s.bounds
		if b.Empty() {
			b = fallbackBounds
		}
		id = s.newID("incident")
		s.incidents[id] = &models.Incident{
			ID:         id,
			Name:       name,
			Status:     models.IncidentSuspected,
			Priority:   priority,
			Confidence: s.randInt(65, 92),
			Location: models.LatLng{
				Lat: round(s.randFloat(b.MinLat, b.MaxLat), 4),
				Lng: round(s.randFloat(b.MinLng, b.MaxLng), 4),
			},
			AlertIDs:  []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.incidentOrder = append([]string{id}, s.incidentOrder...)
		return auditRecord{action: "Incident created", target: id, detail: name}, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateIncidentStatus перезаписывает статус без проверки допустимости перехода
func (s *Store) UpdateIncidentStatus(id string, status models.IncidentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown incident status %q: %w", status, ErrInvalidInput)
	}
	return s.apply(func(now time.Time) (auditRecord, error) {
		inc, ok := s.incidents[id]
		if !ok {
			return auditRecord{}, notFound("incident", id)
		}
		inc.Status = status
		inc.UpdatedAt = now
		return auditRecord{action: "Incident status updated", target: id, detail: string(status)}, nil
	})
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
