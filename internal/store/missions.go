package store

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/models"
)

// половина стороны квадратной зоны интереса, км
const aoiHalfSideKm = 1.0

func (s *Store) Stations() []models.SensorStation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.stations, func(st models.SensorStation, _ int) models.SensorStation {
		return st.Clone()
	})
}

func (s *Store) Drones() []models.DroneAsset {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.droneOrder, func(id string, _ int) models.DroneAsset {
		return *s.drones[id]
	})
}

func (s *Store) Missions() []models.UavMission {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.missionOrder, func(id string, _ int) models.UavMission {
		return s.missions[id].Clone()
	})
}

func (s *Store) Mission(id string) (models.UavMission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.missions[id]
	if !ok {
		return models.UavMission{}, notFound("mission", id)
	}
	return m.Clone(), nil
}

// CreateMission планирует полет БПЛА над квадратом вокруг его базы
func (s *Store) CreateMission(droneID string, missionType models.MissionType) (string, error) {
	if missionType == "" {
		missionType = models.MissionReconnaissance
	}
	if !missionType.Valid() {
		return "", fmt.Errorf("unknown mission type %q: %w", missionType, ErrInvalidInput)
	}

	var id string
	err := s.apply(func(now time.Time) (auditRecord, error) {
		d, ok := s.drones[droneID]
		if !ok {
			return auditRecord{}, notFound("drone", droneID)
		}
		id = s.newID("mission")
		s.missions[id] = &models.UavMission{
			ID:             id,
			DroneID:        droneID,
			Type:           missionType,
			Status:         models.MissionPlanned,
			AreaOfInterest: squareAround(d.Home, aoiHalfSideKm),
			Assignee:       s.actor,
			CreatedAt:      now,
		}
		s.missionOrder = append([]string{id}, s.missionOrder...)
		return auditRecord{action: "Mission created", target: id, detail: fmt.Sprintf("%s %s", d.Callsign, missionType)}, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// StartMission переводит запланированную миссию в полет. Повторный старт запрещен.
func (s *Store) StartMission(id string) error {
	return s.transitionMission(id, "Mission started", func(m *models.UavMission, now time.Time) error {
		if m.Status != models.MissionPlanned {
			return fmt.Errorf("mission %s is %s, cannot start: %w", id, m.Status, ErrInvalidTransition)
		}
		start := now
		m.Status = models.MissionInProgress
		m.StartTime = &start
		if d, ok := s.drones[m.DroneID]; ok {
			d.Status = models.DroneInFlight
		}
		return nil
	})
}

func (s *Store) AbortMission(id string) error {
	return s.transitionMission(id, "Mission aborted", func(m *models.UavMission, now time.Time) error {
		if m.Status != models.MissionPlanned && m.Status != models.MissionInProgress {
			return fmt.Errorf("mission %s is %s, cannot abort: %w", id, m.Status, ErrInvalidTransition)
		}
		s.finishMissionLocked(m, models.MissionAborted, now)
		return nil
	})
}

func (s *Store) MarkMissionCompleted(id string) error {
	return s.transitionMission(id, "Mission completed", func(m *models.UavMission, now time.Time) error {
		if m.Status != models.MissionInProgress {
			return fmt.Errorf("mission %s is %s, cannot complete: %w", id, m.Status, ErrInvalidTransition)
		}
		s.finishMissionLocked(m, models.MissionCompleted, now)
		return nil
	})
}

func (s *Store) CancelMission(id string) error {
	return s.transitionMission(id, "Mission cancelled", func(m *models.UavMission, now time.Time) error {
		if m.Status != models.MissionPlanned {
			return fmt.Errorf("mission %s is %s, cannot cancel: %w", id, m.Status, ErrInvalidTransition)
		}
		s.finishMissionLocked(m, models.MissionCancelled, now)
		return nil
	})
}

func (s *Store) transitionMission(id, action string, fn func(m *models.UavMission, now time.Time) error) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		m, ok := s.missions[id]
		if !ok {
			return auditRecord{}, notFound("mission", id)
		}
		if err := fn(m, now); err != nil {
			return auditRecord{}, err
		}
		return auditRecord{action: action, target: id}, nil
	})
}

func (s *Store) finishMissionLocked(m *models.UavMission, status models.MissionStatus, now time.Time) {
	wasFlying := m.Status == models.MissionInProgress
	end := now
	m.Status = status
	m.EndTime = &end
	if d, ok := s.drones[m.DroneID]; ok && wasFlying && d.Status == models.DroneInFlight {
		d.Status = models.DroneAvailable
	}
}

func squareAround(c models.LatLng, halfSideKm float64) models.Polygon {
	dLat := halfSideKm / kmPerDegree
	dLng := halfSideKm / (kmPerDegree * cosDeg(c.Lat))
	return models.Polygon{
		{Lat: round(c.Lat+dLat, 5), Lng: round(c.Lng-dLng, 5)},
		{Lat: round(c.Lat+dLat, 5), Lng: round(c.Lng+dLng, 5)},
		{Lat: round(c.Lat-dLat, 5), Lng: round(c.Lng+dLng, 5)},
		{Lat: round(c.Lat-dLat, 5), Lng: round(c.Lng-dLng, 5)},
	}
}
