package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/models"
)

func droneStatus(t *testing.T, s *Store, id string) models.DroneStatus {
	t.Helper()
	for _, d := range s.Drones() {
		if d.ID == id {
			return d.Status
		}
	}
	t.Fatalf("drone %s not found", id)
	return ""
}

func TestCreateMission_Planned(t *testing.T) {
	// Подготовка
	s := newTestStore(t)

	// Действие
	id, err := s.CreateMission("drone-01", "")

	// Проверки
	require.NoError(t, err)
	m, err := s.Mission(id)
	require.NoError(t, err)
	assert.Equal(t, models.MissionPlanned, m.Status)
	assert.Equal(t, models.MissionReconnaissance, m.Type)
	assert.Equal(t, "Test Operator", m.Assignee)
	assert.Len(t, m.AreaOfInterest, 4)
	assert.Nil(t, m.StartTime)
	assert.Nil(t, m.EndTime)
	assert.Equal(t, id, s.Missions()[0].ID)
	assert.Equal(t, "Mission created", s.AuditLog(1)[0].Action)
}

func TestCreateMission_Errors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateMission("drone-404", models.MissionThermalScan)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateMission("drone-01", "fireworks")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMissionLifecycle_StartComplete(t *testing.T) {
	s := newTestStore(t)
	id, err := s.CreateMission("drone-01", models.MissionPerimeterMapping)
	require.NoError(t, err)

	require.NoError(t, s.StartMission(id))
	m, err := s.Mission(id)
	require.NoError(t, err)
	assert.Equal(t, models.MissionInProgress, m.Status)
	require.NotNil(t, m.StartTime)
	assert.Nil(t, m.EndTime)
	assert.Equal(t, models.DroneInFlight, droneStatus(t, s, "drone-01"))

	// повторный старт запрещен
	assert.ErrorIs(t, s.StartMission(id), ErrInvalidTransition)

	require.NoError(t, s.MarkMissionCompleted(id))
	m, err = s.Mission(id)
	require.NoError(t, err)
	assert.Equal(t, models.MissionCompleted, m.Status)
	require.NotNil(t, m.EndTime)
	assert.True(t, m.EndTime.After(*m.StartTime))
	assert.Equal(t, models.DroneAvailable, droneStatus(t, s, "drone-01"))
	assert.Equal(t, "Mission completed", s.AuditLog(1)[0].Action)
}

func TestAbortMission_AppendsOneAuditEntry(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	n := len(s.AuditLog(0))

	// Действие
	err := s.AbortMission("mission-001")

	// Проверки
	require.NoError(t, err)
	log := s.AuditLog(0)
	require.Len(t, log, n+1)
	assert.Equal(t, "Mission aborted", log[0].Action)
	assert.Equal(t, "MISSION-001", log[0].Target)

	m, err := s.Mission("mission-001")
	require.NoError(t, err)
	assert.Equal(t, models.MissionAborted, m.Status)
	assert.NotNil(t, m.EndTime)
	assert.Equal(t, models.DroneAvailable, droneStatus(t, s, "drone-02"))
}

func TestMissionTransitions_Rejected(t *testing.T) {
	s := newTestStore(t)
	n := len(s.AuditLog(0))

	// mission-002 уже завершена
	assert.ErrorIs(t, s.StartMission("mission-002"), ErrInvalidTransition)
	assert.ErrorIs(t, s.AbortMission("mission-002"), ErrInvalidTransition)
	assert.ErrorIs(t, s.MarkMissionCompleted("mission-002"), ErrInvalidTransition)
	assert.ErrorIs(t, s.CancelMission("mission-002"), ErrInvalidTransition)
	// mission-001 в полете, отменить можно только запланированную
	assert.ErrorIs(t, s.CancelMission("mission-001"), ErrInvalidTransition)
	assert.ErrorIs(t, s.AbortMission("mission-404"), ErrNotFound)

	assert.Len(t, s.AuditLog(0), n)
}

func TestCancelMission_Planned(t *testing.T) {
	s := newTestStore(t)
	id, err := s.CreateMission("drone-01", models.MissionHotspotWatch)
	require.NoError(t, err)

	require.NoError(t, s.CancelMission(id))

	m, err := s.Mission(id)
	require.NoError(t, err)
	assert.Equal(t, models.MissionCancelled, m.Status)
	assert.NotNil(t, m.EndTime)
	assert.Nil(t, m.StartTime)
	assert.Equal(t, models.DroneAvailable, droneStatus(t, s, "drone-01"))
}
