package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/fixtures"
	"github.com/shenikar/wildfire_console/internal/models"
)

func TestCreateIncident_Defaults(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	bounds := fixtures.Default(testNow).Bounds

	// Действие
	id, err := s.CreateIncident("  Zaca Ridge  ", "")

	// Проверки
	require.NoError(t, err)
	inc, err := s.Incident(id)
	require.NoError(t, err)
	assert.Equal(t, "Zaca Ridge", inc.Name)
	assert.Equal(t, models.PriorityHigh, inc.Priority)
	assert.Equal(t, models.IncidentSuspected, inc.Status)
	assert.Empty(t, inc.AlertIDs)
	assert.GreaterOrEqual(t, inc.Confidence, 65)
	assert.LessOrEqual(t, inc.Confidence, 92)
	assert.GreaterOrEqual(t, inc.Location.Lat, bounds.MinLat)
	assert.LessOrEqual(t, inc.Location.Lat, bounds.MaxLat)
	assert.GreaterOrEqual(t, inc.Location.Lng, bounds.MinLng)
	assert.LessOrEqual(t, inc.Location.Lng, bounds.MaxLng)

	entry := s.AuditLog(1)[0]
	assert.Equal(t, "Incident created", entry.Action)
}

func TestCreateIncident_InvalidInput(t *testing.T) {
	s := newTestStore(t)
	n := len(s.AuditLog(0))

	_, err := s.CreateIncident("   ", models.PriorityLow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateIncident("Test", "urgent")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, s.AuditLog(0), n)
}

func TestUpdateIncidentStatus_Permissive(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpdateIncidentStatus("incident-001", models.IncidentExtinguished))
	require.NoError(t, s.UpdateIncidentStatus("incident-001", models.IncidentSuspected))

	inc, err := s.Incident("incident-001")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentSuspected, inc.Status)

	entry := s.AuditLog(1)[0]
	assert.Equal(t, "Incident status updated", entry.Action)
	assert.Equal(t, "suspected", entry.Detail)
	assert.Equal(t, "INCIDENT-001", entry.Target)
}

func TestUpdateIncidentStatus_Errors(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.UpdateIncidentStatus("incident-001", "burning"), ErrInvalidInput)
	assert.ErrorIs(t, s.UpdateIncidentStatus("incident-404", models.IncidentContained), ErrNotFound)
}
