package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/models"
)

func TestAcknowledgeAlert_StampsOperator(t *testing.T) {
	// Подготовка
	s := newTestStore(t)

	// Действие
	err := s.AcknowledgeAlert("alert-001")

	// Проверки
	require.NoError(t, err)
	a, err := s.Alert("alert-001")
	require.NoError(t, err)
	assert.Equal(t, models.AlertAcknowledged, a.Status)
	require.NotNil(t, a.AcknowledgedAt)
	assert.Equal(t, "Test Operator", a.AcknowledgedBy)
	assert.Equal(t, *a.AcknowledgedAt, a.UpdatedAt)

	entry := s.AuditLog(1)[0]
	assert.Equal(t, "Alert acknowledged", entry.Action)
	assert.Equal(t, "ALERT-001", entry.Target)
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	s := newTestStore(t)
	before := s.AuditLog(0)

	err := s.AcknowledgeAlert("alert-404")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, s.AuditLog(0))
}

func TestDismissAlert_WithReason(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.DismissAlert("alert-004", "controlled burn"))

	a, err := s.Alert("alert-004")
	require.NoError(t, err)
	assert.Equal(t, models.AlertDismissed, a.Status)
	assert.Equal(t, "Dismissed: controlled burn", a.RecommendedAction)

	entry := s.AuditLog(1)[0]
	assert.Equal(t, "Alert dismissed", entry.Action)
	assert.Equal(t, "controlled burn", entry.Detail)
}

func TestDismissAlert_WithoutReasonKeepsAction(t *testing.T) {
	s := newTestStore(t)
	orig, err := s.Alert("alert-004")
	require.NoError(t, err)

	require.NoError(t, s.DismissAlert("alert-004", ""))

	a, err := s.Alert("alert-004")
	require.NoError(t, err)
	assert.Equal(t, orig.RecommendedAction, a.RecommendedAction)
}

func TestResolveAlert_Scenario(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	before, err := s.Alert("alert-003")
	require.NoError(t, err)
	require.Equal(t, models.AlertVerifying, before.Status)
	require.Equal(t, 65, before.Confidence)
	n := len(s.AuditLog(0))

	// Действие
	require.NoError(t, s.ResolveAlert("alert-003"))

	// Проверки
	after, err := s.Alert("alert-003")
	require.NoError(t, err)
	assert.Equal(t, models.AlertResolved, after.Status)
	assert.NotEqual(t, before.UpdatedAt, after.UpdatedAt)

	log := s.AuditLog(0)
	require.Len(t, log, n+1)
	assert.Equal(t, "Alert resolved", log[0].Action)
	assert.Equal(t, "ALERT-003", log[0].Target)
}

func TestCreateIncidentFromAlert_LinksBothSides(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	alert, err := s.Alert("alert-001")
	require.NoError(t, err)

	// Действие
	incidentID, err := s.CreateIncidentFromAlert("alert-001")

	// Проверки
	require.NoError(t, err)
	inc, err := s.Incident(incidentID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alert-001"}, inc.AlertIDs)
	assert.Equal(t, models.IncidentSuspected, inc.Status)
	assert.Equal(t, models.PriorityCritical, inc.Priority)
	assert.Equal(t, alert.Location, inc.Location)
	assert.GreaterOrEqual(t, inc.Confidence, alert.Confidence-5)
	assert.LessOrEqual(t, inc.Confidence, 99)
	assert.GreaterOrEqual(t, inc.Confidence, 55)

	a, err := s.Alert("alert-001")
	require.NoError(t, err)
	assert.Equal(t, models.AlertEscalated, a.Status)
	assert.Equal(t, incidentID, a.IncidentID)

	entry := s.AuditLog(1)[0]
	assert.Equal(t, "Incident created from alert", entry.Action)
	assert.Equal(t, "ALERT-001", entry.Target)
	assert.Equal(t, s.Incidents()[0].ID, incidentID)
}

func TestCreateIncidentFromAlert_PriorityFromSeverity(t *testing.T) {
	s := newTestStore(t)

	// alert-003 - medium
	id, err := s.CreateIncidentFromAlert("alert-003")
	require.NoError(t, err)

	inc, err := s.Incident(id)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, inc.Priority)

	// старый инцидент больше не ссылается на алерт
	prev, err := s.Incident("incident-001")
	require.NoError(t, err)
	assert.NotContains(t, prev.AlertIDs, "alert-003")
}

func TestCreateIncidentFromAlert_NotFoundMutatesNothing(t *testing.T) {
	s := newTestStore(t)
	incidents := s.Incidents()
	log := s.AuditLog(0)

	id, err := s.CreateIncidentFromAlert("alert-404")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, id)
	assert.Equal(t, incidents, s.Incidents())
	assert.Equal(t, log, s.AuditLog(0))
}

func TestLinkAlertToIncident_Idempotent(t *testing.T) {
	// Подготовка
	s := newTestStore(t)

	// Действие
	require.NoError(t, s.LinkAlertToIncident("alert-004", "incident-002"))
	require.NoError(t, s.LinkAlertToIncident("alert-004", "incident-002"))

	// Проверки
	inc, err := s.Incident("incident-002")
	require.NoError(t, err)
	count := 0
	for _, id := range inc.AlertIDs {
		if id == "alert-004" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	a, err := s.Alert("alert-004")
	require.NoError(t, err)
	assert.Equal(t, models.AlertVerifying, a.Status)
	assert.Equal(t, "incident-002", a.IncidentID)
}

func TestLinkAlertToIncident_MovesBetweenIncidents(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.LinkAlertToIncident("alert-003", "incident-002"))

	from, err := s.Incident("incident-001")
	require.NoError(t, err)
	to, err := s.Incident("incident-002")
	require.NoError(t, err)
	assert.NotContains(t, from.AlertIDs, "alert-003")
	assert.Contains(t, to.AlertIDs, "alert-003")
}

func TestLinkAlertToIncident_MissingIncident(t *testing.T) {
	s := newTestStore(t)
	before, err := s.Alert("alert-004")
	require.NoError(t, err)

	err = s.LinkAlertToIncident("alert-004", "incident-404")

	assert.ErrorIs(t, err, ErrNotFound)
	after, err := s.Alert("alert-004")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAcknowledge_BackReferencesKept(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AcknowledgeAlert("alert-001"))
	require.NoError(t, s.DismissAlert("alert-001", "duplicate"))

	a, err := s.Alert("alert-001")
	require.NoError(t, err)
	assert.Equal(t, models.AlertDismissed, a.Status)
	assert.NotNil(t, a.AcknowledgedAt)
}
