package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/fixtures"
	"github.com/shenikar/wildfire_console/internal/models"
)

func TestRunPrediction_ProducesEnvelopesAndImpact(t *testing.T) {
	// Подготовка
	s := newTestStore(t)
	envelopesBefore := len(s.SpreadEnvelopes(""))

	// Действие
	runID, err := s.RunPrediction("incident-002")

	// Проверки
	require.NoError(t, err)

	runs := s.PredictionRuns()
	require.NotEmpty(t, runs)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, models.RunCompleted, runs[0].Status)
	assert.Equal(t, "incident-002", runs[0].IncidentID)
	assert.Equal(t, DefaultModelVersion, runs[0].ModelVersion)
	assert.NotNil(t, runs[0].CompletedAt)

	envelopes := s.SpreadEnvelopes(runID)
	require.Len(t, envelopes, 2)
	assert.Len(t, s.SpreadEnvelopes(""), envelopesBefore+2)
	assert.Equal(t, models.BandLikely, envelopes[0].Band)
	assert.Equal(t, 1, envelopes[0].HorizonHours)
	assert.Equal(t, models.BandPossible, envelopes[1].Band)
	assert.Equal(t, 3, envelopes[1].HorizonHours)
	for _, e := range envelopes {
		assert.Len(t, e.Polygon, envelopeVertices)
	}

	impact, ok := s.ImpactSummary()
	require.True(t, ok)
	assert.Equal(t, runID, impact.RunID)
	assert.GreaterOrEqual(t, impact.AssetsAtRiskCount, 12)
	assert.LessOrEqual(t, impact.AssetsAtRiskCount, 85)
	assert.GreaterOrEqual(t, impact.RoadsThreatenedCount, 0)
	assert.LessOrEqual(t, impact.RoadsThreatenedCount, 7)
	assert.GreaterOrEqual(t, impact.WUIExposureScore, 35)
	assert.LessOrEqual(t, impact.WUIExposureScore, 92)
	assert.Equal(t, fixtures.ImpactDrivers(), impact.Drivers)

	entry := s.AuditLog(1)[0]
	assert.Equal(t, "Prediction run started", entry.Action)
	assert.Equal(t, "INCIDENT-002", entry.Target)
}

func TestRunPrediction_RangesHoldAcrossSeeds(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 50; i++ {
		runID, err := s.RunPrediction("incident-001")
		require.NoError(t, err)

		impact, ok := s.ImpactSummary()
		require.True(t, ok)
		require.Equal(t, runID, impact.RunID)
		require.True(t, impact.AssetsAtRiskCount >= 12 && impact.AssetsAtRiskCount <= 85)
		require.True(t, impact.RoadsThreatenedCount >= 0 && impact.RoadsThreatenedCount <= 7)
		require.True(t, impact.WUIExposureScore >= 35 && impact.WUIExposureScore <= 92)
	}
}

func TestRunPrediction_CustomModelVersion(t *testing.T) {
	s := newTestStore(t, WithModelVersion("spread-v3.0-beta"))

	_, err := s.RunPrediction("incident-001")
	require.NoError(t, err)

	assert.Equal(t, "spread-v3.0-beta", s.PredictionRuns()[0].ModelVersion)
}

func TestRunPrediction_UnknownIncident(t *testing.T) {
	s := newTestStore(t)
	runs := len(s.PredictionRuns())
	impact, _ := s.ImpactSummary()

	_, err := s.RunPrediction("incident-404")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.PredictionRuns(), runs)
	after, _ := s.ImpactSummary()
	assert.Equal(t, impact, after)
}

func TestImpactSummary_EmptyDataset(t *testing.T) {
	s := New(fixtures.Dataset{})

	_, ok := s.ImpactSummary()

	assert.False(t, ok)
}
