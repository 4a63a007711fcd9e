package fixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/models"
)

var testNow = time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC)

const sampleYAML = `
alerts:
  - id: alert-101
    title: Lightning strike cluster
    severity: high
    confidence: 72
    status: verifying
    sources: [satellite, sensor]
    location: {lat: 34.71, lng: -119.40}
    region: Sespe
    detected_at: 2025-08-14T14:00:00Z
    updated_at: 2025-08-14T14:05:00Z
    incident_id: incident-101
incidents:
  - id: incident-101
    name: Sespe Complex
    status: confirmed
    priority: high
    confidence: 80
    location: {lat: 34.71, lng: -119.40}
    alert_ids: [alert-101]
drones:
  - id: drone-11
    callsign: ASH-1
    status: available
    battery_pct: 80
missions:
  - id: mission-11
    drone_id: drone-11
    type: hotspot_watch
    status: planned
settings:
  notifications_enabled: true
`

func TestDefault_IsValid(t *testing.T) {
	ds := Default(testNow)

	require.NoError(t, Validate(ds))

	var alert003 models.Alert
	for _, a := range ds.Alerts {
		if a.ID == "alert-003" {
			alert003 = a
		}
	}
	assert.Equal(t, models.AlertVerifying, alert003.Status)
	assert.Equal(t, 65, alert003.Confidence)
	require.NotNil(t, ds.ImpactSummary)
	assert.Equal(t, DefaultRegion, ds.Settings.DefaultRegion)
}

func TestLoad_FillsDefaults(t *testing.T) {
	// Действие
	ds, err := Load(strings.NewReader(sampleYAML), testNow)

	// Проверки
	require.NoError(t, err)
	require.Len(t, ds.Alerts, 1)
	assert.Equal(t, "alert-101", ds.Alerts[0].ID)
	assert.Equal(t, []models.DetectionSource{models.SourceSatellite, models.SourceSensor}, ds.Alerts[0].Sources)
	assert.Equal(t, time.Date(2025, 8, 14, 14, 5, 0, 0, time.UTC), ds.Alerts[0].UpdatedAt.UTC())
	assert.Equal(t, []string{"alert-101"}, ds.Incidents[0].AlertIDs)
	assert.Equal(t, models.MissionHotspotWatch, ds.Missions[0].Type)

	def := Default(testNow)
	assert.Equal(t, def.Bounds, ds.Bounds)
	assert.Equal(t, DefaultRegion, ds.Settings.DefaultRegion)
	assert.Equal(t, def.Settings.DataRetentionDays, ds.Settings.DataRetentionDays)
	assert.True(t, ds.Settings.NotificationsEnabled)
}

func TestLoad_RejectsUnknownEnum(t *testing.T) {
	bad := strings.Replace(sampleYAML, "severity: high", "severity: extreme", 1)

	_, err := Load(strings.NewReader(bad), testNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("alerts: [unterminated"), testNow)

	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	ds, err := LoadFile(path, testNow)

	require.NoError(t, err)
	assert.Len(t, ds.Incidents, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), testNow)
	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ds *Dataset)
		want   string
	}{
		{
			name:   "дубликат алерта",
			mutate: func(ds *Dataset) { ds.Alerts = append(ds.Alerts, ds.Alerts[0]) },
			want:   "duplicate alert id",
		},
		{
			name:   "инцидент без обратной ссылки",
			mutate: func(ds *Dataset) { ds.Alerts[2].IncidentID = "" },
			want:   "does not point back",
		},
		{
			name:   "неизвестный алерт",
			mutate: func(ds *Dataset) { ds.Incidents[0].AlertIDs = append(ds.Incidents[0].AlertIDs, "alert-999") },
			want:   "unknown alert",
		},
		{
			name:   "контур без прогона",
			mutate: func(ds *Dataset) { ds.SpreadEnvelopes[0].RunID = "run-999" },
			want:   "unknown run",
		},
		{
			name:   "миссия без дрона",
			mutate: func(ds *Dataset) { ds.Missions[0].DroneID = "drone-99" },
			want:   "unknown drone",
		},
		{
			name:   "неизвестная серьезность",
			mutate: func(ds *Dataset) { ds.Alerts[0].Severity = "extreme" },
			want:   `unknown severity "extreme"`,
		},
		{
			name:   "неизвестный статус алерта",
			mutate: func(ds *Dataset) { ds.Alerts[1].Status = "bogus" },
			want:   `unknown status "bogus"`,
		},
		{
			name:   "неизвестный статус инцидента",
			mutate: func(ds *Dataset) { ds.Incidents[0].Status = "burning" },
			want:   "incident",
		},
		{
			name:   "неизвестный приоритет",
			mutate: func(ds *Dataset) { ds.Incidents[0].Priority = "urgent" },
			want:   "unknown priority",
		},
		{
			name:   "неизвестный статус дрона",
			mutate: func(ds *Dataset) { ds.Drones[0].Status = "charging" },
			want:   "drone drone-01 has unknown status",
		},
		{
			name:   "неизвестный статус миссии",
			mutate: func(ds *Dataset) { ds.Missions[0].Status = "paused" },
			want:   "unknown status \"paused\"",
		},
		{
			name:   "неизвестный тип миссии",
			mutate: func(ds *Dataset) { ds.Missions[0].Type = "firefighting" },
			want:   "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Default(testNow)
			tt.mutate(&ds)

			err := Validate(ds)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
