package fixtures

import (
	"time"

	"github.com/shenikar/wildfire_console/internal/models"
)

// DefaultRegion - регион по умолчанию для демонстрационных данных
const DefaultRegion = "Los Padres North"

// Default возвращает встроенный набор данных; все отметки времени отсчитываются от now
func Default(now time.Time) Dataset {
	now = now.UTC()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	ptr := func(t time.Time) *time.Time { return &t }

	alerts := []models.Alert{
		{
			ID:                "alert-001",
			Title:             "Thermal anomaly near Pine Mountain",
			Severity:          models.SeverityCritical,
			Confidence:        92,
			Status:            models.AlertNew,
			Sources:           []models.DetectionSource{models.SourceSatellite, models.SourceCamera},
			Location:          models.LatLng{Lat: 34.6512, Lng: -119.3541},
			Region:            DefaultRegion,
			RecommendedAction: "Dispatch UAV for thermal confirmation",
			DetectedAt:        ago(12 * time.Minute),
			UpdatedAt:         ago(12 * time.Minute),
		},
		{
			ID:                "alert-002",
			Title:             "Smoke plume reported off Highway 33",
			Severity:          models.SeverityHigh,
			Confidence:        81,
			Status:            models.AlertAcknowledged,
			Sources:           []models.DetectionSource{models.SourcePublicReport, models.SourceCamera},
			Location:          models.LatLng{Lat: 34.5907, Lng: -119.2468},
			Region:            DefaultRegion,
			RecommendedAction: "Cross-check with Rose Valley camera",
			DetectedAt:        ago(48 * time.Minute),
			UpdatedAt:         ago(40 * time.Minute),
			AcknowledgedAt:    ptr(ago(40 * time.Minute)),
			AcknowledgedBy:    "M. Reyes",
		},
		{
			ID:                "alert-003",
			Title:             "Smoke sensor threshold exceeded at Cuyama ridge",
			Severity:          models.SeverityMedium,
			Confidence:        65,
			Status:            models.AlertVerifying,
			Sources:           []models.DetectionSource{models.SourceSensor},
			Location:          models.LatLng{Lat: 34.9321, Lng: -119.6112},
			Region:            DefaultRegion,
			RecommendedAction: "Verify with ground crew",
			DetectedAt:        ago(2 * time.Hour),
			UpdatedAt:         ago(95 * time.Minute),
			AcknowledgedAt:    ptr(ago(110 * time.Minute)),
			AcknowledgedBy:    "M. Reyes",
			IncidentID:        "incident-001",
		},
		{
			ID:                "alert-004",
			Title:             "Low-confidence hotspot in Sisquoc drainage",
			Severity:          models.SeverityLow,
			Confidence:        48,
			Status:            models.AlertNew,
			Sources:           []models.DetectionSource{models.SourceSatellite},
			Location:          models.LatLng{Lat: 34.8456, Lng: -119.8823},
			Region:            DefaultRegion,
			RecommendedAction: "Monitor next satellite pass",
			DetectedAt:        ago(25 * time.Minute),
			UpdatedAt:         ago(25 * time.Minute),
		},
		{
			ID:                "alert-005",
			Title:             "Confirmed flames on Sespe Creek trail",
			Severity:          models.SeverityHigh,
			Confidence:        88,
			Status:            models.AlertEscalated,
			Sources:           []models.DetectionSource{models.SourceUAV, models.SourcePublicReport},
			Location:          models.LatLng{Lat: 34.5552, Lng: -119.0971},
			Region:            DefaultRegion,
			RecommendedAction: "Coordinate with incident commander",
			DetectedAt:        ago(3 * time.Hour),
			UpdatedAt:         ago(150 * time.Minute),
			AcknowledgedAt:    ptr(ago(170 * time.Minute)),
			AcknowledgedBy:    "J. Okafor",
			IncidentID:        "incident-002",
		},
		{
			ID:                "alert-006",
			Title:             "Camera glare flagged as smoke",
			Severity:          models.SeverityLow,
			Confidence:        31,
			Status:            models.AlertDismissed,
			Sources:           []models.DetectionSource{models.SourceCamera},
			Location:          models.LatLng{Lat: 34.7012, Lng: -119.4410},
			Region:            DefaultRegion,
			RecommendedAction: "Dismissed: sun glare on lens",
			DetectedAt:        ago(5 * time.Hour),
			UpdatedAt:         ago(290 * time.Minute),
		},
	}

	incidents := []models.Incident{
		{
			ID:           "incident-001",
			Name:         "Cuyama Ridge Fire",
			Status:       models.IncidentConfirmed,
			Priority:     models.PriorityHigh,
			Confidence:   78,
			Location:     models.LatLng{Lat: 34.9321, Lng: -119.6112},
			AlertIDs:     []string{"alert-003"},
			CommanderID:  "user-002",
			AreaHectares: 42.5,
			CreatedAt:    ago(100 * time.Minute),
			UpdatedAt:    ago(60 * time.Minute),
		},
		{
			ID:           "incident-002",
			Name:         "Sespe Creek Fire",
			Status:       models.IncidentSuspected,
			Priority:     models.PriorityHigh,
			Confidence:   86,
			Location:     models.LatLng{Lat: 34.5552, Lng: -119.0971},
			AlertIDs:     []string{"alert-005"},
			AreaHectares: 6,
			CreatedAt:    ago(150 * time.Minute),
			UpdatedAt:    ago(150 * time.Minute),
		},
	}

	runs := []models.PredictionRun{
		{
			ID:           "run-001",
			Scope:        models.ScopeIncident,
			Status:       models.RunCompleted,
			ModelVersion: "spread-v2.3",
			IncidentID:   "incident-001",
			CreatedAt:    ago(55 * time.Minute),
			CompletedAt:  ptr(ago(54 * time.Minute)),
		},
	}

	envelopes := []models.SpreadEnvelope{
		{
			ID:           "env-001",
			RunID:        "run-001",
			HorizonHours: 1,
			Band:         models.BandLikely,
			Polygon: models.Polygon{
				{Lat: 34.9401, Lng: -119.6201}, {Lat: 34.9412, Lng: -119.6050},
				{Lat: 34.9290, Lng: -119.5987}, {Lat: 34.9236, Lng: -119.6154},
			},
		},
		{
			ID:           "env-002",
			RunID:        "run-001",
			HorizonHours: 3,
			Band:         models.BandPossible,
			Polygon: models.Polygon{
				{Lat: 34.9543, Lng: -119.6377}, {Lat: 34.9580, Lng: -119.5862},
				{Lat: 34.9188, Lng: -119.5701}, {Lat: 34.9071, Lng: -119.6290},
			},
		},
	}

	return Dataset{
		Bounds:          models.Bounds{MinLat: 34.45, MinLng: -120.05, MaxLat: 35.05, MaxLng: -118.95},
		Alerts:          alerts,
		Incidents:       incidents,
		PredictionRuns:  runs,
		SpreadEnvelopes: envelopes,
		ImpactSummary: &models.ImpactSummary{
			RunID:                "run-001",
			AssetsAtRiskCount:    27,
			RoadsThreatenedCount: 2,
			WUIExposureScore:     58,
			Drivers:              ImpactDrivers(),
			GeneratedAt:          ago(54 * time.Minute),
		},
		Stations: []models.SensorStation{
			{
				ID: "station-001", Name: "Rose Valley RAWS", Kind: models.StationWeather, Status: models.StationOnline,
				Location: models.LatLng{Lat: 34.5301, Lng: -119.1702}, LastReadingAt: ago(2 * time.Minute),
				Readings: map[string]float64{"temperature_c": 31.4, "humidity_pct": 11, "wind_kph": 27},
			},
			{
				ID: "station-002", Name: "Pine Mountain Camera", Kind: models.StationCamera, Status: models.StationOnline,
				Location: models.LatLng{Lat: 34.6483, Lng: -119.3602}, LastReadingAt: ago(1 * time.Minute),
			},
			{
				ID: "station-003", Name: "Cuyama Smoke Node", Kind: models.StationSmoke, Status: models.StationDegraded,
				Location: models.LatLng{Lat: 34.9350, Lng: -119.6080}, LastReadingAt: ago(18 * time.Minute),
				Readings: map[string]float64{"pm25_ugm3": 212},
			},
			{
				ID: "station-004", Name: "Sisquoc Weather Mast", Kind: models.StationWeather, Status: models.StationOffline,
				Location: models.LatLng{Lat: 34.8610, Lng: -119.8790}, LastReadingAt: ago(7 * time.Hour),
			},
		},
		Drones: []models.DroneAsset{
			{ID: "drone-01", Callsign: "EMBER-1", Model: "Matrice 350", Status: models.DroneAvailable, BatteryPct: 96, Home: models.LatLng{Lat: 34.4480, Lng: -119.2429}},
			{ID: "drone-02", Callsign: "EMBER-2", Model: "Matrice 350", Status: models.DroneInFlight, BatteryPct: 64, Home: models.LatLng{Lat: 34.4480, Lng: -119.2429}},
			{ID: "drone-03", Callsign: "CINDER-1", Model: "Skydio X10", Status: models.DroneMaintenance, BatteryPct: 12, Home: models.LatLng{Lat: 34.9480, Lng: -119.6820}},
		},
		Missions: []models.UavMission{
			{
				ID: "mission-001", DroneID: "drone-02", Type: models.MissionThermalScan, Status: models.MissionInProgress,
				AreaOfInterest: models.Polygon{
					{Lat: 34.5652, Lng: -119.1071}, {Lat: 34.5652, Lng: -119.0871},
					{Lat: 34.5452, Lng: -119.0871}, {Lat: 34.5452, Lng: -119.1071},
				},
				Assignee: "J. Okafor", CreatedAt: ago(40 * time.Minute), StartTime: ptr(ago(30 * time.Minute)),
			},
			{
				ID: "mission-002", DroneID: "drone-01", Type: models.MissionReconnaissance, Status: models.MissionCompleted,
				AreaOfInterest: models.Polygon{
					{Lat: 34.9421, Lng: -119.6212}, {Lat: 34.9421, Lng: -119.6012},
					{Lat: 34.9221, Lng: -119.6012}, {Lat: 34.9221, Lng: -119.6212},
				},
				Assignee: "M. Reyes", CreatedAt: ago(4 * time.Hour), StartTime: ptr(ago(225 * time.Minute)), EndTime: ptr(ago(3 * time.Hour)),
			},
		},
		Users: []models.User{
			{ID: "user-001", Name: "Dana Whitfield", Email: "dana.whitfield@example.org", Role: models.RoleAdmin, Status: models.UserActive, CreatedAt: ago(400 * 24 * time.Hour)},
			{ID: "user-002", Name: "Marco Reyes", Email: "marco.reyes@example.org", Role: models.RoleIncidentCommander, Status: models.UserActive, CreatedAt: ago(220 * 24 * time.Hour)},
			{ID: "user-003", Name: "Jade Okafor", Email: "jade.okafor@example.org", Role: models.RoleOperator, Status: models.UserActive, CreatedAt: ago(90 * 24 * time.Hour)},
			{ID: "user-004", Name: "Lin Hartmann", Email: "lin.hartmann@example.org", Role: models.RoleAnalyst, Status: models.UserInactive, CreatedAt: ago(30 * 24 * time.Hour)},
		},
		APIKeys: []models.APIKey{
			{ID: "key-001", Label: "CAD bridge", Prefix: "wfk_3f9a1c", Status: models.APIKeyActive, CreatedAt: ago(60 * 24 * time.Hour), CreatedBy: "Dana Whitfield"},
		},
		AuditLog: []models.AuditLogEntry{
			{ID: "audit-003", Timestamp: ago(54 * time.Minute), Actor: "Marco Reyes", Action: "Prediction run started", Target: "INCIDENT-001"},
			{ID: "audit-002", Timestamp: ago(95 * time.Minute), Actor: "Marco Reyes", Action: "Alert linked to incident", Target: "ALERT-003", Detail: "INCIDENT-001"},
			{ID: "audit-001", Timestamp: ago(150 * time.Minute), Actor: "Jade Okafor", Action: "Incident created from alert", Target: "ALERT-005", Detail: "INCIDENT-002"},
		},
		Settings: models.SystemSettings{
			NotificationsEnabled: true,
			DefaultRegion:        DefaultRegion,
			DataRetentionDays:    90,
		},
	}
}

// ImpactDrivers - неизменный шаблон текстовых факторов для сводки угроз
func ImpactDrivers() []string {
	return []string{
		"Sustained SW winds pushing the head toward the WUI edge",
		"Critically low 10-hour fuel moisture",
		"Upslope terrain alignment on the eastern flank",
	}
}
