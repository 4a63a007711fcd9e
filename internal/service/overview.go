package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/models"
)

// Overview - сводные показатели для главного экрана консоли
type Overview struct {
	NewAlerts         int                    `json:"new_alerts"`
	CriticalAlerts    int                    `json:"critical_alerts"`
	ActiveIncidents   int                    `json:"active_incidents"`
	AvailableDrones   int                    `json:"available_drones"`
	MissionsInFlight  int                    `json:"missions_in_flight"`
	StationsOnline    int                    `json:"stations_online"`
	StationsTotal     int                    `json:"stations_total"`
	LatestImpact      *models.ImpactSummary  `json:"latest_impact,omitempty"`
	RecentAuditEvents []models.AuditLogEntry `json:"recent_audit_events"`
}

const overviewAuditEvents = 5

// активными считаются инциденты, которые еще не потушены и не признаны ложными
var closedIncidentStatuses = []models.IncidentStatus{models.IncidentExtinguished, models.IncidentFalseAlarm}

func (s *consoleService) Overview(ctx context.Context) (*Overview, error) {
	alerts := s.store.Alerts()
	stations := s.store.Stations()

	out := &Overview{
		NewAlerts: lo.CountBy(alerts, func(a models.Alert) bool { return a.Status == models.AlertNew }),
		CriticalAlerts: lo.CountBy(alerts, func(a models.Alert) bool {
			return a.Severity == models.SeverityCritical && a.Status != models.AlertResolved && a.Status != models.AlertDismissed
		}),
		ActiveIncidents: lo.CountBy(s.store.Incidents(), func(inc models.Incident) bool {
			return !lo.Contains(closedIncidentStatuses, inc.Status)
		}),
		AvailableDrones: lo.CountBy(s.store.Drones(), func(d models.DroneAsset) bool { return d.Status == models.DroneAvailable }),
		MissionsInFlight: lo.CountBy(s.store.Missions(), func(m models.UavMission) bool {
			return m.Status == models.MissionInProgress
		}),
		StationsOnline:    lo.CountBy(stations, func(st models.SensorStation) bool { return st.Status == models.StationOnline }),
		StationsTotal:     len(stations),
		RecentAuditEvents: s.store.AuditLog(overviewAuditEvents),
	}
	if impact, ok := s.store.ImpactSummary(); ok {
		out.LatestImpact = &impact
	}

	s.entry("Overview", nil).Debug("Overview computed")
	return out, nil
}
