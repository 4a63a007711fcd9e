package models

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type AlertStatus string

const (
	AlertNew          AlertStatus = "new"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertVerifying    AlertStatus = "verifying"
	AlertEscalated    AlertStatus = "escalated"
	AlertResolved     AlertStatus = "resolved"
	AlertDismissed    AlertStatus = "dismissed"
)

type DetectionSource string

const (
	SourceSatellite    DetectionSource = "satellite"
	SourceCamera       DetectionSource = "camera"
	SourceSensor       DetectionSource = "sensor"
	SourceUAV          DetectionSource = "uav"
	SourcePublicReport DetectionSource = "public_report"
)

// Alert - кандидат на пожар, ожидающий разбора оператором
type Alert struct {
	ID                string            `json:"id" yaml:"id"`
	Title             string            `json:"title" yaml:"title"`
	Severity          Severity          `json:"severity" yaml:"severity"`
	Confidence        int               `json:"confidence" yaml:"confidence"`
	Status            AlertStatus       `json:"status" yaml:"status"`
	Sources           []DetectionSource `json:"sources" yaml:"sources"`
	Location          LatLng            `json:"location" yaml:"location"`
	Region            string            `json:"region" yaml:"region"`
	RecommendedAction string            `json:"recommended_action,omitempty" yaml:"recommended_action"`
	DetectedAt        time.Time         `json:"detected_at" yaml:"detected_at"`
	UpdatedAt         time.Time         `json:"updated_at" yaml:"updated_at"`
	AcknowledgedAt    *time.Time        `json:"acknowledged_at,omitempty" yaml:"acknowledged_at"`
	AcknowledgedBy    string            `json:"acknowledged_by,omitempty" yaml:"acknowledged_by"`
	IncidentID        string            `json:"incident_id,omitempty" yaml:"incident_id"`
}

// Clone возвращает копию без общих срезов и указателей
func (a Alert) Clone() Alert {
	out := a
	if a.Sources != nil {
		out.Sources = append([]DetectionSource(nil), a.Sources...)
	}
	if a.AcknowledgedAt != nil {
		ts := *a.AcknowledgedAt
		out.AcknowledgedAt = &ts
	}
	return out
}

// Valid сообщает, известен ли уровень серьезности
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertNew, AlertAcknowledged, AlertVerifying, AlertEscalated, AlertResolved, AlertDismissed:
		return true
	}
	return false
}
