package models

import "time"

type IncidentStatus string

const (
	IncidentSuspected    IncidentStatus = "suspected"
	IncidentConfirmed    IncidentStatus = "confirmed"
	IncidentContained    IncidentStatus = "contained"
	IncidentControlled   IncidentStatus = "controlled"
	IncidentExtinguished IncidentStatus = "extinguished"
	IncidentFalseAlarm   IncidentStatus = "false_alarm"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Incident - подтвержденный или предполагаемый пожар, может объединять несколько алертов
type Incident struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Status       IncidentStatus `json:"status" yaml:"status"`
	Priority     Priority       `json:"priority" yaml:"priority"`
	Confidence   int            `json:"confidence" yaml:"confidence"`
	Location     LatLng         `json:"location" yaml:"location"`
	AlertIDs     []string       `json:"alert_ids" yaml:"alert_ids"`
	CommanderID  string         `json:"commander_id,omitempty" yaml:"commander_id"`
	AreaHectares float64        `json:"area_hectares" yaml:"area_hectares"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" yaml:"updated_at"`
}

func (i Incident) Clone() Incident {
	out := i
	out.AlertIDs = append([]string{}, i.AlertIDs...)
	return out
}

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentSuspected, IncidentConfirmed, IncidentContained,
		IncidentControlled, IncidentExtinguished, IncidentFalseAlarm:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// PriorityFromSeverity переносит серьезность алерта в приоритет инцидента
func PriorityFromSeverity(s Severity) Priority {
	switch s {
	case SeverityCritical:
		return PriorityCritical
	case SeverityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
