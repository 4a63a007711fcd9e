package models

import "time"

type StationKind string

const (
	StationWeather StationKind = "weather"
	StationCamera  StationKind = "camera"
	StationSmoke   StationKind = "smoke"
)

type StationStatus string

const (
	StationOnline   StationStatus = "online"
	StationDegraded StationStatus = "degraded"
	StationOffline  StationStatus = "offline"
)

// SensorStation - наземная станция наблюдения, только для чтения
type SensorStation struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	Kind          StationKind        `json:"kind" yaml:"kind"`
	Status        StationStatus      `json:"status" yaml:"status"`
	Location      LatLng             `json:"location" yaml:"location"`
	LastReadingAt time.Time          `json:"last_reading_at" yaml:"last_reading_at"`
	Readings      map[string]float64 `json:"readings,omitempty" yaml:"readings"`
}

func (s SensorStation) Clone() SensorStation {
	out := s
	if s.Readings != nil {
		out.Readings = make(map[string]float64, len(s.Readings))
		for k, v := range s.Readings {
			out.Readings[k] = v
		}
	}
	return out
}

type DroneStatus string

const (
	DroneAvailable   DroneStatus = "available"
	DroneInFlight    DroneStatus = "in_flight"
	DroneMaintenance DroneStatus = "maintenance"
)

func (s DroneStatus) Valid() bool {
	switch s {
	case DroneAvailable, DroneInFlight, DroneMaintenance:
		return true
	}
	return false
}

// DroneAsset - БПЛА из парка
type DroneAsset struct {
	ID         string      `json:"id" yaml:"id"`
	Callsign   string      `json:"callsign" yaml:"callsign"`
	Model      string      `json:"model" yaml:"model"`
	Status     DroneStatus `json:"status" yaml:"status"`
	BatteryPct int         `json:"battery_pct" yaml:"battery_pct"`
	Home       LatLng      `json:"home" yaml:"home"`
}

type MissionType string

const (
	MissionReconnaissance   MissionType = "reconnaissance"
	MissionThermalScan      MissionType = "thermal_scan"
	MissionPerimeterMapping MissionType = "perimeter_mapping"
	MissionHotspotWatch     MissionType = "hotspot_watch"
)

func (t MissionType) Valid() bool {
	switch t {
	case MissionReconnaissance, MissionThermalScan, MissionPerimeterMapping, MissionHotspotWatch:
		return true
	}
	return false
}

type MissionStatus string

const (
	MissionPlanned    MissionStatus = "planned"
	MissionInProgress MissionStatus = "in_progress"
	MissionCompleted  MissionStatus = "completed"
	MissionAborted    MissionStatus = "aborted"
	MissionCancelled  MissionStatus = "cancelled"
)

func (s MissionStatus) Valid() bool {
	switch s {
	case MissionPlanned, MissionInProgress, MissionCompleted, MissionAborted, MissionCancelled:
		return true
	}
	return false
}

// UavMission - полетное задание для БПЛА
type UavMission struct {
	ID             string        `json:"id" yaml:"id"`
	DroneID        string        `json:"drone_id" yaml:"drone_id"`
	Type           MissionType   `json:"type" yaml:"type"`
	Status         MissionStatus `json:"status" yaml:"status"`
	AreaOfInterest Polygon       `json:"area_of_interest" yaml:"area_of_interest"`
	Assignee       string        `json:"assignee" yaml:"assignee"`
	CreatedAt      time.Time     `json:"created_at" yaml:"created_at"`
	StartTime      *time.Time    `json:"start_time,omitempty" yaml:"start_time"`
	EndTime        *time.Time    `json:"end_time,omitempty" yaml:"end_time"`
}

func (m UavMission) Clone() UavMission {
	out := m
	out.AreaOfInterest = m.AreaOfInterest.Clone()
	if m.StartTime != nil {
		ts := *m.StartTime
		out.StartTime = &ts
	}
	if m.EndTime != nil {
		ts := *m.EndTime
		out.EndTime = &ts
	}
	return out
}
