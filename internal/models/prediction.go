package models

import "time"

type PredictionScope string

const (
	ScopeIncident PredictionScope = "incident"
	ScopeRegion   PredictionScope = "region"
)

type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

type ProbabilityBand string

const (
	BandLikely   ProbabilityBand = "likely"
	BandPossible ProbabilityBand = "possible"
	BandOuter    ProbabilityBand = "outer"
)

// PredictionRun - один прогон модели распространения огня
type PredictionRun struct {
	ID           string          `json:"id" yaml:"id"`
	Scope        PredictionScope `json:"scope" yaml:"scope"`
	Status       RunStatus       `json:"status" yaml:"status"`
	ModelVersion string          `json:"model_version" yaml:"model_version"`
	IncidentID   string          `json:"incident_id,omitempty" yaml:"incident_id"`
	Region       string          `json:"region,omitempty" yaml:"region"`
	CreatedAt    time.Time       `json:"created_at" yaml:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty" yaml:"completed_at"`
}

func (r PredictionRun) Clone() PredictionRun {
	out := r
	if r.CompletedAt != nil {
		ts := *r.CompletedAt
		out.CompletedAt = &ts
	}
	return out
}

// SpreadEnvelope - прогнозный контур кромки пожара на заданный горизонт
type SpreadEnvelope struct {
	ID           string          `json:"id" yaml:"id"`
	RunID        string          `json:"run_id" yaml:"run_id"`
	HorizonHours int             `json:"horizon_hours" yaml:"horizon_hours"`
	Band         ProbabilityBand `json:"band" yaml:"band"`
	Polygon      Polygon         `json:"polygon" yaml:"polygon"`
}

func (e SpreadEnvelope) Clone() SpreadEnvelope {
	out := e
	out.Polygon = e.Polygon.Clone()
	return out
}

// ImpactSummary - сводка угроз для последнего прогона
type ImpactSummary struct {
	RunID                string    `json:"run_id" yaml:"run_id"`
	AssetsAtRiskCount    int       `json:"assets_at_risk_count" yaml:"assets_at_risk_count"`
	RoadsThreatenedCount int       `json:"roads_threatened_count" yaml:"roads_threatened_count"`
	WUIExposureScore     int       `json:"wui_exposure_score" yaml:"wui_exposure_score"`
	Drivers              []string  `json:"drivers" yaml:"drivers"`
	GeneratedAt          time.Time `json:"generated_at" yaml:"generated_at"`
}

func (s ImpactSummary) Clone() ImpactSummary {
	out := s
	out.Drivers = append([]string{}, s.Drivers...)
	return out
}
