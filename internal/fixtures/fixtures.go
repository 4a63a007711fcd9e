// Package fixtures содержит начальный набор синтетических данных консоли
package fixtures

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shenikar/wildfire_console/internal/models"
)

// Dataset - начальное состояние всех коллекций хранилища
type Dataset struct {
	Bounds          models.Bounds           `yaml:"bounds"`
	Alerts          []models.Alert          `yaml:"alerts"`
	Incidents       []models.Incident       `yaml:"incidents"`
	PredictionRuns  []models.PredictionRun  `yaml:"prediction_runs"`
	SpreadEnvelopes []models.SpreadEnvelope `yaml:"spread_envelopes"`
	ImpactSummary   *models.ImpactSummary   `yaml:"impact_summary"`
	Stations        []models.SensorStation  `yaml:"stations"`
	Drones          []models.DroneAsset     `yaml:"drones"`
	Missions        []models.UavMission     `yaml:"missions"`
	Users           []models.User           `yaml:"users"`
	APIKeys         []models.APIKey         `yaml:"api_keys"`
	AuditLog        []models.AuditLogEntry  `yaml:"audit_log"`
	Settings        models.SystemSettings   `yaml:"settings"`
}

// Load читает набор данных из YAML. Из Default берутся только границы карты,
// регион по умолчанию и срок хранения, если они не заданы; остальные секции
// остаются такими, как в файле.
func Load(r io.Reader, now time.Time) (Dataset, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("fixtures: read: %w", err)
	}

	ds := Dataset{}
	if err := yaml.Unmarshal(buf, &ds); err != nil {
		return Dataset{}, fmt.Errorf("fixtures: decode yaml: %w", err)
	}

	def := Default(now)
	if ds.Bounds.Empty() {
		ds.Bounds = def.Bounds
	}
	if ds.Settings.DefaultRegion == "" {
		ds.Settings.DefaultRegion = def.Settings.DefaultRegion
	}
	if ds.Settings.DataRetentionDays == 0 {
		ds.Settings.DataRetentionDays = def.Settings.DataRetentionDays
	}

	if err := Validate(ds); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// LoadFile читает набор данных из файла
func LoadFile(path string, now time.Time) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, now)
}

// Validate проверяет значения перечислений и ссылочную целостность набора
func Validate(ds Dataset) error {
	alerts := make(map[string]models.Alert, len(ds.Alerts))
	for _, a := range ds.Alerts {
		if a.ID == "" {
			return fmt.Errorf("fixtures: alert without id")
		}
		if !a.Severity.Valid() {
			return fmt.Errorf("fixtures: alert %s has unknown severity %q", a.ID, a.Severity)
		}
		if !a.Status.Valid() {
			return fmt.Errorf("fixtures: alert %s has unknown status %q", a.ID, a.Status)
		}
		if _, dup := alerts[a.ID]; dup {
			return fmt.Errorf("fixtures: duplicate alert id %s", a.ID)
		}
		alerts[a.ID] = a
	}

	incidents := make(map[string]struct{}, len(ds.Incidents))
	for _, inc := range ds.Incidents {
		if _, dup := incidents[inc.ID]; dup {
			return fmt.Errorf("fixtures: duplicate incident id %s", inc.ID)
		}
		if !inc.Status.Valid() {
			return fmt.Errorf("fixtures: incident %s has unknown status %q", inc.ID, inc.Status)
		}
		if !inc.Priority.Valid() {
			return fmt.Errorf("fixtures: incident %s has unknown priority %q", inc.ID, inc.Priority)
		}
		incidents[inc.ID] = struct{}{}
		for _, alertID := range inc.AlertIDs {
			a, ok := alerts[alertID]
			if !ok {
				return fmt.Errorf("fixtures: incident %s links unknown alert %s", inc.ID, alertID)
			}
			if a.IncidentID != inc.ID {
				return fmt.Errorf("fixtures: alert %s does not point back to incident %s", alertID, inc.ID)
			}
		}
	}

	runs := make(map[string]struct{}, len(ds.PredictionRuns))
	for _, r := range ds.PredictionRuns {
		runs[r.ID] = struct{}{}
	}
	for _, e := range ds.SpreadEnvelopes {
		if _, ok := runs[e.RunID]; !ok {
			return fmt.Errorf("fixtures: envelope %s references unknown run %s", e.ID, e.RunID)
		}
	}
	if ds.ImpactSummary != nil {
		if _, ok := runs[ds.ImpactSummary.RunID]; !ok {
			return fmt.Errorf("fixtures: impact summary references unknown run %s", ds.ImpactSummary.RunID)
		}
	}

	drones := make(map[string]struct{}, len(ds.Drones))
	for _, d := range ds.Drones {
		if !d.Status.Valid() {
			return fmt.Errorf("fixtures: drone %s has unknown status %q", d.ID, d.Status)
		}
		drones[d.ID] = struct{}{}
	}
	for _, m := range ds.Missions {
		if !m.Status.Valid() {
			return fmt.Errorf("fixtures: mission %s has unknown status %q", m.ID, m.Status)
		}
		if !m.Type.Valid() {
			return fmt.Errorf("fixtures: mission %s has unknown type %q", m.ID, m.Type)
		}
		if _, ok := drones[m.DroneID]; !ok {
			return fmt.Errorf("fixtures: mission %s references unknown drone %s", m.ID, m.DroneID)
		}
	}
	return nil
}
