package store

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/shenikar/wildfire_console/internal/fixtures"
	"github.com/shenikar/wildfire_console/internal/models"
)

const (
	kmPerDegree      = 111.32
	envelopeVertices = 10
)

type envelopeShape struct {
	hours     int
	band      models.ProbabilityBand
	minRadius float64
	maxRadius float64
}

// за каждый прогон строятся ровно эти два контура
var envelopeShapes = []envelopeShape{
	{hours: 1, band: models.BandLikely, minRadius: 0.6, maxRadius: 1.2},
	{hours: 3, band: models.BandPossible, minRadius: 1.8, maxRadius: 3.2},
}

// PredictionRuns возвращает прогоны от новых к старым
func (s *Store) PredictionRuns() []models.PredictionRun {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.runs, func(r *models.PredictionRun, _ int) models.PredictionRun {
		return r.Clone()
	})
}

// SpreadEnvelopes возвращает контуры прогона; пустой runID - все контуры
func (s *Store) SpreadEnvelopes(runID string) []models.SpreadEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SpreadEnvelope, 0, len(s.envelopes))
	for _, e := range s.envelopes {
		if runID == "" || e.RunID == runID {
			out = append(out, e.Clone())
		}
	}
	return out
}

// ImpactSummary возвращает сводку последнего прогона; false, если прогонов еще не было
func (s *Store) ImpactSummary() (models.ImpactSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.impact == nil {
		return models.ImpactSummary{}, false
	}
	return s.impact.Clone(), true
}

// RunPrediction синтезирует завершенный прогон для инцидента: два контура распространения
// и новую сводку угроз, которая заменяет предыдущую.
func (s *Store) RunPrediction(incidentID string) (string, error) {
	var runID string

	err := s.apply(func(now time.Time) (auditRecord, error) {
		inc, ok := s.incidents[incidentID]
		if !ok {
			return auditRecord{}, notFound("incident", incidentID)
		}

		runID = s.newID("run")
		completedAt := now
		run := &models.PredictionRun{
			ID:           runID,
			Scope:        models.ScopeIncident,
			Status:       models.RunCompleted,
			ModelVersion: s.modelVersion,
			IncidentID:   incidentID,
			CreatedAt:    now,
			CompletedAt:  &completedAt,
		}
		s.runs = append([]*models.PredictionRun{run}, s.runs...)

		heading := s.randFloat(0, 2*math.Pi)
		for _, shape := range envelopeShapes {
			s.envelopes = append(s.envelopes, models.SpreadEnvelope{
				ID:           s.newID("env"),
				RunID:        runID,
				HorizonHours: shape.hours,
				Band:         shape.band,
				Polygon:      s.envelopePolygon(inc.Location, heading, shape),
			})
		}

		s.impact = &models.ImpactSummary{
			RunID:                runID,
			AssetsAtRiskCount:    s.randInt(12, 85),
			RoadsThreatenedCount: s.randInt(0, 7),
			WUIExposureScore:     s.randInt(35, 92),
			Drivers:              fixtures.ImpactDrivers(),
			GeneratedAt:          now,
		}

		return auditRecord{action: "Prediction run started", target: incidentID, detail: runID}, nil
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// envelopePolygon строит неровный контур, вытянутый по направлению heading
func (s *Store) envelopePolygon(center models.LatLng, heading float64, shape envelopeShape) models.Polygon {
	base := s.randFloat(shape.minRadius, shape.maxRadius)
	cosLat := cosDeg(center.Lat)

	poly := make(models.Polygon, 0, envelopeVertices)
	for i := 0; i < envelopeVertices; i++ {
		angle := 2 * math.Pi * float64(i) / envelopeVertices
		stretch := 1 + 0.6*math.Max(0, math.Cos(angle-heading))
		r := base * stretch * s.randFloat(0.8, 1.2)
		dLat := r * math.Cos(angle) / kmPerDegree
		dLng := r * math.Sin(angle) / (kmPerDegree * cosLat)
		poly = append(poly, models.LatLng{
			Lat: round(center.Lat+dLat, 5),
			Lng: round(center.Lng+dLng, 5),
		})
	}
	return poly
}

func cosDeg(lat float64) float64 {
	return math.Max(math.Cos(lat*math.Pi/180), 0.01)
}
