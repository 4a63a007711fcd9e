package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

// RunPrediction запускает модель распространения для инцидента
func (s *consoleService) RunPrediction(ctx context.Context, incidentID string) (string, error) {
	log := s.entry("RunPrediction", logrus.Fields{"incident_id": incidentID})
	if err := ctx.Err(); err != nil {
		return "", fail(log, err, "run prediction")
	}
	log.Info("Running spread prediction")

	runID, err := s.store.RunPrediction(incidentID)
	if err != nil {
		return "", fail(log, err, "run prediction")
	}

	log.WithField("run_id", runID).Info("Prediction run completed")
	return runID, nil
}

// ListPredictionRuns возвращает прогоны от новых к старым; пустой incidentID - все прогоны
func (s *consoleService) ListPredictionRuns(ctx context.Context, incidentID string) ([]models.PredictionRun, error) {
	runs := s.store.PredictionRuns()
	if incidentID == "" {
		return runs, nil
	}
	return lo.Filter(runs, func(r models.PredictionRun, _ int) bool {
		return r.IncidentID == incidentID
	}), nil
}

func (s *consoleService) ListSpreadEnvelopes(ctx context.Context, runID string) ([]models.SpreadEnvelope, error) {
	return s.store.SpreadEnvelopes(runID), nil
}

// ImpactSummary возвращает сводку угроз последнего прогона
func (s *consoleService) ImpactSummary(ctx context.Context) (*models.ImpactSummary, error) {
	summary, ok := s.store.ImpactSummary()
	if !ok {
		return nil, fmt.Errorf("service: no prediction has been run yet: %w", ErrNotFound)
	}
	return &summary, nil
}
