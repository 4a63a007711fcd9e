package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

func (s *consoleService) ListStations(ctx context.Context) ([]models.SensorStation, error) {
	return s.store.Stations(), nil
}

func (s *consoleService) ListDrones(ctx context.Context) ([]models.DroneAsset, error) {
	return s.store.Drones(), nil
}

func (s *consoleService) ListMissions(ctx context.Context) ([]models.UavMission, error) {
	return s.store.Missions(), nil
}

func (s *consoleService) GetMission(ctx context.Context, id string) (*models.UavMission, error) {
	log := s.entry("GetMission", logrus.Fields{"mission_id": id})

	m, err := s.store.Mission(id)
	if err != nil {
		return nil, fail(log, err, "get mission")
	}
	return &m, nil
}

// CreateMission планирует миссию БПЛА
func (s *consoleService) CreateMission(ctx context.Context, droneID string, missionType models.MissionType) (string, error) {
	log := s.entry("CreateMission", logrus.Fields{"drone_id": droneID, "type": missionType})
	log.Info("Planning UAV mission")

	id, err := s.store.CreateMission(droneID, missionType)
	if err != nil {
		return "", fail(log, err, "create mission")
	}

	log.WithField("mission_id", id).Info("Mission planned")
	return id, nil
}

func (s *consoleService) StartMission(ctx context.Context, id string) error {
	return s.missionStep(id, "StartMission", "start mission", s.store.StartMission)
}

func (s *consoleService) AbortMission(ctx context.Context, id string) error {
	return s.missionStep(id, "AbortMission", "abort mission", s.store.AbortMission)
}

func (s *consoleService) CompleteMission(ctx context.Context, id string) error {
	return s.missionStep(id, "CompleteMission", "complete mission", s.store.MarkMissionCompleted)
}

func (s *consoleService) CancelMission(ctx context.Context, id string) error {
	return s.missionStep(id, "CancelMission", "cancel mission", s.store.CancelMission)
}

func (s *consoleService) missionStep(id, method, action string, step func(id string) error) error {
	log := s.entry(method, logrus.Fields{"mission_id": id})
	log.Info("Changing mission status")

	if err := step(id); err != nil {
		return fail(log, err, action)
	}

	log.Info("Mission status changed")
	return nil
}
