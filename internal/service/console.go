package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/mapview"
	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/store"
)

// Ошибки хранилища, по которым слой HTTP выбирает код ответа
var (
	ErrNotFound          = store.ErrNotFound
	ErrInvalidTransition = store.ErrInvalidTransition
	ErrInvalidInput      = store.ErrInvalidInput
	ErrConflict          = store.ErrConflict
)

// ConsoleStore определяет контракт хранилища состояния консоли
type ConsoleStore interface {
	Alerts() []models.Alert
	Alert(id string) (models.Alert, error)
	AcknowledgeAlert(id string) error
	DismissAlert(id, reason string) error
	ResolveAlert(id string) error
	CreateIncidentFromAlert(alertID string) (string, error)
	LinkAlertToIncident(alertID, incidentID string) error

	Incidents() []models.Incident
	Incident(id string) (models.Incident, error)
	CreateIncident(name string, priority models.Priority) (string, error)
	UpdateIncidentStatus(id string, status models.IncidentStatus) error

	RunPrediction(incidentID string) (string, error)
	PredictionRuns() []models.PredictionRun
	SpreadEnvelopes(runID string) []models.SpreadEnvelope
	ImpactSummary() (models.ImpactSummary, bool)

	Stations() []models.SensorStation
	Drones() []models.DroneAsset
	Missions() []models.UavMission
	Mission(id string) (models.UavMission, error)
	CreateMission(droneID string, missionType models.MissionType) (string, error)
	StartMission(id string) error
	AbortMission(id string) error
	MarkMissionCompleted(id string) error
	CancelMission(id string) error

	Users() []models.User
	AddUser(name, email string, role models.Role) (string, error)
	ToggleUserStatus(id string) error
	APIKeys() []models.APIKey
	GenerateAPIKey(label string) (models.APIKey, string, error)
	RevokeAPIKey(id string) error
	AuditLog(limit int) []models.AuditLogEntry
	Settings() models.SystemSettings
	ToggleNotifications() (models.SystemSettings, error)
	SetRetentionDays(days int) (models.SystemSettings, error)
	SetDefaultRegion(region string) (models.SystemSettings, error)
}

// MapView определяет контракт представления карты
type MapView interface {
	Snapshot() mapview.Snapshot
	SetCamera(center models.LatLng, zoom float64) mapview.Snapshot
	SetPanelOpen(open bool) mapview.Snapshot
	ResizeWindow(width, height int) mapview.Snapshot
	RotateOrientation() mapview.Snapshot
}

// ConsoleService определяет контракт бизнес-логики консоли
type ConsoleService interface {
	Overview(ctx context.Context) (*Overview, error)

	ListAlerts(ctx context.Context, filter AlertFilter) ([]models.Alert, error)
	GetAlert(ctx context.Context, id string) (*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id string) error
	DismissAlert(ctx context.Context, id, reason string) error
	ResolveAlert(ctx context.Context, id string) error
	EscalateAlert(ctx context.Context, id string) (string, error)
	LinkAlert(ctx context.Context, alertID, incidentID string) error

	ListIncidents(ctx context.Context, filter IncidentFilter) ([]models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	CreateIncident(ctx context.Context, name string, priority models.Priority) (string, error)
	UpdateIncidentStatus(ctx context.Context, id string, status models.IncidentStatus) error

	RunPrediction(ctx context.Context, incidentID string) (string, error)
	ListPredictionRuns(ctx context.Context, incidentID string) ([]models.PredictionRun, error)
	ListSpreadEnvelopes(ctx context.Context, runID string) ([]models.SpreadEnvelope, error)
	ImpactSummary(ctx context.Context) (*models.ImpactSummary, error)

	ListStations(ctx context.Context) ([]models.SensorStation, error)
	ListDrones(ctx context.Context) ([]models.DroneAsset, error)
	ListMissions(ctx context.Context) ([]models.UavMission, error)
	GetMission(ctx context.Context, id string) (*models.UavMission, error)
	CreateMission(ctx context.Context, droneID string, missionType models.MissionType) (string, error)
	StartMission(ctx context.Context, id string) error
	AbortMission(ctx context.Context, id string) error
	CompleteMission(ctx context.Context, id string) error
	CancelMission(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, name, email string, role models.Role) (string, error)
	ToggleUserStatus(ctx context.Context, id string) error
	ListAPIKeys(ctx context.Context) ([]models.APIKey, error)
	GenerateAPIKey(ctx context.Context, label string) (*SecretExport, error)
	RevokeAPIKey(ctx context.Context, id string) error
	AuditLog(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
	Settings(ctx context.Context) (models.SystemSettings, error)
	ToggleNotifications(ctx context.Context) (models.SystemSettings, error)
	SetRetentionDays(ctx context.Context, days int) (models.SystemSettings, error)
	SetDefaultRegion(ctx context.Context, region string) (models.SystemSettings, error)

	MapSnapshot(ctx context.Context) (mapview.Snapshot, error)
	SetCamera(ctx context.Context, center models.LatLng, zoom float64) (mapview.Snapshot, error)
	SetPanelOpen(ctx context.Context, open bool) (mapview.Snapshot, error)
	ResizeWindow(ctx context.Context, width, height int) (mapview.Snapshot, error)
	RotateOrientation(ctx context.Context) (mapview.Snapshot, error)
}

type consoleService struct {
	store  ConsoleStore
	view   MapView
	logger *logrus.Logger
}

func NewConsoleService(store ConsoleStore, view MapView, logger *logrus.Logger) ConsoleService {
	return &consoleService{
		store:  store,
		view:   view,
		logger: logger,
	}
}

func (s *consoleService) entry(method string, fields logrus.Fields) *logrus.Entry {
	log := s.logger.WithFields(logrus.Fields{
		"service": "console",
		"method":  method,
	})
	if len(fields) > 0 {
		log = log.WithFields(fields)
	}
	return log
}

// fail логирует ошибку и оборачивает ее. Ошибки пользовательского ввода идут уровнем Warn.
func fail(log *logrus.Entry, err error, action string) error {
	if isDomainError(err) {
		log.WithError(err).Warn("Operation rejected")
	} else {
		log.WithError(err).Error("Operation failed")
	}
	return fmt.Errorf("service: could not %s: %w", action, err)
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConflict)
}
