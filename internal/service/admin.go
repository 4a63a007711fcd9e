package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

// SecretExport - содержимое файла, который отдается один раз при создании API-ключа
type SecretExport struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

func (s *consoleService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Users(), nil
}

func (s *consoleService) AddUser(ctx context.Context, name, email string, role models.Role) (string, error) {
	log := s.entry("AddUser", logrus.Fields{"email": email, "role": role})
	log.Info("Adding user")

	id, err := s.store.AddUser(name, email, role)
	if err != nil {
		return "", fail(log, err, "add user")
	}

	log.WithField("user_id", id).Info("User added")
	return id, nil
}

func (s *consoleService) ToggleUserStatus(ctx context.Context, id string) error {
	log := s.entry("ToggleUserStatus", logrus.Fields{"user_id": id})

	if err := s.store.ToggleUserStatus(id); err != nil {
		return fail(log, err, "toggle user status")
	}

	log.Info("User status toggled")
	return nil
}

func (s *consoleService) ListAPIKeys(ctx context.Context) ([]models.APIKey, error) {
	return s.store.APIKeys(), nil
}

// GenerateAPIKey создает ключ. Секрет не логируется и больше никогда не возвращается.
func (s *consoleService) GenerateAPIKey(ctx context.Context, label string) (*SecretExport, error) {
	log := s.entry("GenerateAPIKey", logrus.Fields{"label": label})
	if err := ctx.Err(); err != nil {
		return nil, fail(log, err, "generate api key")
	}
	log.Info("Generating API key")

	key, secret, err := s.store.GenerateAPIKey(label)
	if err != nil {
		return nil, fail(log, err, "generate api key")
	}

	log.WithFields(logrus.Fields{"key_id": key.ID, "prefix": key.Prefix}).Info("API key generated")
	return &SecretExport{ID: key.ID, Secret: secret}, nil
}

func (s *consoleService) RevokeAPIKey(ctx context.Context, id string) error {
	log := s.entry("RevokeAPIKey", logrus.Fields{"key_id": id})
	log.Info("Revoking API key")

	if err := s.store.RevokeAPIKey(id); err != nil {
		return fail(log, err, "revoke api key")
	}

	log.Info("API key revoked")
	return nil
}

func (s *consoleService) AuditLog(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	return s.store.AuditLog(limit), nil
}

func (s *consoleService) Settings(ctx context.Context) (models.SystemSettings, error) {
	return s.store.Settings(), nil
}

func (s *consoleService) ToggleNotifications(ctx context.Context) (models.SystemSettings, error) {
	log := s.entry("ToggleNotifications", nil)

	settings, err := s.store.ToggleNotifications()
	if err != nil {
		return models.SystemSettings{}, fail(log, err, "toggle notifications")
	}

	log.WithField("enabled", settings.NotificationsEnabled).Info("Notifications toggled")
	return settings, nil
}

// SetRetentionDays сохраняет срок хранения; значение вне [1, 365] ограничивается
func (s *consoleService) SetRetentionDays(ctx context.Context, days int) (models.SystemSettings, error) {
	log := s.entry("SetRetentionDays", logrus.Fields{"requested": days})

	settings, err := s.store.SetRetentionDays(days)
	if err != nil {
		return models.SystemSettings{}, fail(log, err, "set retention")
	}

	log.WithField("retention_days", settings.DataRetentionDays).Info("Retention updated")
	return settings, nil
}

func (s *consoleService) SetDefaultRegion(ctx context.Context, region string) (models.SystemSettings, error) {
	log := s.entry("SetDefaultRegion", logrus.Fields{"region": region})

	settings, err := s.store.SetDefaultRegion(region)
	if err != nil {
		return models.SystemSettings{}, fail(log, err, "set default region")
	}

	log.Info("Default region updated")
	return settings, nil
}
