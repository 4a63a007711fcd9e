package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/wildfire_console/internal/models"
)

const (
	apiKeySecretBytes = 24
	apiKeyPrefixLen   = 10
	apiKeySecretTag   = "wfk_"
)

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.userOrder, func(id string, _ int) models.User {
		return *s.users[id]
	})
}

// AddUser добавляет активного пользователя; email должен быть уникальным
func (s *Store) AddUser(name, email string, role models.Role) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return "", fmt.Errorf("user name and email are required: %w", ErrInvalidInput)
	}
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q: %w", role, ErrInvalidInput)
	}

	var id string
	err := s.apply(func(now time.Time) (auditRecord, error) {
		for _, u := range s.users {
			if strings.EqualFold(u.Email, email) {
				return auditRecord{}, fmt.Errorf("email %s already registered: %w", email, ErrConflict)
			}
		}
		id = s.newID("user")
		s.users[id] = &models.User{
			ID:        id,
			Name:      name,
			Email:     email,
			Role:      role,
			Status:    models.UserActive,
			CreatedAt: now,
		}
		s.userOrder = append([]string{id}, s.userOrder...)
		return auditRecord{action: "User added", target: id, detail: fmt.Sprintf("%s (%s)", email, role)}, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ToggleUserStatus переключает active <-> inactive
func (s *Store) ToggleUserStatus(id string) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		u, ok := s.users[id]
		if !ok {
			return auditRecord{}, notFound("user", id)
		}
		if u.Status == models.UserActive {
			u.Status = models.UserInactive
		} else {
			u.Status = models.UserActive
		}
		return auditRecord{action: "User status changed", target: id, detail: string(u.Status)}, nil
	})
}

// APIKeys возвращает ключи без хешей секретов
func (s *Store) APIKeys() []models.APIKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.keyOrder, func(id string, _ int) models.APIKey {
		return s.keys[id].Clone()
	})
}

// GenerateAPIKey создает ключ и возвращает секрет. Секрет больше нигде не хранится,
// в хранилище остается только bcrypt-хеш.
func (s *Store) GenerateAPIKey(label string) (models.APIKey, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.APIKey{}, "", fmt.Errorf("api key label is blank: %w", ErrInvalidInput)
	}

	raw := make([]byte, apiKeySecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return models.APIKey{}, "", fmt.Errorf("generate api key secret: %w", err)
	}
	secret := apiKeySecretTag + hex.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.hashCost)
	if err != nil {
		return models.APIKey{}, "", fmt.Errorf("hash api key secret: %w", err)
	}

	var key models.APIKey
	err = s.apply(func(now time.Time) (auditRecord, error) {
		k := &models.APIKey{
			ID:         s.newID("key"),
			Label:      label,
			Prefix:     secret[:apiKeyPrefixLen],
			Status:     models.APIKeyActive,
			CreatedAt:  now,
			CreatedBy:  s.actor,
			SecretHash: hash,
		}
		s.keys[k.ID] = k
		s.keyOrder = append([]string{k.ID}, s.keyOrder...)
		key = k.Clone()
		return auditRecord{action: "API key generated", target: k.ID, detail: label}, nil
	})
	if err != nil {
		return models.APIKey{}, "", err
	}
	return key, secret, nil
}

// RevokeAPIKey отзывает активный ключ; отозванный ключ восстановить нельзя
func (s *Store) RevokeAPIKey(id string) error {
	return s.apply(func(now time.Time) (auditRecord, error) {
		k, ok := s.keys[id]
		if !ok {
			return auditRecord{}, notFound("api key", id)
		}
		if k.Status == models.APIKeyRevoked {
			return auditRecord{}, fmt.Errorf("api key %s already revoked: %w", id, ErrInvalidTransition)
		}
		revokedAt := now
		k.Status = models.APIKeyRevoked
		k.RevokedAt = &revokedAt
		return auditRecord{action: "API key revoked", target: id, detail: k.Label}, nil
	})
}

// VerifyAPIKey сообщает, соответствует ли секрет активному ключу.
// Маршруты API ключами не защищены; это точка подключения для будущего слоя
// аутентификации, который будет проверять заголовок с ключом через хранилище.
func (s *Store) VerifyAPIKey(id, secret string) bool {
	s.mu.Lock()
	k, ok := s.keys[id]
	var hash []byte
	if ok && k.Status == models.APIKeyActive {
		hash = append([]byte(nil), k.SecretHash...)
	}
	s.mu.Unlock()

	if len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}

func (s *Store) Settings() models.SystemSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Store) ToggleNotifications() (models.SystemSettings, error) {
	var out models.SystemSettings
	err := s.apply(func(now time.Time) (auditRecord, error) {
		s.settings.NotificationsEnabled = !s.settings.NotificationsEnabled
		out = s.settings
		state := "disabled"
		if s.settings.NotificationsEnabled {
			state = "enabled"
		}
		return auditRecord{action: "Notifications toggled", target: "settings", detail: state}, nil
	})
	return out, err
}

// SetRetentionDays ограничивает значение диапазоном [1, 365], а не отвергает его
func (s *Store) SetRetentionDays(days int) (models.SystemSettings, error) {
	var out models.SystemSettings
	err := s.apply(func(now time.Time) (auditRecord, error) {
		s.settings.DataRetentionDays = clampRetention(days)
		out = s.settings
		return auditRecord{action: "Retention updated", target: "settings", detail: fmt.Sprintf("%d days", out.DataRetentionDays)}, nil
	})
	return out, err
}

func (s *Store) SetDefaultRegion(region string) (models.SystemSettings, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return models.SystemSettings{}, fmt.Errorf("region is blank: %w", ErrInvalidInput)
	}
	var out models.SystemSettings
	err := s.apply(func(now time.Time) (auditRecord, error) {
		s.settings.DefaultRegion = region
		out = s.settings
		return auditRecord{action: "Default region updated", target: "settings", detail: region}, nil
	})
	return out, err
}

func clampRetention(days int) int {
	return lo.Clamp(days, models.MinRetentionDays, models.MaxRetentionDays)
}
