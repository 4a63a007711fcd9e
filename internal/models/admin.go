package models

import "time"

type Role string

const (
	RoleAdmin             Role = "admin"
	RoleIncidentCommander Role = "incident_commander"
	RoleAnalyst           Role = "analyst"
	RoleOperator          Role = "operator"
	RoleViewer            Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleIncidentCommander, RoleAnalyst, RoleOperator, RoleViewer:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Email     string     `json:"email" yaml:"email"`
	Role      Role       `json:"role" yaml:"role"`
	Status    UserStatus `json:"status" yaml:"status"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
}

type APIKeyStatus string

const (
	APIKeyActive  APIKeyStatus = "active"
	APIKeyRevoked APIKeyStatus = "revoked"
)

// APIKey хранит только хеш секрета; сам секрет отдается один раз при создании
type APIKey struct {
	ID         string       `json:"id" yaml:"id"`
	Label      string       `json:"label" yaml:"label"`
	Prefix     string       `json:"prefix" yaml:"prefix"`
	Status     APIKeyStatus `json:"status" yaml:"status"`
	CreatedAt  time.Time    `json:"created_at" yaml:"created_at"`
	CreatedBy  string       `json:"created_by" yaml:"created_by"`
	RevokedAt  *time.Time   `json:"revoked_at,omitempty" yaml:"revoked_at"`
	SecretHash []byte       `json:"-" yaml:"-"`
}

func (k APIKey) Clone() APIKey {
	out := k
	if k.RevokedAt != nil {
		ts := *k.RevokedAt
		out.RevokedAt = &ts
	}
	out.SecretHash = nil
	return out
}

// AuditLogEntry - запись журнала аудита, журнал хранится от новых к старым
type AuditLogEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Actor     string    `json:"actor" yaml:"actor"`
	Action    string    `json:"action" yaml:"action"`
	Target    string    `json:"target" yaml:"target"`
	Detail    string    `json:"detail,omitempty" yaml:"detail"`
}

const (
	MinRetentionDays = 1
	MaxRetentionDays = 365
)

type SystemSettings struct {
	NotificationsEnabled bool   `json:"notifications_enabled" yaml:"notifications_enabled"`
	DefaultRegion        string `json:"default_region" yaml:"default_region"`
	DataRetentionDays    int    `json:"data_retention_days" yaml:"data_retention_days"`
}
