package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/models"
)

const (
	auditQueueKey = "console_audit_events"
)

// AuditEvent - событие аудита, отправляемое во внешнюю систему
type AuditEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	EntryID   string    `json:"entry_id"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAuditEvent строит событие из записи журнала аудита
func NewAuditEvent(entry models.AuditLogEntry) AuditEvent {
	return AuditEvent{
		EventID:   uuid.New(),
		EntryID:   entry.ID,
		Action:    entry.Action,
		Target:    entry.Target,
		Actor:     entry.Actor,
		Detail:    entry.Detail,
		Timestamp: entry.Timestamp,
	}
}

// Publisher - интерфейс для публикации событий аудита
type Publisher interface {
	Publish(ctx context.Context, event AuditEvent) error
}

// pusher - часть клиента Redis, нужная издателю
type pusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient pusher
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client pusher) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, auditQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish audit event to Redis: %w", err)
	}
	return nil
}

// AuditHook возвращает функцию для store.WithAuditHook.
// Ошибки публикации только логируются: мутация в хранилище уже применена.
func AuditHook(ctx context.Context, p Publisher, logger *logrus.Logger) func(models.AuditLogEntry) {
	return func(entry models.AuditLogEntry) {
		if err := p.Publish(ctx, NewAuditEvent(entry)); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"audit_id": entry.ID,
				"action":   entry.Action,
			}).Warn("Failed to publish audit event")
		}
	}
}
