package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/wildfire_console/internal/config"
)

const (
	// pollTimeout ограничивает BRPOP, чтобы воркер периодически проверял контекст
	pollTimeout = 5 * time.Second
	// popErrorDelay - пауза после ошибки чтения из Redis
	popErrorDelay = time.Second
)

// popper - часть клиента Redis, нужная воркеру
type popper interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// Worker - структура для обработки очереди событий аудита и отправки вебхуков
type Worker struct {
	redisClient popper
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewWorker создает новый Worker
func NewWorker(redisClient popper, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping webhook worker.")
			return nil
		}

		result, err := w.redisClient.BRPop(ctx, pollTimeout, auditQueueKey).Result()
		if err != nil {
			switch {
			case errors.Is(err, redis.Nil):
				// Очередь пуста
			case ctx.Err() != nil:
				// Контекст отменен, выход на следующей итерации
			default:
				w.logger.WithError(err).Error("Failed to pop audit event from Redis")
				_ = w.sleep(ctx, popErrorDelay)
			}
			continue
		}

		// result[0] - ключ, result[1] - значение
		if len(result) < 2 {
			continue
		}
		payload := result[1]
		var event AuditEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal audit event from Redis")
			continue
		}

		w.deliver(ctx, event, payload)
	}
}

// deliver отправляет событие с экспоненциальной задержкой между попытками.
// Возвращает true, если вебхук принят.
func (w *Worker) deliver(ctx context.Context, event AuditEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":     event.EventID,
		"event_action": event.Action,
		"event_target": event.Target,
	})
	log.Debug("Processing audit event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}

	maxRetries := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return true
		}

		left := maxRetries - 1 - i
		if left == 0 {
			log.WithError(err).Warn("Webhook delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Webhook delivery attempt failed. Retrying in %v. Retries left: %d", delay, left)
		if w.sleep(ctx, delay) != nil {
			log.Warn("Webhook delivery interrupted by shutdown.")
			return false
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
	return false
}

func (w *Worker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
