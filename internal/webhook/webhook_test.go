package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/config"
	"github.com/shenikar/wildfire_console/internal/models"
)

type fakePusher struct {
	mu     sync.Mutex
	key    string
	values []interface{}
	err    error
}

func (f *fakePusher) LPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.key = key
	f.values = append(f.values, values...)
	return redis.NewIntResult(int64(len(f.values)), nil)
}

// fakePopper отдает заранее заданные элементы, затем отменяет контекст
type fakePopper struct {
	items  []string
	cancel context.CancelFunc
}

func (f *fakePopper) BRPop(_ context.Context, _ time.Duration, keys ...string) *redis.StringSliceCmd {
	if len(f.items) == 0 {
		f.cancel()
		return redis.NewStringSliceResult(nil, redis.Nil)
	}
	item := f.items[0]
	f.items = f.items[1:]
	return redis.NewStringSliceResult([]string{keys[0], item}, nil)
}

func sampleEntry() models.AuditLogEntry {
	return models.AuditLogEntry{
		ID:        "audit-k3j9x2-a1b2",
		Timestamp: time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC),
		Actor:     "Test Operator",
		Action:    "Alert acknowledged",
		Target:    "ALERT-001",
	}
}

func newTestWorker(t *testing.T, url string, retries int) (*Worker, *[]time.Duration) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: retries,
		WebhookBaseDelay:  100 * time.Millisecond,
	}
	w := NewWorker(nil, logger, cfg)
	var delays []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return w, &delays
}

func TestNewAuditEvent(t *testing.T) {
	entry := sampleEntry()

	event := NewAuditEvent(entry)

	assert.NotEqual(t, "", event.EventID.String())
	assert.Equal(t, entry.ID, event.EntryID)
	assert.Equal(t, entry.Action, event.Action)
	assert.Equal(t, entry.Target, event.Target)
	assert.Equal(t, entry.Actor, event.Actor)
	assert.True(t, entry.Timestamp.Equal(event.Timestamp))
	assert.NotEqual(t, NewAuditEvent(entry).EventID, event.EventID)
}

func TestRedisPublisher_Publish(t *testing.T) {
	client := &fakePusher{}
	p := NewRedisPublisher(client)

	err := p.Publish(context.Background(), NewAuditEvent(sampleEntry()))

	require.NoError(t, err)
	assert.Equal(t, auditQueueKey, client.key)
	require.Len(t, client.values, 1)

	var decoded AuditEvent
	require.NoError(t, json.Unmarshal(client.values[0].([]byte), &decoded))
	assert.Equal(t, "Alert acknowledged", decoded.Action)
	assert.Equal(t, "ALERT-001", decoded.Target)
}

func TestRedisPublisher_PublishError(t *testing.T) {
	p := NewRedisPublisher(&fakePusher{err: errors.New("connection refused")})

	err := p.Publish(context.Background(), NewAuditEvent(sampleEntry()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish audit event")
}

func TestAuditHook_LogsPublishFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	p := NewRedisPublisher(&fakePusher{err: errors.New("connection refused")})

	AuditHook(context.Background(), p, logger)(sampleEntry())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "audit-k3j9x2-a1b2", hook.LastEntry().Data["audit_id"])
}

func TestWorker_DeliverSignsPayload(t *testing.T) {
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	w, delays := newTestWorker(t, srv.URL, 3)
	payload := `{"action":"Alert acknowledged"}`

	ok := w.deliver(context.Background(), AuditEvent{Action: "Alert acknowledged"}, payload)

	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Empty(t, *delays)
}

func TestWorker_DeliverRetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w, delays := newTestWorker(t, srv.URL, 5)

	ok := w.deliver(context.Background(), AuditEvent{}, `{}`)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
}

func TestWorker_DeliverGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w, delays := newTestWorker(t, srv.URL, 3)

	ok := w.deliver(context.Background(), AuditEvent{}, `{}`)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, *delays, 2)
}

func TestWorker_DeliverWithoutURL(t *testing.T) {
	w, _ := newTestWorker(t, "", 3)

	assert.False(t, w.deliver(context.Background(), AuditEvent{}, `{}`))
}

func TestWorker_RunDrainsQueue(t *testing.T) {
	var (
		mu       sync.Mutex
		received []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event AuditEvent
		_ = json.NewDecoder(r.Body).Decode(&event)
		mu.Lock()
		received = append(received, event.Action)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	first, err := json.Marshal(NewAuditEvent(sampleEntry()))
	require.NoError(t, err)
	second := sampleEntry()
	second.Action = "Alert dismissed"
	secondPayload, err := json.Marshal(NewAuditEvent(second))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, _ := newTestWorker(t, srv.URL, 1)
	w.redisClient = &fakePopper{
		items:  []string{string(first), "not json", string(secondPayload)},
		cancel: cancel,
	}

	require.NoError(t, w.Run(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Alert acknowledged", "Alert dismissed"}, received)
}
