package store

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/wildfire_console/internal/fixtures"
	"github.com/shenikar/wildfire_console/internal/models"
)

var testNow = time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC)

// stepClock каждый вызов сдвигает время на секунду, чтобы отметки времени различались
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// newTestStore - хранилище на стандартных данных с детерминированным генератором
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	clock := &stepClock{now: testNow}
	base := []Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClock(clock.Now),
		WithActor("Test Operator"),
		WithHashCost(bcrypt.MinCost),
	}
	return New(fixtures.Default(testNow), append(base, opts...)...)
}

func TestNew_CopiesDataset(t *testing.T) {
	// Подготовка
	ds := fixtures.Default(testNow)
	s := New(ds)

	// Действие
	ds.Alerts[0].Title = "changed outside"
	ds.Incidents[0].AlertIDs[0] = "alert-999"

	// Проверки
	a, err := s.Alert("alert-001")
	require.NoError(t, err)
	assert.NotEqual(t, "changed outside", a.Title)

	inc, err := s.Incident("incident-001")
	require.NoError(t, err)
	assert.NotContains(t, inc.AlertIDs, "alert-999")
}

func TestNew_ClampsRetention(t *testing.T) {
	ds := fixtures.Default(testNow)
	ds.Settings.DataRetentionDays = 5000

	s := New(ds)

	assert.Equal(t, models.MaxRetentionDays, s.Settings().DataRetentionDays)
}

func TestReads_ReturnCopies(t *testing.T) {
	s := newTestStore(t)

	alerts := s.Alerts()
	alerts[0].Sources[0] = "tampered"
	inc := s.Incidents()
	inc[0].AlertIDs = append(inc[0].AlertIDs, "alert-999")

	fresh, err := s.Alert(alerts[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, models.DetectionSource("tampered"), fresh.Sources[0])
	freshInc, err := s.Incident(inc[0].ID)
	require.NoError(t, err)
	assert.NotContains(t, freshInc.AlertIDs, "alert-999")
}

func TestNewID_Format(t *testing.T) {
	s := newTestStore(t)

	id := s.newID("mission")

	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "mission", parts[0])
	assert.Len(t, parts[1], 6)
	assert.Len(t, parts[2], 4)
}

func TestAuditLog_Limit(t *testing.T) {
	s := newTestStore(t)

	assert.Len(t, s.AuditLog(2), 2)
	assert.Len(t, s.AuditLog(0), 3)
	assert.Len(t, s.AuditLog(100), 3)
}

func TestAuditHook_ReceivesEntriesInOrder(t *testing.T) {
	// Подготовка
	var got []models.AuditLogEntry
	s := newTestStore(t, WithAuditHook(func(e models.AuditLogEntry) {
		got = append(got, e)
	}))

	// Действие
	require.NoError(t, s.AcknowledgeAlert("alert-001"))
	require.NoError(t, s.ResolveAlert("alert-002"))
	assert.Error(t, s.ResolveAlert("alert-404"))

	// Проверки
	require.Len(t, got, 2)
	assert.Equal(t, "Alert acknowledged", got[0].Action)
	assert.Equal(t, "Alert resolved", got[1].Action)
	assert.Equal(t, "Test Operator", got[1].Actor)
	assert.Equal(t, s.AuditLog(1)[0], got[1])
}

func TestConcurrentMutations_EachAudited(t *testing.T) {
	s := newTestStore(t)
	before := len(s.AuditLog(0))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.ToggleNotifications()
		}()
	}
	wg.Wait()

	assert.Len(t, s.AuditLog(0), before+20)
	// четное число переключений возвращает исходное значение
	assert.True(t, s.Settings().NotificationsEnabled)
}
