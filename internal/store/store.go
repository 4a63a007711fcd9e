// Package store - единственный владелец изменяемого состояния консоли.
//
// Все изменения проходят через именованные операции Store. Каждая операция атомарна
// (один мьютекс на все коллекции) и добавляет ровно одну запись в начало журнала аудита.
// Чтение возвращает глубокие копии, поэтому вызывающий код не может изменить состояние в обход операций.
package store

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/wildfire_console/internal/fixtures"
	"github.com/shenikar/wildfire_console/internal/models"
)

var (
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
)

// RandSource - источник случайности для производных полей; *rand.Rand из math/rand/v2 подходит
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// AuditHook получает каждую новую запись аудита в порядке добавления
type AuditHook func(entry models.AuditLogEntry)

const (
	DefaultActor        = "Duty Officer"
	DefaultModelVersion = "spread-v2.3"
)

type Option func(*Store)

func WithRand(r RandSource) Option {
	return func(s *Store) {
		if r != nil {
			s.rnd = r
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithActor задает имя оператора, от лица которого выполняются операции
func WithActor(actor string) Option {
	return func(s *Store) {
		if strings.TrimSpace(actor) != "" {
			s.actor = actor
		}
	}
}

func WithModelVersion(version string) Option {
	return func(s *Store) {
		if version != "" {
			s.modelVersion = version
		}
	}
}

func WithAuditHook(hook AuditHook) Option {
	return func(s *Store) {
		s.hook = hook
	}
}

// WithHashCost задает стоимость bcrypt для секретов API-ключей
func WithHashCost(cost int) Option {
	return func(s *Store) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.hashCost = cost
		}
	}
}

type Store struct {
	mu     sync.Mutex
	hookMu sync.Mutex

	rnd          RandSource
	clock        func() time.Time
	actor        string
	modelVersion string
	hashCost     int
	hook         AuditHook
	bounds       models.Bounds

	alerts        map[string]*models.Alert
	alertOrder    []string
	incidents     map[string]*models.Incident
	incidentOrder []string
	runs          []*models.PredictionRun
	envelopes     []models.SpreadEnvelope
	impact        *models.ImpactSummary
	stations      []models.SensorStation
	drones        map[string]*models.DroneAsset
	droneOrder    []string
	missions      map[string]*models.UavMission
	missionOrder  []string
	users         map[string]*models.User
	userOrder     []string
	keys          map[string]*models.APIKey
	keyOrder      []string
	audit         []models.AuditLogEntry
	settings      models.SystemSettings
}

// New создает хранилище, заполненное копией набора данных
func New(ds fixtures.Dataset, opts ...Option) *Store {
	s := &Store{
		rnd:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		clock:        time.Now,
		actor:        DefaultActor,
		modelVersion: DefaultModelVersion,
		hashCost:     bcrypt.DefaultCost,
		bounds:       ds.Bounds,
		alerts:       make(map[string]*models.Alert, len(ds.Alerts)),
		incidents:    make(map[string]*models.Incident, len(ds.Incidents)),
		drones:       make(map[string]*models.DroneAsset, len(ds.Drones)),
		missions:     make(map[string]*models.UavMission, len(ds.Missions)),
		users:        make(map[string]*models.User, len(ds.Users)),
		keys:         make(map[string]*models.APIKey, len(ds.APIKeys)),
		settings:     ds.Settings,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, a := range ds.Alerts {
		cp := a.Clone()
		s.alerts[a.ID] = &cp
		s.alertOrder = append(s.alertOrder, a.ID)
	}
	for _, inc := range ds.Incidents {
		cp := inc.Clone()
		s.incidents[inc.ID] = &cp
		s.incidentOrder = append(s.incidentOrder, inc.ID)
	}
	for _, r := range ds.PredictionRuns {
		cp := r.Clone()
		s.runs = append(s.runs, &cp)
	}
	for _, e := range ds.SpreadEnvelopes {
		s.envelopes = append(s.envelopes, e.Clone())
	}
	if ds.ImpactSummary != nil {
		cp := ds.ImpactSummary.Clone()
		s.impact = &cp
	}
	for _, st := range ds.Stations {
		s.stations = append(s.stations, st.Clone())
	}
	for _, d := range ds.Drones {
		cp := d
		s.drones[d.ID] = &cp
		s.droneOrder = append(s.droneOrder, d.ID)
	}
	for _, m := range ds.Missions {
		cp := m.Clone()
		s.missions[m.ID] = &cp
		s.missionOrder = append(s.missionOrder, m.ID)
	}
	for _, u := range ds.Users {
		cp := u
		s.users[u.ID] = &cp
		s.userOrder = append(s.userOrder, u.ID)
	}
	for _, k := range ds.APIKeys {
		cp := k
		s.keys[k.ID] = &cp
		s.keyOrder = append(s.keyOrder, k.ID)
	}
	s.audit = append(s.audit, ds.AuditLog...)
	s.settings.DataRetentionDays = clampRetention(s.settings.DataRetentionDays)

	return s
}

// Actor возвращает имя текущего оператора
func (s *Store) Actor() string {
	return s.actor
}

type auditRecord struct {
	action string
	target string
	detail string
}

// apply выполняет fn под блокировкой и, если она успешна, добавляет запись аудита.
// Хук вызывается после снятия основной блокировки, но под hookMu, что сохраняет порядок записей.
func (s *Store) apply(fn func(now time.Time) (auditRecord, error)) error {
	s.mu.Lock()
	now := s.now()
	rec, err := fn(now)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	entry := models.AuditLogEntry{
		ID:        s.newID("audit"),
		Timestamp: now,
		Actor:     s.actor,
		Action:    rec.action,
		Target:    strings.ToUpper(rec.target),
		Detail:    rec.detail,
	}
	s.audit = append([]models.AuditLogEntry{entry}, s.audit...)

	s.hookMu.Lock()
	s.mu.Unlock()
	defer s.hookMu.Unlock()

	if s.hook != nil {
		s.hook(entry)
	}
	return nil
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID строит идентификатор вида {prefix}-{random}-{timestamp-suffix}
func (s *Store) newID(prefix string) string {
	random := make([]byte, 6)
	for i := range random {
		random[i] = idAlphabet[s.rnd.IntN(len(idAlphabet))]
	}
	ts := strconv.FormatInt(s.now().UnixMilli(), 36)
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, random, ts)
}

// randInt возвращает целое из [min, max] включительно
func (s *Store) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rnd.IntN(max-min+1)
}

func (s *Store) randFloat(min, max float64) float64 {
	return min + s.rnd.Float64()*(max-min)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// AuditLog возвращает журнал от новых записей к старым; limit <= 0 - весь журнал
func (s *Store) AuditLog(limit int) []models.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.audit) {
		limit = len(s.audit)
	}
	out := make([]models.AuditLogEntry, limit)
	copy(out, s.audit[:limit])
	return out
}
