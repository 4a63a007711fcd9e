package service_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/wildfire_console/internal/fixtures"
	"github.com/shenikar/wildfire_console/internal/models"
	"github.com/shenikar/wildfire_console/internal/service"
	"github.com/shenikar/wildfire_console/internal/store"
)

// newStoreBackedService - сервис поверх настоящего хранилища со стандартными данными
func newStoreBackedService(t *testing.T) (service.ConsoleService, *store.Store) {
	t.Helper()
	now := time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC)
	st := store.New(fixtures.Default(now),
		store.WithRand(rand.New(rand.NewPCG(7, 11))),
		store.WithClock(func() time.Time { return now.Add(time.Minute) }),
		store.WithHashCost(bcrypt.MinCost),
	)
	return service.NewConsoleService(st, nil, newTestLogger()), st
}

func TestOverview_DefaultDataset(t *testing.T) {
	svc, _ := newStoreBackedService(t)

	ov, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, ov.NewAlerts)
	assert.Equal(t, 2, ov.ActiveIncidents)
	assert.Equal(t, 1, ov.AvailableDrones)
	assert.Equal(t, 1, ov.MissionsInFlight)
	assert.Equal(t, 4, ov.StationsTotal)
	assert.NotNil(t, ov.LatestImpact)
	assert.Len(t, ov.RecentAuditEvents, 3)
}

func TestResolveAlert_ThroughService(t *testing.T) {
	svc, st := newStoreBackedService(t)

	require.NoError(t, svc.ResolveAlert(context.Background(), "alert-003"))

	alert, err := svc.GetAlert(context.Background(), "alert-003")
	require.NoError(t, err)
	assert.Equal(t, models.AlertResolved, alert.Status)

	entry := st.AuditLog(1)[0]
	assert.Equal(t, "Alert resolved", entry.Action)
	assert.Equal(t, "ALERT-003", entry.Target)
}

func TestGenerateAPIKey_SecretVerifies(t *testing.T) {
	svc, st := newStoreBackedService(t)

	export, err := svc.GenerateAPIKey(context.Background(), "GIS sync")

	require.NoError(t, err)
	assert.True(t, st.VerifyAPIKey(export.ID, export.Secret))
	require.NoError(t, svc.RevokeAPIKey(context.Background(), export.ID))
	assert.ErrorIs(t, svc.RevokeAPIKey(context.Background(), export.ID), service.ErrInvalidTransition)
}
