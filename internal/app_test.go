package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"studynexus/internal/controllers"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling"
	"studynexus/internal/services"
	"studynexus/internal/structures"
	"studynexus/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app     *App
	service services.AccountServiceInterface
	store   *testutil.MockStore
	logger  *testutil.MockLogger
	metrics *testutil.MockMetrics
}

func newTestApp(store *testutil.MockStore) *testApp {
	conf := &structures.Config{
		AppName:   "StudyNexus",
		WebServer: structures.Server{Host: "127.0.0.1", Port: 0},
		Persistence: structures.Persistence{
			Driver:       "file",
			SaveInterval: time.Hour,
		},
		Staking: structures.StakingConfig{AccrualInterval: time.Hour},
	}
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	svc := services.NewAccountService(conf, logger, &testutil.MockTextGenerator{})
	sched := scheduling.NewScheduler(conf, logger, svc, store, metrics)
	router := InitRoutes(
		controllers.NewApiController(logger, svc, testutil.NewMockCache()),
		controllers.NewCommandController(logger, svc, metrics),
	)
	app := NewApp(controllers.NewHealthController(svc), sched, svc, store, conf, logger, router, metrics)
	return &testApp{app: app, service: svc, store: store, logger: logger, metrics: metrics}
}

func TestNewApp_ServesHealthAndAPI(t *testing.T) {
	ta := newTestApp(&testutil.MockStore{})
	handler := ta.app.WebServer.Handler

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tutors", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, 2, ta.metrics.Requests)
}

func TestApp_RunRestoresAndPersistsOnShutdown(t *testing.T) {
	store := &testutil.MockStore{Stored: &models.Storage{Version: models.StorageVersion, HasConnectedBefore: true}}
	ta := newTestApp(store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ta.app.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return ta.logger.Count("info", providers.TypeApp) >= 3
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, ta.service.Snapshot().HasConnectedBefore)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, store.Saves())
	assert.True(t, store.Stored.HasConnectedBefore)
}

func TestApp_RunContinuesWhenRestoreFails(t *testing.T) {
	store := &testutil.MockStore{LoadErr: errors.New("corrupt")}
	ta := newTestApp(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, ta.app.Run(ctx))

	assert.Equal(t, 1, ta.logger.Count("error", providers.TypeApp))
	assert.False(t, ta.service.Snapshot().HasConnectedBefore)
	assert.Equal(t, 1, store.Saves())
}

func TestApp_RunReportsPersistError(t *testing.T) {
	store := &testutil.MockStore{SaveErr: errors.New("disk full")}
	ta := newTestApp(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, ta.app.Run(ctx))
}
