package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"studynexus/internal/models"
	"studynexus/internal/services"
	"studynexus/internal/structures"
	"studynexus/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	service services.AccountServiceInterface
	cache   *testutil.MockCache
	metrics *testutil.MockMetrics
	logger  *testutil.MockLogger
	api     *ApiController
	cmd     *CommandController
}

func newTestEnv() *testEnv {
	logger := &testutil.MockLogger{}
	svc := services.NewAccountService(&structures.Config{}, logger, &testutil.MockTextGenerator{})
	cache := testutil.NewMockCache()
	metrics := testutil.NewMockMetrics()
	return &testEnv{
		service: svc,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		api:     NewApiController(logger, svc, cache),
		cmd:     NewCommandController(logger, svc, metrics),
	}
}

func call(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestGetMarketplace_CachesCatalog(t *testing.T) {
	env := newTestEnv()

	rr := call(env.api.GetMarketplace, http.MethodGet, "/marketplace", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	items := decode[[]models.MarketplaceItem](t, rr)
	require.Len(t, items, len(models.MarketplaceItems))
	assert.Equal(t, "item-1", items[0].ID)
	assert.Contains(t, env.cache.Data, "marketplace")
}

func TestGetMarketplace_ServesFromCache(t *testing.T) {
	env := newTestEnv()
	env.cache.Set("marketplace", []byte(`[{"id":"cached"}]`))

	rr := call(env.api.GetMarketplace, http.MethodGet, "/marketplace", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"cached"}]`, rr.Body.String())
}

func TestGetTutorsAndVoices(t *testing.T) {
	env := newTestEnv()

	tutors := decode[[]models.Tutor](t, call(env.api.GetTutors, http.MethodGet, "/tutors", ""))
	assert.Len(t, tutors, len(models.Tutors))

	voices := decode[[]models.Voice](t, call(env.api.GetVoices, http.MethodGet, "/voices", ""))
	assert.Len(t, voices, len(models.Voices))
	assert.Contains(t, env.cache.Data, "tutors")
	assert.Contains(t, env.cache.Data, "voices")
}

func TestGetCommunity_FiltersByTerm(t *testing.T) {
	env := newTestEnv()

	rr := call(env.api.GetCommunity, http.MethodGet, "/community?q=Cardio", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	students := decode[[]models.UserProfile](t, rr)
	require.Len(t, students, 1)
	assert.Equal(t, "anna.base", students[0].Bns)
	assert.Contains(t, env.cache.Data, "community::cardio")
}

func TestGetCommunity_EmptyTermListsAll(t *testing.T) {
	env := newTestEnv()
	students := decode[[]models.UserProfile](t, call(env.api.GetCommunity, http.MethodGet, "/community", ""))
	assert.Len(t, students, len(models.Students))
}

func TestGetProfile_Disconnected(t *testing.T) {
	env := newTestEnv()

	rr := call(env.api.GetProfile, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	o := decode[services.Overview](t, rr)
	assert.Nil(t, o.Profile)
	assert.Equal(t, models.StageConnectWallet, o.Stage)
	assert.False(t, o.HasConnectedBefore)
}

func TestGetProfile_Connected(t *testing.T) {
	env := newTestEnv()
	_, err := env.service.Connect()
	require.NoError(t, err)

	o := decode[services.Overview](t, call(env.api.GetProfile, http.MethodGet, "/profile", ""))
	require.NotNil(t, o.Profile)
	assert.Equal(t, "500", o.Profile.Balance.String())
	assert.Equal(t, models.StageCreateProfileName, o.Stage)
}

func TestGetStaking(t *testing.T) {
	env := newTestEnv()
	_, err := env.service.Connect()
	require.NoError(t, err)
	_, err = env.service.Stake(d(200))
	require.NoError(t, err)

	pos := decode[models.StakingPosition](t, call(env.api.GetStaking, http.MethodGet, "/staking", ""))
	assert.Equal(t, "200", pos.StakedAmount.String())
	assert.True(t, pos.PendingRewards.IsZero())
}

func TestGetCredentials_ReturningUser(t *testing.T) {
	env := newTestEnv()
	env.service.Restore(&models.Storage{Version: models.StorageVersion, HasConnectedBefore: true})
	_, err := env.service.Connect()
	require.NoError(t, err)

	creds := decode[[]models.NFTCredential](t, call(env.api.GetCredentials, http.MethodGet, "/credentials", ""))
	require.Len(t, creds, 1)
	assert.Equal(t, models.FirstSessionID, creds[0].ID)
}

func TestGetSessions_Limit(t *testing.T) {
	env := newTestEnv()
	_, err := env.service.Connect()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, env.service.StartSession(services.SessionRequest{
			TutorIDs: []string{"clara-explainer", "ben-quizzer"},
			Material: models.StudyMaterial{Name: "Notes", Content: "heart"},
		}))
		_, err = env.service.EndSession("t", 10, "")
		require.NoError(t, err)
	}

	all := decode[[]models.PastSession](t, call(env.api.GetSessions, http.MethodGet, "/sessions", ""))
	assert.Len(t, all, 3)

	two := decode[[]models.PastSession](t, call(env.api.GetSessions, http.MethodGet, "/sessions?limit=2", ""))
	assert.Len(t, two, 2)

	junk := decode[[]models.PastSession](t, call(env.api.GetSessions, http.MethodGet, "/sessions?limit=abc", ""))
	assert.Len(t, junk, 3)
}

func TestGetModules(t *testing.T) {
	env := newTestEnv()
	overview := decode[services.ModuleOverview](t, call(env.api.GetModules, http.MethodGet, "/modules", ""))
	assert.Len(t, overview.Modules, len(models.LearningModules))
	assert.Empty(t, overview.Completed)
	assert.Equal(t, 5, overview.Threshold)
	assert.False(t, overview.BonusAvailable)
}

func TestGetReminders_Empty(t *testing.T) {
	env := newTestEnv()
	rr := call(env.api.GetReminders, http.MethodGet, "/reminders", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
