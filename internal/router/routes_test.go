package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uknowme/member-server/internal/auth"
	"github.com/uknowme/member-server/internal/bootstrap"
	"github.com/uknowme/member-server/internal/config"
	"github.com/uknowme/member-server/internal/member"
	"github.com/uknowme/member-server/internal/router"
	"github.com/uknowme/member-server/internal/shared/database"
	"github.com/uknowme/member-server/internal/shared/metrics"
	"github.com/uknowme/member-server/internal/shared/testutil"
	"github.com/uknowme/member-server/internal/shared/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	require.NoError(t, err)

	engine := bootstrap.NewBootstrap(cfg, m).SetupEngine()
	require.NoError(t, validator.RegisterAll())
	require.NoError(t, router.Setup(engine, cfg, &database.DB{DB: db}, m, registry))
	return engine
}

func TestMemberLifecycle(t *testing.T) {
	engine := setupServer(t, testutil.NewTestConfig())

	// join
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body: member.JoinRequest{
			ID:       "hong01",
			Password: "password123",
			Name:     "홍길동",
			Nickname: "gildong",
			Gender:   "MALE",
			Birth:    "1990-01-15",
			Tel:      "010-1234-5678",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	// login
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{ID: "hong01", Password: "password123"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var login auth.LoginResponse
	testutil.ParseResponse(t, recorder, &login)

	// my info
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
		Token:  login.AccessToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var info member.MemberInfoResponse
	testutil.ParseResponse(t, recorder, &info)
	assert.Equal(t, "hong01", info.ID)

	// public directory
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/members"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	// withdraw, then login fails
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
		Token:  login.AccessToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   auth.LoginRequest{ID: "hong01", Password: "password123"},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDirectoryAccessFromConfig(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Member.DirectoryAccess = config.DirectoryAuthenticated
	engine := setupServer(t, cfg)

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/members"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSetup_InvalidDirectoryAccess(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Member.DirectoryAccess = "everyone"

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	err := router.Setup(testutil.SetupTestRouter(), cfg, &database.DB{DB: db}, nil, prometheus.NewRegistry())

	assert.Error(t, err)
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Metrics.APIKey = "scrape-key"
	engine := setupServer(t, cfg)

	testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/find-id",
		Body:   member.FindIDRequest{Name: "홍길동", Tel: "010-0000-0000"},
	})

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/metrics"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("X-API-Key", "scrape-key")
	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `member_operations_total{operation="find_id",outcome="not_found"} 1`)
	assert.Contains(t, recorder.Body.String(), `http_requests_total{method="POST",route="/api/v1/members/find-id",status="404"} 1`)
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupServer(t, testutil.NewTestConfig())

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

	assert.Equal(t, http.StatusOK, recorder.Code)
}
