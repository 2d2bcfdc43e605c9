package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: "8080", RateLimitRPS: 100, RateLimitBurst: 100},
		Storage: config.StorageConfig{Driver: driver, Key: "portfolio-projects"},
	}
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, err := OpenStorage(ctx, testConfig(config.DriverMemory))
		require.NoError(t, err)
		assert.Equal(t, config.DriverMemory, st.Driver)
		assert.NoError(t, st.Close())
	})

	t.Run("redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		cfg := testConfig(config.DriverRedis)
		cfg.Redis.Addr = mr.Addr()

		st, err := OpenStorage(ctx, cfg)
		require.NoError(t, err)
		defer st.Close()

		require.NoError(t, st.Backup.Save(ctx, []byte("[]")))
		raw, err := mr.Get("portfolio-projects:backup")
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenStorage(ctx, testConfig("sqlite"))
		assert.Error(t, err)
	})
}

func TestNewApp_Seed(t *testing.T) {
	ctx := context.Background()
	st, err := OpenStorage(ctx, testConfig(config.DriverMemory))
	require.NoError(t, err)

	app := NewApp(ctx, st, nil, AppOptions{SeedDemo: true})
	require.Equal(t, 3, app.Store.Count())

	// restored state is never reseeded
	again := NewApp(ctx, st, nil, AppOptions{SeedDemo: true})
	assert.Equal(t, 3, again.Store.Count())
	assert.Equal(t, 4, again.Store.NextID())

	unseeded, err := OpenStorage(ctx, testConfig(config.DriverMemory))
	require.NoError(t, err)
	assert.False(t, NewApp(ctx, unseeded, nil, AppOptions{}).Store.HasAny())
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := testConfig(config.DriverRedis)
	cfg.Redis.Addr = mr.Addr()
	st, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()

	newRouter := func() *gin.Engine {
		app := NewApp(ctx, st, nil, AppOptions{})
		r, err := BuildRouter(RouterDeps{
			ServiceName:    "portfolio",
			Version:        "test",
			AllowedOrigins: []string{"*"},
			RateLimitRPS:   100,
			RateLimitBurst: 100,
			App:            app,
		})
		require.NoError(t, err)
		return r
	}

	call := func(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	first := newRouter()
	for _, name := range []string{"a", "b", "c"} {
		require.Equal(t, http.StatusCreated, call(first, http.MethodPost, "/api/v1/projects", `{"name":"`+name+`"}`).Code)
	}
	require.Equal(t, http.StatusOK, call(first, http.MethodDelete, "/api/v1/projects/3", "").Code)

	raw, err := mr.Get("portfolio-projects")
	require.NoError(t, err)
	var state struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	assert.Len(t, state.Projects, 2)

	// restart against the same redis
	second := newRouter()
	rec := call(second, http.MethodPost, "/api/v1/projects", `{"name":"d"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 3, created.Project.ID)

	t.Run("pages", func(t *testing.T) {
		for _, path := range []string{"/", "/projects", "/contact"} {
			assert.Equal(t, http.StatusOK, call(second, http.MethodGet, path, "").Code, path)
		}
	})

	t.Run("health reports storage", func(t *testing.T) {
		rec := call(second, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"storage":"up"`)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("metrics", func(t *testing.T) {
		rec := call(second, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "portfolio_projects 3")
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
		req.Header.Set("Origin", "https://portfolio.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		second.ServeHTTP(rec, req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"https://a.example"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example"}, cfg.AllowOrigins)
}
