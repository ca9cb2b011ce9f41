package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nauticalab/paramfile/internal/log"
	"github.com/nauticalab/paramfile/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	log.Configure(log.Config{Output: io.Discard})
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *params.Store {
	t.Helper()
	store := params.New(params.WithUnknownHandler(nil))
	store.MustRegister("port", "8080")
	store.MustRegister("host", "")
	store.MustRegister("greeting", "")
	require.NoError(t, store.Load(strings.NewReader("greeting hello world\n"), "test.conf"))
	return store
}

func newTestServer(t *testing.T, config ServerConfig) *Server {
	t.Helper()
	if config.Store == nil {
		config.Store = newTestStore(t)
	}
	server, err := NewServer(config)
	require.NoError(t, err)
	return server
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresStore(t *testing.T) {
	_, err := NewServer(ServerConfig{})
	assert.Error(t, err)
}

func TestHealthAndVersion(t *testing.T) {
	server := newTestServer(t, ServerConfig{Version: "1.2.3", GitCommit: "abc1234", BuildTime: "now"})

	rec := doRequest(t, server.Handler(), "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)

	rec = doRequest(t, server.Handler(), "/api/v1/version")
	require.Equal(t, http.StatusOK, rec.Code)
	var version VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &version))
	assert.Equal(t, VersionResponse{Version: "1.2.3", GitCommit: "abc1234", BuildTime: "now"}, version)
}

func TestListParameters(t *testing.T) {
	describe := func(name string) string {
		if name == "port" {
			return "TCP port"
		}
		return ""
	}
	server := newTestServer(t, ServerConfig{Source: "test.conf", Describe: describe})

	rec := doRequest(t, server.Handler(), "/api/v1/parameters")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ListParametersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "test.conf", resp.Source)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []ParameterResponse{
		{Name: "greeting", Value: "hello world", Set: true},
		{Name: "host", Set: false},
		{Name: "port", Value: "8080", Set: true, Description: "TCP port"},
	}, resp.Parameters)
}

func TestGetParameter(t *testing.T) {
	server := newTestServer(t, ServerConfig{})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantValue  string
	}{
		{name: "set parameter", path: "/api/v1/parameters/greeting", wantStatus: http.StatusOK, wantValue: "hello world"},
		{name: "default value", path: "/api/v1/parameters/port", wantStatus: http.StatusOK, wantValue: "8080"},
		{name: "unset parameter", path: "/api/v1/parameters/host", wantStatus: http.StatusConflict},
		{name: "unknown parameter", path: "/api/v1/parameters/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server.Handler(), tt.path)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var p ParameterResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
				assert.True(t, p.Set)
				assert.Equal(t, tt.wantValue, p.Value)
				return
			}

			var e ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.Equal(t, tt.wantStatus, e.Code)
			assert.Equal(t, http.StatusText(tt.wantStatus), e.Error)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestDump(t *testing.T) {
	server := newTestServer(t, ServerConfig{})

	rec := doRequest(t, server.Handler(), "/api/v1/dump")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Current parameters:\n"+
		"greeting = hello world\n"+
		"host <no value set>\n"+
		"port = 8080\n", rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	server := newTestServer(t, ServerConfig{RequestLimit: 2})

	for i := 0; i < 2; i++ {
		rec := doRequest(t, server.Handler(), "/api/v1/health")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doRequest(t, server.Handler(), "/api/v1/health")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestStartWithContext_ShutdownNoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server := newTestServer(t, ServerConfig{Bind: "127.0.0.1", Port: 0})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartWithContext(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("StartWithContext() didn't return after cancel")
	}
}

func TestStartWithContext_ListenError(t *testing.T) {
	server := newTestServer(t, ServerConfig{Bind: "127.0.0.1", Port: -1})

	err := server.StartWithContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
