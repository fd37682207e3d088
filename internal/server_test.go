package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2beens/posecoach/internal/config"
	"github.com/2beens/posecoach/internal/detector"
	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/formcheck"
	"github.com/2beens/posecoach/internal/pose"
	"github.com/2beens/posecoach/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:3000"

type testRateLimiter struct {
	allowed bool
}

func (l *testRateLimiter) Allow(_ context.Context, _ string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	res := &redis_rate.Result{Limit: limit, RetryAfter: 30 * time.Second}
	if l.allowed {
		res.Allowed = 1
	}
	return res, nil
}

func newTestServer(t *testing.T, liveAllowed bool) *Server {
	t.Helper()

	catalog, err := exercises.NewDefaultCatalog()
	require.NoError(t, err)
	detectors, err := detector.NewFactory(detector.FactoryConfig{Mode: detector.ModeClient})
	require.NoError(t, err)

	return &Server{
		versionInfo: "test-version-info",
		config: &config.Config{
			Host:                "localhost",
			Port:                9000,
			LiveRateLimitPerMin: 10,
			FrameRate:           30,
			MinKeypointScore:    0.5,
			AllowedOrigins:      []string{testOrigin},
		},
		catalog:        catalog,
		detectors:      detectors,
		rateLimiter:    &testRateLimiter{allowed: liveAllowed},
		metricsManager: metrics.NewTestManager(),
		otelShutdown:   func() {},
	}
}

func newTestRouter(t *testing.T, server *Server) *mux.Router {
	t.Helper()
	r, err := server.routerSetup()
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func doRequest(r http.Handler, method, path string, body []byte, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestServer_routerSetup(t *testing.T) {
	server := newTestServer(t, true)
	r := newTestRouter(t, server)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"list-exercises": {
			name:   "list-exercises",
			path:   "/exercises",
			method: "GET",
		},
		"get-exercise": {
			name:   "get-exercise",
			path:   "/exercises/push-ups",
			method: "GET",
		},
		"evaluate-form": {
			name:   "evaluate-form",
			path:   "/exercises/squats/evaluate",
			method: "POST",
		},
		"evaluate-form-preflight": {
			name:   "evaluate-form",
			path:   "/exercises/squats/evaluate",
			method: "OPTIONS",
		},
		"live-session": {
			name:   "live-session",
			path:   "/live/plank",
			method: "GET",
		},
		"health": {
			name:   "health",
			path:   "/health",
			method: "GET",
		},
		"unknown": {
			name:   "unknown",
			path:   "/weather",
			method: "GET",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			require.True(t, r.Match(req, routeMatch), route.path)
			require.NotNil(t, routeMatch.Route)
			assert.Equal(t, route.name, routeMatch.Route.GetName())
		})
	}
}

func TestServer_ExercisesRoutes(t *testing.T) {
	server := newTestServer(t, true)
	r := newTestRouter(t, server)

	rr := doRequest(r, "GET", "/exercises", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list exercises.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, server.catalog.Len(), list.Total)

	rr = doRequest(r, "GET", "/exercises/Bicep%20Curls", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"bicep-curls"`)

	rr = doRequest(r, "GET", "/exercises/moonwalk", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "exercise not supported\n", rr.Body.String())

	assert.Equal(t, float64(2), testutil.ToFloat64(server.metricsManager.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterRequests.WithLabelValues("GET", "404")))
}

func TestServer_Evaluate(t *testing.T) {
	r := newTestRouter(t, newTestServer(t, true))

	kp := func(name pose.KeypointName, x, y float64) pose.Keypoint {
		return pose.Keypoint{Name: name, X: x, Y: y, Score: 0.9}
	}
	body, err := json.Marshal(formcheck.EvaluateRequest{
		Pose: &pose.Pose{Keypoints: []pose.Keypoint{
			kp(pose.Nose, 320, 40),
			kp(pose.LeftShoulder, 280, 100),
			kp(pose.RightShoulder, 360, 100),
			kp(pose.LeftHip, 290, 250),
			kp(pose.RightHip, 350, 250),
			kp(pose.LeftAnkle, 290, 450),
			kp(pose.RightAnkle, 350, 450),
		}},
	})
	require.NoError(t, err)

	rr := doRequest(r, "POST", "/exercises/calibration/evaluate", body, http.Header{
		"Content-Type": []string{"application/json"},
		"Origin":       []string{testOrigin},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))

	var res formcheck.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.True(t, res.IsGoodForm)
	assert.Equal(t, formcheck.KindSuccess, res.Kind)
}

func TestServer_Cors(t *testing.T) {
	r := newTestRouter(t, newTestServer(t, true))

	rr := doRequest(r, "GET", "/exercises", nil, http.Header{"Origin": []string{"https://evil.example"}})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doRequest(r, "OPTIONS", "/exercises/squats/evaluate", nil, http.Header{"Origin": []string{testOrigin}})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "POST, GET, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestServer_Health(t *testing.T) {
	r := newTestRouter(t, newTestServer(t, true))

	rr := doRequest(r, "GET", "/health", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test-version-info", health.Version)
	assert.Equal(t, detector.ModeClient, health.DetectorMode)
	assert.Positive(t, health.Exercises)
	assert.Zero(t, health.LiveSessions)
}

func TestServer_LiveRateLimited(t *testing.T) {
	server := newTestServer(t, false)
	r := newTestRouter(t, server)

	rr := doRequest(r, "GET", "/live/push-ups", nil, nil)
	assert.Equal(t, http.StatusTooEarly, rr.Code)
	assert.Equal(t, "retry after 30.000000 seconds\n", rr.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterRateLimitedRequests))
}

func TestServer_LiveSessionAndShutdown(t *testing.T) {
	server := newTestServer(t, true)
	httpServer := httptest.NewServer(newTestRouter(t, server))
	defer httpServer.Close()

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/live/push-ups"
	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{testOrigin}})
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	defer func() {
		_ = conn.Close()
	}()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(server.metricsManager.GaugeLiveSessions) == 1
	}, 2*time.Second, 10*time.Millisecond)

	server.GracefulShutdown()

	assert.Equal(t, float64(0), testutil.ToFloat64(server.metricsManager.GaugeLiveSessions))
	assert.Equal(t, float64(0), testutil.ToFloat64(server.metricsManager.GaugeLifeSignal))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func TestServer_connStateMetrics(t *testing.T) {
	server := newTestServer(t, true)

	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateActive)
	assert.Equal(t, float64(2), testutil.ToFloat64(server.metricsManager.GaugeRequests))

	server.connStateMetrics(nil, http.StateClosed)
	server.connStateMetrics(nil, http.StateHijacked)
	assert.Equal(t, float64(0), testutil.ToFloat64(server.metricsManager.GaugeRequests))
}
