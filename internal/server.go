package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/posecoach/internal/capture"
	"github.com/2beens/posecoach/internal/config"
	"github.com/2beens/posecoach/internal/detector"
	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/formcheck"
	"github.com/2beens/posecoach/internal/middleware"
	"github.com/2beens/posecoach/internal/stream"
	"github.com/2beens/posecoach/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/posecoach/internal/telemetry/metrics/middleware"
	"github.com/2beens/posecoach/internal/telemetry/tracing"
	"github.com/2beens/posecoach/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const serviceName = "posecoach"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	catalog       *exercises.Catalog
	detectors     capture.DetectorFactory
	streamHandler *stream.Handler

	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	VersionInfo   string
	RedisPassword string
}

type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	Exercises    int    `json:"exercises"`
	DetectorMode string `json:"detectorMode"`
	LiveSessions int    `json:"liveSessions"`
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.Config == nil {
		return nil, errors.New("new server: config is nil")
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("posecoach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.Config.HoneycombEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	catalog, err := exercises.NewDefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("new exercises catalog: %w", err)
	}

	detectors, err := detector.NewFactory(detector.FactoryConfig{
		Mode:    params.Config.DetectorMode,
		URL:     params.Config.DetectorURL,
		Timeout: params.Config.DetectorTimeout.Duration,
	})
	if err != nil {
		return nil, fmt.Errorf("new detector factory: %w", err)
	}
	log.Debugf("pose detector mode: %s", detectors.Mode())

	s := &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		catalog:     catalog,
		detectors:   detectors,

		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	exercisesHandler := exercises.NewHandler(s.catalog)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{slug}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	formHandler := formcheck.NewHandler(s.catalog, s.config.MinKeypointScore)
	r.HandleFunc("/exercises/{slug}/evaluate", formHandler.HandleEvaluate).Methods("POST", "OPTIONS").Name("evaluate-form")

	s.streamHandler = stream.NewHandler(
		s.catalog,
		s.detectors,
		s.metricsManager,
		stream.Config{
			FrameRate:        s.config.FrameRate,
			StreakThreshold:  s.config.StreakThreshold,
			MinKeypointScore: s.config.MinKeypointScore,
			NavigateDelay:    s.config.NavigateDelay.Duration,
			AllowedOrigins:   s.config.AllowedOrigins,
		},
	)
	liveRouter := r.PathPrefix("/live").Subrouter()
	liveRouter.HandleFunc("/{exercise}", s.streamHandler.HandleLive).Methods("GET").Name("live-session")
	liveRouter.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, "live", s.config.LiveRateLimitPerMin))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
	defer span.End()

	resp := HealthResponse{
		Status:    "ok",
		Version:   s.versionInfo,
		Exercises: s.catalog.Len(),
	}
	if f, ok := s.detectors.(*detector.Factory); ok {
		resp.DetectorMode = f.Mode()
	}
	if s.streamHandler != nil {
		resp.LiveSessions = s.streamHandler.LiveSessions()
	}

	pkg.WriteJSONResponseOK(w, resp)
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// hijacked websocket conns are not tracked by http.Server.Shutdown
	if s.streamHandler != nil {
		if err := s.streamHandler.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to close live sessions: %s", err)
		}
		log.Debugln("live sessions closed")
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
