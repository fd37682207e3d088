package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/2beens/posecoach/internal/capture"
	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/telemetry/metrics"
	"github.com/2beens/posecoach/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Config struct {
	FrameRate        int
	StreakThreshold  int
	MinKeypointScore float64
	NavigateDelay    time.Duration
	// AllowedOrigins for the websocket handshake, "*" allows any
	AllowedOrigins []string
}

type Handler struct {
	catalog        *exercises.Catalog
	detectors      capture.DetectorFactory
	metricsManager *metrics.Manager
	config         Config
	upgrader       websocket.Upgrader

	mu           sync.Mutex
	sessions     map[string]*Session
	wg           sync.WaitGroup
	shuttingDown bool
}

func NewHandler(
	catalog *exercises.Catalog,
	detectors capture.DetectorFactory,
	metricsManager *metrics.Manager,
	config Config,
) *Handler {
	h := &Handler{
		catalog:        catalog,
		detectors:      detectors,
		metricsManager: metricsManager,
		config:         config,
		sessions:       map[string]*Session{},
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	// non-browser clients
	if origin == "" {
		return true
	}
	if slices.Contains(h.config.AllowedOrigins, "*") || slices.Contains(h.config.AllowedOrigins, origin) {
		return true
	}
	log.Warnf("live session: origin not allowed [%s]", origin)
	return false
}

// HandleLive upgrades the request to a websocket and runs one live exercise session on it.
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stream.live")
	slug := mux.Vars(r)["exercise"]
	span.SetAttributes(attribute.String("exercise", slug))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied with an http error
		log.Errorf("live session, upgrade connection: %s", err)
		tracing.EndSpanWithErrCheck(span, err)
		return
	}

	sess := newSession(conn, slug)
	span.SetAttributes(attribute.String("session.id", sess.ID()))
	span.End()

	if !h.register(sess) {
		sess.log.Debug("shutting down, rejecting live session")
		go sess.writePump()
		sess.sendError("server shutting down", true)
		sess.closeSend()
		return
	}
	defer h.unregister(sess)

	h.metricsManager.GaugeLiveSessions.Inc()
	defer h.metricsManager.GaugeLiveSessions.Dec()

	go sess.writePump()
	defer sess.closeSend()

	scheduler := capture.NewTickerScheduler(h.config.FrameRate)
	defer scheduler.Stop()

	ctrl, err := capture.NewController(capture.NewControllerParams{
		Exercise:       slug,
		Catalog:        h.catalog,
		Cameras:        sess,
		Detectors:      h.detectors,
		Scheduler:      scheduler,
		Navigator:      sess,
		Surface:        sess.surface,
		Sink:           sess,
		MetricsManager: h.metricsManager,
		Config: capture.Config{
			StreakThreshold:  h.config.StreakThreshold,
			MinKeypointScore: h.config.MinKeypointScore,
			NavigateDelay:    h.config.NavigateDelay,
		},
		Logger: sess.log,
	})
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			sess.sendError("exercise not supported", true)
			return
		}
		sess.log.Errorf("new controller: %s", err)
		sess.sendError("failed to start session", true)
		return
	}

	sess.log.Debug("live session started")

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.mountAndRun(ctx, ctrl, sess)
	}()

	sess.readPump(func(msg InboundMessage) {
		h.dispatch(ctx, ctrl, sess, msg)
	})

	cancel()
	wg.Wait()
	if err := ctrl.Close(); err != nil {
		sess.log.Warnf("close controller: %s", err)
	}
	sess.log.Debug("live session ended")
}

func (h *Handler) register(sess *Session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.shuttingDown {
		return false
	}
	h.sessions[sess.ID()] = sess
	h.wg.Add(1)
	return true
}

func (h *Handler) unregister(sess *Session) {
	h.mu.Lock()
	delete(h.sessions, sess.ID())
	h.mu.Unlock()
	h.wg.Done()
}

// LiveSessions returns the number of open live sessions.
func (h *Handler) LiveSessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Shutdown rejects new live sessions, closes the open ones and waits for
// them to finish, or for ctx to expire.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.shuttingDown = true
	for _, sess := range h.sessions {
		sess.sendError("server shutting down", true)
		sess.closeSend()
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("live sessions shutdown: %w", ctx.Err())
	}
}

// mountAndRun keeps asking for the camera until the user grants access,
// then starts the loop.
func (h *Handler) mountAndRun(ctx context.Context, ctrl *capture.Controller, sess *Session) {
	for {
		err := ctrl.Mount(ctx)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return
		}

		switch {
		case errors.Is(err, capture.ErrCameraAccessDenied):
			sess.log.Debugf("mount: %s", err)
			sess.sendError(capture.ErrCameraAccessDenied.Error(), false)
		case errors.Is(err, capture.ErrDetectorInit):
			sess.log.Errorf("mount: %s", err)
			sess.sendError(capture.ErrDetectorInit.Error(), true)
			sess.closeSend()
			return
		default:
			sess.log.Errorf("mount: %s", err)
			sess.sendError("failed to start session", true)
			sess.closeSend()
			return
		}
	}

	if err := ctrl.Run(ctx); err != nil {
		sess.log.Errorf("run: %s", err)
	}
}

func (h *Handler) dispatch(ctx context.Context, ctrl *capture.Controller, sess *Session, msg InboundMessage) {
	switch msg.Type {
	case TypeCameraReady:
		var ready CameraReadyMessage
		if err := decodeData(msg, &ready); err != nil {
			sess.sendError(err.Error(), false)
			return
		}
		sess.cameraDecided(cameraDecision{ready: true, width: ready.Width, height: ready.Height})
	case TypeCameraDenied:
		var denied CameraDeniedMessage
		if err := decodeData(msg, &denied); err != nil {
			sess.sendError(err.Error(), false)
			return
		}
		sess.cameraDecided(cameraDecision{ready: false, reason: denied.Reason})
	case TypeFrame:
		var frame FrameMessage
		if err := decodeData(msg, &frame); err != nil {
			sess.sendError(err.Error(), false)
			return
		}
		sess.putFrame(frame)
	case TypeStart:
		ctrl.StartRecording()
		h.resume(ctx, ctrl, sess)
	case TypeStop:
		ctrl.StopRecording()
		h.resume(ctx, ctrl, sess)
	case TypeReset:
		ctrl.ResetRecording()
		h.resume(ctx, ctrl, sess)
	default:
		sess.sendError(fmt.Sprintf("unknown message type [%s]", msg.Type), false)
	}
}

// resume restarts a loop that stopped after completion, so the queued command
// gets applied. Before mount the command just waits in the queue.
func (h *Handler) resume(ctx context.Context, ctrl *capture.Controller, sess *Session) {
	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, capture.ErrNotMounted) {
		sess.log.Warnf("resume loop: %s", err)
	}
}

func decodeData(msg InboundMessage, v any) error {
	if len(msg.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg.Data, v); err != nil {
		return fmt.Errorf("invalid [%s] message", msg.Type)
	}
	return nil
}
