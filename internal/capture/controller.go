package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/formcheck"
	"github.com/2beens/posecoach/internal/overlay"
	"github.com/2beens/posecoach/internal/pose"
	"github.com/2beens/posecoach/internal/session"
	"github.com/2beens/posecoach/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	DefaultNavigateDelay = 3 * time.Second

	commandsBufferSize = 16
)

type command int

const (
	commandStart command = iota
	commandStop
	commandReset
)

func (c command) String() string {
	switch c {
	case commandStart:
		return "start"
	case commandStop:
		return "stop"
	case commandReset:
		return "reset"
	default:
		return "unknown"
	}
}

type catalog interface {
	Lookup(nameOrSlug string) (exercises.Definition, error)
}

type Config struct {
	StreakThreshold  int
	MinKeypointScore float64
	NavigateDelay    time.Duration
}

type NewControllerParams struct {
	Exercise       string
	Catalog        catalog
	Cameras        CameraOpener
	Detectors      DetectorFactory
	Scheduler      Scheduler
	Navigator      Navigator
	Surface        overlay.Surface
	Sink           FeedbackSink
	MetricsManager *metrics.Manager
	Config         Config
	Logger         *log.Entry
	// Now defaults to time.Now
	Now func() time.Time
}

// Controller owns the capture -> estimate -> evaluate -> render loop of one
// exercise session. Tracker state and the current pose are only touched by the
// loop goroutine, everything else talks to it through commands and snapshots.
type Controller struct {
	exercise       exercises.Definition
	cameras        CameraOpener
	detectors      DetectorFactory
	scheduler      Scheduler
	navigator      Navigator
	surface        overlay.Surface
	sink           FeedbackSink
	metricsManager *metrics.Manager
	renderer       *overlay.Renderer
	evalOpts       []formcheck.Option
	navigateDelay  time.Duration
	log            *log.Entry
	now            func() time.Time

	commands chan command
	running  atomic.Bool

	// loop owned
	tracker     *session.Tracker
	currentPose *pose.Pose
	seq         uint64

	mountMu  sync.Mutex
	mu       sync.Mutex
	camera   Camera
	detector Detector
	cancel   context.CancelFunc
	done     chan struct{}
	closed   bool

	navMu        sync.Mutex
	navTimer     *time.Timer
	navCancelled bool

	snapshotMu sync.RWMutex
	snapshot   Snapshot
}

func NewController(params NewControllerParams) (*Controller, error) {
	exercise, err := params.Catalog.Lookup(params.Exercise)
	if err != nil {
		return nil, fmt.Errorf("new controller [%s]: %w", params.Exercise, err)
	}

	if params.Cameras == nil || params.Detectors == nil || params.Scheduler == nil {
		return nil, errors.New("new controller: camera, detector and scheduler are required")
	}
	if params.MetricsManager == nil {
		return nil, errors.New("new controller: metrics manager is nil")
	}

	minScore := params.Config.MinKeypointScore
	if minScore <= 0 {
		minScore = formcheck.DefaultMinScore
	}
	navigateDelay := params.Config.NavigateDelay
	if navigateDelay <= 0 {
		navigateDelay = DefaultNavigateDelay
	}

	logger := params.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	surface := params.Surface
	if surface == nil {
		surface = overlay.NewDisplayList()
	}

	tracker := session.NewTracker(exercise, params.Config.StreakThreshold)
	c := &Controller{
		exercise:       exercise,
		cameras:        params.Cameras,
		detectors:      params.Detectors,
		scheduler:      params.Scheduler,
		navigator:      params.Navigator,
		surface:        surface,
		sink:           params.Sink,
		metricsManager: params.MetricsManager,
		renderer:       overlay.NewRenderer(minScore),
		evalOpts:       []formcheck.Option{formcheck.WithMinScore(minScore)},
		navigateDelay:  navigateDelay,
		log:            logger.WithField("exercise", exercise.Slug),
		now:            now,
		commands:       make(chan command, commandsBufferSize),
		tracker:        tracker,
	}
	c.snapshot = Snapshot{Session: tracker.Snapshot(now())}

	return c, nil
}

func (c *Controller) Exercise() exercises.Definition {
	return c.exercise
}

// Mount acquires the camera and then creates the pose detector. Mounting an
// already mounted controller is a no-op. Waiting for the camera does not
// block the other controller methods.
func (c *Controller) Mount(ctx context.Context) error {
	c.mountMu.Lock()
	defer c.mountMu.Unlock()

	c.mu.Lock()
	closed, mounted := c.closed, c.camera != nil && c.detector != nil
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if mounted {
		return nil
	}

	camera, err := c.cameras.Open(ctx)
	if err != nil {
		if errors.Is(err, ErrCameraAccessDenied) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrCameraAccessDenied, err)
	}

	detector, err := c.detectors.NewDetector(ctx)
	if err != nil {
		initErr := err
		if !errors.Is(err, ErrDetectorInit) {
			initErr = fmt.Errorf("%w: %w", ErrDetectorInit, err)
		}
		if closeErr := camera.Close(); closeErr != nil {
			c.log.Warnf("release camera after detector init failure: %s", closeErr)
			return multierr.Append(initErr, closeErr)
		}
		return initErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// closed while waiting for the camera
		return multierr.Combine(ErrClosed, detector.Close(), camera.Close())
	}
	c.camera = camera
	c.detector = detector
	c.log.Debug("controller mounted")

	return nil
}

// Run starts the loop in its own goroutine. Calling it while the loop runs does nothing.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.camera == nil || c.detector == nil {
		return ErrNotMounted
	}
	if c.running.Load() {
		return nil
	}

	// a stopped loop may still be on its way out
	if c.done != nil {
		<-c.done
	}
	c.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.loop(loopCtx, c.camera, c.detector, c.done)

	c.log.Debug("loop started")
	return nil
}

func (c *Controller) IsRunning() bool {
	return c.running.Load()
}

// Stop halts the loop and waits for it to exit. The camera and detector are kept,
// so Run can resume.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	c.running.Store(false)
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Close stops the loop, cancels a pending navigation and releases the
// detector and the camera. It is safe to call more than once.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.Stop()
	c.cancelNavigation()

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.detector != nil {
		if closeErr := c.detector.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close detector: %w", closeErr))
		}
		c.detector = nil
	}
	if c.camera != nil {
		if closeErr := c.camera.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close camera: %w", closeErr))
		}
		c.camera = nil
	}

	c.log.Debug("controller closed")
	return err
}

func (c *Controller) StartRecording() {
	c.enqueue(commandStart)
}

func (c *Controller) StopRecording() {
	c.enqueue(commandStop)
}

func (c *Controller) ResetRecording() {
	c.enqueue(commandReset)
}

func (c *Controller) enqueue(cmd command) {
	select {
	case c.commands <- cmd:
	default:
		c.log.Warnf("commands queue full, dropping [%s]", cmd)
	}
}

// Snapshot returns a copy of the state published after the last frame.
func (c *Controller) Snapshot() Snapshot {
	c.snapshotMu.RLock()
	defer c.snapshotMu.RUnlock()
	snap := c.snapshot.clone()
	snap.Running = c.running.Load()
	return snap
}
