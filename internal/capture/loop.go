package capture

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/posecoach/internal/formcheck"
	"github.com/2beens/posecoach/internal/telemetry/metrics"
)

func (c *Controller) loop(ctx context.Context, camera Camera, detector Detector, done chan struct{}) {
	defer close(done)
	defer c.running.Store(false)

	for {
		// the scheduler may hand out a slot right after a stop, so the guard
		// runs before and after every suspension
		if !c.running.Load() || ctx.Err() != nil {
			return
		}

		c.drainCommands()

		if err := c.scheduler.Wait(ctx); err != nil {
			return
		}
		if !c.running.Load() || ctx.Err() != nil {
			return
		}

		if completed := c.step(ctx, camera, detector); completed {
			c.log.Debug("exercise completed, loop stopped")
			return
		}
	}
}

func (c *Controller) drainCommands() {
	for {
		select {
		case cmd := <-c.commands:
			c.apply(cmd)
		default:
			return
		}
	}
}

func (c *Controller) apply(cmd command) {
	now := c.now()
	var fb Feedback
	switch cmd {
	case commandStart:
		c.tracker.Start(now)
		fb = Feedback{Kind: formcheck.KindSuccess, Message: RecordingStartedMessage}
	case commandStop:
		c.tracker.Stop(now)
	case commandReset:
		c.tracker.Reset()
	}
	c.log.Debugf("recording command [%s], state: %s", cmd, c.tracker.State())
	c.publish(Snapshot{Feedback: fb}, now)
}

// step processes one frame. It returns true when the session completed.
func (c *Controller) step(ctx context.Context, camera Camera, detector Detector) bool {
	startTime := time.Now()
	defer func() {
		c.metricsManager.HistogramFrameDuration.Observe(time.Since(startTime).Seconds())
	}()

	frame, err := camera.Frame(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoFrame) && ctx.Err() == nil {
			c.log.Warnf("read frame: %s", err)
		}
		return false
	}

	p, err := detector.EstimatePose(ctx, frame)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		c.log.Warnf("estimate pose, frame %d: %s", frame.Seq, err)
		c.metricsManager.CounterDetectorErrors.Inc()
		c.metricsManager.CounterFrames.WithLabelValues(metrics.FrameDetectorError).Inc()
		c.publish(Snapshot{
			Feedback: Feedback{Kind: formcheck.KindWarning, Message: DetectorErrorMessage},
		}, c.now())
		return false
	}
	c.currentPose = p

	now := c.now()
	snap := Snapshot{}
	completed := false
	if c.tracker.IsRecording() {
		res := formcheck.Evaluate(p, c.exercise, c.tracker.Elapsed(now), c.evalOpts...)
		upd := c.tracker.Record(res, now)
		snap.Result = &res
		snap.Feedback = Feedback{Kind: res.Kind, Message: res.Feedback}
		c.countFrame(res)

		if upd.RepCompleted {
			c.metricsManager.CounterReps.WithLabelValues(c.exercise.Slug).Inc()
			c.log.Tracef("rep %d done", upd.Snapshot.RepCount)
		}
		if upd.Completed {
			completed = true
			snap.Feedback = Feedback{Kind: formcheck.KindSuccess, Message: formcheck.CompletedMessage}
			c.metricsManager.CounterCompletedSessions.WithLabelValues(c.exercise.Slug).Inc()
		}
	} else if p == nil {
		c.metricsManager.CounterFrames.WithLabelValues(metrics.FrameNoPose).Inc()
	} else {
		c.metricsManager.CounterFrames.WithLabelValues(metrics.FrameIdle).Inc()
	}

	width, height, ok := camera.Dimensions()
	if !ok {
		width, height = frame.Width, frame.Height
	}
	c.renderer.Render(c.surface, p, c.exercise, width, height)

	c.publish(snap, now)
	if completed {
		c.scheduleNavigation()
	}

	return completed
}

func (c *Controller) countFrame(res formcheck.Result) {
	outcome := metrics.FrameBadForm
	switch {
	case res.Kind == formcheck.KindWarning:
		outcome = metrics.FrameMissingPoints
	case res.IsGoodForm:
		outcome = metrics.FrameGoodForm
	}
	c.metricsManager.CounterFrames.WithLabelValues(outcome).Inc()
}

func (c *Controller) publish(snap Snapshot, now time.Time) {
	c.seq++
	snap.Seq = c.seq
	snap.Running = c.running.Load()
	snap.Session = c.tracker.Snapshot(now)
	snap.Pose = c.currentPose

	c.snapshotMu.Lock()
	c.snapshot = snap.clone()
	c.snapshotMu.Unlock()

	if c.sink != nil {
		c.sink.Publish(snap.clone())
	}
}

func (c *Controller) scheduleNavigation() {
	if c.navigator == nil {
		return
	}

	c.navMu.Lock()
	defer c.navMu.Unlock()
	if c.navCancelled {
		return
	}
	if c.navTimer != nil {
		c.navTimer.Stop()
	}
	c.navTimer = time.AfterFunc(c.navigateDelay, c.navigator.NavigateToWorkouts)
}

func (c *Controller) cancelNavigation() {
	c.navMu.Lock()
	defer c.navMu.Unlock()
	c.navCancelled = true
	if c.navTimer != nil {
		c.navTimer.Stop()
		c.navTimer = nil
	}
}
