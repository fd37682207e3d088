package capture_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2beens/posecoach/internal/capture"
	"github.com/2beens/posecoach/internal/pose"
)

// tickScheduler hands out one frame slot per tick and tracks how many loops wait on it.
type tickScheduler struct {
	ticks      chan struct{}
	waiting    atomic.Int32
	maxWaiting atomic.Int32
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{ticks: make(chan struct{})}
}

func (s *tickScheduler) Wait(ctx context.Context) error {
	n := s.waiting.Add(1)
	defer s.waiting.Add(-1)
	for {
		current := s.maxWaiting.Load()
		if n <= current || s.maxWaiting.CompareAndSwap(current, n) {
			break
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticks:
		return nil
	}
}

func (s *tickScheduler) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case s.ticks <- struct{}{}:
		case <-time.After(2 * time.Second):
			t.Fatalf("loop stopped consuming ticks after %d", i)
		}
	}
}

type instantScheduler struct{}

func (instantScheduler) Wait(ctx context.Context) error {
	return ctx.Err()
}

type recordingSink struct {
	mu        sync.Mutex
	snapshots []capture.Snapshot
}

func (s *recordingSink) Publish(snapshot capture.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snapshot)
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots)
}

func (s *recordingSink) feedbacks() []capture.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fbs []capture.Feedback
	for _, snap := range s.snapshots {
		if !snap.Feedback.IsEmpty() {
			fbs = append(fbs, snap.Feedback)
		}
	}
	return fbs
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func kp(name pose.KeypointName, x, y float64) pose.Keypoint {
	return pose.Keypoint{Name: name, X: x, Y: y, Score: 0.9}
}

// elbow at 90 degrees, straight back
func goodPushUp() *pose.Pose {
	return &pose.Pose{Score: 0.9, Keypoints: []pose.Keypoint{
		kp(pose.LeftShoulder, 100, 100),
		kp(pose.LeftElbow, 100, 200),
		kp(pose.LeftWrist, 200, 200),
		kp(pose.LeftHip, 300, 100),
		kp(pose.LeftAnkle, 500, 100),
	}}
}

// straight arm, elbow at 180 degrees
func straightArmPushUp() *pose.Pose {
	p := goodPushUp()
	p.Keypoints[2] = kp(pose.LeftWrist, 100, 300)
	return p
}

func standingPose() *pose.Pose {
	return &pose.Pose{Score: 0.9, Keypoints: []pose.Keypoint{
		kp(pose.Nose, 320, 40),
		kp(pose.LeftShoulder, 280, 100),
		kp(pose.RightShoulder, 360, 100),
		kp(pose.LeftHip, 290, 250),
		kp(pose.RightHip, 350, 250),
		kp(pose.LeftAnkle, 290, 450),
		kp(pose.RightAnkle, 350, 450),
	}}
}
