package session

import (
	"time"

	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/formcheck"
)

// DefaultStreakThreshold is the number of consecutive good-form frames that
// make one rep. At ~30 fps that is about a second of good form, the frame
// rate is not guaranteed so the mapping is approximate.
const DefaultStreakThreshold = 30

type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StateCompleted State = "completed"
)

func (s State) String() string {
	return string(s)
}

// Update describes what a single Record call changed.
type Update struct {
	Recorded     bool
	RepCompleted bool
	Completed    bool
	Snapshot     Snapshot
}

// Snapshot is a copy of the tracker state, safe to hand to other goroutines.
type Snapshot struct {
	State          State         `json:"state"`
	Exercise       string        `json:"exercise"`
	RepCount       int           `json:"repCount"`
	Streak         int           `json:"streak"`
	Elapsed        time.Duration `json:"-"`
	TargetReps     int           `json:"targetReps,omitempty"`
	TargetDuration time.Duration `json:"-"`
}

// Tracker accumulates good-form frames into reps for one exercise.
// It is not safe for concurrent use, the capture loop is its only owner.
type Tracker struct {
	exercise        exercises.Definition
	streakThreshold int

	state     State
	repCount  int
	streak    int
	startedAt time.Time
	// frozen recording time, set when recording stops
	elapsed time.Duration
}

func NewTracker(exercise exercises.Definition, streakThreshold int) *Tracker {
	if streakThreshold <= 0 {
		streakThreshold = DefaultStreakThreshold
	}
	return &Tracker{
		exercise:        exercise,
		streakThreshold: streakThreshold,
		state:           StateIdle,
	}
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) IsRecording() bool {
	return t.state == StateRecording
}

func (t *Tracker) Exercise() exercises.Definition {
	return t.exercise
}

// Start begins a new recording with fresh counters. Starting while
// already recording is a no-op.
func (t *Tracker) Start(now time.Time) {
	if t.state == StateRecording {
		return
	}
	t.state = StateRecording
	t.repCount = 0
	t.streak = 0
	t.elapsed = 0
	t.startedAt = now
}

// Record feeds one frame verdict into the tracker. Outside of recording it is ignored.
func (t *Tracker) Record(result formcheck.Result, now time.Time) Update {
	if t.state != StateRecording {
		return Update{Snapshot: t.Snapshot(now)}
	}

	upd := Update{Recorded: true}
	switch {
	case result.Completed:
		t.complete(now)
	case result.IsGoodForm:
		t.streak++
		if t.streak >= t.streakThreshold {
			t.repCount++
			t.streak = 0
			upd.RepCompleted = true
		}
		if t.exercise.IsRepBased() && t.repCount >= t.exercise.TargetReps {
			t.complete(now)
		}
	default:
		t.streak = 0
	}

	upd.Completed = t.state == StateCompleted
	upd.Snapshot = t.Snapshot(now)
	return upd
}

func (t *Tracker) complete(now time.Time) {
	t.elapsed = now.Sub(t.startedAt)
	t.state = StateCompleted
}

// Stop ends recording and keeps the counters. A completed session goes back to idle.
func (t *Tracker) Stop(now time.Time) {
	switch t.state {
	case StateRecording:
		t.elapsed = now.Sub(t.startedAt)
		t.state = StateIdle
	case StateCompleted:
		t.state = StateIdle
	}
}

// Reset goes back to idle and zeroes everything.
func (t *Tracker) Reset() {
	t.state = StateIdle
	t.repCount = 0
	t.streak = 0
	t.elapsed = 0
	t.startedAt = time.Time{}
}

// Elapsed is the recording time. It freezes once recording stops.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	if t.state == StateRecording {
		return now.Sub(t.startedAt)
	}
	return t.elapsed
}

func (t *Tracker) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:          t.state,
		Exercise:       t.exercise.Slug,
		RepCount:       t.repCount,
		Streak:         t.streak,
		Elapsed:        t.Elapsed(now),
		TargetReps:     t.exercise.TargetReps,
		TargetDuration: t.exercise.TargetDuration,
	}
}
