package capture

import (
	"slices"

	"github.com/2beens/posecoach/internal/formcheck"
	"github.com/2beens/posecoach/internal/pose"
	"github.com/2beens/posecoach/internal/session"
)

const (
	DetectorErrorMessage    = "Pose detection failed, retrying"
	RecordingStartedMessage = "Recording started"
)

type Feedback struct {
	Kind    formcheck.Kind `json:"kind"`
	Message string         `json:"message"`
}

func (f Feedback) IsEmpty() bool {
	return f.Message == ""
}

// Snapshot is a copy of the controller state after a frame, owned by the receiver.
type Snapshot struct {
	Seq      uint64
	Running  bool
	Session  session.Snapshot
	Pose     *pose.Pose
	Result   *formcheck.Result
	Feedback Feedback
}

func (s Snapshot) clone() Snapshot {
	if s.Pose != nil {
		p := *s.Pose
		p.Keypoints = slices.Clone(p.Keypoints)
		s.Pose = &p
	}
	if s.Result != nil {
		r := *s.Result
		r.Messages = slices.Clone(r.Messages)
		r.Angles = slices.Clone(r.Angles)
		s.Result = &r
	}
	return s
}

// FeedbackSink receives a snapshot after every processed frame. It is called
// from the loop goroutine and must not block for long.
type FeedbackSink interface {
	Publish(snapshot Snapshot)
}
