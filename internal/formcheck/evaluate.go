package formcheck

import (
	"strings"
	"time"

	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/pose"
)

const (
	// DefaultMinScore is the confidence a required keypoint needs to count as visible.
	DefaultMinScore = 0.5

	SuccessMessage            = "Great form! Keep it up"
	FullBodyNotVisibleMessage = "Ensure full body visible"
	CompletedMessage          = "Exercise completed! Great job"

	messageSeparator = ". "
)

// Kind tells the client how to present the feedback.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// CheckAngle is the measured angle of one form check in one frame.
type CheckAngle struct {
	Check   string            `json:"check"`
	Vertex  pose.KeypointName `json:"vertex"`
	Angle   float64           `json:"angle"`
	Defined bool              `json:"defined"`
	Passed  bool              `json:"passed"`
}

type Result struct {
	Messages   []string     `json:"messages"`
	IsGoodForm bool         `json:"isGoodForm"`
	Completed  bool         `json:"completed"`
	Feedback   string       `json:"feedback"`
	Kind       Kind         `json:"kind"`
	Angles     []CheckAngle `json:"angles,omitempty"`
}

type options struct {
	minScore float64
}

type Option func(*options)

// WithMinScore overrides DefaultMinScore for the required keypoint precondition.
func WithMinScore(score float64) Option {
	return func(o *options) {
		if score > 0 {
			o.minScore = score
		}
	}
}

// Evaluate produces the form verdict for one detected pose. A nil pose is
// treated as a pose with no keypoints.
func Evaluate(p *pose.Pose, ex exercises.Definition, elapsed time.Duration, opts ...Option) Result {
	o := options{minScore: DefaultMinScore}
	for _, opt := range opts {
		opt(&o)
	}

	if ex.IsDurationBased() && elapsed >= ex.TargetDuration {
		return Result{
			Messages:   []string{},
			IsGoodForm: true,
			Completed:  true,
			Feedback:   CompletedMessage,
			Kind:       KindSuccess,
		}
	}

	for _, name := range ex.RequiredKeypoints {
		if !p.Visible(name, o.minScore) {
			return Result{
				Messages:   []string{FullBodyNotVisibleMessage},
				IsGoodForm: false,
				Feedback:   FullBodyNotVisibleMessage,
				Kind:       KindWarning,
			}
		}
	}

	messages := []string{}
	angles := make([]CheckAngle, 0, len(ex.Checks))
	for _, check := range ex.Checks {
		angle, ok := pose.AngleAt(
			p.PointOf(check.Points[0]),
			p.PointOf(check.Points[1]),
			p.PointOf(check.Points[2]),
		)
		ca := CheckAngle{
			Check:   check.Name,
			Vertex:  check.Vertex(),
			Angle:   angle,
			Defined: ok,
		}
		if ok {
			ca.Passed = check.InRange(angle)
			if !ca.Passed {
				messages = append(messages, check.Message)
			}
		}
		angles = append(angles, ca)
	}

	res := Result{
		Messages:   messages,
		IsGoodForm: len(messages) == 0,
		Angles:     angles,
	}
	if res.IsGoodForm {
		res.Feedback = SuccessMessage
		res.Kind = KindSuccess
	} else {
		res.Feedback = strings.Join(messages, messageSeparator)
		res.Kind = KindError
	}

	return res
}
