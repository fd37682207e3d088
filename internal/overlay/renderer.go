package overlay

import (
	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/pose"
)

const (
	keypointRadius = 5
	boneWidth      = 2
	arcRadius      = 30
	arcWidth       = 3
)

// Renderer draws a pose and the exercise check arcs onto a Surface.
type Renderer struct {
	minScore float64
}

func NewRenderer(minScore float64) *Renderer {
	return &Renderer{
		minScore: minScore,
	}
}

// Render clears the surface, sizes it to the frame and draws visible keypoints,
// the skeleton bones and one arc per check with a defined angle.
// Arcs are green when the angle is within the check range, red otherwise.
func (r *Renderer) Render(surface Surface, p *pose.Pose, exercise exercises.Definition, width, height int) {
	surface.Resize(width, height)
	surface.Clear()
	if p == nil {
		return
	}

	for _, kp := range p.Keypoints {
		if kp.Score < r.minScore {
			continue
		}
		surface.Circle(kp.X, kp.Y, keypointRadius, Style{Color: ColorKeypoint, Fill: true})
	}

	for _, bone := range pose.Skeleton {
		if !p.Visible(bone.From, r.minScore) || !p.Visible(bone.To, r.minScore) {
			continue
		}
		from, to := p.PointOf(bone.From), p.PointOf(bone.To)
		surface.Line(from.X, from.Y, to.X, to.Y, Style{Color: ColorBone, Width: boneWidth})
	}

	for _, check := range exercise.Checks {
		a, b, c := p.PointOf(check.Points[0]), p.PointOf(check.Points[1]), p.PointOf(check.Points[2])
		angle, ok := pose.AngleAt(a, b, c)
		if !ok {
			continue
		}

		color := ColorFail
		if check.InRange(angle) {
			color = ColorPass
		}

		start, end := pose.Direction(b, a), pose.Direction(b, c)
		if !clockwiseShorter(start, end) {
			start, end = end, start
		}
		surface.Arc(b.X, b.Y, arcRadius, start, end, Style{Color: color, Width: arcWidth})
	}
}
