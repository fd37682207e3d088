package detector

import (
	"context"

	"github.com/2beens/posecoach/internal/capture"
	"github.com/2beens/posecoach/internal/pose"
)

// Passthrough is used when the pose model runs in the browser (tfjs MoveNet or
// BlazePose): the frame already carries the keypoints.
type Passthrough struct{}

var _ capture.Detector = Passthrough{}

// EstimatePose turns the frame keypoints into a pose. Keypoints with names outside
// of the known vocabulary (BlazePose reports extra face and hand points) are dropped.
func (Passthrough) EstimatePose(_ context.Context, frame capture.Frame) (*pose.Pose, error) {
	keypoints := make([]pose.Keypoint, 0, len(frame.Keypoints))
	for _, kp := range frame.Keypoints {
		if !kp.Name.IsValid() {
			continue
		}
		keypoints = append(keypoints, kp)
	}
	if len(keypoints) == 0 {
		return nil, nil
	}

	return &pose.Pose{
		Score:     meanScore(keypoints),
		Keypoints: keypoints,
	}, nil
}

func (Passthrough) Close() error {
	return nil
}

func meanScore(keypoints []pose.Keypoint) float64 {
	if len(keypoints) == 0 {
		return 0
	}
	sum := 0.0
	for _, kp := range keypoints {
		sum += kp.Score
	}
	return sum / float64(len(keypoints))
}
