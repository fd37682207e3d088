package capture

import (
	"context"

	"github.com/2beens/posecoach/internal/pose"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=capture_test

type CameraOpener interface {
	// Open asks for camera access. A refusal is reported as ErrCameraAccessDenied.
	Open(ctx context.Context) (Camera, error)
}

type Camera interface {
	// Frame returns the latest frame, or ErrNoFrame when nothing new arrived since the last call.
	Frame(ctx context.Context) (Frame, error)
	// Dimensions of the video, false until the camera has reported them.
	Dimensions() (width, height int, ok bool)
	Close() error
}

type DetectorFactory interface {
	NewDetector(ctx context.Context) (Detector, error)
}

type Detector interface {
	// EstimatePose returns the first (highest confidence) person in the frame,
	// or nil when nobody was detected.
	EstimatePose(ctx context.Context, frame Frame) (*pose.Pose, error)
	Close() error
}

type Navigator interface {
	NavigateToWorkouts()
}
