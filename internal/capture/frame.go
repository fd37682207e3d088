package capture

import (
	"errors"
	"time"

	"github.com/2beens/posecoach/internal/pose"
)

var (
	ErrCameraAccessDenied = errors.New("camera access denied")
	ErrDetectorInit       = errors.New("pose detector init failed")
	ErrNoFrame            = errors.New("no new frame")
	ErrNotMounted         = errors.New("controller not mounted")
	ErrClosed             = errors.New("controller closed")
)

// Frame is one video frame coming from the camera. When the pose was already
// estimated on the capture side, Keypoints is set and Image may be empty.
type Frame struct {
	Seq       uint64
	Width     int
	Height    int
	Image     []byte
	Keypoints []pose.Keypoint
	Timestamp time.Time
}
