package pose

import "slices"

// KeypointName identifies a skeletal landmark, using the names the
// tfjs pose-detection models (MoveNet, BlazePose) report.
type KeypointName string

const (
	Nose          KeypointName = "nose"
	LeftEye       KeypointName = "left_eye"
	RightEye      KeypointName = "right_eye"
	LeftEar       KeypointName = "left_ear"
	RightEar      KeypointName = "right_ear"
	LeftShoulder  KeypointName = "left_shoulder"
	RightShoulder KeypointName = "right_shoulder"
	LeftElbow     KeypointName = "left_elbow"
	RightElbow    KeypointName = "right_elbow"
	LeftWrist     KeypointName = "left_wrist"
	RightWrist    KeypointName = "right_wrist"
	LeftHip       KeypointName = "left_hip"
	RightHip      KeypointName = "right_hip"
	LeftKnee      KeypointName = "left_knee"
	RightKnee     KeypointName = "right_knee"
	LeftAnkle     KeypointName = "left_ankle"
	RightAnkle    KeypointName = "right_ankle"
)

// KeypointNames is the fixed anatomical vocabulary, in COCO order.
var KeypointNames = []KeypointName{
	Nose,
	LeftEye, RightEye,
	LeftEar, RightEar,
	LeftShoulder, RightShoulder,
	LeftElbow, RightElbow,
	LeftWrist, RightWrist,
	LeftHip, RightHip,
	LeftKnee, RightKnee,
	LeftAnkle, RightAnkle,
}

func (n KeypointName) String() string {
	return string(n)
}

func (n KeypointName) IsValid() bool {
	return slices.Contains(KeypointNames, n)
}

// Point is a position on the video frame, in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Keypoint struct {
	Name  KeypointName `json:"name"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Z     *float64     `json:"z,omitempty"`
	Score float64      `json:"score"`
}

func (k Keypoint) Point() *Point {
	return &Point{X: k.X, Y: k.Y}
}

// Pose holds the keypoints of one detected person in one frame.
type Pose struct {
	Score     float64    `json:"score,omitempty"`
	Keypoints []Keypoint `json:"keypoints"`
}

// Keypoint returns the named keypoint. The first match wins.
func (p *Pose) Keypoint(name KeypointName) (Keypoint, bool) {
	if p == nil {
		return Keypoint{}, false
	}
	for _, kp := range p.Keypoints {
		if kp.Name == name {
			return kp, true
		}
	}
	return Keypoint{}, false
}

// Visible reports whether the named keypoint was detected with at least minScore confidence.
func (p *Pose) Visible(name KeypointName, minScore float64) bool {
	kp, ok := p.Keypoint(name)
	return ok && kp.Score >= minScore
}

// PointOf returns the position of the named keypoint, or nil when the
// pose does not contain it.
func (p *Pose) PointOf(name KeypointName) *Point {
	kp, ok := p.Keypoint(name)
	if !ok {
		return nil
	}
	return kp.Point()
}
