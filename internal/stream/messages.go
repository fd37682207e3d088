package stream

import (
	"encoding/json"

	"github.com/2beens/posecoach/internal/pose"
)

type MessageType string

// client -> server
const (
	TypeCameraReady  MessageType = "camera_ready"
	TypeCameraDenied MessageType = "camera_denied"
	TypeFrame        MessageType = "frame"
	TypeStart        MessageType = "start"
	TypeStop         MessageType = "stop"
	TypeReset        MessageType = "reset"
)

// server -> client
const (
	TypeFeedback MessageType = "feedback"
	TypeState    MessageType = "state"
	TypeOverlay  MessageType = "overlay"
	TypeNavigate MessageType = "navigate"
	TypeError    MessageType = "error"
)

// WorkoutsPath is where the client goes once the exercise is done.
const WorkoutsPath = "/workouts"

type InboundMessage struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type OutboundMessage struct {
	Type MessageType `json:"type"`
	Data any         `json:"data,omitempty"`
}

type CameraReadyMessage struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type CameraDeniedMessage struct {
	Reason string `json:"reason"`
}

// FrameMessage carries either the keypoints estimated in the browser, or the
// encoded image (base64 in JSON) for the remote detector, or both.
type FrameMessage struct {
	Seq       uint64          `json:"seq"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Keypoints []pose.Keypoint `json:"keypoints,omitempty"`
	Image     []byte          `json:"image,omitempty"`
}

type FeedbackMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type StateMessage struct {
	SessionID        string `json:"sessionId"`
	Exercise         string `json:"exercise"`
	State            string `json:"state"`
	RepCount         int    `json:"repCount"`
	Streak           int    `json:"streak"`
	ElapsedMs        int64  `json:"elapsedMs"`
	TargetReps       int    `json:"targetReps,omitempty"`
	TargetDurationMs int64  `json:"targetDurationMs,omitempty"`
	Running          bool   `json:"running"`
}

type NavigateMessage struct {
	To string `json:"to"`
}

type ErrorMessage struct {
	Message string `json:"message"`
	// Fatal errors end the session, the client should not retry on the same connection.
	Fatal bool `json:"fatal,omitempty"`
}
