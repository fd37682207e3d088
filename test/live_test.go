package test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/posecoach/internal/pose"
	"github.com/2beens/posecoach/internal/stream"

	"github.com/gorilla/websocket"
)

type liveMessage struct {
	Type stream.MessageType `json:"type"`
	Data json.RawMessage    `json:"data"`
}

func (s *IntegrationTestSuite) dialLive(exercise string) (*websocket.Conn, *http.Response, error) {
	return websocket.DefaultDialer.Dial(liveEndpoint+"/"+exercise, http.Header{"Origin": []string{testOrigin}})
}

func (s *IntegrationTestSuite) TestLive_RateLimited() {
	for i := 0; i < liveRateLimitPerMin; i++ {
		conn, resp, err := s.dialLive("squats")
		s.Require().NoError(err)
		s.Equal(http.StatusSwitchingProtocols, resp.StatusCode)
		s.NoError(conn.Close())
	}

	conn, resp, err := s.dialLive("squats")
	s.Require().ErrorIs(err, websocket.ErrBadHandshake)
	s.Nil(conn)
	s.Require().NotNil(resp)
	s.Equal(http.StatusTooEarly, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestLive_CalibrationCompletes() {
	conn, _, err := s.dialLive("calibration")
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close()
	}()

	s.Require().NoError(conn.WriteJSON(map[string]any{
		"type": stream.TypeCameraReady,
		"data": stream.CameraReadyMessage{Width: 640, Height: 480},
	}))
	s.Require().NoError(conn.WriteJSON(map[string]any{"type": stream.TypeStart}))

	kp := func(name pose.KeypointName, x, y float64) pose.Keypoint {
		return pose.Keypoint{Name: name, X: x, Y: y, Score: 0.95}
	}
	frame := stream.FrameMessage{Width: 640, Height: 480, Keypoints: []pose.Keypoint{
		kp(pose.Nose, 320, 40),
		kp(pose.LeftShoulder, 280, 100),
		kp(pose.RightShoulder, 360, 100),
		kp(pose.LeftHip, 290, 250),
		kp(pose.RightHip, 350, 250),
		kp(pose.LeftAnkle, 290, 450),
		kp(pose.RightAnkle, 350, 450),
	}}

	// frames are written from this goroutine only, reads happen in the reader below
	navigated := make(chan stream.NavigateMessage, 1)
	go func() {
		for {
			var msg liveMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type == stream.TypeNavigate {
				var nav stream.NavigateMessage
				if json.Unmarshal(msg.Data, &nav) == nil {
					navigated <- nav
				}
				return
			}
		}
	}()

	timeout := time.After(10 * time.Second)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for seq := uint64(1); ; seq++ {
		select {
		case nav := <-navigated:
			s.Equal(stream.WorkoutsPath, nav.To)
			return
		case <-timeout:
			s.FailNow("live session did not complete")
		case <-ticker.C:
			frame.Seq = seq
			s.Require().NoError(conn.WriteJSON(map[string]any{"type": stream.TypeFrame, "data": frame}))
		}
	}
}
