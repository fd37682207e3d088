package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/posecoach/internal/capture"
	"github.com/2beens/posecoach/internal/overlay"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024 * 1024
	sendBufferSize = 128
)

type cameraDecision struct {
	ready  bool
	width  int
	height int
	reason string
}

// Session is one live WebSocket connection. For the capture controller it is
// the camera, the navigator and the feedback sink, all backed by the browser
// on the other end.
type Session struct {
	id       string
	exercise string
	conn     *websocket.Conn
	log      *log.Entry
	surface  *overlay.DisplayList

	decisions chan cameraDecision

	mu         sync.Mutex
	send       chan []byte
	closed     bool
	cameraOpen bool
	width      int
	height     int
	// one-slot mailbox, a newer frame replaces an unread one
	latest *capture.Frame

	// loop goroutine only
	lastFeedback capture.Feedback
}

var (
	_ capture.CameraOpener = (*Session)(nil)
	_ capture.Camera       = (*Session)(nil)
	_ capture.Navigator    = (*Session)(nil)
	_ capture.FeedbackSink = (*Session)(nil)
)

func newSession(conn *websocket.Conn, exercise string) *Session {
	id := uuid.NewString()
	return &Session{
		id:       id,
		exercise: exercise,
		conn:     conn,
		log: log.WithFields(log.Fields{
			"session":  id,
			"exercise": exercise,
		}),
		surface:   overlay.NewDisplayList(),
		decisions: make(chan cameraDecision, 1),
		send:      make(chan []byte, sendBufferSize),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Open waits until the browser reports whether the user granted camera access.
func (s *Session) Open(ctx context.Context) (capture.Camera, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case d := <-s.decisions:
		if !d.ready {
			return nil, fmt.Errorf("%w: %s", capture.ErrCameraAccessDenied, d.reason)
		}
		s.mu.Lock()
		s.cameraOpen = true
		s.mu.Unlock()
		return s, nil
	}
}

func (s *Session) cameraDecided(d cameraDecision) {
	if d.ready && d.width > 0 && d.height > 0 {
		s.mu.Lock()
		s.width, s.height = d.width, d.height
		s.mu.Unlock()
	}

	select {
	case s.decisions <- d:
	default:
		s.log.Debug("camera decision already pending, ignoring")
	}
}

func (s *Session) Frame(_ context.Context) (capture.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return capture.Frame{}, capture.ErrNoFrame
	}
	f := *s.latest
	s.latest = nil
	return f, nil
}

func (s *Session) putFrame(msg FrameMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cameraOpen {
		return
	}
	if msg.Width > 0 && msg.Height > 0 {
		s.width, s.height = msg.Width, msg.Height
	}
	s.latest = &capture.Frame{
		Seq:       msg.Seq,
		Width:     msg.Width,
		Height:    msg.Height,
		Image:     msg.Image,
		Keypoints: msg.Keypoints,
		Timestamp: time.Now(),
	}
}

func (s *Session) Dimensions() (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height, s.width > 0 && s.height > 0
}

// Close releases the camera side of the session. The connection stays up.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameraOpen = false
	s.latest = nil
	return nil
}

func (s *Session) NavigateToWorkouts() {
	s.log.Debug("navigating to workouts")
	s.write(TypeNavigate, NavigateMessage{To: WorkoutsPath})
}

func (s *Session) Publish(snap capture.Snapshot) {
	s.write(TypeState, StateMessage{
		SessionID:        s.id,
		Exercise:         s.exercise,
		State:            snap.Session.State.String(),
		RepCount:         snap.Session.RepCount,
		Streak:           snap.Session.Streak,
		ElapsedMs:        snap.Session.Elapsed.Milliseconds(),
		TargetReps:       snap.Session.TargetReps,
		TargetDurationMs: snap.Session.TargetDuration.Milliseconds(),
		Running:          snap.Running,
	})

	s.write(TypeOverlay, s.surface.Snapshot())

	if !snap.Feedback.IsEmpty() && snap.Feedback != s.lastFeedback {
		s.lastFeedback = snap.Feedback
		s.write(TypeFeedback, FeedbackMessage{
			Kind:    string(snap.Feedback.Kind),
			Message: snap.Feedback.Message,
		})
	}
}

func (s *Session) sendError(message string, fatal bool) {
	s.write(TypeError, ErrorMessage{Message: message, Fatal: fatal})
}

func (s *Session) write(msgType MessageType, data any) {
	b, err := json.Marshal(OutboundMessage{Type: msgType, Data: data})
	if err != nil {
		s.log.Errorf("marshal [%s] message: %s", msgType, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.send <- b:
	default:
		s.log.Warnf("send buffer full, dropping [%s] message", msgType)
	}
}

// closeSend stops the write pump once the queued messages are flushed.
func (s *Session) closeSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				s.log.Debugf("write message: %s", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump reads until the connection goes away.
func (s *Session) readPump(dispatch func(InboundMessage)) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warnf("read message: %s", err)
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("invalid message", false)
			continue
		}
		dispatch(msg)
	}
}
