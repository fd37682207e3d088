package detector

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/posecoach/internal/capture"
	"github.com/2beens/posecoach/internal/pose"
	"github.com/2beens/posecoach/internal/telemetry/tracing"

	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// a stalled camera keeps sending the same image, those are answered from cache
	resultCacheSize   = 4 * 1024 * 1024
	resultCacheExpire = 5 // seconds
)

var ErrInferenceServer = errors.New("inference server error")

// PoseResponse is what the inference server answers on POST /v1/pose.
type PoseResponse struct {
	Poses []pose.Pose `json:"poses"`
}

// Remote sends frame images to an HTTP pose inference server.
type Remote struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
}

var _ capture.Detector = (*Remote)(nil)

// NewRemote checks that the inference server is up before handing out the detector.
func NewRemote(ctx context.Context, baseURL string, httpClient *http.Client) (*Remote, error) {
	r := &Remote{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      freecache.NewCache(resultCacheSize),
	}
	if err := r.healthCheck(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Remote) healthCheck(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "detector.remote.healthz")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	req, err := http.NewRequestWithContext(ctx, "GET", r.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: healthz status %d", ErrInferenceServer, resp.StatusCode)
	}
	return nil
}

func (r *Remote) EstimatePose(ctx context.Context, frame capture.Frame) (_ *pose.Pose, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "detector.remote.estimatePose")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int64("frame.seq", int64(frame.Seq)))

	if len(frame.Image) == 0 {
		// nothing to send, the client may still have estimated the pose itself
		return Passthrough{}.EstimatePose(ctx, frame)
	}

	cacheKey := make([]byte, 8)
	binary.BigEndian.PutUint64(cacheKey, xxhash.Sum64(frame.Image))
	if cached, err := r.cache.Get(cacheKey); err == nil {
		var p *pose.Pose
		if err := json.Unmarshal(cached, &p); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return p, nil
		}
	}

	url := fmt.Sprintf("%s/v1/pose?width=%d&height=%d", r.baseURL, frame.Width, frame.Height)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(frame.Image))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", http.DetectContentType(frame.Image))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrInferenceServer, resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}

	var poseResp PoseResponse
	if err := json.Unmarshal(respBytes, &poseResp); err != nil {
		return nil, fmt.Errorf("unmarshal inference response: %w", err)
	}

	p := bestPose(poseResp.Poses)
	if encoded, err := json.Marshal(p); err == nil {
		if err := r.cache.Set(cacheKey, encoded, resultCacheExpire); err != nil {
			log.Tracef("cache pose for frame %d: %s", frame.Seq, err)
		}
	}

	return p, nil
}

func (r *Remote) Close() error {
	r.cache.Clear()
	return nil
}

// bestPose picks the highest scoring person. Ties keep the first one.
// Landmarks outside the known vocabulary (BlazePose face and hand points) are dropped.
func bestPose(poses []pose.Pose) *pose.Pose {
	var best *pose.Pose
	for i := range poses {
		p := &poses[i]
		if best == nil || p.Score > best.Score {
			best = p
		}
	}
	if best == nil {
		return nil
	}

	keypoints := make([]pose.Keypoint, 0, len(best.Keypoints))
	for _, kp := range best.Keypoints {
		if kp.Name.IsValid() {
			keypoints = append(keypoints, kp)
		}
	}
	if len(keypoints) == 0 {
		return nil
	}
	out := *best
	out.Keypoints = keypoints
	return &out
}
