package detector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/posecoach/internal/capture"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	ModeClient = "client"
	ModeRemote = "remote"

	DefaultTimeout = 2 * time.Second
)

type FactoryConfig struct {
	Mode    string
	URL     string
	Timeout time.Duration
}

// Factory creates one detector per live session.
type Factory struct {
	mode       string
	url        string
	httpClient *http.Client
}

var _ capture.DetectorFactory = (*Factory)(nil)

func NewFactory(cfg FactoryConfig) (*Factory, error) {
	switch cfg.Mode {
	case ModeClient:
	case ModeRemote:
		if cfg.URL == "" {
			return nil, fmt.Errorf("detector mode %s: url not set", cfg.Mode)
		}
	default:
		return nil, fmt.Errorf("unknown detector mode: [%s]", cfg.Mode)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Factory{
		mode: cfg.Mode,
		url:  cfg.URL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (f *Factory) Mode() string {
	return f.mode
}

func (f *Factory) NewDetector(ctx context.Context) (capture.Detector, error) {
	if f.mode == ModeClient {
		return Passthrough{}, nil
	}

	remote, err := NewRemote(ctx, f.url, f.httpClient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", capture.ErrDetectorInit, err)
	}
	return remote, nil
}
