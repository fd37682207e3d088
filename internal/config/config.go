package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultFrameRate             = 30
	defaultLiveRateLimitPerMin   = 20
	defaultPrometheusMetricsPort = "2112"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// telemetry
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	SentryEnabled         bool   `toml:"sentry_enabled"`
	HoneycombEnabled      bool   `toml:"honeycomb_enabled"`
	// redis, used by the rate limiter
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// new live sessions allowed per client IP per minute
	LiveRateLimitPerMin int `toml:"live_rate_limit_per_min"`
	// capture loop
	FrameRate        int      `toml:"frame_rate"`
	StreakThreshold  int      `toml:"streak_threshold"`
	MinKeypointScore float64  `toml:"min_keypoint_score"`
	NavigateDelay    Duration `toml:"navigate_delay"`
	// pose detector: "client" uses keypoints sent by the browser, "remote" calls an inference server
	DetectorMode    string   `toml:"detector_mode"`
	DetectorURL     string   `toml:"detector_url"`
	DetectorTimeout Duration `toml:"detector_timeout"`
	// websocket origins, "*" allows any
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration lets TOML carry values like "3s" or "1500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		if cfg != nil && cfg.Environment == "" {
			cfg.Environment = "development"
		}
	case "prod", "production":
		cfg = t.Production
		if cfg != nil && cfg.Environment == "" {
			cfg.Environment = "production"
		}
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env [%s]: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.FrameRate <= 0 {
		c.FrameRate = defaultFrameRate
	}
	if c.LiveRateLimitPerMin <= 0 {
		c.LiveRateLimitPerMin = defaultLiveRateLimitPerMin
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = defaultPrometheusMetricsPort
	}
	if c.DetectorMode == "" {
		c.DetectorMode = "client"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}
	if c.MinKeypointScore < 0 || c.MinKeypointScore > 1 {
		errs = append(errs, fmt.Errorf("min_keypoint_score must be within [0, 1], got %v", c.MinKeypointScore))
	}
	if c.StreakThreshold < 0 {
		errs = append(errs, fmt.Errorf("streak_threshold must not be negative, got %d", c.StreakThreshold))
	}
	if c.NavigateDelay.Duration < 0 {
		errs = append(errs, errors.New("navigate_delay must not be negative"))
	}
	switch c.DetectorMode {
	case "client":
	case "remote":
		if c.DetectorURL == "" {
			errs = append(errs, errors.New("detector_url is required in remote detector mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown detector_mode: [%s]", c.DetectorMode))
	}
	return errors.Join(errs...)
}
