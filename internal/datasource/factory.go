package datasource

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/config"
)

// NewFighterSource creates the roster source selected by configuration. The HTTP client is
// only required for the http source; a nil client gets one built from cfg.
func NewFighterSource(cfg config.RosterConfig, httpClient *RateLimitedHTTPClient, logger *logrus.Logger) (FighterSource, error) {
	switch cfg.Source {
	case config.RosterSourceFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("roster path is required for the file source")
		}
		return NewJSONFileSource(cfg.Path), nil

	case config.RosterSourceHTTP:
		if cfg.URL == "" {
			return nil, fmt.Errorf("roster url is required for the http source")
		}
		if httpClient == nil {
			httpClient = NewRateLimitedHTTPClient(RosterHTTPClientConfig(cfg), logger)
		}
		return NewHTTPSource(httpClient, cfg.URL), nil

	default:
		return nil, fmt.Errorf("unknown roster source: %s", cfg.Source)
	}
}

// RosterHTTPClientConfig derives client settings from the roster section.
func RosterHTTPClientConfig(cfg config.RosterConfig) HTTPClientConfig {
	httpCfg := DefaultHTTPClientConfig()
	if cfg.TimeoutSeconds > 0 {
		httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.RateLimit > 0 {
		httpCfg.RateLimit = float64(cfg.RateLimit)
	}
	return httpCfg
}
