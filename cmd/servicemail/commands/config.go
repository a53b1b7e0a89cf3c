package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/servicemail/modules/servicemail"
	"github.com/dmitrymomot/servicemail/pkg/clientip"
	"github.com/dmitrymomot/servicemail/pkg/config"
	"github.com/dmitrymomot/servicemail/pkg/environment"
	"github.com/dmitrymomot/servicemail/pkg/httpserver"
	"github.com/dmitrymomot/servicemail/pkg/logger"
	"github.com/dmitrymomot/servicemail/pkg/ratelimiter"
	"github.com/dmitrymomot/servicemail/pkg/requestid"
)

// AppConfig is the process configuration read from the environment.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"servicemail"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`

	HTTP      httpserver.Config
	Mail      servicemail.Config
	RateLimit ratelimiter.Config
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// newLogger applies the environment preset, then LOG_LEVEL and LOG_FORMAT
// overrides.
func newLogger(cfg AppConfig, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.ServiceName),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevelString(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("LOG_FORMAT: %w", err)
		}
		opts = append(opts, logger.WithFormat(f))
	}

	return logger.New(opts...), nil
}
