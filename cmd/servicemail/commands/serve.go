package commands

import (
	"context"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/servicemail/modules/servicemail"
	"github.com/dmitrymomot/servicemail/pkg/environment"
	"github.com/dmitrymomot/servicemail/pkg/httpserver"
	"github.com/dmitrymomot/servicemail/pkg/logger"
	"github.com/dmitrymomot/servicemail/pkg/ratelimiter"
)

// pruneInterval is how often idle rate limit keys are dropped.
const pruneInterval = 5 * time.Minute

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the compose form HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			bucket, err := ratelimiter.NewBucket(cfg.RateLimit)
			if err != nil {
				return err
			}
			go pruneLoop(cmd.Context(), bucket)

			env := environment.Parse(cfg.Env)
			router := servicemail.Router(servicemail.RouterOptions{
				Service: servicemail.NewService(cfg.Mail,
					servicemail.WithServiceLogger(log),
					servicemail.WithRateLimiter(bucket),
				),
				Logger:      log,
				Environment: env,
			})

			srv := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithLogger(log),
				httpserver.WithOnListen(func(a net.Addr) {
					log.Info("listening", logger.Component("http"), "addr", a.String())
				}),
			)
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func pruneLoop(ctx context.Context, b *ratelimiter.Bucket) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Prune(time.Hour)
		}
	}
}
