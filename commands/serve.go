package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c360studio/clausegraph/config"
	"github.com/c360studio/clausegraph/parse"
	"github.com/c360studio/clausegraph/server"
)

// NewServeCommand creates the serve command: a thin HTTP shell over the
// engine with health, readiness, metrics, and clause query endpoints.
func NewServeCommand(logger *slog.Logger) *cobra.Command {
	var (
		addr     string
		docPath  string
		redisURL string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the clause collection over HTTP",
		Long: `Serve parses the configured document into memory and exposes it over a
stub HTTP service: /healthz, /readyz (cache connectivity when configured),
/metrics, and read-only clause query endpoints under /api.

With --watch the document is re-parsed whenever the input file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(logger).Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if docPath != "" {
				cfg.Server.Document = docPath
			}
			if redisURL != "" {
				cfg.Server.RedisURL = redisURL
			}

			engine := parse.NewEngine(parse.Options{
				SummaryLength: cfg.Parser.SummaryLength,
				FullTextLimit: cfg.Parser.FullTextLimit,
				Logger:        logger,
			})

			srv, err := server.New(cfg.Server, engine, logger)
			if err != nil {
				return err
			}

			if cfg.Server.Document != "" {
				if err := srv.Reload(); err != nil {
					return err
				}
			} else {
				logger.Warn("No document configured; query endpoints will report unavailable")
			}

			ctx := cmd.Context()
			if watch {
				if cfg.Server.Document == "" {
					return fmt.Errorf("--watch requires a configured document")
				}
				go func() {
					if err := srv.Watch(ctx); err != nil {
						logger.Error("Watcher stopped", "error", err)
					}
				}()
			}

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&docPath, "document", "", "Input document to serve (overrides config)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the readiness check (overrides config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-parse when the input document changes")

	return cmd
}
