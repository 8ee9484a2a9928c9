package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tinexu/portfolio/internal/config"
	"github.com/tinexu/portfolio/internal/content"
	"github.com/tinexu/portfolio/internal/server"
)

var verbose bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(serveCmd(), contentCmd())
	return root
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug || verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// loadStore returns a store holding the content file at path, or the
// built-in portfolio when path is empty.
func loadStore(path string) (*content.Store, error) {
	if path == "" {
		return content.NewStore(content.Default()), nil
	}
	p, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	return content.NewStore(p), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			log, err := newLogger(cfg.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.Debug {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			store, err := loadStore(cfg.ContentPath)
			if err != nil {
				return err
			}
			srv, err := server.New(cfg, store, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.Run(ctx) })
			if cfg.Watch {
				w, err := content.NewWatcher(cfg.ContentPath, store, log)
				if err != nil {
					return err
				}
				g.Go(func() error { return w.Run(ctx) })
			}
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("portfolio stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

func contentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect portfolio content files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check a content file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := content.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d experience, %d projects, %d skills)\n",
				args[0], len(p.Experience), len(p.Projects), len(p.Skills))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the active content as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(os.Getenv("PORTFOLIO_CONTENT"))
			if err != nil {
				return err
			}
			return content.Encode(cmd.OutOrStdout(), store.Get())
		},
	})
	return cmd
}
