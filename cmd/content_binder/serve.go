package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/content-binder/internal/config"
	"github.com/jonathan/content-binder/internal/logger"
	"github.com/jonathan/content-binder/internal/server"
	"github.com/jonathan/content-binder/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	configPath string
	siteDir    string
	content    string
	port       int
	timeout    int
	sanitize   bool
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a preview server that binds content on every page load",
		Long:  `Serve a static site directory. Every HTML request loads the content document afresh and runs the binding pass before responding.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to JSON or YAML config file")
	cmd.Flags().StringVarP(&opts.siteDir, "site", "s", "", "Site directory to serve")
	cmd.Flags().StringVar(&opts.content, "content", "", "Content document path or URL (default: content.json next to each page)")
	cmd.Flags().IntVar(&opts.port, "port", 0, fmt.Sprintf("Port to listen on (default %d)", config.DefaultPort))
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Content fetch timeout in seconds (0 = none)")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Sanitize markup-capable fields instead of trusting them")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	overrideString(cmd, "site", &cfg.SiteDir, opts.siteDir)
	overrideString(cmd, "content", &cfg.Content, opts.content)
	overrideInt(cmd, "port", &cfg.Port, opts.port)
	overrideInt(cmd, "timeout", &cfg.TimeoutSeconds, opts.timeout)
	overrideBool(cmd, "sanitize", &cfg.Sanitize, opts.sanitize)

	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	limits, err := ratelimit.LoadConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		SiteDir:  cfg.SiteDir,
		Content:  cfg.Content,
		Timeout:  cfg.Timeout(),
		Sanitize: cfg.Sanitize,
		Logger:   logger.NewLogger("server", os.Stderr),

		RateLimit: limits,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
