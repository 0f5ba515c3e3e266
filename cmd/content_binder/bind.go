package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/content"
	"github.com/jonathan/content-binder/internal/contentbinder"
	"github.com/jonathan/content-binder/internal/fetch"
	"github.com/jonathan/content-binder/internal/logger"
	"github.com/jonathan/content-binder/internal/observability"
	"github.com/jonathan/content-binder/internal/page"
	"github.com/jonathan/content-binder/internal/types"
	"github.com/spf13/cobra"
)

type bindOptions struct {
	configPath string
	page       string
	content    string
	out        string
	timeout    int
	sanitize   bool
	verbose    bool
}

func newBindCmd() *cobra.Command {
	opts := &bindOptions{}

	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Bind a content document into an HTML page",
		Long: `Run the binding pass once: load the content document, copy its fields into the page's template nodes,
and write the page. If the content document is unavailable or malformed the failure is logged and the
page is written with its static content.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBind(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to JSON or YAML config file")
	cmd.Flags().StringVarP(&opts.page, "page", "p", "", "Path to the host HTML page")
	cmd.Flags().StringVar(&opts.content, "content", "", "Content document path or URL (default: content.json next to the page)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output path (default: stdout)")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Content fetch timeout in seconds (0 = none)")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Sanitize markup-capable fields instead of trusting them")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a summary of the content document")

	return cmd
}

func runBind(cmd *cobra.Command, opts *bindOptions) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	overrideString(cmd, "page", &cfg.Page, opts.page)
	overrideString(cmd, "content", &cfg.Content, opts.content)
	overrideString(cmd, "out", &cfg.Out, opts.out)
	overrideInt(cmd, "timeout", &cfg.TimeoutSeconds, opts.timeout)
	overrideBool(cmd, "sanitize", &cfg.Sanitize, opts.sanitize)
	overrideBool(cmd, "verbose", &cfg.Verbose, opts.verbose)

	if err := cfg.ValidateForBind(); err != nil {
		return err
	}

	location := cfg.Content
	if location == "" {
		location = content.DefaultLocation(cfg.Page)
	}

	f, err := os.Open(cfg.Page)
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = f.Close() }()

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = cfg.Timeout()

	var source contentbinder.DocumentSource = content.NewLoader(location, fetchOpts)
	if cfg.Verbose {
		source = &summarizingSource{
			next:    source,
			printer: observability.NewPrinter(cmd.ErrOrStderr()),
		}
	}

	var binderOpts []binding.Option
	if cfg.Sanitize {
		binderOpts = append(binderOpts, binding.WithSanitizer())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p := page.Open(cfg.Page, f)
	binder := contentbinder.New(p, source,
		contentbinder.WithLogger(logger.NewConsoleLogger("bind", cmd.ErrOrStderr())),
		contentbinder.WithBinder(binding.New(binderOpts...)),
	)
	binder.RunWhenReady(ctx)
	if err := binder.Wait(ctx); err != nil {
		return fmt.Errorf("binding pass interrupted: %w", err)
	}
	if err := p.Err(); err != nil {
		return err
	}

	if cfg.Out == "" {
		if _, err := p.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}
		return nil
	}

	if err := p.WriteFile(cfg.Out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Bound page written to %s\n", cfg.Out)
	return nil
}

// summarizingSource prints a summary of each document it loads.
type summarizingSource struct {
	next    contentbinder.DocumentSource
	printer *observability.Printer
}

func (s *summarizingSource) Load(ctx context.Context) (*types.ContentDocument, error) {
	doc, err := s.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.printer.PrintContentSummary(doc)
	return doc, nil
}
