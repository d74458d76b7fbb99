package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formcompose/internal/output"
	"github.com/goliatone/go-formcompose/internal/prompt"
	"github.com/goliatone/go-formcompose/pkg/form"
	"github.com/goliatone/go-formcompose/pkg/layout"
	"github.com/goliatone/go-formcompose/pkg/rowsource"
)

type cliOptions struct {
	layoutPath  string
	openAPIPath string
	operationID string
	format      string
	outputPath  string
	noSanitize  bool
	verbose     bool
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}
	var logger *slog.Logger

	root := &cobra.Command{
		Use:           "formcompose",
		Short:         "Compose form descriptors from declarative layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.layoutPath, "layout", "l", "", "layout document (JSON or YAML)")
	flags.StringVar(&opts.openAPIPath, "openapi", "", "OpenAPI document providing extra rows")
	flags.StringVar(&opts.operationID, "operation", "", "operation whose request body provides rows (requires --openapi)")
	flags.BoolVar(&opts.noSanitize, "no-sanitize", false, "keep markup in headers, footers and labels")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	compose := &cobra.Command{
		Use:   "compose",
		Short: "Build the form declared by the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(cmd.Context(), logger, opts)
			if err != nil {
				return err
			}
			f, err := l.Build()
			if err != nil {
				return err
			}
			return writeForm(cmd.OutOrStdout(), logger, f, opts)
		},
	}

	eval := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an expression against the layout's rows and sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(cmd.Context(), logger, opts)
			if err != nil {
				return err
			}
			f, err := l.Evaluate(args[0])
			if err != nil {
				return err
			}
			return writeForm(cmd.OutOrStdout(), logger, f, opts)
		},
	}

	for _, cmd := range []*cobra.Command{compose, eval} {
		cmd.Flags().StringVarP(&opts.format, "format", "f", string(output.FormatJSON), "output format (json|yaml)")
		cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output file (stdout if empty)")
	}

	interactive := &cobra.Command{
		Use:   "prompt",
		Short: "Compose forms interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(cmd.Context(), logger, opts)
			if err != nil {
				return err
			}
			session := &prompt.Session{
				Driver: prompt.NewSurveyDriver(cmd.OutOrStdout()),
				Source: l,
				Out:    cmd.OutOrStdout(),
			}
			return session.Run(cmd.Context())
		},
	}

	root.AddCommand(compose, eval, interactive)
	return root
}

func loadLayout(ctx context.Context, logger *slog.Logger, opts *cliOptions) (*layout.Layout, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.layoutPath == "" {
		return nil, fmt.Errorf("--layout is required")
	}

	layoutOpts := []layout.Option{layout.WithSanitizer(!opts.noSanitize)}

	if opts.openAPIPath != "" || opts.operationID != "" {
		if opts.openAPIPath == "" || opts.operationID == "" {
			return nil, fmt.Errorf("--openapi and --operation must be used together")
		}
		data, err := os.ReadFile(opts.openAPIPath)
		if err != nil {
			return nil, fmt.Errorf("read openapi document: %w", err)
		}
		rows, err := rowsource.FromOpenAPI(ctx, data, opts.operationID)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded rows from openapi", "document", opts.openAPIPath, "operation", opts.operationID, "rows", len(rows))
		layoutOpts = append(layoutOpts, layout.WithRows(rows...))
	}

	l, err := layout.LoadFile(opts.layoutPath, layoutOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded layout", "path", opts.layoutPath, "operands", len(l.Names()))
	return l, nil
}

func writeForm(stdout io.Writer, logger *slog.Logger, f *form.Form, opts *cliOptions) error {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	if opts.outputPath == "" {
		return output.Encode(stdout, f, format)
	}

	file, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := output.Encode(file, f, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info("form written", "path", opts.outputPath, "sections", f.Len())
	return nil
}
