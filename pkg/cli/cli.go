package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/elangsegara/xray-sync/pkg/cli/config"
	"github.com/elangsegara/xray-sync/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// Option is a functional option for Run
type Option func(*runner)

// WithWriter sets where the report lines go, os.Stdout by default
func WithWriter(w io.Writer) Option {
	return func(r *runner) {
		r.out = w
	}
}

// WithErrWriter sets where logs and failure messages go, os.Stderr by default
func WithErrWriter(w io.Writer) Option {
	return func(r *runner) {
		r.errOut = w
	}
}

// WithEnvFile sets the dotenv file loaded before flags are parsed
func WithEnvFile(path string) Option {
	return func(r *runner) {
		r.envFile = path
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	r := &runner{
		out:     os.Stdout,
		errOut:  os.Stderr,
		envFile: ".env",
	}
	for _, opt := range opts {
		opt(r)
	}

	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		logger    *slog.Logger
	)

	if err := config.LoadDotEnv(r.envFile); err != nil {
		slog.Default().Error("Failed to load env file", slog.Any("error", err))
		return err
	}

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, r.xray.Flags()...)
	flags = append(flags, r.workspace.Flags()...)
	flags = append(flags, r.task.Flags()...)

	app := &cli.Command{
		Name:      "xray-sync",
		Usage:     "Download Cucumber scenarios from Xray and upload execution results",
		Version:   types.Version,
		ArgsUsage: "<download|upload> <tag|result-file>",
		Flags:     flags,
		Writer:    r.out,
		ErrWriter: r.errOut,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure(r.errOut)
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: r.actionRoot,
		Commands: []*cli.Command{
			r.cmdDownload(),
			r.cmdUpload(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		sentryCfg.Report(err)
		return err
	}

	return nil
}
