package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/elangsegara/xray-sync/pkg/cli/config"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/elangsegara/xray-sync/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// runner carries the settings shared by every command of one invocation
type runner struct {
	out     io.Writer
	errOut  io.Writer
	envFile string

	xray      config.Xray
	workspace config.Workspace
	task      config.TaskFile
}

// actionRoot takes the action and scenario as positional arguments, falling
// back to the task file for the ones not given
func (r *runner) actionRoot(ctx context.Context, c *cli.Command) error {
	rawAction := c.Args().Get(0)
	scenario := c.Args().Get(1)

	if rawAction == "" || scenario == "" {
		task, err := r.task.Load()
		if err != nil {
			return err
		}
		if rawAction == "" {
			rawAction = task.Action
		}
		if scenario == "" {
			scenario = task.Scenario
		}
	}

	if rawAction == "" {
		return goerr.New("action is required: xray-sync <download|upload> <scenario>")
	}

	action, err := model.ParseAction(rawAction)
	if err != nil {
		if errors.Is(err, model.ErrInvalidAction) {
			fmt.Fprintf(r.errOut, "Invalid argument: %s\n", rawAction)
			ctxlog.From(ctx).Warn("Ignoring invalid action", "action", rawAction)
			return nil
		}
		return err
	}

	return r.run(ctx, action, scenario)
}

func (r *runner) cmdDownload() *cli.Command {
	return &cli.Command{
		Name:      "download",
		Aliases:   []string{"d"},
		Usage:     "Export scenarios by tag and extract them into the feature directory",
		ArgsUsage: "<tag>",
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.run(ctx, model.ActionDownload, c.Args().First())
		},
	}
}

func (r *runner) cmdUpload() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Aliases:   []string{"u"},
		Usage:     "Import an execution result file from the results directory",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.run(ctx, model.ActionUpload, c.Args().First())
		},
	}
}

func (r *runner) run(ctx context.Context, action model.Action, scenario string) error {
	if scenario == "" {
		return goerr.New("scenario is required", goerr.V("action", action.String()))
	}

	client, err := r.xray.NewClient()
	if err != nil {
		return err
	}

	cfg := model.Config{
		Credentials: r.xray.Credentials(),
		ProjectKey:  r.xray.ProjectKey,
		FeaturesDir: r.workspace.FeaturesDir,
		ResultsDir:  r.workspace.ResultsDir,
	}

	opts := []usecase.Option{
		usecase.WithOutput(r.out),
		usecase.WithErrorOutput(r.errOut),
	}
	dispatcher := usecase.NewDispatcher(
		usecase.NewScenario(client, cfg, opts...),
		usecase.NewResult(client, cfg, opts...),
	)

	return dispatcher.Run(ctx, action, scenario)
}
