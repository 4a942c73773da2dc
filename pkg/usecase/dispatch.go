package usecase

import (
	"context"

	"github.com/elangsegara/xray-sync/pkg/domain/interfaces"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatcher routes an action to the scenario or result use case
type Dispatcher struct {
	scenario interfaces.ScenarioUseCase
	result   interfaces.ResultUseCase
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(scenario interfaces.ScenarioUseCase, result interfaces.ResultUseCase) *Dispatcher {
	return &Dispatcher{
		scenario: scenario,
		result:   result,
	}
}

// Run executes action with scenario as the tag (download) or the result file name (upload)
func (d *Dispatcher) Run(ctx context.Context, action model.Action, scenario string) error {
	ctxlog.From(ctx).Debug("Dispatching action", "action", action.String(), "scenario", scenario)

	switch action {
	case model.ActionDownload:
		_, err := d.scenario.Download(ctx, scenario)
		return err
	case model.ActionUpload:
		_, err := d.result.Upload(ctx, scenario)
		return err
	default:
		return goerr.Wrap(model.ErrInvalidAction, "cannot dispatch action", goerr.V("action", int(action)))
	}
}
