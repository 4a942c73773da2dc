package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/elangsegara/xray-sync/pkg/infra/xray/xraytest"
	"github.com/elangsegara/xray-sync/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestDispatcher_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("download routes scenario as tag", func(t *testing.T) {
		cfg := testConfig(t)
		archive := xraytest.BuildArchive(t, xraytest.Entry{Name: "A.feature", Body: "Feature: A"})
		mockClient := &MockXrayClient{exportCucumberFunc: exportReturning(archive)}

		d := usecase.NewDispatcher(
			usecase.NewScenario(mockClient, cfg, usecase.WithOutput(io.Discard)),
			usecase.NewResult(mockClient, cfg, usecase.WithOutput(io.Discard)),
		)

		gt.NoError(t, d.Run(ctx, model.ActionDownload, "ATI-988"))
		gt.A(t, mockClient.exportCalls).Length(1)
		gt.Value(t, mockClient.exportCalls[0].Keys).Equal("ATI-988")
		gt.A(t, mockClient.importCalls).Length(0)
	})

	t.Run("upload routes scenario as file name", func(t *testing.T) {
		cfg := testConfig(t)
		writeResultFile(t, cfg, "cucumber.json", "[]")
		mockClient := &MockXrayClient{
			importFeatureFunc: func(ctx context.Context, token model.Token, projectKey string, file *model.ResultFile) (*model.ImportResponse, error) {
				return &model.ImportResponse{}, nil
			},
		}

		d := usecase.NewDispatcher(
			usecase.NewScenario(mockClient, cfg, usecase.WithOutput(io.Discard)),
			usecase.NewResult(mockClient, cfg, usecase.WithOutput(io.Discard)),
		)

		gt.NoError(t, d.Run(ctx, model.ActionUpload, "cucumber.json"))
		gt.A(t, mockClient.importCalls).Length(1)
		gt.Value(t, mockClient.importCalls[0].File.Name).Equal("cucumber.json")
		gt.A(t, mockClient.exportCalls).Length(0)
	})

	t.Run("unknown action makes no calls", func(t *testing.T) {
		cfg := testConfig(t)
		mockClient := &MockXrayClient{}

		d := usecase.NewDispatcher(
			usecase.NewScenario(mockClient, cfg),
			usecase.NewResult(mockClient, cfg),
		)

		err := d.Run(ctx, model.Action(99), "anything")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidAction))
		mockClient.AssertNoCalls(t)
	})
}
