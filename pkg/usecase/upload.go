package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elangsegara/xray-sync/pkg/domain/interfaces"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type resultUseCase struct {
	client interfaces.XrayClient
	cfg    model.Config
	output
}

// NewResult creates a new instance of ResultUseCase
func NewResult(client interfaces.XrayClient, cfg model.Config, opts ...Option) interfaces.ResultUseCase {
	return &resultUseCase{
		client: client,
		cfg:    cfg,
		output: newOutput(opts),
	}
}

// Upload imports the execution result file named filename from the results
// directory. Every failure is returned to the caller.
func (uc *resultUseCase) Upload(ctx context.Context, filename string) (*model.ImportResponse, error) {
	logger := ctxlog.From(ctx)

	fmt.Fprintf(uc.out, "Uploading scenarios from file %s\n", filename)

	if uc.cfg.ProjectKey == "" {
		return nil, goerr.New("project key is required for upload")
	}

	path := filepath.Join(uc.cfg.ResultsDir, filename)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read result file", goerr.V("path", path))
	}

	logger.Info("Uploading execution results",
		"path", path,
		"size_bytes", len(content),
		"project_key", uc.cfg.ProjectKey,
	)

	token, err := uc.client.Authenticate(ctx, uc.cfg.Credentials)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate to Xray")
	}

	resp, err := uc.client.ImportFeature(ctx, token, uc.cfg.ProjectKey, &model.ResultFile{
		Name:    filename,
		Content: content,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload result file", goerr.V("file", filename))
	}

	color.New(color.FgGreen).Fprintln(uc.out, "Successfully updated or created the following tests:")
	for _, test := range resp.UpdatedOrCreatedTests {
		fmt.Fprintf(uc.out, "- %s\n", test.Key)
	}

	for _, precondition := range resp.UpdatedOrCreatedPreconditions {
		logger.Info("Updated or created precondition", "key", precondition.Key)
	}
	for _, msg := range resp.Errors {
		logger.Warn("Xray reported an import error", "message", msg)
	}

	logger.Info("Uploaded execution results",
		"file", filename,
		"test_count", len(resp.UpdatedOrCreatedTests),
		"error_count", len(resp.Errors),
	)

	return resp, nil
}
