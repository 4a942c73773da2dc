package interfaces

import (
	"context"
	"io"

	"github.com/elangsegara/xray-sync/pkg/domain/model"
)

// XrayClient defines operations for interacting with the Xray API
type XrayClient interface {
	// Authenticate exchanges credentials for a bearer token
	Authenticate(ctx context.Context, creds model.Credentials) (model.Token, error)

	// ExportCucumber requests the feature archive for the given keys. The caller
	// must close the returned body.
	ExportCucumber(ctx context.Context, token model.Token, keys string) (io.ReadCloser, error)

	// ImportFeature uploads a result file into the project
	ImportFeature(ctx context.Context, token model.Token, projectKey string, file *model.ResultFile) (*model.ImportResponse, error)
}
