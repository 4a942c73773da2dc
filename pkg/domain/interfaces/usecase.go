package interfaces

import (
	"context"

	"github.com/elangsegara/xray-sync/pkg/domain/model"
)

// ScenarioUseCase defines operations for pulling scenarios from Xray
type ScenarioUseCase interface {
	// Download exports scenarios matching tag and extracts them into the feature directory
	Download(ctx context.Context, tag string) (*model.DownloadResult, error)
}

// ResultUseCase defines operations for pushing execution results to Xray
type ResultUseCase interface {
	// Upload imports the named result file and reports the affected tests
	Upload(ctx context.Context, filename string) (*model.ImportResponse, error)
}
