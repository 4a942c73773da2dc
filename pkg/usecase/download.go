package usecase

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elangsegara/xray-sync/pkg/domain/interfaces"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type scenarioUseCase struct {
	client interfaces.XrayClient
	cfg    model.Config
	output
}

// NewScenario creates a new instance of ScenarioUseCase
func NewScenario(client interfaces.XrayClient, cfg model.Config, opts ...Option) interfaces.ScenarioUseCase {
	return &scenarioUseCase{
		client: client,
		cfg:    cfg,
		output: newOutput(opts),
	}
}

// Download exports the scenarios matching tag and extracts them into the
// feature directory. Rejected exports, transport failures after
// authentication and extraction failures are reported and swallowed; the
// result is nil when nothing was downloaded.
func (uc *scenarioUseCase) Download(ctx context.Context, tag string) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	fmt.Fprintf(uc.out, "Downloading scenarios with tag %s\n", tag)
	logger.Info("Downloading scenarios", "tag", tag, "features_dir", uc.cfg.FeaturesDir)

	if err := os.MkdirAll(uc.cfg.FeaturesDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create feature directory", goerr.V("dir", uc.cfg.FeaturesDir))
	}

	token, err := uc.client.Authenticate(ctx, uc.cfg.Credentials)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate to Xray")
	}

	body, err := uc.client.ExportCucumber(ctx, token, tag)
	if err != nil {
		var respErr *model.ResponseError
		if errors.As(err, &respErr) {
			color.New(color.FgRed).Fprintf(uc.out, "Download failed: %d\n", respErr.StatusCode)
			logger.Warn("Export rejected", "tag", tag, "status", respErr.StatusCode, "body", respErr.Body)
			return nil, nil
		}

		fmt.Fprintln(uc.errOut, err.Error())
		logger.Error("Failed to export scenarios", "error", err, "tag", tag)
		return nil, nil
	}
	defer body.Close()

	archivePath := filepath.Join(uc.cfg.FeaturesDir, tag+".zip")
	absPath, err := filepath.Abs(archivePath)
	if err != nil {
		absPath = archivePath
	}

	written, err := writeArchive(body, archivePath)
	if err != nil {
		removeArchive(ctx, archivePath)
		fmt.Fprintln(uc.errOut, err.Error())
		logger.Error("Failed to save archive", "error", err, "path", absPath)
		return nil, nil
	}

	logger.Debug("Saved archive", "path", absPath, "size_bytes", written)

	result := &model.DownloadResult{
		Tag:         tag,
		ArchivePath: absPath,
	}

	files, size, err := uc.extractArchive(ctx, archivePath)
	result.Files = files
	result.Size = size
	if err != nil {
		fmt.Fprintln(uc.errOut, err.Error())
		logger.Error("Failed to extract archive",
			"error", err,
			"path", absPath,
			"extracted", len(files),
		)
	}

	removeArchive(ctx, archivePath)

	color.New(color.FgGreen).Fprintf(uc.out, "File downloaded successfully: %s\n", absPath)
	logger.Info("Extracted feature files",
		"tag", tag,
		"file_count", len(result.Files),
		"total_size_bytes", result.Size,
	)

	return result, nil
}

// writeArchive streams r into a new file at path
func writeArchive(r io.Reader, path string) (int64, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create archive file", goerr.V("path", path))
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return n, goerr.Wrap(err, "failed to write archive file", goerr.V("path", path))
	}

	if err := f.Close(); err != nil {
		return n, goerr.Wrap(err, "failed to close archive file", goerr.V("path", path))
	}

	return n, nil
}

// removeArchive deletes the archive; a missing file is not an error
func removeArchive(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		ctxlog.From(ctx).Warn("Failed to remove archive", "error", err, "path", path)
	}
}

// extractArchive extracts every entry of the archive into the feature
// directory. Entries extracted before a failure stay in place.
func (uc *scenarioUseCase) extractArchive(ctx context.Context, archivePath string) ([]string, int64, error) {
	logger := ctxlog.From(ctx)

	// Non-local entry names are rejected per entry by extractFile
	zipReader, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, 0, goerr.Wrap(err, "failed to open archive", goerr.V("path", archivePath))
	}
	defer zipReader.Close()

	var extractedFiles []string
	var totalSize int64

	for _, file := range zipReader.File {
		if err := extractFile(file, uc.cfg.FeaturesDir); err != nil {
			return extractedFiles, totalSize, goerr.Wrap(err, "failed to extract file", goerr.V("name", file.Name))
		}

		if !file.FileInfo().IsDir() {
			extractedFiles = append(extractedFiles, file.Name)
			totalSize += int64(file.UncompressedSize64)
			logger.Debug("Extracted feature file", "name", file.Name)
		}
	}

	return extractedFiles, totalSize, nil
}

// extractFile extracts a single file from the archive to the destination directory
func extractFile(file *zip.File, destDir string) error {
	// Security check: prevent path traversal attacks
	if !filepath.IsLocal(file.Name) {
		return goerr.New("invalid file path detected", goerr.V("file", file.Name), goerr.V("dest", destDir))
	}
	destPath := filepath.Join(destDir, file.Name)

	if file.FileInfo().IsDir() {
		// "./" entries resolve to destDir itself
		return os.MkdirAll(destPath, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open file in archive", goerr.V("file", file.Name))
	}
	defer rc.Close()

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}

	if _, err := io.Copy(destFile, rc); err != nil {
		_ = destFile.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", destPath))
	}

	if err := destFile.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("path", destPath))
	}

	return nil
}
