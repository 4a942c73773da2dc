package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/elangsegara/xray-sync/pkg/domain/interfaces"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/elangsegara/xray-sync/pkg/infra/xray"
	"github.com/m-mizutani/gt"
)

// MockXrayClient is a mock implementation of XrayClient
type MockXrayClient struct {
	authenticateFunc   func(ctx context.Context, creds model.Credentials) (model.Token, error)
	exportCucumberFunc func(ctx context.Context, token model.Token, keys string) (io.ReadCloser, error)
	importFeatureFunc  func(ctx context.Context, token model.Token, projectKey string, file *model.ResultFile) (*model.ImportResponse, error)

	authCalls   []model.Credentials
	exportCalls []MockExportCall
	importCalls []MockImportCall
}

type MockExportCall struct {
	Token model.Token
	Keys  string
}

type MockImportCall struct {
	Token      model.Token
	ProjectKey string
	File       *model.ResultFile
}

func (m *MockXrayClient) Authenticate(ctx context.Context, creds model.Credentials) (model.Token, error) {
	m.authCalls = append(m.authCalls, creds)
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, creds)
	}
	return "mock-token", nil
}

func (m *MockXrayClient) ExportCucumber(ctx context.Context, token model.Token, keys string) (io.ReadCloser, error) {
	m.exportCalls = append(m.exportCalls, MockExportCall{Token: token, Keys: keys})
	if m.exportCucumberFunc != nil {
		return m.exportCucumberFunc(ctx, token, keys)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockXrayClient) ImportFeature(ctx context.Context, token model.Token, projectKey string, file *model.ResultFile) (*model.ImportResponse, error) {
	m.importCalls = append(m.importCalls, MockImportCall{Token: token, ProjectKey: projectKey, File: file})
	if m.importFeatureFunc != nil {
		return m.importFeatureFunc(ctx, token, projectKey, file)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockXrayClient) AssertNoCalls(t *testing.T) {
	t.Helper()
	gt.A(t, m.authCalls).Length(0)
	gt.A(t, m.exportCalls).Length(0)
	gt.A(t, m.importCalls).Length(0)
}

func exportReturning(data []byte) func(context.Context, model.Token, string) (io.ReadCloser, error) {
	return func(context.Context, model.Token, string) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

func testConfig(t *testing.T) model.Config {
	dir := t.TempDir()
	return model.Config{
		Credentials: model.Credentials{ClientID: "id", ClientSecret: "secret"},
		ProjectKey:  "ATI",
		FeaturesDir: dir,
		ResultsDir:  dir,
	}
}

func newXrayClient(t *testing.T, baseURL string) interfaces.XrayClient {
	t.Helper()
	client, err := xray.NewClient(baseURL)
	gt.NoError(t, err)
	return client
}
