package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elangsegara/xray-sync/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestXray_NewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Xray
		wantErr bool
	}{
		{
			name: "complete",
			cfg:  config.Xray{URL: "https://xray.cloud.getxray.app/api/v2", ClientID: "id", ClientSecret: "secret"},
		},
		{
			name:    "missing URL",
			cfg:     config.Xray{ClientID: "id", ClientSecret: "secret"},
			wantErr: true,
		},
		{
			name:    "missing secret",
			cfg:     config.Xray{URL: "https://xray.cloud.getxray.app/api/v2", ClientID: "id"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := tt.cfg.NewClient()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, client).NotNil()
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		gt.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		gt.NoError(t, os.WriteFile(path, []byte("XRAY_SYNC_TEST_SET=from-file\nXRAY_SYNC_TEST_NEW=from-file\n"), 0644))

		t.Setenv("XRAY_SYNC_TEST_SET", "from-env")
		t.Setenv("XRAY_SYNC_TEST_NEW", "")
		os.Unsetenv("XRAY_SYNC_TEST_NEW")

		gt.NoError(t, config.LoadDotEnv(path))
		gt.Value(t, os.Getenv("XRAY_SYNC_TEST_SET")).Equal("from-env")
		gt.Value(t, os.Getenv("XRAY_SYNC_TEST_NEW")).Equal("from-file")
	})
}
