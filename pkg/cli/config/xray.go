package config

import (
	"github.com/elangsegara/xray-sync/pkg/domain/interfaces"
	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/elangsegara/xray-sync/pkg/infra/xray"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Xray holds Xray API configuration
type Xray struct {
	URL          string
	ClientID     string
	ClientSecret string
	ProjectKey   string
}

// Flags returns CLI flags for Xray configuration
func (c *Xray) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "xray-url",
			Usage:       "Base URL of the Xray API (e.g. https://xray.cloud.getxray.app/api/v2)",
			Destination: &c.URL,
			Sources:     cli.EnvVars("XRAY_URL"),
		},
		&cli.StringFlag{
			Name:        "xray-client-id",
			Usage:       "Xray API client ID",
			Destination: &c.ClientID,
			Sources:     cli.EnvVars("XRAY_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:        "xray-client-secret",
			Usage:       "Xray API client secret",
			Destination: &c.ClientSecret,
			Sources:     cli.EnvVars("XRAY_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "xray-project-key",
			Usage:       "Jira project key results are imported into (upload only)",
			Destination: &c.ProjectKey,
			Sources:     cli.EnvVars("XRAY_PROJECT_KEY"),
		},
	}
}

// Credentials returns the configured client id/secret pair
func (c *Xray) Credentials() model.Credentials {
	return model.Credentials{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
	}
}

// NewClient validates the configuration and creates an Xray client
func (c *Xray) NewClient() (interfaces.XrayClient, error) {
	if c.URL == "" {
		return nil, goerr.New("xray URL is required (--xray-url or XRAY_URL)")
	}
	if err := c.Credentials().Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid xray credentials (XRAY_CLIENT_ID, XRAY_CLIENT_SECRET)")
	}

	client, err := xray.NewClient(c.URL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create xray client")
	}
	return client, nil
}
