package config

import "github.com/urfave/cli/v3"

// DefaultFeaturesDir is where feature files and result files live unless overridden
const DefaultFeaturesDir = "src/test/resources/features"

// Workspace holds local directory configuration
type Workspace struct {
	FeaturesDir string
	ResultsDir  string
}

// Flags returns CLI flags for workspace configuration
func (c *Workspace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "features-dir",
			Usage:       "Directory feature files are extracted into",
			Value:       DefaultFeaturesDir,
			Destination: &c.FeaturesDir,
			Sources:     cli.EnvVars("XRAY_FEATURES_DIR"),
		},
		&cli.StringFlag{
			Name:        "results-dir",
			Usage:       "Directory execution result files are read from",
			Value:       DefaultFeaturesDir,
			Destination: &c.ResultsDir,
			Sources:     cli.EnvVars("XRAY_RESULTS_DIR"),
		},
	}
}
