package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Task is the action/scenario pair read from a task file
type Task struct {
	Action   string `toml:"action"`
	Scenario string `toml:"scenario"`
}

// TaskFile holds the path of an optional TOML task file:
//
//	[xray]
//	action = "download"
//	scenario = "ATI-988"
type TaskFile struct {
	Path string
}

// Flags returns CLI flags for the task file
func (c *TaskFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with an [xray] table holding action and scenario",
			Destination: &c.Path,
			Sources:     cli.EnvVars("XRAY_CONFIG"),
		},
	}
}

// Load reads the task file. An empty Task is returned when no path is set.
func (c *TaskFile) Load() (*Task, error) {
	if c.Path == "" {
		return &Task{}, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read task file", goerr.V("path", c.Path))
	}

	var file struct {
		Xray Task `toml:"xray"`
	}
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse task file", goerr.V("path", c.Path))
	}

	return &file.Xray, nil
}
