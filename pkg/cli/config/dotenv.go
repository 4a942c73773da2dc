package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
