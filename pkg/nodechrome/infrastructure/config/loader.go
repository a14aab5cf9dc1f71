package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/ngeor/node-chrome/tools/pkg/nodechrome/application/model"
)

const (
	UsernameEnv   = "DOCKER_USERNAME"
	PasswordEnv   = "DOCKER_PASSWORD"
	ExecutableEnv = "DOCKER_EXECUTABLE"
)

type Config struct {
	Credentials model.Credentials
	Executable  string
}

// Load reads the environment once, after merging the optional env file.
// Variables already set in the process take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "failed to load env file %v", envFile)
		}
	}
	return Config{
		Credentials: model.Credentials{
			Username: os.Getenv(UsernameEnv),
			Password: os.Getenv(PasswordEnv),
		},
		Executable: os.Getenv(ExecutableEnv),
	}, nil
}
