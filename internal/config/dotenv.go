package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

func dotEnvPath() string {
	if p, ok := os.LookupEnv("DOTENV"); ok && p != "" {
		return p
	}
	return defaultDotEnvPath
}

// parseDotEnv reads variables from a .env file without exporting them into
// the process environment. A missing file yields (nil, nil).
func parseDotEnv(path string) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading dotenv file %s: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err := parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, nil
}
