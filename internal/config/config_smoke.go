package config

import (
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// SmokeConfig is the configuration of the post-deploy smoke checker. It only
// needs to know where the server lives and how long to wait for it.
type SmokeConfig struct {
	// Adapter contains the target server URL and request timeout.
	Adapter Adapter
}

// GetSmokeConfig builds and validates the smoke checker configuration from
// the ADAPTER_* environment variables and the -server-url /
// -request-timeout flags, flags winning over environment.
func GetSmokeConfig() (*SmokeConfig, error) {
	return getSmokeConfig(os.Args[1:])
}

func getSmokeConfig(args []string) (*SmokeConfig, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseSmokeFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := &SmokeConfig{Adapter: defaultConfig().Adapter}
	for _, src := range []*SmokeConfig{{Adapter: envCfg.Adapter}, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseSmokeFlags(args []string) (*SmokeConfig, error) {
	fs := flag.NewFlagSet("trackflow-smoke", flag.ContinueOnError)

	cfg := &SmokeConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server-url", "", "Base URL of the server under test")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Per-request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
