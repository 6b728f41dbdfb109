package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wrenth/icalq/pkg/icalq/tztable"
)

// config holds CLI defaults plus user-supplied timezone rules that are
// merged over the builtin table at startup.
type config struct {
	// Namespace is the suffix of auto-generated event identifiers.
	Namespace string `yaml:"namespace"`
	// Zone is the default zone for generate when --tz is not passed.
	Zone string `yaml:"zone"`
	// Zones are extra rule-table entries; same shape as the builtins.
	Zones []tztable.Rule `yaml:"zones"`
}

// getConfigPath expands a leading ~ in the config flag.
func getConfigPath(configFlag string) (string, error) {
	if configFlag == "" {
		configFlag = "~/.config/icalq/config.yaml"
	}

	if configFlag[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "cannot determine home directory")
		}
		configFlag = filepath.Join(home, configFlag[1:])
	}

	return configFlag, nil
}

// loadConfig reads the YAML config file. A missing file is not an
// error; it yields the zero config.
func loadConfig(path string) (config, error) {
	path, err := getConfigPath(path)
	if err != nil {
		return config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, errors.Wrapf(err, "reading config %s", path)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, errors.Wrapf(err, "unmarshalling config %s", path)
	}
	return cfg, nil
}
