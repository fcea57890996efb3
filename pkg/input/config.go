package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/rmohr/ufelim/pkg/api/ufelim"
	"github.com/rmohr/ufelim/pkg/fresh"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

const ConfigFile = "ufelim/config.yaml"

func DefaultConfig() *ufelim.Config {
	return &ufelim.Config{
		LogLevel:    logrus.InfoLevel.String(),
		FreshPrefix: fresh.DefaultPrefix,
	}
}

// LoadConfig reads the config at path. With an empty path the file is
// looked up in the XDG config directories, and defaults apply when none
// exists.
func LoadConfig(path string) (*ufelim.Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(ConfigFile)
		if err != nil {
			logrus.Debugf("No %s found, using defaults.", ConfigFile)
			return DefaultConfig(), nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*ufelim.Config, error) {
	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level in config: %v", err)
	}
	if config.FreshPrefix == "" {
		return nil, fmt.Errorf("fresh name prefix must not be empty")
	}
	return config, nil
}
