package config

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the viewer settings that can be stored next to the data
// instead of being passed as flags every run.
type Config struct {
	Addr          string `yaml:"addr"`
	DataDir       string `yaml:"data_dir"`
	Encoding      string `yaml:"encoding"`
	ShowWireframe bool   `yaml:"show_wireframe"`
}

func Default() Config {
	return Config{
		Addr:          ":8000",
		DataDir:       "Data",
		ShowWireframe: true,
	}
}

// LoadFile reads a yaml config. A missing file is not an error, the
// defaults are returned so the viewer can run without any setup.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "Failed to read config '%s'", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "Failed to unmarshal config '%s'", path)
	}

	if cfg.Encoding != "" {
		if err := SetEncoding(cfg.Encoding); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
