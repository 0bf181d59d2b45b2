package main

import (
	"os"

	"github.com/pkg/errors"

	"exgain"
	"exgain/bridge"
	"exgain/host"
	"exgain/util"
)

const cfgMode = 0o644

// Config is the on-disk layout of exgain.yaml.
type Config struct {
	Bridge  bridge.Config `yaml:"bridge"`
	Panel   exgain.Config `yaml:"panel"`
	Host    host.Config   `yaml:"host"`
	Log     LogConfig     `yaml:"log"`
	Journal string        `yaml:"journal"`
}

type LogConfig struct {
	Path string `yaml:"path"`
}

func defaultConfig() Config {
	return Config{
		Bridge: bridge.DefaultConfig(),
		Panel:  exgain.DefaultConfig(),
		Host:   host.DefaultConfig(),
		Log:    LogConfig{Path: "exgain.log"},
	}
}

// loadConfig reads path over the defaults, writing a sample first if needed.
func loadConfig(path string) (cfg Config, err error) {

	cfg = defaultConfig()

	_, err = util.SampleConfig(cfg, path, cfgMode)
	if err != nil {
		err = errors.Wrapf(err, "failed to write sample config")
		return
	}

	err = util.LoadConfig(&cfg, path)
	return
}

func exists(path string) bool {

	_, err := os.Stat(path)
	return err == nil
}
