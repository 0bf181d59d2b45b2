// Package util loads config files and sets up logging for the commands.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, falling back to discard.
// The panel owns the terminal, so it logs here rather than to stdout.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	if path == "" {
		return io.Discard
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err == nil {
		file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok && actually != os.Stdout && actually != os.Stderr {
		actually.Close()
	}
}

// NewLogger returns a structured logger writing to writer.
func NewLogger(writer io.Writer) *sabot.Sabot {

	cfg := &sabot.Config{MaxLen: maxLogLen}
	lgr := cfg.New(writer)
	lgr.AltWriter = os.Stderr
	return lgr
}

const maxLogLen = 999

// LoadConfig unmarshals the yaml at path over cfg, keeping defaults for absent keys.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

func WriteConfig(cfg any, path string, mode os.FileMode) (err error) {

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// SampleConfig writes cfg to path unless a file is already there.
func SampleConfig(cfg any, path string, mode os.FileMode) (wrote bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}

	err = WriteConfig(cfg, path, mode)
	wrote = err == nil
	return
}
