package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	nt "exgain/entity"
)

func TestLoadConfigWritesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exgain.yaml")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists(path) {
		t.Fatal("expected sample config on disk")
	}
	if cfg.Panel.Width != 400 || cfg.Host.Width != 200 {
		t.Errorf("unexpected defaults %#v", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exgain.yaml")
	data := "bridge:\n  transport: unix\n  path: /tmp/other.sock\npanel:\n  width: 640\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Bridge.Transport != "unix" || cfg.Bridge.Path != "/tmp/other.sock" {
		t.Errorf("bridge = %#v", cfg.Bridge)
	}
	if cfg.Panel.Width != 640 || cfg.Panel.Height != 400 {
		t.Errorf("panel = %#v", cfg.Panel)
	}
}

func TestValidDim(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"100", true},
		{"400", true},
		{"99", false},
		{"wide", false},
		{"", false},
	}

	for _, tt := range tests {
		err := validDim(tt.in)
		if (err == nil) != tt.valid {
			t.Errorf("validDim(%q) = %v, want valid=%v", tt.in, err, tt.valid)
		}
	}
}

func TestPrintChanges(t *testing.T) {
	var buf bytes.Buffer
	printChanges(&buf, nil)
	if !strings.Contains(buf.String(), "no changes") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	printChanges(&buf, []nt.Change{{
		Session:    "abc",
		Param:      "gain",
		Normalized: 0.5,
		Text:       "0.00 dB",
		At:         time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}})

	line := buf.String()
	for _, want := range []string{"2025-01-02 03:04:05", "gain", "0.00 dB", "0.5000", "abc"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}
