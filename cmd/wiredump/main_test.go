package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matrix889/ProceduralToolkit/internal/config"
	"github.com/matrix889/ProceduralToolkit/internal/export"
	"github.com/matrix889/ProceduralToolkit/internal/scene"
)

const testScene = `
name: test
shapes:
  - kind: cube
  - kind: circle
    plane: xz
    radius: 1
    depth_test: false
    duration: 5s
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0644); err != nil {
		t.Fatalf("writing scene: %v", err)
	}
	return path
}

func TestRunWritesOutput(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = writeScene(t)
	cfg.Output.Format = export.FormatOBJ
	cfg.Output.Path = filepath.Join(t.TempDir(), "out.obj")

	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "# 76 segments\n") {
		t.Errorf("unexpected header in:\n%.60s", out)
	}
	if !strings.Contains(out, "g depth\n") || !strings.Contains(out, "g overlay\n") {
		t.Error("output should carry both depth and overlay groups")
	}
}

func TestRunUnknownFormatLeavesNoFile(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = writeScene(t)
	cfg.Output.Format = "bogus"
	cfg.Output.Path = filepath.Join(t.TempDir(), "x.obj")

	err := run(cfg)
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Fatalf("run() error = %v, want ErrUnknownFormat", err)
	}
	if _, err := os.Stat(cfg.Output.Path); !os.IsNotExist(err) {
		t.Errorf("output file exists after a format error: %v", err)
	}
}

func TestRunNoScene(t *testing.T) {
	if err := run(config.Default()); err == nil {
		t.Error("expected error without a scene path")
	}
}

func TestDrawSceneAt(t *testing.T) {
	s, err := scene.Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Duration
		exported int
	}{
		{"everything", 0, 76},
		{"single frame lines gone", time.Second, 64},
		{"all expired", 5 * time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Output.At = tt.at
			lines, n := drawScene(s, cfg, start)
			if n != 76 {
				t.Errorf("drew %d segments, want 76", n)
			}
			if len(lines) != tt.exported {
				t.Errorf("exported %d lines, want %d", len(lines), tt.exported)
			}
		})
	}
}
