// Package main is the entry point for wiredump, which draws a scene of
// wireframe shapes and writes the resulting line segments.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/matrix889/ProceduralToolkit/internal/config"
	"github.com/matrix889/ProceduralToolkit/internal/debug"
	"github.com/matrix889/ProceduralToolkit/internal/export"
	"github.com/matrix889/ProceduralToolkit/internal/logger"
	"github.com/matrix889/ProceduralToolkit/internal/scene"
	"github.com/matrix889/ProceduralToolkit/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("wiredump failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) (err error) {
	if cfg.Scene.Path == "" {
		return errors.New("no scene given; use -scene or set scene.path")
	}
	if err := export.CheckFormat(cfg.Output.Format); err != nil {
		return err
	}

	s, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.String("name", s.Name),
		zap.Int("shapes", len(s.Shapes)))

	lines, n := drawScene(s, cfg, time.Now())

	var w io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
		w = f
	}

	if err := export.Write(w, cfg.Output.Format, lines); err != nil {
		return fmt.Errorf("writing %s output: %w", cfg.Output.Format, err)
	}

	logger.Info("scene drawn",
		zap.String("scene", s.Name),
		zap.Int("segments", n),
		zap.Int("exported", len(lines)),
		zap.String("format", cfg.Output.Format))
	return nil
}

// drawScene draws s at time start with the configured default style and
// returns the lines alive at cfg.Output.At along with the number drawn.
func drawScene(s *scene.Scene, cfg *config.Config, start time.Time) ([]debug.Line, int) {
	buf := debug.NewBufferWithClock(func() time.Time { return start })
	def := scene.Style{
		Color:     math.ColorFromArray(cfg.Debug.Color),
		Duration:  cfg.Debug.Duration,
		DepthTest: cfg.Debug.DepthTest,
	}
	n := s.Draw(buf.DrawLine, def)
	logger.Debug("scene buffered",
		zap.Int("lines", buf.Len()),
		zap.Duration("at", cfg.Output.At))
	return buf.Snapshot(cfg.Output.At), n
}
