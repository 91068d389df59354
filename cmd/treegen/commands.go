package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/arbor/internal/config"
	"github.com/Faultbox/arbor/internal/logger"
	"github.com/Faultbox/arbor/pkg/formats"
	"github.com/Faultbox/arbor/pkg/tree"
	"github.com/Faultbox/arbor/pkg/treemesh"
)

func cmdPresets() {
	fmt.Printf("%-8s %8s %8s %8s %8s %8s  %s\n", "NAME", "DIV1", "DIV2", "BRANCH", "ELONG", "THICK", "DESCRIPTION")
	for _, p := range tree.Presets() {
		fmt.Printf("%-8s %8.2f %8.2f %8.2f %8.3f %8.3f  %s\n",
			p.Name,
			p.Params.DivergenceAngle1,
			p.Params.DivergenceAngle2,
			p.Params.BranchingAngle,
			p.Params.ElongationRate,
			p.Params.ThickeningRate,
			p.Description)
	}
}

// cmdInit writes the effective config to the user config directory.
// An existing file is left alone.
func cmdInit(cfg *config.Config) error {
	path := config.UserConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", path))
	return nil
}

// generate validates the config and builds the mesh, logging timings.
func generate(cfg *config.Config) (*tree.Tree, *treemesh.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	t, err := tree.New(cfg.Tree.Params)
	if err != nil {
		return nil, nil, err
	}
	grown := time.Since(start)

	mesh, err := t.Mesh()
	if err != nil {
		return nil, nil, err
	}

	logger.Info("tree generated",
		zap.String("preset", cfg.Tree.Preset),
		zap.Int("nodes", t.Skeleton().Count()),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("skeleton", grown),
		zap.Duration("total", time.Since(start)),
	)
	return t, mesh, nil
}

func cmdBuild(cfg *config.Config) error {
	_, mesh, err := generate(cfg)
	if err != nil {
		return err
	}
	return export(cfg, mesh)
}

func export(cfg *config.Config, mesh *treemesh.Mesh) error {
	buffers := mesh.Buffers()
	p := cfg.Tree.Params

	opts := formats.OBJOptions{
		ObjectName: cfg.ObjectName(),
		Comments: []string{
			"generated by treegen",
			fmt.Sprintf("divergence %g/%g branching %g elongation %g thickening %g",
				p.DivergenceAngle1, p.DivergenceAngle2, p.BranchingAngle, p.ElongationRate, p.ThickeningRate),
			fmt.Sprintf("length %g radius %g iterations %d segments %d",
				p.BaseLength, p.BaseRadius, p.MaxIterations, p.RadialSegments),
		},
	}
	if err := formats.SaveOBJ(cfg.Output.Path, buffers, opts); err != nil {
		return err
	}

	logger.Info("mesh exported",
		zap.String("path", cfg.Output.Path),
		zap.Int("vertices", buffers.VertexCount()),
		zap.Int("triangles", buffers.TriangleCount()),
	)
	return nil
}

func cmdStats(cfg *config.Config) error {
	t, mesh, err := generate(cfg)
	if err != nil {
		return err
	}

	depth := 0
	for n := range t.Skeleton().PreOrder() {
		depth = max(depth, n.Depth())
	}
	b := mesh.Bounds()
	size := b.Size()

	fmt.Printf("Preset:     %s\n", cfg.Tree.Preset)
	fmt.Printf("Nodes:      %d (depth %d)\n", t.Skeleton().Count(), depth)
	fmt.Printf("Vertices:   %d ring, %d welded\n", mesh.VertexCount(), mesh.Buffers().VertexCount())
	fmt.Printf("Triangles:  %d\n", mesh.TriangleCount())
	fmt.Printf("Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	fmt.Printf("Size:       %.3f x %.3f x %.3f\n", size[0], size[1], size[2])
	return nil
}

// cmdWatch rebuilds whenever the config file is written. The parent
// directory is watched because editors often replace files by renaming.
func cmdWatch(cfg *config.Config) error {
	path := config.ConfigPath()
	if path == "" {
		return fmt.Errorf("watch needs -config")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rebuild(cfg)
	logger.Info("watching config", zap.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("config changed", zap.String("op", event.Op.String()))

			next, err := config.Load()
			if err != nil {
				logger.Warn("config reload failed", zap.Error(err))
				continue
			}
			rebuild(next)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// rebuild generates and exports, logging failures instead of stopping.
func rebuild(cfg *config.Config) {
	_, mesh, err := generate(cfg)
	if err != nil {
		logger.Warn("generation failed", zap.Error(err))
		return
	}
	if err := export(cfg, mesh); err != nil {
		logger.Warn("export failed", zap.Error(err))
	}
}
