// Command cubeupdate drives a cube map atlas with random sized region
// requests, evicting the oldest regions whenever the atlas is full, and
// reports how often requests were satisfied.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rectpack"
	"github.com/gogpu/rectpack/cubemap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "cubeupdate:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cubeupdate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := defaultConfig()
	var (
		configPath   = fs.String("config", "", "TOML config file")
		faces        = fs.Int("faces", def.Faces, "number of faces")
		side         = fs.Int("side", def.Side, "face width and height")
		maxNodes     = fs.Int("max-nodes", def.MaxNodes, "tree node budget per face")
		order        = fs.String("order", def.Order, "face order: ascending or round-robin")
		frames       = fs.Int("frames", def.Frames, "number of update steps")
		seed         = fs.Uint64("seed", def.Seed, "random seed")
		policy       = fs.String("policy", def.Policy, "eviction policy: fifo or lru")
		batch        = fs.Int("evict", def.Evict, "handles evicted per miss")
		retry        = fs.Bool("retry", def.Retry, "retry once after evicting")
		snapshot     = fs.String("snapshot", "", "write a PNG of the faces to this file")
		snapshotSize = fs.Int("snapshot-size", 256, "face size in the snapshot")
		verbose      = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	rectpack.SetLogger(logger)

	cfg := def
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
		logger.Info("config loaded", "path", *configPath)
	}
	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "faces":
			cfg.Faces = *faces
		case "side":
			cfg.Side = *side
		case "max-nodes":
			cfg.MaxNodes = *maxNodes
		case "order":
			cfg.Order = *order
		case "frames":
			cfg.Frames = *frames
		case "seed":
			cfg.Seed = *seed
		case "policy":
			cfg.Policy = *policy
		case "evict":
			cfg.Evict = *batch
		case "retry":
			cfg.Retry = *retry
		}
	})

	var preview *cubemap.Preview
	if *snapshot != "" {
		preview = cubemap.NewPreview(cfg.Faces, cfg.Side, color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
	}

	res, err := simulate(cfg, preview)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "hit: %d, miss %d\n", res.Hits, res.Misses)
	p.Fprintf(stdout, "evicted: %d, live: %d, utilization: %.1f%%\n",
		res.Evictions, res.Live, res.Utilization*100)
	logger.Info("run complete", "frames", cfg.Frames, "faces", cfg.Faces, "side", cfg.Side, "policy", cfg.Policy)

	if preview != nil {
		if err := writePNG(*snapshot, preview, *snapshotSize); err != nil {
			return err
		}
		logger.Info("snapshot saved", "path", *snapshot)
	}
	return nil
}

func writePNG(path string, preview *cubemap.Preview, faceSide int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, preview.Snapshot(faceSide)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
