// Command animtexdemo exercises the animtex adapter against a software
// host: it builds (or fetches) a flipbook asset, pumps a number of frames
// through the adapter, and saves the final display surface as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/animtex"
	"github.com/gogpu/animtex/engine/flipbook"
)

// demoConfig mirrors the command-line flags for YAML-file configuration.
type demoConfig struct {
	Source           string  `yaml:"source"`
	LogicalSize      float64 `yaml:"logical_size"`
	DevicePixelScale float64 `yaml:"device_pixel_scale"`
	Autoplay         *bool   `yaml:"autoplay"`
	Frames           int     `yaml:"frames"`
	Output           string  `yaml:"output"`
	Verbose          bool    `yaml:"verbose"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		LogicalSize:      256,
		DevicePixelScale: 1,
		Frames:           30,
		Output:           "animtex.png",
	}
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (flags override)")
		source     = flag.String("source", "", "asset URL; empty generates a demo asset")
		size       = flag.Float64("size", 0, "logical surface size")
		scale      = flag.Float64("scale", 0, "device pixel scale")
		frames     = flag.Int("frames", 0, "number of frames to pump")
		output     = flag.String("output", "", "output PNG file")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *size > 0 {
		cfg.LogicalSize = *size
	}
	if *scale > 0 {
		cfg.DevicePixelScale = *scale
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *verbose {
		cfg.Verbose = true
	}

	if cfg.Verbose {
		animtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func run(cfg demoConfig) error {
	host := newSoftwareHost(cfg.DevicePixelScale)

	opts := []animtex.Option{
		animtex.WithLogicalSize(cfg.LogicalSize),
	}
	if cfg.Autoplay != nil {
		opts = append(opts, animtex.WithAutoplay(*cfg.Autoplay))
	}

	src := cfg.Source
	if src == "" {
		// No URL given: serve a generated asset through an in-memory fetcher.
		asset, err := generateAsset()
		if err != nil {
			return fmt.Errorf("generating demo asset: %w", err)
		}
		src = "demo.flbk"
		opts = append(opts, animtex.WithFetcher(memoryFetcher{src: asset}))
	}

	a, err := animtex.New(host, flipbook.Engine{}, src, opts...)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Destroy()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("starting adapter: %w", err)
	}

	for i := 0; i < cfg.Frames; i++ {
		host.clock.Step(time.Second / 60)
	}

	tex := a.Texture().(*softwareTexture)
	if err := tex.surface.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}

	log.Printf("Pumped %d frames (%d uploads) into %s (%dx%d)",
		cfg.Frames, tex.uploads, cfg.Output, tex.surface.Width(), tex.surface.Height())
	return nil
}
