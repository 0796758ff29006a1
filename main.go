package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// displayGamma is the transfer function applied when encoding the image
const displayGamma = 2.0

// Config contains everything the command line controls
type Config struct {
	Scene       string
	Width       int
	AspectRatio float64
	Samples     int // 0 = scene default
	MaxDepth    int // 0 = scene default
	Workers     int // 0 = physical core count
	RowsPerBand int
	Seed        int64
	Background  string
	Texture     string
	Output      string // Empty = output/<scene>/render_<timestamp>.png
	LogLevel    slog.Level
	List        bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))

	if config.List {
		printScenes(os.Stdout)
		return
	}

	if err := run(config, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line into a Config
func parseFlags(args []string, output io.Writer) (Config, error) {
	var config Config
	var logLevel string

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&config.Scene, "scene", "simple", "Scene name (see -list)")
	fs.IntVar(&config.Width, "width", 400, "Image width in pixels")
	fs.Float64Var(&config.AspectRatio, "aspect", scene.DefaultAspectRatio, "Aspect ratio (width / height)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel, each tracing a 2x2 grid (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = physical cores)")
	fs.IntVar(&config.RowsPerBand, "rows-per-band", 1, "Image rows per worker task")
	fs.Int64Var(&config.Seed, "seed", 42, "Random seed for sampling and scene layout")
	fs.StringVar(&config.Background, "background", "scene", "Miss color: 'scene', 'gradient' or 'uniform'")
	fs.StringVar(&config.Texture, "texture", "", "Image file for the textured scene")
	fs.StringVar(&config.Output, "output", "", "Output file (.png, .jpg, .bmp, .tif, .ppm)")
	fs.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.BoolVar(&config.List, "list", false, "List available scenes and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := config.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid -log-level: %w", err)
	}
	if config.Width <= 0 {
		return Config{}, fmt.Errorf("invalid -width %d: must be positive", config.Width)
	}
	if config.AspectRatio <= 0 {
		return Config{}, fmt.Errorf("invalid -aspect %g: must be positive", config.AspectRatio)
	}
	if config.Samples < 0 || config.MaxDepth < 0 {
		return Config{}, fmt.Errorf("-samples and -depth must not be negative")
	}
	if _, err := selectBackground(config.Background, nil); err != nil {
		return Config{}, err
	}

	return config, nil
}

// run builds and preprocesses the scene, renders it and saves the image
func run(config Config, logger *slog.Logger) error {
	s, err := scene.CreateScene(config.Scene, scene.Options{
		AspectRatio: config.AspectRatio,
		Texture:     config.Texture,
		Seed:        config.Seed,
	})
	if err != nil {
		return err
	}

	// Construction finishes before any rendering starts
	if err := s.Preprocess(); err != nil {
		return err
	}
	bvhStats := s.BVH.Stats()
	logger.Info("scene ready", "scene", config.Scene,
		"primitives", s.GetPrimitiveCount(),
		"bvhNodes", bvhStats.TotalNodes, "bvhDepth", bvhStats.MaxDepth)

	background, err := selectBackground(config.Background, s.Background)
	if err != nil {
		return err
	}

	samples := s.SamplingConfig.SamplesPerPixel
	if config.Samples > 0 {
		samples = config.Samples
	}
	maxDepth := s.SamplingConfig.MaxDepth
	if config.MaxDepth > 0 {
		maxDepth = config.MaxDepth
	}

	renderConfig := renderer.RenderConfig{
		Width:           config.Width,
		Height:          max(1, int(float64(config.Width)/config.AspectRatio)),
		SamplesPerPixel: samples,
		RowsPerBand:     config.RowsPerBand,
		NumWorkers:      config.Workers,
		Seed:            config.Seed,
	}

	pathTracer := integrator.NewPathTracingIntegrator(maxDepth, background)
	buffer, stats, err := renderer.NewRaytracer(s, pathTracer, renderConfig, logger).Render()
	if err != nil {
		return err
	}
	logger.Info("render stats", "summary", stats.String())

	filename := config.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", config.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := loaders.SaveImage(filename, buffer, displayGamma); err != nil {
		return err
	}
	logger.Info("render saved", "file", filename)
	return nil
}

// selectBackground resolves the -background flag against the scene's own background
func selectBackground(name string, sceneBackground integrator.Background) (integrator.Background, error) {
	switch strings.ToLower(name) {
	case "scene":
		return sceneBackground, nil
	case "gradient":
		return integrator.NewSkyBackground(), nil
	case "uniform":
		return integrator.NewUniformBackground(scene.MatteBackground), nil
	default:
		return nil, fmt.Errorf("invalid -background %q: want scene, gradient or uniform", name)
	}
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-10s %s\n", info.ID, info.Description)
	}
}
