package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Raytracer renders a fully constructed scene into a pixel buffer
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     *slog.Logger
}

// NewRaytracer creates a new raytracer. The scene must not change while Render runs.
// A nil logger discards all output.
func NewRaytracer(scene Scene, integratorInst integrator.Integrator, config RenderConfig, logger *slog.Logger) *Raytracer {
	return &Raytracer{
		scene:      scene,
		integrator: integratorInst,
		config:     config,
		logger:     core.LoggerOrNop(logger),
	}
}

// Render traces every band on the worker pool and returns the finished image.
// If any band fails no partial image is returned.
func (rt *Raytracer) Render() (*PixelBuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	buffer := NewPixelBuffer(width, height)
	bands := NewBandGrid(height, rt.config.RowsPerBand, rt.config.Seed)
	bandRenderer := NewBandRenderer(rt.scene, rt.integrator, width, height, rt.config.SamplesPerPixel)

	pool := NewWorkerPool(bandRenderer, rt.config.NumWorkers, len(bands), rt.logger)
	rt.logger.Info("render started",
		"width", width, "height", height,
		"samples", rt.config.SamplesPerPixel,
		"bands", len(bands), "workers", pool.GetNumWorkers())

	pool.Start()
	for i, band := range bands {
		pool.SubmitTask(BandTask{Band: band, TaskID: i, Buffer: buffer})
	}

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Bands:   len(bands),
		Workers: pool.GetNumWorkers(),
	}

	var errs []error
	for range bands {
		result, ok := pool.GetResult()
		if !ok {
			errs = append(errs, fmt.Errorf("worker pool closed unexpectedly"))
			break
		}
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}
		stats.TotalRays += result.Stats.Rays
	}
	pool.Stop()

	if err := errors.Join(errs...); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	stats.Duration = time.Since(start)
	stats.AverageLuminance = AverageLuminance(buffer)
	rt.logger.Info("render finished", "duration", stats.Duration, "rays", stats.TotalRays)

	return buffer, stats, nil
}
