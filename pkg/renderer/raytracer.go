package renderer

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/lights"
)

// DefaultLogger implements core.Logger with the standard library logger,
// which writes to stderr and leaves stdout free for the pixel stream
type DefaultLogger struct{}

// Printf logs a formatted message through the standard logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	TMin            float64 // Minimum hit distance for every ray
	Seed            uint64  // Global seed; output is a pure function of it
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	TileSize        int     // Edge length of the square tiles handed to workers
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		TMin:            integrator.DefaultTMin,
		Seed:            42,
		NumWorkers:      0,
		TileSize:        16,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.TMin != 0 {
		result.TMin = override.TMin
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.TileSize != 0 {
		result.TileSize = override.TileSize
	}
	return result
}

// Validate checks that the configuration describes a renderable image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	return nil
}

// Raytracer renders a world through a camera with deterministic parallel sampling
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The world and camera must not be
// modified while a render is running.
func NewRaytracer(world geometry.Shape, camera *Camera, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.TMin),
		logger:     logger,
	}, nil
}

// SetBackground replaces the default sky with another infinite light
func (rt *Raytracer) SetBackground(background lights.Light) {
	rt.integrator = integrator.NewPathTracingIntegratorWithBackground(rt.config.TMin, background)
}

// Config returns the validated sampling configuration the raytracer renders with
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render renders the full image. All seeds are fixed before any worker
// starts, so the result is identical for every worker count and tile size.
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	width, height := rt.config.Width, rt.config.Height

	plan := NewSeedPlan(rt.config.Seed, width, height)
	pixels := make([]PixelStats, plan.Len())
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, plan, width, height, rt.config.SamplesPerPixel, pixels)
	pool := NewWorkerPool(tileRenderer, rt.workerCount(len(tiles)), len(tiles))

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel (%d tiles, %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID})
	}

	stats := RenderStats{TotalTiles: len(tiles), NumWorkers: pool.GetNumWorkers()}
	for range tiles {
		result, _ := pool.GetResult()
		stats.Merge(result.Stats)
	}
	pool.Stop()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)

	return assembleFrame(width, height, pixels), stats
}

// workerCount resolves the configured worker count, never exceeding the tile count
func (rt *Raytracer) workerCount(tiles int) int {
	n := rt.config.NumWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, tiles))
}

// assembleFrame averages, gamma-encodes and quantizes every pixel in scan order
func assembleFrame(width, height int, pixels []PixelStats) *Frame {
	frame := NewFrame(width, height)
	for k := range pixels {
		frame.Pixels[k] = EncodePixel(pixels[k].GetColor())
	}
	return frame
}
