package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultTileSize is the edge length of a render tile in pixels
const DefaultTileSize = 32

// RenderConfig controls how the image is partitioned across workers
type RenderConfig struct {
	TileSize   int   // Size of each tile
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile n draws from stream Seed+n
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0,
		Seed:       42,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Render renders the whole image in parallel. The result is byte-identical
// for a given seed regardless of the worker count. If ctx is cancelled the
// partially rendered buffer is discarded and ctx.Err() is returned.
func (rt *Raytracer) Render(ctx context.Context, config RenderConfig) (*Framebuffer, RenderStats, error) {
	startTime := time.Now()
	fb := NewFramebuffer(rt.width, rt.height)
	tiles := NewTileGrid(rt.width, rt.height, config.TileSize)

	pool := NewWorkerPool(rt, fb, len(tiles), config.NumWorkers, config.Seed)
	rt.logger.Printf("Rendering %dx%d: %d tiles, %d workers, %d samples/pixel, depth %d\n",
		rt.width, rt.height, len(tiles), pool.GetNumWorkers(), rt.config.SamplesPerPixel, rt.config.MaxDepth)

	pool.Start(ctx)
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	if renderErr != nil {
		rt.logger.Printf("Render aborted: %v\n", renderErr)
		return nil, RenderStats{}, renderErr
	}

	stats.finalize()
	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Elapsed, stats.AverageSamples)

	return fb, stats, nil
}
