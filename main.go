package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/display"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Random seed; the same seed gives the same image")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if *width > 0 || *height > 0 {
		w, h := selectedScene.Width, selectedScene.Height
		if *width > 0 {
			w = *width
		}
		if *height > 0 {
			h = *height
		}
		selectedScene = selectedScene.Resize(w, h)
	}
	selectedScene.SamplingConfig = selectedScene.SamplingConfig.Merge(renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})

	if err := selectedScene.Validate(); err != nil {
		fmt.Printf("Invalid scene: %v\n", err)
		os.Exit(1)
	}

	outputPath := *out
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join("output", selectedScene.Name, fmt.Sprintf("render_%s.png", timestamp))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, selectedScene, renderer.RenderConfig{
		TileSize:   renderer.DefaultTileSize,
		NumWorkers: *workers,
		Seed:       *seed,
	}, display.NewPNGFile(outputPath)); err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", outputPath)
}

// run renders the scene once and commits the frame to surface
func run(ctx context.Context, s *scene.Scene, config renderer.RenderConfig, surface display.Surface) error {
	raytracer := renderer.NewRaytracer(s, s.Width, s.Height)
	raytracer.SetLogger(renderer.NewDefaultLogger())

	fb, stats, err := raytracer.Render(ctx, config)
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %d pixels, %d samples over %d tiles\n", stats.TotalPixels, stats.TotalSamples, stats.Tiles)
	return surface.Commit(fb)
}

// createScene resolves a built-in scene name, a .json path, or the name of a
// file in the scenes directory
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if strings.HasSuffix(strings.ToLower(sceneType), ".json") {
		return loaders.LoadSceneFile(sceneType)
	}

	if s, err := scene.ByName(sceneType); err == nil {
		fmt.Printf("Using %s scene...\n", sceneType)
		return s, nil
	}

	if dir := scene.FindScenesDir(); dir != "" {
		path := filepath.Join(dir, sceneType+".json")
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Loading scene file %s...\n", path)
			return loaders.LoadSceneFile(path)
		}
	}

	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, sceneType)
}

func printHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltInScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListSceneFiles(scene.FindScenesDir()); err == nil {
		for _, info := range files {
			fmt.Printf("  %-12s - %s\n", strings.TrimPrefix(info.ID, "file:"), info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}
