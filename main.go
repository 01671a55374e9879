package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/loaders"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	sceneFile string
	sampling  renderer.SamplingConfig
	out       string
	format    string
	help      bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("sphere-tracer", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := &options{}
	fs.StringVar(&opts.sceneName, "scene", "two-spheres", "Built-in scene: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.sceneFile, "scene-file", "", "Path to a JSON scene description (overrides -scene)")
	fs.IntVar(&opts.sampling.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.sampling.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.sampling.SamplesPerPixel, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.Uint64Var(&opts.sampling.Seed, "seed", 0, "Global random seed (0 = scene default)")
	fs.IntVar(&opts.sampling.NumWorkers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.sampling.TileSize, "tile", 0, "Tile edge length in pixels (0 = scene default)")
	fs.Float64Var(&opts.sampling.TMin, "tmin", 0, "Minimum hit distance (0 = scene default)")
	fs.StringVar(&opts.out, "out", "", "Output file (default stdout)")
	fs.StringVar(&opts.format, "format", "ppm", "Output format: 'ppm' or 'png'")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.help {
		fmt.Fprintln(output, "Sphere Tracer")
		fmt.Fprintln(output, "Usage: sphere-tracer [options] > image.ppm")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		return opts, nil
	}

	if opts.format != "ppm" && opts.format != "png" {
		return nil, fmt.Errorf("unknown output format %q", opts.format)
	}
	return opts, nil
}

// createScene loads the scene file if given, otherwise the named built-in scene
func createScene(sceneName, sceneFile string) (*scene.Scene, error) {
	if sceneFile != "" {
		return loaders.LoadSceneJSON(sceneFile)
	}
	return scene.ByName(sceneName)
}

// prepareScene creates the selected scene with the command line sampling
// overrides applied. A resized image gets a matching camera aspect ratio.
func prepareScene(opts *options) (*scene.Scene, error) {
	s, err := createScene(opts.sceneName, opts.sceneFile)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, opts.sampling)
	if opts.sampling.Width != 0 || opts.sampling.Height != 0 {
		s.FitAspectToImage()
	}
	return s, nil
}

// writeFrame encodes the frame in the requested format
func writeFrame(w io.Writer, frame *renderer.Frame, format string) error {
	switch format {
	case "png":
		if err := png.Encode(w, frame.ToRGBA()); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	default:
		return frame.WritePPM(w)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.help {
		return nil
	}

	selectedScene, err := prepareScene(opts)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Using scene %s...\n", selectedScene.Name)

	raytracer, err := selectedScene.NewRaytracer(logger)
	if err != nil {
		return err
	}
	config := raytracer.Config()
	logger.Printf("Rendering %dx%d at %d samples per pixel (seed %d)\n", config.Width, config.Height, config.SamplesPerPixel, config.Seed)
	frame, _ := raytracer.Render()

	if opts.out == "" {
		return writeFrame(stdout, frame, opts.format)
	}

	file, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeFrame(file, frame, opts.format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Printf("Render saved as %s\n", opts.out)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
