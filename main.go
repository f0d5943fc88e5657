package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene    string
	Width    int
	Height   int
	MaxDepth int
	Format   string
	Scale    int
	Output   string
	Progress int
	List     bool
	Help     bool
}

func parseFlags(args []string, output io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.Scene, "scene", "default", "Built-in scene id, json:<name>, or path to a scenes/*.json file")
	fs.IntVar(&opts.Width, "width", 0, "Image width (0 uses the scene's width)")
	fs.IntVar(&opts.Height, "height", 0, "Image height (0 uses the scene's height)")
	fs.IntVar(&opts.MaxDepth, "depth", 0, "Reflection/refraction bounces (0 uses the scene's depth)")
	fs.StringVar(&opts.Format, "format", "", "Output format: png, ppm, bmp or tiff (default from -output, else png)")
	fs.IntVar(&opts.Scale, "scale", 1, "Integer upscaling factor for png, bmp and tiff output")
	fs.StringVar(&opts.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<ext>)")
	fs.IntVar(&opts.Progress, "progress", 0, "Log progress every N rows (0 disables)")
	fs.BoolVar(&opts.List, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	if opts.Width < 0 || opts.Height < 0 || opts.MaxDepth < 0 {
		return opts, fs, fmt.Errorf("width, height and depth must not be negative")
	}
	if opts.Scale < 1 {
		return opts, fs, fmt.Errorf("scale must be at least 1, got %d", opts.Scale)
	}
	return opts, fs, nil
}

// resolveFormat picks the output format from -format, then the -output extension
func resolveFormat(opts options) (canvas.Format, error) {
	if opts.Format != "" {
		return canvas.ParseFormat(opts.Format)
	}
	if ext := filepath.Ext(opts.Output); ext != "" {
		return canvas.ParseFormat(ext)
	}
	return canvas.PNG, nil
}

// createScene resolves a scene reference to a scene
func createScene(ref string, logger core.Logger) (*scene.Scene, error) {
	if ref == "" {
		return nil, errors.New("scene name cannot be empty")
	}
	return scene.Load(ref, logger)
}

// createOutputDir returns output/<scene> for a scene reference, using the
// file stem for JSON scenes
func createOutputDir(ref string) string {
	ref = strings.TrimPrefix(ref, "json:")
	return filepath.Join("output", strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)))
}

func listScenes(w io.Writer, logger core.Logger) error {
	response, err := scene.ListAllScenes(logger)
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, s := range group.Scenes {
			fmt.Fprintf(w, "  %-20s %s\n", s.ID, s.Description)
		}
	}
	return nil
}

// renderScene renders the selected scene and writes it to disk, returning the file name
func renderScene(opts options, logger *log.Logger) (string, error) {
	format, err := resolveFormat(opts)
	if err != nil {
		return "", err
	}

	selectedScene, err := createScene(opts.Scene, logger)
	if err != nil {
		return "", err
	}
	selectedScene.Configure(scene.RenderConfig{Width: opts.Width, Height: opts.Height, MaxDepth: opts.MaxDepth})
	cfg := selectedScene.RenderConfig
	logger.Printf("Rendering %q at %dx%d, max depth %d\n", selectedScene.Name, cfg.Width, cfg.Height, cfg.MaxDepth)

	raytracer := selectedScene.NewRaytracer(logger)
	config := raytracer.Config()
	config.ProgressRows = opts.Progress
	raytracer.SetConfig(config)

	img, stats := raytracer.Render()

	printer := message.NewPrinter(language.English)
	logger.Println(stats.Summary(printer))
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img.Image()))

	filename := opts.Output
	if filename == "" {
		outputDir := createOutputDir(opts.Scene)
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, "render_"+timestamp+format.Extension())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := img.Encode(file, format, opts.Scale); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", format, err)
	}
	return filename, nil
}

func main() {
	opts, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", 0)

	if opts.Help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		if err := listScenes(os.Stdout, logger); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
		}
		return
	}

	if opts.List {
		if err := listScenes(os.Stdout, logger); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Starting Whitted Raytracer...")
	filename, err := renderScene(opts, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}
