// Command rastdemo renders a triangle scene with the rast software
// rasterizer and writes it as an image.
//
// Without -scene it draws the reference triangle: red, green and blue
// corners on a black 300x200 frame.
//
//	rastdemo -output triangle.png
//	rastdemo -scene quad.yaml -frames 36 -output spin.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/rast"
	"github.com/gogpu/rast/encode"
	"github.com/gogpu/rast/mesh"
)

type config struct {
	width, height int
	output        string
	scene         string
	dumpScene     bool
	scale         int
	frames        int
	cull          bool
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("rastdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := &config{}
	fs.IntVar(&cfg.width, "width", 0, "frame width (overrides the scene)")
	fs.IntVar(&cfg.height, "height", 0, "frame height (overrides the scene)")
	fs.StringVar(&cfg.output, "output", "triangle.png", "output file; the extension picks png, bmp or tiff")
	fs.StringVar(&cfg.scene, "scene", "", "YAML scene file (default: reference triangle)")
	fs.BoolVar(&cfg.dumpScene, "dump-scene", false, "print the scene as YAML and exit")
	fs.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for the written image")
	fs.IntVar(&cfg.frames, "frames", 1, "render a full turn about z in this many frames")
	fs.BoolVar(&cfg.cull, "cull", false, "skip degenerate triangles")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.frames < 1 {
		return nil, fmt.Errorf("frames must be positive, got %d", cfg.frames)
	}
	if cfg.scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("rastdemo: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	rast.SetLogger(logger)
	defer rast.SetLogger(nil)

	scene, err := loadScene(cfg)
	if err != nil {
		return err
	}

	if cfg.dumpScene {
		data, err := scene.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	if _, err := encode.FormatFromPath(cfg.output); err != nil {
		return err
	}

	if cfg.frames == 1 {
		return renderFrame(logger, scene, 0, cfg.output, cfg.scale)
	}

	bar := progressbar.NewOptions(cfg.frames,
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
	)
	step := float32(360) / float32(cfg.frames)
	for i := 0; i < cfg.frames; i++ {
		if err := renderFrame(logger, scene, float32(i)*step, frameName(cfg.output, i), cfg.scale); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return nil
}

func loadScene(cfg *config) (*mesh.Scene, error) {
	scene := mesh.Default()
	if cfg.scene != "" {
		var err error
		if scene, err = mesh.Load(cfg.scene); err != nil {
			return nil, err
		}
	}
	if cfg.width > 0 {
		scene.Width = cfg.width
	}
	if cfg.height > 0 {
		scene.Height = cfg.height
	}
	if cfg.cull {
		scene.CullDegenerate = true
	}
	return scene, scene.Validate()
}

func renderFrame(logger *slog.Logger, scene *mesh.Scene, spin float32, path string, scale int) error {
	frame, st, err := scene.Render(spin)
	if err != nil {
		return err
	}
	err = encode.WriteFile(path, frame.Width(), frame.Height(), frame.ByteSequence(), encode.WithScale(scale))
	if err != nil {
		return err
	}
	logger.Info("wrote image",
		"path", path,
		"size", fmt.Sprintf("%dx%d", frame.Width()*scale, frame.Height()*scale),
		"triangles", st.Triangles,
		"fragments", st.Fragments)
	return nil
}

// frameName inserts a zero-padded frame index before the extension:
// spin.png becomes spin_007.png.
func frameName(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), i, ext)
}
