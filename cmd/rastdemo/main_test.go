package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rast/mesh"
)

func TestRunReference(t *testing.T) {
	out := filepath.Join(t.TempDir(), "triangle.png")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-output", out, "-scale", "2"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 2*mesh.DefaultWidth || cfg.Height != 2*mesh.DefaultHeight {
		t.Errorf("image size = %dx%d", cfg.Width, cfg.Height)
	}
	if !strings.Contains(stderr.String(), "wrote image") {
		t.Errorf("missing log line, stderr:\n%s", stderr.String())
	}
}

func TestRunFrames(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	args := []string{"-output", filepath.Join(dir, "spin.bmp"), "-frames", "3", "-width", "16", "-height", "16"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	for _, name := range []string{"spin_000.bmp", "spin_001.bmp", "spin_002.bmp"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("frame %s: %v", name, err)
		}
	}
}

func TestRunDumpScene(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-dump-scene", "-width", "40"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	s, err := mesh.Parse(stdout.Bytes())
	if err != nil {
		t.Fatalf("dumped scene does not parse: %v\n%s", err, stdout.String())
	}
	if s.Width != 40 || len(s.Triangles) != 1 {
		t.Errorf("dumped scene = %+v", s)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-output", filepath.Join(dir, "x.gif")}},
		{"zero frames", []string{"-frames", "0"}},
		{"bad scale", []string{"-output", filepath.Join(dir, "x.png"), "-scale", "0"}},
		{"missing scene", []string{"-scene", filepath.Join(dir, "none.yaml")}},
		{"unknown flag", []string{"-depth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Error("run() succeeded, want error")
			}
		})
	}
}

func TestRunBadScaleWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-scale", "0", "-output", out}, &stdout, &stderr); err == nil {
		t.Fatal("run() succeeded, want error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("os.Stat(%s) error = %v, want no file", out, err)
	}
}

func TestFrameName(t *testing.T) {
	tests := []struct {
		path string
		i    int
		want string
	}{
		{"spin.png", 7, "spin_007.png"},
		{"out/a.b.tiff", 12, "out/a.b_012.tiff"},
		{"noext", 0, "noext_000"},
	}
	for _, tt := range tests {
		if got := frameName(tt.path, tt.i); got != tt.want {
			t.Errorf("frameName(%q, %d) = %q, want %q", tt.path, tt.i, got, tt.want)
		}
	}
}
