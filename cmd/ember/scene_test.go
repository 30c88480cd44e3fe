package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberfx/ember"
	"github.com/emberfx/ember/render"
	"github.com/emberfx/ember/render/preview"
)

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSceneDefaults(t *testing.T) {
	cfg, err := loadScene(writeScene(t, ``))
	if err != nil {
		t.Fatalf("loadScene error: %v", err)
	}
	if cfg.Renderer != "preview" {
		t.Errorf("default renderer = %q, want preview", cfg.Renderer)
	}
}

func TestLoadSceneFull(t *testing.T) {
	cfg, err := loadScene(writeScene(t, `
renderer = "preview"

[options]
camera = "/cam"
resolution = [640, 480]
pixel_aspect_ratio = 1.0

[[output]]
name = "beauty"
filename = "out.png"
format = "png"
data = "rgba"

[[light]]
name = "/key"
intensity = 1.5

[[object]]
name = "/cam"
kind = "camera"

[[object]]
name = "/disk"
kind = "disk"
radius = 0.25
color = [1.0, 0.0, 0.0]
double_sided = false

[object.transform]
translate = [0.5, 0.5]
rotate = 45.0
scale = [2.0, 1.0]
pivot = [0.5, 0.5]
`))
	if err != nil {
		t.Fatalf("loadScene error: %v", err)
	}

	if cfg.Options.Camera != "/cam" {
		t.Errorf("camera = %q, want /cam", cfg.Options.Camera)
	}
	if len(cfg.Objects) != 2 || cfg.Objects[1].Kind != "disk" {
		t.Fatalf("objects = %+v, want camera and disk", cfg.Objects)
	}
	disk := cfg.Objects[1]
	if disk.DoubleSided == nil || *disk.DoubleSided {
		t.Errorf("double_sided = %v, want false", disk.DoubleSided)
	}
	if disk.Transform.Rotate != 45 {
		t.Errorf("rotate = %v, want 45", disk.Transform.Rotate)
	}
	if len(cfg.Lights) != 1 || cfg.Lights[0].Intensity == nil || *cfg.Lights[0].Intensity != 1.5 {
		t.Errorf("lights = %+v, want /key with intensity 1.5", cfg.Lights)
	}
}

func TestLoadSceneValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			"bad resolution",
			"[options]\nresolution = [640]\n",
			"resolution",
		},
		{
			"non-positive resolution",
			"[options]\nresolution = [-1, 10]\n",
			"resolution",
		},
		{
			"output without filename",
			"[[output]]\nname = \"beauty\"\n",
			"filename",
		},
		{
			"object without kind",
			"[[object]]\nname = \"/thing\"\n",
			"kind",
		},
		{
			"object with unknown kind",
			"[[object]]\nname = \"/thing\"\nkind = \"teapot\"\n",
			"teapot",
		},
		{
			"negative light intensity",
			"[[light]]\nname = \"/key\"\nintensity = -1.0\n",
			"intensity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadScene(writeScene(t, tt.contents))
			if err == nil {
				t.Fatalf("loadScene succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTransformMatrix(t *testing.T) {
	if got := transformMatrix(transformConfig{}); !got.IsIdentity() {
		t.Errorf("empty transform = %v, want identity", got)
	}

	m := transformMatrix(transformConfig{
		Translate: []float64{1, 0},
		Rotate:    90,
		Scale:     []float64{2, 1},
	})
	// Scale, rotate, translate: (1,0) -> (2,0) -> (0,2) -> (1,2).
	got := m.TransformPoint(ember.V2(1, 0))
	if got.Sub(ember.V2(1, 2)).Length() > 1e-9 {
		t.Errorf("TransformPoint(1,0) = %v, want (1,2)", got)
	}
}

func TestEmitSceneRenders(t *testing.T) {
	out := filepath.Join(t.TempDir(), "beauty.png")
	intensity := 1.0

	scene := sceneConfig{
		Renderer: "preview",
		Options:  sceneOptions{Resolution: []int{16, 16}},
		Outputs:  []outputConfig{{Name: "beauty", Filename: out, Format: "png", Data: "rgba"}},
		Lights:   []lightConfig{{Name: "/key", Intensity: &intensity}},
		Objects: []objectConfig{{
			Name:   "/disk",
			Kind:   "disk",
			Radius: 0.4,
			Color:  []float64{0, 0, 1},
			Transform: transformConfig{
				Translate: []float64{0.5, 0.5},
			},
		}},
	}

	r := preview.New(render.Batch)
	if err := emitScene(r, scene); err != nil {
		t.Fatalf("emitScene error: %v", err)
	}
	if err := r.Render(); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("declared output not written: %v", err)
	}
	if got := r.Frame().GetPixel(8, 8); got.B < 0.9 {
		t.Errorf("center pixel = %+v, want blue disk", got)
	}
}
