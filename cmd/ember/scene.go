package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/emberfx/ember"
	"github.com/emberfx/ember/graph"
)

// sceneConfig is the TOML scene file schema.
type sceneConfig struct {
	Renderer string         `toml:"renderer"`
	Options  sceneOptions   `toml:"options"`
	Outputs  []outputConfig `toml:"output"`
	Lights   []lightConfig  `toml:"light"`
	Objects  []objectConfig `toml:"object"`
}

type sceneOptions struct {
	Camera           string    `toml:"camera"`
	Resolution       []int     `toml:"resolution"`
	PixelAspectRatio float64   `toml:"pixel_aspect_ratio"`
	CropWindow       []float64 `toml:"crop_window"`
}

type outputConfig struct {
	Name     string `toml:"name"`
	Filename string `toml:"filename"`
	Format   string `toml:"format"`
	Data     string `toml:"data"`
}

type transformConfig struct {
	Translate []float64 `toml:"translate"`
	Rotate    float64   `toml:"rotate"`
	Scale     []float64 `toml:"scale"`
	Pivot     []float64 `toml:"pivot"`
}

type objectConfig struct {
	Name        string          `toml:"name"`
	Kind        string          `toml:"kind"`
	Radius      float64         `toml:"radius"`
	Size        []float64       `toml:"size"`
	Color       []float64       `toml:"color"`
	Opacity     *float64        `toml:"opacity"`
	DoubleSided *bool           `toml:"double_sided"`
	Transform   transformConfig `toml:"transform"`
}

type lightConfig struct {
	Name      string          `toml:"name"`
	Kind      string          `toml:"kind"`
	Radius    float64         `toml:"radius"`
	Size      []float64       `toml:"size"`
	Intensity *float64        `toml:"intensity"`
	Color     []float64       `toml:"color"`
	Transform transformConfig `toml:"transform"`
}

// loadScene reads and validates a TOML scene file.
func loadScene(path string) (sceneConfig, error) {
	var cfg sceneConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return sceneConfig{}, fmt.Errorf("loading %s: %w", path, err)
	}
	if cfg.Renderer == "" {
		cfg.Renderer = "preview"
	}
	if err := validateScene(cfg); err != nil {
		return sceneConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validateScene(cfg sceneConfig) error {
	if len(cfg.Options.Resolution) != 0 && len(cfg.Options.Resolution) != 2 {
		return fmt.Errorf("options.resolution must have 2 entries, got %d", len(cfg.Options.Resolution))
	}
	for _, v := range cfg.Options.Resolution {
		if v <= 0 {
			return fmt.Errorf("options.resolution entries must be positive, got %v", cfg.Options.Resolution)
		}
	}
	if len(cfg.Options.CropWindow) != 0 && len(cfg.Options.CropWindow) != 4 {
		return fmt.Errorf("options.crop_window must have 4 entries, got %d", len(cfg.Options.CropWindow))
	}
	for i, o := range cfg.Outputs {
		if o.Name == "" || o.Filename == "" {
			return fmt.Errorf("output %d: name and filename are required", i)
		}
	}
	for i, o := range cfg.Objects {
		if o.Name == "" {
			return fmt.Errorf("object %d: name is required", i)
		}
		switch o.Kind {
		case "disk", "quad", "camera", "coordinateSystem":
		case "":
			return fmt.Errorf("object %q: kind is required", o.Name)
		default:
			return fmt.Errorf("object %q: unknown kind %q", o.Name, o.Kind)
		}
		if len(o.Color) != 0 && len(o.Color) != 3 {
			return fmt.Errorf("object %q: color must have 3 entries", o.Name)
		}
	}
	for i, l := range cfg.Lights {
		if l.Name == "" {
			return fmt.Errorf("light %d: name is required", i)
		}
		if l.Intensity != nil && *l.Intensity < 0 {
			return fmt.Errorf("light %q: intensity must not be negative", l.Name)
		}
	}
	return nil
}

// objectPayload builds the scene payload for an object entry.
func objectPayload(kind string, radius float64, size []float64) ember.Object {
	switch kind {
	case "disk":
		return ember.Disk{Radius: radius}
	case "quad":
		s := ember.V2(1, 1)
		if len(size) == 2 {
			s = ember.V2(size[0], size[1])
		}
		return ember.Quad{Size: s}
	case "camera":
		return ember.Camera{}
	case "coordinateSystem":
		return ember.CoordinateSystem{}
	default:
		return nil
	}
}

// transformMatrix composes a transform entry through a Transform2dPlug,
// exactly as a node-graph host would drive the renderer.
func transformMatrix(tc transformConfig) ember.Matrix33 {
	plug := graph.NewTransform2dPlug("transform", graph.In, graph.FlagsDefault)
	if len(tc.Translate) == 2 {
		plug.TranslatePlug().SetValue(ember.V2(tc.Translate[0], tc.Translate[1]))
	}
	plug.RotatePlug().SetValue(tc.Rotate)
	if len(tc.Scale) == 2 {
		plug.ScalePlug().SetValue(ember.V2(tc.Scale[0], tc.Scale[1]))
	}
	if len(tc.Pivot) == 2 {
		plug.PivotPlug().SetValue(ember.V2(tc.Pivot[0], tc.Pivot[1]))
	}
	return plug.Matrix()
}
