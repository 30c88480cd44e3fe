package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberfx/ember"
	"github.com/emberfx/ember/render"
)

var (
	rendererFlag string
	sceneOutFlag string
	verboseFlag  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <scene.toml>",
	Short: "Render a scene file with a registered backend",
	Long: `Render loads a TOML scene file, feeds it to the selected renderer
backend, and performs a batch render. With --scene-out the scene is
serialized to a scene description file instead of being rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&rendererFlag, "renderer", "", "renderer backend (overrides the scene file)")
	renderCmd.Flags().StringVar(&sceneOutFlag, "scene-out", "", "serialize the scene to this file instead of rendering")
	renderCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		ember.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(args[0])
	if err != nil {
		return err
	}

	renderType := render.Batch
	name := scene.Renderer
	if sceneOutFlag != "" {
		renderType = render.SceneDescription
		name = "scenefile"
	}
	if rendererFlag != "" {
		name = rendererFlag
	}

	r, err := render.Create(name, renderType, sceneOutFlag)
	if err != nil {
		return err
	}
	if err := emitScene(r, scene); err != nil {
		return err
	}
	if err := r.Render(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rendered %s with %s\n", args[0], name)
	return nil
}

// emitScene declares a loaded scene on a renderer: options, outputs,
// lights, and objects, closing every handle once it is fully specified.
func emitScene(r render.Renderer, scene sceneConfig) error {
	if scene.Options.Camera != "" {
		r.Option(render.OptionCamera, scene.Options.Camera)
	}
	if len(scene.Options.Resolution) == 2 {
		r.Option(render.OptionResolution, scene.Options.Resolution)
	}
	if scene.Options.PixelAspectRatio != 0 {
		r.Option(render.OptionPixelAspectRatio, scene.Options.PixelAspectRatio)
	}
	if len(scene.Options.CropWindow) == 4 {
		r.Option(render.OptionCropWindow, scene.Options.CropWindow)
	}

	for _, o := range scene.Outputs {
		r.Output(o.Name, &render.Output{
			Filename: o.Filename,
			Format:   o.Format,
			Data:     o.Data,
		})
	}

	for _, l := range scene.Lights {
		attrs := ember.CompoundData{}
		if l.Intensity != nil {
			attrs[render.AttrIntensity] = *l.Intensity
		}
		if len(l.Color) == 3 {
			attrs[render.AttrColor] = ember.RGB(l.Color[0], l.Color[1], l.Color[2])
		}

		h := r.Light(l.Name, objectPayload(l.Kind, l.Radius, l.Size))
		if err := declareObject(h, r.Attributes(attrs), transformMatrix(l.Transform)); err != nil {
			return fmt.Errorf("light %q: %w", l.Name, err)
		}
	}

	for _, o := range scene.Objects {
		attrs := ember.CompoundData{}
		if len(o.Color) == 3 {
			attrs[render.AttrColor] = ember.RGB(o.Color[0], o.Color[1], o.Color[2])
		}
		if o.Opacity != nil {
			attrs[render.AttrOpacity] = *o.Opacity
		}
		if o.DoubleSided != nil {
			attrs[render.AttrDoubleSided] = *o.DoubleSided
		}

		h := r.Object(o.Name, objectPayload(o.Kind, o.Radius, o.Size))
		if err := declareObject(h, r.Attributes(attrs), transformMatrix(o.Transform)); err != nil {
			return fmt.Errorf("object %q: %w", o.Name, err)
		}
	}
	return nil
}

func declareObject(h render.ObjectInterface, attrs render.AttributesInterface, m ember.Matrix33) error {
	if err := h.Attributes(attrs); err != nil {
		return err
	}
	if err := h.Transform(m); err != nil {
		return err
	}
	return h.Close()
}
