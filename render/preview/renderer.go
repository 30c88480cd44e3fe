// Package preview implements a software renderer backend serving batch
// and interactive sessions. Scenes are 2D: emitted primitives are
// rasterized back-to-front into an RGBA framebuffer at the configured
// resolution, and batch renders write every declared output file.
package preview

import (
	"context"
	"sync"

	"github.com/emberfx/ember"
	"github.com/emberfx/ember/render"
)

// Renderer is one preview render session.
type Renderer struct {
	renderType render.RenderType

	mu      sync.Mutex
	options ember.CompoundData
	outputs map[string]render.Output
	objects []*object

	// interactive session state
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	frame   *ember.Pixmap
	frames  uint64
}

// New creates a preview renderer for the given render type.
// SceneDescription is not served by this backend.
func New(renderType render.RenderType) *Renderer {
	return &Renderer{
		renderType: renderType,
		options:    make(ember.CompoundData),
		outputs:    make(map[string]render.Output),
	}
}

// Option sets a global option; nil unsets it. Unknown options are
// logged and ignored.
func (r *Renderer) Option(name string, value any) {
	switch name {
	case render.OptionCamera, render.OptionResolution,
		render.OptionPixelAspectRatio, render.OptionCropWindow:
	default:
		ember.Logger().Warn("preview: ignoring unknown option", "option", name)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if value == nil {
		delete(r.options, name)
		return
	}
	r.options[name] = value
}

// Output declares an output image; nil removes the declaration.
// Outputs are written when a batch render completes.
func (r *Renderer) Output(name string, o *render.Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o == nil {
		delete(r.outputs, name)
		return
	}
	r.outputs[name] = *o
}

// attributes is a compiled, immutable attribute bundle.
type attributes struct {
	owner       *Renderer
	color       ember.RGBA
	opacity     float64
	doubleSided bool
	intensity   float64
}

func (r *Renderer) newDefaultAttributes() *attributes {
	return &attributes{
		owner:       r,
		color:       ember.White,
		opacity:     1,
		doubleSided: true,
		intensity:   1,
	}
}

// Attributes compiles an attribute bundle for assignment to objects.
func (r *Renderer) Attributes(attrs ember.CompoundData) render.AttributesInterface {
	a := r.newDefaultAttributes()
	if attrs == nil {
		return a
	}
	if c, ok := attrColor(attrs[render.AttrColor]); ok {
		a.color = c
	}
	a.opacity = attrs.Float(render.AttrOpacity, 1)
	a.doubleSided = attrs.Bool(render.AttrDoubleSided, true)
	a.intensity = attrs.Float(render.AttrIntensity, 1)
	return a
}

// attrColor interprets an attribute value as a color.
func attrColor(v any) (ember.RGBA, bool) {
	switch v := v.(type) {
	case ember.RGBA:
		return v, true
	case [3]float64:
		return ember.RGB(v[0], v[1], v[2]), true
	case []float64:
		if len(v) == 3 {
			return ember.RGB(v[0], v[1], v[2]), true
		}
	}
	return ember.RGBA{}, false
}

// Light adds a named light. Lights contribute their intensity to the
// scene illumination; a non-nil primitive also renders like geometry.
func (r *Renderer) Light(name string, obj ember.Object) render.ObjectInterface {
	return r.emit(name, obj, true)
}

// Object adds a named object: geometry, a camera, or a coordinate
// system.
func (r *Renderer) Object(name string, obj ember.Object) render.ObjectInterface {
	return r.emit(name, obj, false)
}

func (r *Renderer) emit(name string, obj ember.Object, light bool) render.ObjectInterface {
	o := &object{
		r:     r,
		name:  name,
		obj:   obj,
		light: light,
		xform: ember.Identity33(),
		attrs: r.newDefaultAttributes(),
	}
	r.mu.Lock()
	r.objects = append(r.objects, o)
	r.mu.Unlock()
	return o
}

// Render renders the scene. Batch renders complete synchronously and
// write every declared output; interactive renders start or resume the
// background loop and return immediately.
func (r *Renderer) Render() error {
	if r.renderType == render.Interactive {
		return r.resume()
	}

	r.mu.Lock()
	snap := r.snapshotLocked()
	outputs := make(map[string]render.Output, len(r.outputs))
	for name, o := range r.outputs {
		outputs[name] = o
	}
	r.mu.Unlock()

	frame, err := renderFrame(snap)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.frame = frame
	r.frames++
	r.mu.Unlock()

	for name, o := range outputs {
		if o.Data != "" && o.Data != "rgba" {
			ember.Logger().Warn("preview: skipping output with unsupported data",
				"output", name, "data", o.Data)
			continue
		}
		format := o.Format
		if format == "" {
			format = "png"
		}
		if err := frame.WriteFile(o.Filename, format); err != nil {
			return err
		}
		ember.Logger().Info("preview: wrote output", "output", name, "file", o.Filename)
	}
	return nil
}

// Frame returns a copy of the most recently rendered frame, or nil if
// nothing has been rendered yet.
func (r *Renderer) Frame() *ember.Pixmap {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frame == nil {
		return nil
	}
	return r.frame.Clone()
}

// FrameCount returns the number of frames rendered so far.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
