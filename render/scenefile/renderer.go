// Package scenefile implements a renderer backend that performs no
// rendering: the declared scene is serialized to a YAML file when
// Render is called. It serves SceneDescription sessions only.
package scenefile

import (
	"fmt"
	"sync"

	"github.com/emberfx/ember"
	"github.com/emberfx/ember/render"
)

// Name is the registry name of the scenefile backend.
const Name = "scenefile"

// init registers the scenefile backend on package import.
//
//	import _ "github.com/emberfx/ember/render/scenefile"
func init() {
	render.Register(Name, func(renderType render.RenderType, fileName string) (render.Renderer, error) {
		if renderType != render.SceneDescription {
			return nil, fmt.Errorf("%w: %s only serves %s renders",
				render.ErrUnsupportedRenderType, Name, render.SceneDescription)
		}
		if fileName == "" {
			return nil, render.ErrMissingFileName
		}
		return New(fileName), nil
	})
}

// Renderer accumulates one scene declaration and writes it on Render.
type Renderer struct {
	fileName string

	mu      sync.Mutex
	options ember.CompoundData
	outputs map[string]render.Output
	objects []*object
}

// New creates a scenefile renderer targeting the given file.
func New(fileName string) *Renderer {
	return &Renderer{
		fileName: fileName,
		options:  make(ember.CompoundData),
		outputs:  make(map[string]render.Output),
	}
}

// Option records a global option; nil unsets it.
func (r *Renderer) Option(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if value == nil {
		delete(r.options, name)
		return
	}
	r.options[name] = value
}

// Output records an output declaration; nil removes it.
func (r *Renderer) Output(name string, o *render.Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o == nil {
		delete(r.outputs, name)
		return
	}
	r.outputs[name] = *o
}

// attributes is a compiled attribute bundle; values are normalized to
// plain serializable types at compile time.
type attributes struct {
	owner *Renderer
	data  ember.CompoundData
}

// Attributes compiles an attribute bundle. The standard doubleSided
// attribute is always present, defaulting to true.
func (r *Renderer) Attributes(attrs ember.CompoundData) render.AttributesInterface {
	data := make(ember.CompoundData, len(attrs)+1)
	for name, value := range attrs {
		data[name] = normalizeAttr(value)
	}
	if _, ok := data[render.AttrDoubleSided]; !ok {
		data[render.AttrDoubleSided] = true
	}
	return &attributes{owner: r, data: data}
}

// normalizeAttr rewrites attribute values into types that survive a
// serialization round trip.
func normalizeAttr(v any) any {
	switch v := v.(type) {
	case ember.RGBA:
		return []float64{v.R, v.G, v.B}
	case [3]float64:
		return []float64{v[0], v[1], v[2]}
	case ember.Vec2:
		return []float64{v.X, v.Y}
	case float32:
		return float64(v)
	case int64:
		return int(v)
	default:
		return v
	}
}

// Light records a named light.
func (r *Renderer) Light(name string, obj ember.Object) render.ObjectInterface {
	return r.emit(name, obj, true)
}

// Object records a named object.
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
		attrs: r.Attributes(nil).(*attributes),
	}
	r.mu.Lock()
	r.objects = append(r.objects, o)
	r.mu.Unlock()
	return o
}

// Render serializes the accumulated declaration to the target file and
// returns when the file is written.
func (r *Renderer) Render() error {
	r.mu.Lock()
	doc := r.documentLocked()
	r.mu.Unlock()

	if err := writeDocument(r.fileName, doc); err != nil {
		return fmt.Errorf("scenefile: %w", err)
	}
	ember.Logger().Info("scenefile: wrote scene description",
		"file", r.fileName, "objects", len(doc.Objects))
	return nil
}

// Pause is a no-op; scene description renders are not interactive.
func (r *Renderer) Pause() {}

// object is the handle for one recorded object or light.
type object struct {
	r     *Renderer
	name  string
	obj   ember.Object
	light bool

	xform     ember.Matrix33
	attrs     *attributes
	committed bool
}

// Transform assigns a transform to the object.
func (o *object) Transform(m ember.Matrix33) error {
	o.r.mu.Lock()
	defer o.r.mu.Unlock()
	if o.committed {
		return render.ErrObjectCommitted
	}
	o.xform = m
	return nil
}

// Attributes assigns a compiled attribute bundle.
func (o *object) Attributes(a render.AttributesInterface) error {
	o.r.mu.Lock()
	defer o.r.mu.Unlock()
	if o.committed {
		return render.ErrObjectCommitted
	}
	if a == nil {
		o.attrs = o.r.Attributes(nil).(*attributes)
		return nil
	}
	attrs, ok := a.(*attributes)
	if !ok || attrs.owner != o.r {
		return render.ErrForeignAttributes
	}
	o.attrs = attrs
	return nil
}

// Close flushes the object into the document; it can no longer be
// edited afterwards.
func (o *object) Close() error {
	o.r.mu.Lock()
	defer o.r.mu.Unlock()
	if o.committed {
		return render.ErrObjectCommitted
	}
	o.committed = true
	return nil
}
