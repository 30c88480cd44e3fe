// Package ember provides the core value types for the ember renderer
// abstraction: 2D vectors, 3x3 affine matrices, colors, pixel buffers,
// and the scene payload objects handed to renderer backends.
//
// # Overview
//
// ember separates the description of a 2D scene from the engine that
// renders it. Client code declares options, outputs, objects, and lights
// against the abstract renderer contract in the render package, and a
// concrete backend (selected by name from a process-wide registry)
// interprets the declaration. The graph package supplies the plug layer
// used by node-graph hosts to feed transforms into a render.
//
// # Quick Start
//
//	import (
//		"github.com/emberfx/ember"
//		"github.com/emberfx/ember/render"
//
//		_ "github.com/emberfx/ember/render/preview"
//	)
//
//	r, err := render.Create("preview", render.Batch, "")
//	if err != nil {
//		// handle unknown renderer
//	}
//	r.Option("resolution", [2]int{640, 480})
//	r.Output("beauty", &render.Output{Filename: "out.png", Format: "png", Data: "rgba"})
//
//	a := r.Attributes(ember.CompoundData{"color": ember.RGB(1, 0, 0)})
//	o := r.Object("/disk", ember.Disk{Radius: 0.25})
//	o.Attributes(a)
//	o.Transform(ember.Translate2D(ember.V2(0.5, 0.5)))
//	o.Close()
//
//	err = r.Render()
//
// # Architecture
//
// The module is organized into:
//   - ember: value types (Vec2, Matrix33, RGBA, Pixmap, CompoundData, objects)
//   - graph: plugs (FloatPlug, V2fPlug, Transform2dPlug)
//   - render: the Renderer contract and the backend registry
//   - render/preview: software backend for batch and interactive renders
//   - render/scenefile: backend serializing scene descriptions to a file
package ember
