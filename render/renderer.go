// Package render defines the capability contract renderer backends
// fulfill, and a process-wide registry through which backends are
// selected by name. Concrete backends live in subpackages and register
// themselves on import:
//
//	import _ "github.com/emberfx/ember/render/preview"
//	import _ "github.com/emberfx/ember/render/scenefile"
package render

import (
	"fmt"

	"github.com/emberfx/ember"
)

// RenderType selects how a render session treats the scene description.
type RenderType int

const (
	// Batch streams the scene to the backend immediately; emitted
	// objects are not retained for later editing.
	Batch RenderType = iota
	// Interactive retains the scene, allowing edits while rendering
	// is paused.
	Interactive
	// SceneDescription serializes the scene to a file instead of
	// rendering it.
	SceneDescription
)

// String returns the render type name.
func (t RenderType) String() string {
	switch t {
	case Batch:
		return "batch"
	case Interactive:
		return "interactive"
	case SceneDescription:
		return "sceneDescription"
	default:
		return fmt.Sprintf("RenderType(%d)", int(t))
	}
}

// Output describes one output image target declared on a renderer.
type Output struct {
	// Filename is the destination path.
	Filename string
	// Format selects the image encoding: "png", "tiff", or "bmp".
	Format string
	// Data names the channel set to write. "rgba" is the only set
	// every backend must support.
	Data string
	// Params carries backend-specific output parameters.
	Params ember.CompoundData
}

// AttributesInterface is an opaque handle to an immutable bundle of
// render attributes, created by Renderer.Attributes. A bundle may be
// assigned to any number of objects, but only on the renderer that
// created it.
type AttributesInterface interface{}

// ObjectInterface is a handle to one emitted object or light.
//
// Close replaces the release-of-last-reference semantics of refcounted
// renderer APIs with an explicit commit: for Interactive sessions it
// removes the object from the live render; for Batch and
// SceneDescription sessions it flushes the object to the backend, after
// which the object can no longer be edited.
type ObjectInterface interface {
	// Transform assigns a transform to the object. For Interactive
	// renders transforms may be modified whenever the renderer is
	// paused.
	Transform(m ember.Matrix33) error
	// Attributes assigns an attribute bundle to the object, replacing
	// any previous assignment. The bundle must come from the same
	// renderer.
	Attributes(a AttributesInterface) error
	// Close commits or removes the object as described above.
	// Closing twice is an error.
	Close() error
}

// Renderer is the contract a backend fulfills for one render session.
type Renderer interface {
	// Option sets a global option for the render; a nil value unsets
	// it. Backends must tolerate unknown names, by ignoring or
	// erroring per their own policy.
	//
	// Standard options:
	//
	//	"camera"            string      ""
	//	"resolution"        [2]int      1920x1080
	//	"pixelAspectRatio"  float64     1.0
	//	"cropWindow"        ember.Box2  ((0,0),(1,1))
	Option(name string, value any)

	// Output declares an output image to be rendered; a nil output
	// removes the declaration.
	Output(name string, o *Output)

	// Attributes compiles a bundle of named values into an immutable
	// handle for assignment to objects.
	//
	// Standard attributes:
	//
	//	"doubleSided"  bool  true
	Attributes(attrs ember.CompoundData) AttributesInterface

	// Light adds a named light. A nil object means the light's shape
	// is implicit in its shader or is non-geometric.
	Light(name string, obj ember.Object) ObjectInterface

	// Object adds a named object: geometry, a camera, or a coordinate
	// system.
	Object(name string, obj ember.Object) ObjectInterface

	// Render performs the render. Batch and SceneDescription renders
	// are complete when Render returns. Interactive renders return
	// immediately and proceed in the background until Pause.
	Render() error

	// Pause halts an interactive render so edits can be made.
	// A no-op for other render types.
	Pause()
}
