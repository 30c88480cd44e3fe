package render

import "errors"

// Common renderer errors.
var (
	// ErrUnknownRenderer is returned by Create for unregistered names.
	ErrUnknownRenderer = errors.New("render: unknown renderer type")

	// ErrUnsupportedRenderType is returned when a backend does not
	// serve the requested render type.
	ErrUnsupportedRenderType = errors.New("render: unsupported render type")

	// ErrMissingFileName is returned when a SceneDescription render is
	// created without a destination file.
	ErrMissingFileName = errors.New("render: scene description requires a file name")

	// ErrObjectCommitted is returned when editing or closing an object
	// that has already been flushed to the backend.
	ErrObjectCommitted = errors.New("render: object already committed")

	// ErrObjectRemoved is returned when editing or closing an object
	// that has been removed from an interactive render.
	ErrObjectRemoved = errors.New("render: object already removed")

	// ErrForeignAttributes is returned when an attribute bundle from
	// one renderer is assigned to an object of another.
	ErrForeignAttributes = errors.New("render: attributes from a different renderer")
)
