package ember

// Object is the scene payload handed to a renderer when emitting
// geometry, cameras, or coordinate systems. Objects are pure data;
// each backend decides how to interpret them.
type Object interface {
	// Kind returns a stable identifier for the object type
	// (e.g. "disk", "quad", "camera").
	Kind() string
}

// Primitive is an Object with renderable 2D extent. Containment is
// tested in object space; the transform assigned to the emitted object
// maps object space into scene space.
type Primitive interface {
	Object
	// Contains reports whether the object-space point lies inside
	// the primitive.
	Contains(p Vec2) bool
}

// Disk is a filled circle of the given radius, centered at the origin.
type Disk struct {
	Radius float64
}

func (Disk) Kind() string { return "disk" }

// Contains reports whether p lies inside the disk.
func (d Disk) Contains(p Vec2) bool {
	return p.Length() <= d.Radius
}

// Quad is a filled axis-aligned rectangle of the given size, centered
// at the origin.
type Quad struct {
	Size Vec2
}

func (Quad) Kind() string { return "quad" }

// Contains reports whether p lies inside the quad.
func (q Quad) Contains(p Vec2) bool {
	hx := q.Size.X / 2
	hy := q.Size.Y / 2
	return p.X >= -hx && p.X <= hx && p.Y >= -hy && p.Y <= hy
}

// Camera is a view into the scene. The camera's transform is assigned
// through the emitted object's handle; resolution and related settings
// come from renderer options.
type Camera struct{}

func (Camera) Kind() string { return "camera" }

// CoordinateSystem is a named reference frame with no renderable extent.
type CoordinateSystem struct{}

func (CoordinateSystem) Kind() string { return "coordinateSystem" }
