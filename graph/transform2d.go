package graph

import "github.com/emberfx/ember"

// Transform2dPlug is a composite plug describing a 2D transform as
// translate, rotate (degrees), scale, and pivot children. The child
// layout is fixed: exactly those four plugs, created with the plug and
// never added to afterwards.
type Transform2dPlug struct {
	basePlug
}

// NewTransform2dPlug creates a Transform2dPlug and its four children,
// all sharing the given direction and flags.
func NewTransform2dPlug(name string, direction Direction, flags Flags) *Transform2dPlug {
	unbounded := ember.V2(Unbounded, Unbounded)
	p := &Transform2dPlug{
		basePlug: basePlug{name: name, direction: direction, flags: flags},
	}
	p.attach(NewV2fPlug("translate", direction, ember.V2(0, 0), unbounded.Neg(), unbounded, flags))
	p.attach(NewFloatPlug("rotate", direction, 0, -Unbounded, Unbounded, flags))
	p.attach(NewV2fPlug("scale", direction, ember.V2(1, 1), unbounded.Neg(), unbounded, flags))
	p.attach(NewV2fPlug("pivot", direction, ember.V2(0, 0), unbounded.Neg(), unbounded, flags))
	return p
}

// AcceptsChild returns false once the four fixed children exist.
func (p *Transform2dPlug) AcceptsChild(Plug) bool {
	return len(p.children) != 4
}

// CreateCounterpart creates a Transform2dPlug with the requested name
// and direction and the same flags.
func (p *Transform2dPlug) CreateCounterpart(name string, direction Direction) Plug {
	return NewTransform2dPlug(name, direction, p.flags)
}

// TranslatePlug returns the "translate" child.
func (p *Transform2dPlug) TranslatePlug() *V2fPlug {
	return p.Child("translate").(*V2fPlug)
}

// RotatePlug returns the "rotate" child. Its value is in degrees.
func (p *Transform2dPlug) RotatePlug() *FloatPlug {
	return p.Child("rotate").(*FloatPlug)
}

// ScalePlug returns the "scale" child.
func (p *Transform2dPlug) ScalePlug() *V2fPlug {
	return p.Child("scale").(*V2fPlug)
}

// PivotPlug returns the "pivot" child.
func (p *Transform2dPlug) PivotPlug() *V2fPlug {
	return p.Child("pivot").(*V2fPlug)
}

// Matrix composes the children into a single affine transform:
// translate to the pivot's origin, scale, rotate, translate, and
// translate back to the pivot. The order is fixed; scale and rotation
// are pivot-relative and the composition is not commutative.
func (p *Transform2dPlug) Matrix() ember.Matrix33 {
	pivot := ember.Translate2D(p.PivotPlug().Value())
	translate := ember.Translate2D(p.TranslatePlug().Value())
	rotate := ember.Rotate2D(ember.Radians(p.RotatePlug().Value()))
	scale := ember.Scale2D(p.ScalePlug().Value())
	pivotInverse := ember.Translate2D(p.PivotPlug().Value().Neg())

	return pivotInverse.Mul(scale).Mul(rotate).Mul(translate).Mul(pivot)
}
