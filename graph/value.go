package graph

import (
	"math"

	"github.com/emberfx/ember"
)

// Unbounded is the limit used by plugs whose values are unconstrained.
var Unbounded = math.Inf(1)

// FloatPlug is a leaf plug holding a scalar value, clamped to the
// plug's [min, max] range on assignment.
type FloatPlug struct {
	basePlug
	defaultValue float64
	minValue     float64
	maxValue     float64
	value        float64
}

// NewFloatPlug creates a FloatPlug with the given default and range.
// Use -Unbounded and Unbounded for an unconstrained plug.
func NewFloatPlug(name string, direction Direction, defaultValue, minValue, maxValue float64, flags Flags) *FloatPlug {
	return &FloatPlug{
		basePlug:     basePlug{name: name, direction: direction, flags: flags},
		defaultValue: defaultValue,
		minValue:     minValue,
		maxValue:     maxValue,
		value:        defaultValue,
	}
}

// DefaultValue returns the plug's default.
func (p *FloatPlug) DefaultValue() float64 { return p.defaultValue }

// MinValue returns the lower clamp bound.
func (p *FloatPlug) MinValue() float64 { return p.minValue }

// MaxValue returns the upper clamp bound.
func (p *FloatPlug) MaxValue() float64 { return p.maxValue }

// Value returns the current value.
func (p *FloatPlug) Value() float64 { return p.value }

// SetValue assigns the value, clamping to the plug's range.
// Assignments to read-only plugs are ignored.
func (p *FloatPlug) SetValue(v float64) {
	if p.flags.Has(FlagReadOnly) {
		return
	}
	p.value = clampFloat(v, p.minValue, p.maxValue)
}

// AcceptsChild always returns false; FloatPlug is a leaf.
func (p *FloatPlug) AcceptsChild(Plug) bool { return false }

// CreateCounterpart creates a FloatPlug with the same default, range,
// and flags.
func (p *FloatPlug) CreateCounterpart(name string, direction Direction) Plug {
	return NewFloatPlug(name, direction, p.defaultValue, p.minValue, p.maxValue, p.flags)
}

// V2fPlug is a leaf plug holding a 2D vector, clamped per component.
type V2fPlug struct {
	basePlug
	defaultValue ember.Vec2
	minValue     ember.Vec2
	maxValue     ember.Vec2
	value        ember.Vec2
}

// NewV2fPlug creates a V2fPlug with the given default and per-component
// range.
func NewV2fPlug(name string, direction Direction, defaultValue, minValue, maxValue ember.Vec2, flags Flags) *V2fPlug {
	return &V2fPlug{
		basePlug:     basePlug{name: name, direction: direction, flags: flags},
		defaultValue: defaultValue,
		minValue:     minValue,
		maxValue:     maxValue,
		value:        defaultValue,
	}
}

// DefaultValue returns the plug's default.
func (p *V2fPlug) DefaultValue() ember.Vec2 { return p.defaultValue }

// Value returns the current value.
func (p *V2fPlug) Value() ember.Vec2 { return p.value }

// SetValue assigns the value, clamping each component to the plug's
// range. Assignments to read-only plugs are ignored.
func (p *V2fPlug) SetValue(v ember.Vec2) {
	if p.flags.Has(FlagReadOnly) {
		return
	}
	p.value = ember.Vec2{
		X: clampFloat(v.X, p.minValue.X, p.maxValue.X),
		Y: clampFloat(v.Y, p.minValue.Y, p.maxValue.Y),
	}
}

// AcceptsChild always returns false; V2fPlug is a leaf.
func (p *V2fPlug) AcceptsChild(Plug) bool { return false }

// CreateCounterpart creates a V2fPlug with the same default, range, and
// flags.
func (p *V2fPlug) CreateCounterpart(name string, direction Direction) Plug {
	return NewV2fPlug(name, direction, p.defaultValue, p.minValue, p.maxValue, p.flags)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
