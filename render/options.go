package render

import "github.com/emberfx/ember"

// Standard option names. Backends honor at least these; unknown names
// follow the backend's own policy.
const (
	OptionCamera           = "camera"
	OptionResolution       = "resolution"
	OptionPixelAspectRatio = "pixelAspectRatio"
	OptionCropWindow       = "cropWindow"
)

// Standard attribute names.
const (
	AttrDoubleSided = "doubleSided"
	AttrColor       = "color"
	AttrOpacity     = "opacity"
	AttrIntensity   = "intensity"
)

// Default option values.
const (
	DefaultResolutionX      = 1920
	DefaultResolutionY      = 1080
	DefaultPixelAspectRatio = 1.0
)

// OptionInt2 interprets an option value as a pair of integers,
// accepting the forms produced by Go literals, config decoders, and
// CompoundData round trips.
func OptionInt2(v any) (x, y int, ok bool) {
	switch v := v.(type) {
	case [2]int:
		return v[0], v[1], true
	case []int:
		if len(v) == 2 {
			return v[0], v[1], true
		}
	case []int64:
		if len(v) == 2 {
			return int(v[0]), int(v[1]), true
		}
	case []any:
		if len(v) != 2 {
			return 0, 0, false
		}
		xf, xok := optionFloat(v[0])
		yf, yok := optionFloat(v[1])
		if xok && yok {
			return int(xf), int(yf), true
		}
	}
	return 0, 0, false
}

// OptionFloat interprets an option value as a float64.
func OptionFloat(v any) (float64, bool) {
	return optionFloat(v)
}

// OptionString interprets an option value as a string.
func OptionString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// OptionBox2 interprets an option value as a 2D box. Accepts ember.Box2
// or a flat [4]float64 / []float64 of (minX, minY, maxX, maxY).
func OptionBox2(v any) (ember.Box2, bool) {
	switch v := v.(type) {
	case ember.Box2:
		return v, true
	case [4]float64:
		return ember.Box2{Min: ember.V2(v[0], v[1]), Max: ember.V2(v[2], v[3])}, true
	case []float64:
		if len(v) == 4 {
			return ember.Box2{Min: ember.V2(v[0], v[1]), Max: ember.V2(v[2], v[3])}, true
		}
	case []any:
		if len(v) != 4 {
			return ember.Box2{}, false
		}
		f := make([]float64, 4)
		for i, e := range v {
			x, ok := optionFloat(e)
			if !ok {
				return ember.Box2{}, false
			}
			f[i] = x
		}
		return ember.Box2{Min: ember.V2(f[0], f[1]), Max: ember.V2(f[2], f[3])}, true
	}
	return ember.Box2{}, false
}

func optionFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
