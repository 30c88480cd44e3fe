package ember

// CompoundData is a bag of named values, used for renderer options,
// attribute bundles, and output parameters. Values are plain Go types;
// backends interpret the entries they understand and are free to ignore
// or reject the rest.
type CompoundData map[string]any

// Clone returns a shallow copy of the data.
func (d CompoundData) Clone() CompoundData {
	if d == nil {
		return nil
	}
	c := make(CompoundData, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// Bool returns the named entry as a bool, or def if it is absent or of
// another type.
func (d CompoundData) Bool(name string, def bool) bool {
	if v, ok := d[name].(bool); ok {
		return v
	}
	return def
}

// Float returns the named entry as a float64, accepting any numeric
// type, or def if it is absent or non-numeric.
func (d CompoundData) Float(name string, def float64) float64 {
	switch v := d[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// String returns the named entry as a string, or def if it is absent or
// of another type.
func (d CompoundData) String(name string, def string) string {
	if v, ok := d[name].(string); ok {
		return v
	}
	return def
}
