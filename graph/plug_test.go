package graph

import (
	"testing"

	"github.com/emberfx/ember"
)

func TestDirection(t *testing.T) {
	if In.String() != "in" || Out.String() != "out" {
		t.Errorf("Direction.String() = %q/%q, want in/out", In, Out)
	}
	if In.Opposite() != Out || Out.Opposite() != In {
		t.Errorf("Direction.Opposite() broken")
	}
}

func TestFlagsHas(t *testing.T) {
	f := FlagDynamic | FlagReadOnly
	if !f.Has(FlagDynamic) || !f.Has(FlagReadOnly) || !f.Has(FlagDynamic|FlagReadOnly) {
		t.Errorf("Flags.Has missing set bits")
	}
	if FlagsDefault.Has(FlagDynamic) {
		t.Errorf("FlagsDefault.Has(FlagDynamic) = true, want false")
	}
}

func TestFloatPlugClamping(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		set      float64
		want     float64
	}{
		{"within range", 0, 10, 5, 5},
		{"below min", 0, 10, -3, 0},
		{"above max", 0, 10, 42, 10},
		{"unbounded", -Unbounded, Unbounded, 1e300, 1e300},
		{"unbounded negative", -Unbounded, Unbounded, -1e300, -1e300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFloatPlug("f", In, 0, tt.min, tt.max, FlagsDefault)
			p.SetValue(tt.set)
			if got := p.Value(); got != tt.want {
				t.Errorf("SetValue(%v) then Value() = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}

func TestFloatPlugDefaults(t *testing.T) {
	p := NewFloatPlug("f", Out, 2.5, 0, 5, FlagReadOnly)
	if p.Value() != 2.5 {
		t.Errorf("initial Value() = %v, want default 2.5", p.Value())
	}
	if p.DefaultValue() != 2.5 || p.MinValue() != 0 || p.MaxValue() != 5 {
		t.Errorf("default/range accessors wrong")
	}
	if p.Direction() != Out || !p.Flags().Has(FlagReadOnly) {
		t.Errorf("direction/flags not carried")
	}
}

func TestReadOnlyPlugsIgnoreAssignment(t *testing.T) {
	f := NewFloatPlug("f", In, 2, -Unbounded, Unbounded, FlagReadOnly)
	f.SetValue(7)
	if got := f.Value(); got != 2 {
		t.Errorf("read-only FloatPlug Value() = %v, want default 2", got)
	}

	v := NewV2fPlug("v", In, ember.V2(1, 1), ember.V2(-Unbounded, -Unbounded), ember.V2(Unbounded, Unbounded), FlagReadOnly)
	v.SetValue(ember.V2(3, 4))
	if got := v.Value(); got != ember.V2(1, 1) {
		t.Errorf("read-only V2fPlug Value() = %v, want default (1,1)", got)
	}
}

func TestV2fPlugClampsPerComponent(t *testing.T) {
	p := NewV2fPlug("v", In, ember.V2(0, 0), ember.V2(-1, -1), ember.V2(1, 1), FlagsDefault)
	p.SetValue(ember.V2(5, -5))
	if got := p.Value(); got != ember.V2(1, -1) {
		t.Errorf("SetValue(5,-5) then Value() = %v, want (1,-1)", got)
	}
}

func TestLeafPlugsRejectChildren(t *testing.T) {
	f := NewFloatPlug("f", In, 0, -Unbounded, Unbounded, FlagsDefault)
	v := NewV2fPlug("v", In, ember.V2(0, 0), ember.V2(-Unbounded, -Unbounded), ember.V2(Unbounded, Unbounded), FlagsDefault)

	if f.AcceptsChild(v) {
		t.Errorf("FloatPlug.AcceptsChild = true, want false")
	}
	if err := AddChild(v, f); err == nil {
		t.Errorf("AddChild to leaf plug succeeded, want error")
	}
}

func TestLeafCounterparts(t *testing.T) {
	f := NewFloatPlug("f", Out, 1, 0, 2, FlagDynamic)
	cf := f.CreateCounterpart("f2", In).(*FloatPlug)
	if cf.Name() != "f2" || cf.Direction() != In || cf.DefaultValue() != 1 || !cf.Flags().Has(FlagDynamic) {
		t.Errorf("FloatPlug counterpart did not preserve shape")
	}
}
