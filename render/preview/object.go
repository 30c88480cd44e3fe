package preview

import (
	"github.com/emberfx/ember"
	"github.com/emberfx/ember/render"
)

// object is the handle for one emitted object or light.
type object struct {
	r     *Renderer
	name  string
	obj   ember.Object
	light bool

	xform     ember.Matrix33
	attrs     *attributes
	committed bool
	removed   bool
}

// Transform assigns a transform to the object. For interactive
// sessions, call while the renderer is paused.
func (o *object) Transform(m ember.Matrix33) error {
	o.r.mu.Lock()
	defer o.r.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	o.xform = m
	return nil
}

// Attributes assigns a compiled attribute bundle, replacing any
// previous assignment. The bundle must come from the same renderer.
func (o *object) Attributes(a render.AttributesInterface) error {
	o.r.mu.Lock()
	defer o.r.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	if a == nil {
		o.attrs = o.r.newDefaultAttributes()
		return nil
	}
	attrs, ok := a.(*attributes)
	if !ok || attrs.owner != o.r {
		return render.ErrForeignAttributes
	}
	o.attrs = attrs
	return nil
}

// Close commits the object. For interactive sessions the object is
// removed from the live render; otherwise it is flushed and frozen.
func (o *object) Close() error {
	o.r.mu.Lock()
	defer o.r.mu.Unlock()
	if err := o.editableLocked(); err != nil {
		return err
	}
	if o.r.renderType == render.Interactive {
		o.removed = true
		for i, other := range o.r.objects {
			if other == o {
				o.r.objects = append(o.r.objects[:i], o.r.objects[i+1:]...)
				break
			}
		}
		return nil
	}
	o.committed = true
	return nil
}

func (o *object) editableLocked() error {
	if o.removed {
		return render.ErrObjectRemoved
	}
	if o.committed {
		return render.ErrObjectCommitted
	}
	return nil
}
