package preview

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/emberfx/ember"
	"github.com/emberfx/ember/render"
)

// drawable is one renderable primitive with its state resolved at
// snapshot time.
type drawable struct {
	inverse ember.Matrix33
	prim    ember.Primitive
	color   ember.RGBA
	opacity float64
}

// frameSnapshot is an immutable copy of everything one frame needs, so
// rasterization can run without holding the renderer lock.
type frameSnapshot struct {
	width, height int
	pixelAspect   float64
	crop          ember.Box2
	cameraInverse ember.Matrix33
	illumination  float64
	drawables     []drawable
}

// snapshotLocked resolves options, lights, and objects into a frame
// snapshot. The renderer mutex must be held.
func (r *Renderer) snapshotLocked() frameSnapshot {
	snap := frameSnapshot{
		width:         render.DefaultResolutionX,
		height:        render.DefaultResolutionY,
		pixelAspect:   render.DefaultPixelAspectRatio,
		crop:          ember.UnitBox(),
		cameraInverse: ember.Identity33(),
	}

	if w, h, ok := render.OptionInt2(r.options[render.OptionResolution]); ok {
		if w > 0 && h > 0 {
			snap.width, snap.height = w, h
		} else {
			ember.Logger().Warn("preview: ignoring non-positive resolution",
				"width", w, "height", h)
		}
	}
	if par, ok := render.OptionFloat(r.options[render.OptionPixelAspectRatio]); ok {
		snap.pixelAspect = par
	}
	if crop, ok := render.OptionBox2(r.options[render.OptionCropWindow]); ok {
		snap.crop = crop
	}

	cameraName, _ := render.OptionString(r.options[render.OptionCamera])
	lit := false
	for _, o := range r.objects {
		if o.light {
			snap.illumination += o.attrs.intensity
			lit = true
		}
		if cameraName != "" && o.name == cameraName && o.obj != nil && o.obj.Kind() == "camera" {
			snap.cameraInverse = o.xform.Invert()
		}

		prim, ok := o.obj.(ember.Primitive)
		if !ok {
			continue
		}
		// Single-sided primitives vanish when their transform flips
		// orientation.
		if !o.attrs.doubleSided && o.xform.Determinant2D() < 0 {
			continue
		}
		snap.drawables = append(snap.drawables, drawable{
			inverse: o.xform.Invert(),
			prim:    prim,
			color:   o.attrs.color,
			opacity: o.attrs.opacity,
		})
	}
	if !lit {
		snap.illumination = 1
	}
	return snap
}

// renderFrame rasterizes a snapshot into a framebuffer, rendering row
// bands in parallel.
func renderFrame(snap frameSnapshot) (*ember.Pixmap, error) {
	frame := ember.NewPixmap(snap.width, snap.height)
	frame.Fill(ember.Black)

	workers := runtime.NumCPU()
	if workers > snap.height {
		workers = snap.height
	}
	if workers < 1 {
		workers = 1
	}
	band := (snap.height + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < snap.height; start += band {
		end := start + band
		if end > snap.height {
			end = snap.height
		}
		start := start
		g.Go(func() error {
			renderRows(frame, snap, start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frame, nil
}

func renderRows(frame *ember.Pixmap, snap frameSnapshot, yStart, yEnd int) {
	for y := yStart; y < yEnd; y++ {
		ny := (float64(y) + 0.5) / float64(snap.height)
		for x := 0; x < snap.width; x++ {
			nx := (float64(x) + 0.5) / float64(snap.width)
			if !snap.crop.Contains(ember.V2(nx, ny)) {
				continue
			}

			// Pixel aspect squeezes the horizontal axis about the
			// frame center.
			sx := (nx-0.5)*snap.pixelAspect + 0.5
			p := snap.cameraInverse.TransformPoint(ember.V2(sx, ny))

			out := ember.Black
			hit := false
			for _, d := range snap.drawables {
				if !d.prim.Contains(d.inverse.TransformPoint(p)) {
					continue
				}
				c := d.color.Scale(snap.illumination)
				c.A = d.opacity
				out = c.Over(out)
				hit = true
			}
			if hit {
				frame.SetPixel(x, y, out)
			}
		}
	}
}
