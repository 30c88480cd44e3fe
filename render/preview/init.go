package preview

import (
	"fmt"

	"github.com/emberfx/ember/render"
)

// Name is the registry name of the preview backend.
const Name = "preview"

// init registers the preview backend on package import.
//
// To use the preview backend, import this package:
//
//	import _ "github.com/emberfx/ember/render/preview"
func init() {
	render.Register(Name, func(renderType render.RenderType, fileName string) (render.Renderer, error) {
		if renderType == render.SceneDescription {
			return nil, fmt.Errorf("%w: %s does not serve %s renders",
				render.ErrUnsupportedRenderType, Name, renderType)
		}
		return New(renderType), nil
	})
}
