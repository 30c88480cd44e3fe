package scenefile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/emberfx/ember"
)

// document is the serialized form of one scene declaration.
type document struct {
	Options map[string]any `yaml:"options,omitempty"`
	Outputs []outputDoc    `yaml:"outputs,omitempty"`
	Objects []objectDoc    `yaml:"objects,omitempty"`
}

type outputDoc struct {
	Name     string         `yaml:"name"`
	Filename string         `yaml:"filename"`
	Format   string         `yaml:"format,omitempty"`
	Data     string         `yaml:"data,omitempty"`
	Params   map[string]any `yaml:"params,omitempty"`
}

type objectDoc struct {
	Name       string         `yaml:"name"`
	Light      bool           `yaml:"light,omitempty"`
	Geometry   *geometryDoc   `yaml:"geometry,omitempty"`
	Transform  [][]float64    `yaml:"transform,flow"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
	Committed  bool           `yaml:"committed"`
}

type geometryDoc struct {
	Kind   string    `yaml:"kind"`
	Radius float64   `yaml:"radius,omitempty"`
	Size   []float64 `yaml:"size,omitempty,flow"`
}

// documentLocked builds the document from the current declaration.
// The renderer mutex must be held. Outputs are sorted by name;
// objects keep emission order.
func (r *Renderer) documentLocked() document {
	doc := document{}

	if len(r.options) > 0 {
		doc.Options = make(map[string]any, len(r.options))
		for name, value := range r.options {
			doc.Options[name] = normalizeAttr(value)
		}
	}

	names := make([]string, 0, len(r.outputs))
	for name := range r.outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o := r.outputs[name]
		doc.Outputs = append(doc.Outputs, outputDoc{
			Name:     name,
			Filename: o.Filename,
			Format:   o.Format,
			Data:     o.Data,
			Params:   o.Params,
		})
	}

	for _, o := range r.objects {
		doc.Objects = append(doc.Objects, objectDoc{
			Name:       o.name,
			Light:      o.light,
			Geometry:   geometryOf(o.obj),
			Transform:  matrixRows(o.xform),
			Attributes: o.attrs.data,
			Committed:  o.committed,
		})
	}
	return doc
}

// geometryOf describes an object payload, or nil for an absent one
// (a light whose shape is implicit in its shader).
func geometryOf(obj ember.Object) *geometryDoc {
	switch obj := obj.(type) {
	case nil:
		return nil
	case ember.Disk:
		return &geometryDoc{Kind: obj.Kind(), Radius: obj.Radius}
	case ember.Quad:
		return &geometryDoc{Kind: obj.Kind(), Size: []float64{obj.Size.X, obj.Size.Y}}
	default:
		return &geometryDoc{Kind: obj.Kind()}
	}
}

func matrixRows(m ember.Matrix33) [][]float64 {
	rows := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		rows[i] = []float64{m[i][0], m[i][1], m[i][2]}
	}
	return rows
}

// writeDocument serializes doc to the named file.
func writeDocument(path string, doc document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
