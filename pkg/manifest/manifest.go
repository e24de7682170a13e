// Package manifest loads declarative object lists and turns them into
// validated fgobj objects.
//
// A manifest is YAML (or JSON, which yaml.v3 reads as YAML):
//
//	vdom: root
//	objects:
//	  - kind: interface
//	    preset: vlan
//	    params:
//	      name: vlan100
//	      vlanid: 100
//	      parent: port1
//
// Parameter keys are the internal field names reported by
// fgobj.FieldNames. Every entry is validated; Build reports all failing
// entries at once.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/newtron-network/fgobj/pkg/fgobj"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Manifest is the decoded file.
type Manifest struct {
	VDOM    string  `yaml:"vdom,omitempty" json:"vdom,omitempty"`
	Objects []Entry `yaml:"objects" json:"objects"`
}

// Entry declares one object.
type Entry struct {
	Kind   string                 `yaml:"kind" json:"kind"`
	Preset string                 `yaml:"preset,omitempty" json:"preset,omitempty"`
	Op     string                 `yaml:"op,omitempty" json:"op,omitempty"`
	Params map[string]interface{} `yaml:"params,omitempty" json:"params,omitempty"`
}

// Item is a built object with the operation its entry asked for. Op is
// empty when the entry left it to the caller.
type Item struct {
	Object fgobj.Object
	Op     fgobj.Op
}

// Parse decodes manifest data without building objects.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes the manifest at path.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build validates every entry and returns the objects in manifest order.
// When any entry fails, the result is a *util.ValidationError naming each
// failing entry by index and kind; the individual FieldErrors stay
// reachable through errors.Is and errors.As.
func (m *Manifest) Build() ([]Item, error) {
	if len(m.Objects) == 0 {
		return nil, util.NewValidationError("manifest declares no objects")
	}

	v := &util.ValidationBuilder{}
	items := make([]Item, 0, len(m.Objects))
	for i, e := range m.Objects {
		prefix := fmt.Sprintf("objects[%d] (%s)", i, e.Kind)
		item, err := m.buildEntry(e)
		if err != nil {
			util.WithKind(e.Kind).Debugf("manifest entry %d rejected: %v", i, err)
			v.AddCause(prefix, err)
			continue
		}
		util.WithObject(string(item.Object.Kind()), item.Object.ID()).Debugf("manifest entry %d loaded", i)
		items = append(items, item)
	}
	if err := v.Build(); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Manifest) buildEntry(e Entry) (Item, error) {
	kind, err := fgobj.ParseKind(e.Kind)
	if err != nil {
		return Item{}, err
	}
	var op fgobj.Op
	if e.Op != "" {
		if op, err = fgobj.ParseOp(e.Op); err != nil {
			return Item{}, err
		}
	}

	p := newParams(kind, e.Params, m.VDOM)
	obj, err := builders[kind](p, e.Preset)
	if err != nil {
		return Item{}, err
	}
	return Item{Object: obj, Op: op}, nil
}

// Load parses data and builds its objects.
func Load(data []byte) ([]Item, error) {
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// LoadFile parses the manifest at path and builds its objects.
func LoadFile(path string) ([]Item, error) {
	m, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	items, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Objects returns the objects of items, dropping the per-entry operations.
func Objects(items []Item) []fgobj.Object {
	out := make([]fgobj.Object, len(items))
	for i, it := range items {
		out[i] = it.Object
	}
	return out
}
