// Package fgobj models FortiGate configuration objects.
//
// Each object kind has a validating constructor that returns an immutable
// value or a *util.FieldError, and a field schema built once at package
// init. The generic renderers in render.go walk that schema to produce
// either a FortiOS CLI script fragment or a REST API request descriptor.
package fgobj

import (
	"strings"

	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Object is a validated configuration object the renderers can consume.
type Object interface {
	// Kind identifies the object class and, through the registry, its CLI
	// and API location.
	Kind() Kind
	// ID returns the identifier (a string name or an int64 sequence
	// number), or nil when none was set.
	ID() interface{}
	// VDOM returns the VDOM scope, or "" for the default context.
	VDOM() string
	// Fields returns the object's fields in declaration order.
	Fields() []Field
}

// Field is one entry of an object's field list.
type Field struct {
	Name        string      // internal name, as used by constructors and manifests
	Wire        string      // FortiGate attribute name
	CLIExcluded bool        // omitted from CLI set lines (the identifier)
	Value       field.Value // nil when absent
}

// fieldSpec declares one field of kind T: its names and how to read the
// validated value from an instance.
type fieldSpec[T any] struct {
	name    string
	wire    string
	cliSkip bool
	get     func(*T) field.Value
}

// schema is the ordered field declaration for one kind.
type schema[T any] []fieldSpec[T]

func (s schema[T]) fields(obj *T) []Field {
	out := make([]Field, len(s))
	for i, spec := range s {
		out[i] = Field{
			Name:        spec.name,
			Wire:        spec.wire,
			CLIExcluded: spec.cliSkip,
			Value:       spec.get(obj),
		}
	}
	return out
}

// names returns the internal field names in declaration order.
func (s schema[T]) names() []string {
	out := make([]string, len(s))
	for i, spec := range s {
		out[i] = spec.name
	}
	return out
}

var vdomName = field.Str{Min: 1, Max: 31, NoSpace: true}

// checkVDOM validates an optional VDOM name.
func checkVDOM(vdom string) (string, error) {
	return vdomName.Optional("vdom", vdom)
}

// scope is embedded by every kind that can live inside a VDOM.
type scope struct {
	vdom string
}

// VDOM implements Object.
func (s scope) VDOM() string { return s.vdom }

// logBuilt records a successfully constructed object at debug level.
func logBuilt(obj Object) {
	util.WithObject(string(obj.Kind()), obj.ID()).Debug("object constructed")
}

func joinWords(words []string) string {
	return strings.Join(words, " ")
}

func splitWords(s string) []string {
	return strings.Fields(s)
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func copyInt(n *int64) *int64 {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func copyInts(s []int64) []int64 {
	if s == nil {
		return nil
	}
	return append([]int64(nil), s...)
}
