// Package export delivers rendered objects to a destination: a file or
// terminal, or a Redis outbox that an external applier drains.
package export

import (
	"context"
	"fmt"

	"github.com/newtron-network/fgobj/pkg/fgobj"
)

// Rendered is one object in both output forms. CLI is empty for get, which
// has no CLI form.
type Rendered struct {
	Kind fgobj.Kind
	ID   interface{}
	VDOM string
	Op   fgobj.Op
	CLI  string
	API  *fgobj.APIRequest
}

// Sink receives rendered objects.
type Sink interface {
	Write(ctx context.Context, batch []Rendered) error
	Close() error
}

// Render produces both forms of obj for op.
func Render(obj fgobj.Object, op fgobj.Op) (Rendered, error) {
	r := Rendered{Kind: obj.Kind(), ID: obj.ID(), VDOM: obj.VDOM(), Op: op}

	var err error
	if op != fgobj.OpGet {
		if r.CLI, err = fgobj.RenderCLI(obj, op); err != nil {
			return Rendered{}, err
		}
	}
	if r.API, err = fgobj.RenderAPI(obj, op); err != nil {
		return Rendered{}, err
	}
	return r, nil
}

// RenderAll renders objs in order with ops[i] applied to objs[i]. An empty
// ops[i] falls back to def.
func RenderAll(objs []fgobj.Object, ops []fgobj.Op, def fgobj.Op) ([]Rendered, error) {
	out := make([]Rendered, 0, len(objs))
	for i, obj := range objs {
		op := def
		if i < len(ops) && ops[i] != "" {
			op = ops[i]
		}
		r, err := Render(obj, op)
		if err != nil {
			return nil, fmt.Errorf("rendering %s %v: %w", obj.Kind(), obj.ID(), err)
		}
		out = append(out, r)
	}
	return out, nil
}
