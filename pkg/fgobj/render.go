package fgobj

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Op is a render operation.
type Op string

// Render operations.
const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpGet    Op = "get"
)

// ParseOp resolves an operation name.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(s)); op {
	case OpAdd, OpUpdate, OpDelete, OpGet:
		return op, nil
	default:
		return "", fmt.Errorf("unknown operation %q (want add, update, delete or get)", s)
	}
}

// globalVDOM is the VDOM name FortiOS uses for the global context.
const globalVDOM = "global"

// APIRequest describes one FortiGate REST call. Transmitting it is left to
// the caller.
type APIRequest struct {
	API        string                 `json:"api" yaml:"api"`
	Path       string                 `json:"path" yaml:"path"`
	Name       string                 `json:"name" yaml:"name"`
	MKey       interface{}            `json:"mkey" yaml:"mkey"`
	Action     interface{}            `json:"action" yaml:"action"`
	Parameters map[string]interface{} `json:"parameters" yaml:"parameters"`
	Data       map[string]interface{} `json:"data" yaml:"data"`
}

// RenderCLI produces the CLI script for op. There is no CLI form of get.
func RenderCLI(obj Object, op Op) (string, error) {
	switch op {
	case OpAdd:
		return CLIAdd(obj)
	case OpUpdate:
		return CLIUpdate(obj)
	case OpDelete:
		return CLIDelete(obj)
	default:
		return "", fmt.Errorf("operation %q has no CLI form", op)
	}
}

// RenderAPI produces the API request for op.
func RenderAPI(obj Object, op Op) (*APIRequest, error) {
	switch op {
	case OpAdd:
		return APIAdd(obj)
	case OpUpdate:
		return APIUpdate(obj)
	case OpDelete:
		return APIDelete(obj)
	case OpGet:
		return APIGet(obj)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// CLIAdd renders obj as a config/edit/set block.
func CLIAdd(obj Object) (string, error) {
	info, id, err := prepare(obj)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	wrapped := openScope(&b, info.Scope, obj.VDOM())
	b.WriteString(info.CLIPath + "\n")
	b.WriteString("  edit \"" + id + "\"\n")
	for _, f := range obj.Fields() {
		if f.CLIExcluded || f.Value == nil {
			continue
		}
		if tbl, ok := f.Value.(field.Table); ok {
			writeTable(&b, f.Wire, tbl)
			continue
		}
		fmt.Fprintf(&b, "    set %s %s\n", f.Wire, f.Value.CLI())
	}
	b.WriteString("  end\nend\n")
	if wrapped {
		b.WriteString("end\n")
	}

	util.WithObject(string(obj.Kind()), obj.ID()).Debug("rendered CLI add")
	return b.String(), nil
}

// CLIUpdate is identical to CLIAdd: editing an existing entry overwrites the
// fields that are set.
func CLIUpdate(obj Object) (string, error) {
	return CLIAdd(obj)
}

// CLIDelete renders the delete statement for obj.
func CLIDelete(obj Object) (string, error) {
	info, id, err := prepare(obj)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	wrapped := openScope(&b, info.Scope, obj.VDOM())
	b.WriteString(info.CLIPath + "\n")
	b.WriteString("delete " + util.QuoteIfSpaced(id) + "\n")
	b.WriteString("end\n")
	if wrapped {
		b.WriteString("end\n")
	}

	util.WithObject(string(obj.Kind()), obj.ID()).Debug("rendered CLI delete")
	return b.String(), nil
}

// APIAdd renders a create request. mkey is nil; the identifier travels in
// data.
func APIAdd(obj Object) (*APIRequest, error) {
	return apiWithData(obj, false)
}

// APIUpdate renders an update request keyed by the identifier.
func APIUpdate(obj Object) (*APIRequest, error) {
	return apiWithData(obj, true)
}

// APIDelete renders a delete request. data is empty; mkey carries the key.
func APIDelete(obj Object) (*APIRequest, error) {
	return apiKeyed(obj)
}

// APIGet renders a read request with the same shape as APIDelete.
func APIGet(obj Object) (*APIRequest, error) {
	return apiKeyed(obj)
}

func apiWithData(obj Object, keyed bool) (*APIRequest, error) {
	req, err := apiBase(obj)
	if err != nil {
		return nil, err
	}
	if keyed {
		req.MKey = obj.ID()
	}
	for _, f := range obj.Fields() {
		if f.Value == nil {
			continue
		}
		req.Data[f.Wire] = f.Value.API()
	}
	util.WithObject(string(obj.Kind()), obj.ID()).Debugf("rendered API request with %d data keys", len(req.Data))
	return req, nil
}

func apiKeyed(obj Object) (*APIRequest, error) {
	req, err := apiBase(obj)
	if err != nil {
		return nil, err
	}
	req.MKey = obj.ID()
	return req, nil
}

func apiBase(obj Object) (*APIRequest, error) {
	info, _, err := prepare(obj)
	if err != nil {
		return nil, err
	}
	req := &APIRequest{
		API:        "cmdb",
		Path:       info.APIPath,
		Name:       info.APIName,
		Parameters: map[string]interface{}{},
		Data:       map[string]interface{}{},
	}
	if vdom := obj.VDOM(); vdom != "" && vdom != globalVDOM && info.Scope == ScopeVDOM {
		req.Parameters["vdom"] = vdom
	}
	return req, nil
}

// prepare resolves the kind and checks that an identifier is present.
func prepare(obj Object) (KindInfo, string, error) {
	info, ok := Lookup(obj.Kind())
	if !ok {
		return KindInfo{}, "", fmt.Errorf("unknown object kind %q", obj.Kind())
	}
	id := obj.ID()
	if id == nil {
		return KindInfo{}, "", util.NewMissingError(identifierName(obj), "identifier must be set before rendering")
	}
	return info, idText(id), nil
}

func identifierName(obj Object) string {
	for _, f := range obj.Fields() {
		if f.CLIExcluded {
			return f.Wire
		}
	}
	return "name"
}

func idText(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// openScope writes the VDOM or global wrapper and reports whether one was
// opened.
func openScope(b *strings.Builder, s Scope, vdom string) bool {
	switch s {
	case ScopeGlobal:
		b.WriteString("config global\n")
		return true
	case ScopeVDOM:
		if vdom == globalVDOM {
			b.WriteString("config global\n")
			return true
		}
		if vdom != "" {
			b.WriteString("config vdom\n  edit " + vdom + "\n")
			return true
		}
	}
	return false
}

func writeTable(b *strings.Builder, wire string, tbl field.Table) {
	b.WriteString("    config " + wire + "\n")
	for _, e := range tbl {
		if e.Value == nil {
			continue
		}
		fmt.Fprintf(b, "      set %s %s\n", e.Wire, e.Value.CLI())
	}
	b.WriteString("    end\n")
}
