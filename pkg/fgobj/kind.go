package fgobj

import (
	"fmt"
	"sort"
)

// Kind names a FortiGate object class.
type Kind string

// Supported object kinds.
const (
	KindInterface Kind = "interface"
	KindAddress   Kind = "address"
	KindPolicy    Kind = "policy"
	KindService   Kind = "service"
	KindRoute     Kind = "route"
	KindVdom      Kind = "vdom"
	KindVdomLink  Kind = "vdom-link"
	KindPhase1    Kind = "phase1"
	KindPhase2    Kind = "phase2"
)

// Scope says which configuration context a kind lives in.
type Scope int

const (
	// ScopeVDOM objects are wrapped in "config vdom / edit <vdom>" when the
	// object carries a VDOM.
	ScopeVDOM Scope = iota
	// ScopeGlobal objects are always wrapped in "config global". VDOMs and
	// vdom-links are created there.
	ScopeGlobal
)

func (s Scope) String() string {
	switch s {
	case ScopeVDOM:
		return "vdom"
	case ScopeGlobal:
		return "global"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// KindInfo is the static description of a kind: where it lives in the CLI
// tree and in the REST API.
type KindInfo struct {
	Kind    Kind
	CLIPath string
	APIPath string
	APIName string
	Scope   Scope
}

var kinds = map[Kind]KindInfo{
	KindInterface: {KindInterface, "config system interface", "system", "interface", ScopeVDOM},
	KindAddress:   {KindAddress, "config firewall address", "firewall", "address", ScopeVDOM},
	KindPolicy:    {KindPolicy, "config firewall policy", "firewall", "policy", ScopeVDOM},
	KindService:   {KindService, "config firewall service custom", "firewall.service", "custom", ScopeVDOM},
	KindRoute:     {KindRoute, "config router static", "router", "static", ScopeVDOM},
	KindVdom:      {KindVdom, "config vdom", "system", "vdom", ScopeGlobal},
	KindVdomLink:  {KindVdomLink, "config system vdom-link", "system", "vdom-link", ScopeGlobal},
	KindPhase1:    {KindPhase1, "config vpn ipsec phase1-interface", "vpn.ipsec", "phase1-interface", ScopeVDOM},
	KindPhase2:    {KindPhase2, "config vpn ipsec phase2-interface", "vpn.ipsec", "phase2-interface", ScopeVDOM},
}

// Lookup returns the description of k.
func Lookup(k Kind) (KindInfo, bool) {
	info, ok := kinds[k]
	return info, ok
}

// ParseKind resolves a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("unknown object kind %q", s)
	}
	return k, nil
}

var fieldNames = map[Kind][]string{}

// describe records the internal field names of a kind. Each kind file calls
// it from init.
func describe(k Kind, names []string) {
	fieldNames[k] = names
}

// FieldNames returns the internal field names of k in declaration order.
func FieldNames(k Kind) []string {
	return append([]string(nil), fieldNames[k]...)
}

// Kinds returns every registered kind sorted by name.
func Kinds() []KindInfo {
	out := make([]KindInfo, 0, len(kinds))
	for _, info := range kinds {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
