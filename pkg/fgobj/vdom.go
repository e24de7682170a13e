package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
)

// Vdom is a virtual domain. It is created outside any VDOM context.
type Vdom struct {
	name string
}

var vdomSchema = schema[Vdom]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Vdom) field.Value { return field.OptToken(o.name) }},
}

// NewVdom validates name and builds a Vdom.
func NewVdom(name string) (*Vdom, error) {
	n, err := vdomName.Required("name", name)
	if err != nil {
		return nil, err
	}
	o := &Vdom{name: n}
	logBuilt(o)
	return o, nil
}

// Kind implements Object.
func (o *Vdom) Kind() Kind { return KindVdom }

// ID implements Object.
func (o *Vdom) ID() interface{} {
	if o.name == "" {
		return nil
	}
	return o.name
}

// VDOM implements Object. A VDOM is never scoped by another VDOM.
func (o *Vdom) VDOM() string { return "" }

// Fields implements Object.
func (o *Vdom) Fields() []Field { return vdomSchema.fields(o) }

// VdomLink is a global vdom-link. Creating it creates two endpoint
// interfaces named <name>_0 and <name>_1.
type VdomLink struct {
	name     string
	linkType string
}

var vdomLinkTypes = field.NewEnum("ppp", "ethernet").Alias("eth", "ethernet")

var vdomLinkSchema = schema[VdomLink]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *VdomLink) field.Value { return field.OptToken(o.name) }},
	{name: "type", wire: "type", get: func(o *VdomLink) field.Value { return field.OptToken(o.linkType) }},
}

func init() {
	describe(KindVdom, vdomSchema.names())
	describe(KindVdomLink, vdomLinkSchema.names())
}

// NewVdomLink validates its input and builds a VdomLink. linkType is ppp,
// ethernet or empty for the device default.
func NewVdomLink(name, linkType string) (*VdomLink, error) {
	n, err := vlinkName.Required("name", name)
	if err != nil {
		return nil, err
	}
	t, err := vdomLinkTypes.Optional("type", linkType)
	if err != nil {
		return nil, err
	}
	o := &VdomLink{name: n, linkType: t}
	logBuilt(o)
	return o, nil
}

// Kind implements Object.
func (o *VdomLink) Kind() Kind { return KindVdomLink }

// ID implements Object.
func (o *VdomLink) ID() interface{} {
	if o.name == "" {
		return nil
	}
	return o.name
}

// VDOM implements Object. vdom-links are global.
func (o *VdomLink) VDOM() string { return "" }

// Fields implements Object.
func (o *VdomLink) Fields() []Field { return vdomLinkSchema.fields(o) }

// Type returns the link type, or "" when left to the device default.
func (o *VdomLink) Type() string { return o.linkType }

// EndpointNames returns the two interfaces the link creates.
func (o *VdomLink) EndpointNames() []string {
	return vdomLinkEndpoints(o.name)
}

func vdomLinkEndpoints(name string) []string {
	return []string{name + "_0", name + "_1"}
}
