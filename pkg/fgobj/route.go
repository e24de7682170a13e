package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// RouteConfig holds the constructor input for an IPv4 static route.
// SeqNum may be nil at construction but is required to render; zero is a
// valid sequence number.
type RouteConfig struct {
	SeqNum    *int64
	VDOM      string
	Dst       string // IPv4 network, bare address means /32
	Device    string
	Gateway   string // IPv4 address
	Distance  *int64
	Weight    *int64
	Priority  *int64
	VRF       *int64
	Blackhole *bool
	Comment   string
}

// Route is a validated static route.
type Route struct {
	scope
	cfg RouteConfig
}

var (
	routeSeq      = field.IntRange{Min: 0, Max: 4294967295}
	routeDevice   = field.Str{Min: 1, Max: 35}
	routeDistance = field.IntRange{Min: 1, Max: 255}
	routeWeight   = field.IntRange{Min: 0, Max: 255}
	routePriority = field.IntRange{Min: 0, Max: 4294967295}
	routeVRF      = field.IntRange{Min: 0, Max: 31}
	routeComment  = field.Str{Min: 1, Max: 255}
)

var routeSchema = schema[Route]{
	{name: "seq_num", wire: "seq-num", cliSkip: true, get: func(o *Route) field.Value { return field.OptInt(o.cfg.SeqNum) }},
	{name: "dst", wire: "dst", get: func(o *Route) field.Value { return field.OptToken(o.cfg.Dst) }},
	{name: "device", wire: "device", get: func(o *Route) field.Value { return field.OptText(o.cfg.Device) }},
	{name: "gateway", wire: "gateway", get: func(o *Route) field.Value { return field.OptToken(o.cfg.Gateway) }},
	{name: "distance", wire: "distance", get: func(o *Route) field.Value { return field.OptInt(o.cfg.Distance) }},
	{name: "weight", wire: "weight", get: func(o *Route) field.Value { return field.OptInt(o.cfg.Weight) }},
	{name: "priority", wire: "priority", get: func(o *Route) field.Value { return field.OptInt(o.cfg.Priority) }},
	{name: "vrf", wire: "vrf", get: func(o *Route) field.Value { return field.OptInt(o.cfg.VRF) }},
	{name: "blackhole", wire: "blackhole", get: func(o *Route) field.Value { return field.Toggle(o.cfg.Blackhole) }},
	{name: "comment", wire: "comments", get: func(o *Route) field.Value { return field.OptText(o.cfg.Comment) }},
}

func init() {
	describe(KindRoute, routeSchema.names())
}

// NewRoute validates cfg and builds a Route.
func NewRoute(cfg RouteConfig) (*Route, error) {
	var err error
	o := &Route{}

	if cfg.SeqNum, err = routeSeq.Optional("seq-num", cfg.SeqNum); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	dst, err := field.ParseNetwork("dst", cfg.Dst)
	if err != nil {
		return nil, err
	}
	if dst.IsValid() && !dst.Addr().Is4() {
		return nil, util.NewFormatError("dst", cfg.Dst, "must be an IPv4 network")
	}
	cfg.Dst = ""
	if dst.IsValid() {
		cfg.Dst = dst.String()
	}
	if cfg.Device, err = routeDevice.Optional("device", cfg.Device); err != nil {
		return nil, err
	}
	gw, err := field.ParseAddress("gateway", cfg.Gateway)
	if err != nil {
		return nil, err
	}
	if gw.IsValid() && !gw.Is4() {
		return nil, util.NewFormatError("gateway", cfg.Gateway, "must be an IPv4 address")
	}
	cfg.Gateway = ""
	if gw.IsValid() {
		cfg.Gateway = gw.String()
	}
	if cfg.Blackhole != nil && *cfg.Blackhole {
		if cfg.Device != "" {
			return nil, util.NewCrossFieldError("device", cfg.Device, "not allowed on a blackhole route")
		}
		if cfg.Gateway != "" {
			return nil, util.NewCrossFieldError("gateway", cfg.Gateway, "not allowed on a blackhole route")
		}
	}

	if cfg.Distance, err = routeDistance.Optional("distance", cfg.Distance); err != nil {
		return nil, err
	}
	if cfg.Weight, err = routeWeight.Optional("weight", cfg.Weight); err != nil {
		return nil, err
	}
	if cfg.Priority, err = routePriority.Optional("priority", cfg.Priority); err != nil {
		return nil, err
	}
	if cfg.VRF, err = routeVRF.Optional("vrf", cfg.VRF); err != nil {
		return nil, err
	}
	if cfg.Comment, err = routeComment.Optional("comments", cfg.Comment); err != nil {
		return nil, err
	}
	cfg.Blackhole = copyBool(cfg.Blackhole)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

// NewBlackholeRoute builds a route that discards traffic to cfg.Dst. Device
// and Gateway must be empty.
func NewBlackholeRoute(cfg RouteConfig) (*Route, error) {
	cfg.Blackhole = field.Bool(true)
	return NewRoute(cfg)
}

// Kind implements Object.
func (o *Route) Kind() Kind { return KindRoute }

// ID implements Object. It returns the int64 sequence number or nil.
func (o *Route) ID() interface{} {
	if o.cfg.SeqNum == nil {
		return nil
	}
	return *o.cfg.SeqNum
}

// Fields implements Object.
func (o *Route) Fields() []Field { return routeSchema.fields(o) }

// Config returns a copy of the normalized configuration.
func (o *Route) Config() RouteConfig {
	c := o.cfg
	c.SeqNum, c.Distance = copyInt(c.SeqNum), copyInt(c.Distance)
	c.Weight, c.Priority = copyInt(c.Weight), copyInt(c.Priority)
	c.VRF = copyInt(c.VRF)
	c.Blackhole = copyBool(c.Blackhole)
	return c
}
