package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Interface types.
const (
	IntfStandard = "standard"
	IntfVLAN     = "vlan"
	IntfLoopback = "loopback"
	IntfVdomLink = "vdom-link"
)

// InterfaceConfig holds the constructor input for a system interface.
// Empty strings and nil pointers mean "not provided".
type InterfaceConfig struct {
	Name                 string
	VDOM                 string
	Type                 string // standard (default), vlan, loopback, vdom-link
	Mode                 string // static or dhcp; static is inferred when IP is set
	IP                   string // IPv4 address with optional mask, bare means /32
	IPv6                 string
	IPv6Mode             string // static or dhcp; static is inferred when IPv6 is set
	AllowAccess          []string
	Role                 string
	VLANID               *int64
	Parent               string // physical interface a VLAN rides on
	VRF                  *int64
	DeviceIdentification *bool
	Alias                string
	Description          string
}

// Interface is a validated system interface. A vdom-link typed interface
// renders as the vdom-link object that creates both endpoints.
type Interface struct {
	scope
	cfg InterfaceConfig
}

var (
	intfName      = field.Str{Min: 1, Max: 14}
	vlinkName     = field.Str{Min: 1, Max: 11}
	intfParent    = field.Str{Min: 1, Max: 31}
	intfAlias     = field.Str{Min: 1, Max: 25}
	intfDescr     = field.Str{Min: 1, Max: 255}
	intfVLANID    = field.IntRange{Min: 1, Max: 4096}
	intfVRF       = field.IntRange{Min: 0, Max: 31}
	intfTypes     = field.NewEnum(IntfStandard, IntfVLAN, IntfLoopback, IntfVdomLink)
	intfModes     = field.NewEnum("static", "dhcp")
	intfRoles     = field.NewEnum("wan", "lan", "dmz", "undefined")
	intfAllowance = field.NewEnum("ping", "http", "https", "snmp", "ssh", "telnet", "fgfm",
		"radius-acct", "probe-response", "capwap", "ftm").Alias("radius=acct", "radius-acct")
)

var interfaceSchema = schema[Interface]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Interface) field.Value { return field.OptToken(o.cfg.Name) }},
	{name: "vdom", wire: "vdom", get: func(o *Interface) field.Value { return field.OptToken(o.vdom) }},
	{name: "type", wire: "type", get: func(o *Interface) field.Value {
		if o.cfg.Type == IntfStandard {
			return nil
		}
		return field.OptToken(o.cfg.Type)
	}},
	{name: "vlanid", wire: "vlanid", get: func(o *Interface) field.Value { return field.OptInt(o.cfg.VLANID) }},
	{name: "parent", wire: "interface", get: func(o *Interface) field.Value { return field.OptText(o.cfg.Parent) }},
	{name: "mode", wire: "mode", get: func(o *Interface) field.Value { return field.OptToken(o.cfg.Mode) }},
	{name: "ip", wire: "ip", get: func(o *Interface) field.Value { return field.OptToken(o.cfg.IP) }},
	{name: "allowaccess", wire: "allowaccess", get: func(o *Interface) field.Value {
		return field.OptToken(joinWords(o.cfg.AllowAccess))
	}},
	{name: "vrf", wire: "vrf", get: func(o *Interface) field.Value { return field.OptInt(o.cfg.VRF) }},
	{name: "device_identification", wire: "device-identification", get: func(o *Interface) field.Value {
		return field.Toggle(o.cfg.DeviceIdentification)
	}},
	{name: "alias", wire: "alias", get: func(o *Interface) field.Value { return field.OptText(o.cfg.Alias) }},
	{name: "description", wire: "description", get: func(o *Interface) field.Value { return field.OptText(o.cfg.Description) }},
	{name: "role", wire: "role", get: func(o *Interface) field.Value { return field.OptToken(o.cfg.Role) }},
	{name: "ipv6", wire: "ipv6", get: func(o *Interface) field.Value {
		if o.cfg.IPv6Mode == "" {
			return nil
		}
		return field.Table{
			{Wire: "ip6-mode", Value: field.Token(o.cfg.IPv6Mode)},
			{Wire: "ip6-address", Value: field.OptToken(o.cfg.IPv6)},
		}
	}},
}

// vdomLinkIntfSchema is the field list of a vdom-link typed interface.
var vdomLinkIntfSchema = schema[Interface]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Interface) field.Value { return field.OptToken(o.cfg.Name) }},
}

func init() {
	describe(KindInterface, interfaceSchema.names())
}

// NewInterface validates cfg and builds an Interface.
func NewInterface(cfg InterfaceConfig) (*Interface, error) {
	var err error
	o := &Interface{}

	if cfg.Type, err = intfTypes.Optional("type", cfg.Type); err != nil {
		return nil, err
	}
	if cfg.Type == "" {
		cfg.Type = IntfStandard
	}
	if cfg.Type == IntfVdomLink {
		return newVdomLinkInterface(cfg)
	}

	if cfg.Name, err = intfName.Required("name", cfg.Name); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	if cfg.VLANID, err = intfVLANID.Optional("vlanid", cfg.VLANID); err != nil {
		return nil, err
	}
	if cfg.Parent, err = intfParent.Optional("interface", cfg.Parent); err != nil {
		return nil, err
	}
	if cfg.Type == IntfVLAN {
		if cfg.VLANID == nil {
			return nil, util.NewMissingError("vlanid", "required for vlan interfaces")
		}
		if cfg.Parent == "" {
			return nil, util.NewMissingError("interface", "required for vlan interfaces")
		}
	} else if cfg.VLANID != nil {
		return nil, util.NewCrossFieldError("vlanid", *cfg.VLANID, "only valid for vlan interfaces")
	} else if cfg.Parent != "" {
		return nil, util.NewCrossFieldError("interface", cfg.Parent, "only valid for vlan interfaces")
	}

	if cfg.IP, err = ipv4Prefix("ip", cfg.IP); err != nil {
		return nil, err
	}
	if cfg.Mode, err = intfModes.Optional("mode", cfg.Mode); err != nil {
		return nil, err
	}
	switch {
	case cfg.Mode == "" && cfg.IP != "":
		cfg.Mode = "static"
	case cfg.Mode == "static" && cfg.IP == "":
		return nil, util.NewCrossFieldError("mode", "static", "requires an IPv4 address in ip")
	case cfg.Mode == "dhcp" && cfg.IP != "":
		return nil, util.NewCrossFieldError("ip", cfg.IP, "only valid with mode static")
	}

	if cfg.IPv6, err = ipv6Prefix("ipv6", cfg.IPv6); err != nil {
		return nil, err
	}
	if cfg.IPv6Mode, err = intfModes.Optional("ip6-mode", cfg.IPv6Mode); err != nil {
		return nil, err
	}
	switch {
	case cfg.IPv6Mode == "" && cfg.IPv6 != "":
		cfg.IPv6Mode = "static"
	case cfg.IPv6Mode == "static" && cfg.IPv6 == "":
		return nil, util.NewCrossFieldError("ip6-mode", "static", "requires an IPv6 address in ipv6")
	case cfg.IPv6Mode == "dhcp" && cfg.IPv6 != "":
		return nil, util.NewCrossFieldError("ipv6", cfg.IPv6, "only valid with ip6-mode static")
	}

	access, err := intfAllowance.List("allowaccess", cfg.AllowAccess)
	if err != nil {
		return nil, err
	}
	cfg.AllowAccess = splitWords(access)

	if cfg.Role, err = intfRoles.Optional("role", cfg.Role); err != nil {
		return nil, err
	}
	if cfg.VRF, err = intfVRF.Optional("vrf", cfg.VRF); err != nil {
		return nil, err
	}
	if cfg.Alias, err = intfAlias.Optional("alias", cfg.Alias); err != nil {
		return nil, err
	}
	if cfg.Description, err = intfDescr.Optional("description", cfg.Description); err != nil {
		return nil, err
	}
	cfg.DeviceIdentification = copyBool(cfg.DeviceIdentification)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

func newVdomLinkInterface(cfg InterfaceConfig) (*Interface, error) {
	name, err := vlinkName.Required("name", cfg.Name)
	if err != nil {
		return nil, err
	}
	if cfg.VDOM != "" && cfg.VDOM != globalVDOM {
		return nil, util.NewCrossFieldError("vdom", cfg.VDOM, "vdom-link interfaces are created in the global context")
	}
	extra := cfg
	extra.Name, extra.Type, extra.VDOM = "", "", ""
	if !isZeroInterfaceConfig(extra) {
		return nil, util.NewCrossFieldError("type", IntfVdomLink, "vdom-link interfaces take only a name")
	}
	o := &Interface{cfg: InterfaceConfig{Name: name, Type: IntfVdomLink}}
	logBuilt(o)
	return o, nil
}

func isZeroInterfaceConfig(c InterfaceConfig) bool {
	return c.Mode == "" && c.IP == "" && c.IPv6 == "" && c.IPv6Mode == "" && len(c.AllowAccess) == 0 &&
		c.Role == "" && c.VLANID == nil && c.Parent == "" && c.VRF == nil &&
		c.DeviceIdentification == nil && c.Alias == "" && c.Description == ""
}

// NewStandardInterface builds a physical or virtual interface with no VLAN
// settings.
func NewStandardInterface(cfg InterfaceConfig) (*Interface, error) {
	cfg.Type = IntfStandard
	return NewInterface(cfg)
}

// NewVLANInterface builds a VLAN interface. VLANID and Parent are required.
func NewVLANInterface(cfg InterfaceConfig) (*Interface, error) {
	cfg.Type = IntfVLAN
	return NewInterface(cfg)
}

// NewVdomLinkInterface builds the vdom-link that creates the endpoint pair
// returned by EndpointNames. The endpoints are configured separately as
// ordinary interfaces.
func NewVdomLinkInterface(name string) (*Interface, error) {
	return NewInterface(InterfaceConfig{Name: name, Type: IntfVdomLink})
}

// Kind implements Object.
func (o *Interface) Kind() Kind {
	if o.cfg.Type == IntfVdomLink {
		return KindVdomLink
	}
	return KindInterface
}

// ID implements Object.
func (o *Interface) ID() interface{} {
	if o.cfg.Name == "" {
		return nil
	}
	return o.cfg.Name
}

// Fields implements Object.
func (o *Interface) Fields() []Field {
	if o.cfg.Type == IntfVdomLink {
		return vdomLinkIntfSchema.fields(o)
	}
	return interfaceSchema.fields(o)
}

// Config returns a copy of the normalized configuration.
func (o *Interface) Config() InterfaceConfig {
	c := o.cfg
	c.AllowAccess = copyStrings(c.AllowAccess)
	c.VLANID, c.VRF = copyInt(c.VLANID), copyInt(c.VRF)
	c.DeviceIdentification = copyBool(c.DeviceIdentification)
	return c
}

// EndpointNames returns the two interfaces a vdom-link creates, or nil for
// any other interface type.
func (o *Interface) EndpointNames() []string {
	if o.cfg.Type != IntfVdomLink {
		return nil
	}
	return vdomLinkEndpoints(o.cfg.Name)
}

func ipv4Prefix(name, s string) (string, error) {
	p, err := field.ParseHostPrefix(name, s)
	if err != nil || !p.IsValid() {
		return "", err
	}
	if !p.Addr().Is4() {
		return "", util.NewFormatError(name, s, "must be an IPv4 address")
	}
	return p.String(), nil
}

func ipv6Prefix(name, s string) (string, error) {
	p, err := field.ParseHostPrefix(name, s)
	if err != nil || !p.IsValid() {
		return "", err
	}
	if !p.Addr().Is6() {
		return "", util.NewFormatError(name, s, "must be an IPv6 address")
	}
	return p.String(), nil
}
