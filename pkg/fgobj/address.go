package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Address types.
const (
	AddrIPMask  = "ipmask"
	AddrIPRange = "iprange"
	AddrFQDN    = "fqdn"
)

// AddressConfig holds the constructor input for a firewall address.
type AddressConfig struct {
	Name                string
	VDOM                string
	Type                string // ipmask, iprange or fqdn; inferred from the address fields when empty
	Subnet              string // ipmask: network with host bits clear
	FQDN                string
	StartIP             string // iprange: both ends required, start below end
	EndIP               string
	Visibility          *bool
	AssociatedInterface string
	Comment             string
}

// Address is a validated firewall address.
type Address struct {
	scope
	cfg AddressConfig
}

var (
	addrName    = field.Str{Min: 1, Max: 79}
	addrFQDN    = field.Str{Min: 1, Max: 255}
	addrIntf    = field.Str{Min: 1, Max: 35}
	addrComment = field.Str{Min: 1, Max: 255}
	addrTypes   = field.NewEnum(AddrIPMask, AddrIPRange, AddrFQDN)
)

var addressSchema = schema[Address]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Address) field.Value { return field.OptToken(o.cfg.Name) }},
	{name: "type", wire: "type", get: func(o *Address) field.Value { return field.OptToken(o.cfg.Type) }},
	{name: "subnet", wire: "subnet", get: func(o *Address) field.Value { return field.OptToken(o.cfg.Subnet) }},
	{name: "fqdn", wire: "fqdn", get: func(o *Address) field.Value { return field.OptText(o.cfg.FQDN) }},
	{name: "start_ip", wire: "start-ip", get: func(o *Address) field.Value { return field.OptToken(o.cfg.StartIP) }},
	{name: "end_ip", wire: "end-ip", get: func(o *Address) field.Value { return field.OptToken(o.cfg.EndIP) }},
	{name: "visibility", wire: "visibility", get: func(o *Address) field.Value { return field.Toggle(o.cfg.Visibility) }},
	{name: "associated_interface", wire: "associated-interface", get: func(o *Address) field.Value {
		return field.OptText(o.cfg.AssociatedInterface)
	}},
	{name: "comment", wire: "comments", get: func(o *Address) field.Value { return field.OptText(o.cfg.Comment) }},
}

func init() {
	describe(KindAddress, addressSchema.names())
}

// NewAddress validates cfg and builds an Address.
func NewAddress(cfg AddressConfig) (*Address, error) {
	var err error
	o := &Address{}

	if cfg.Name, err = addrName.Required("name", cfg.Name); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	if cfg.Type, err = addrTypes.Optional("type", cfg.Type); err != nil {
		return nil, err
	}
	if cfg.Subnet, err = field.Network("subnet", cfg.Subnet); err != nil {
		return nil, err
	}
	if cfg.FQDN, err = addrFQDN.Optional("fqdn", cfg.FQDN); err != nil {
		return nil, err
	}
	if err = checkRange(&cfg); err != nil {
		return nil, err
	}
	if err = checkAddressType(&cfg); err != nil {
		return nil, err
	}

	if cfg.AssociatedInterface, err = addrIntf.Optional("associated-interface", cfg.AssociatedInterface); err != nil {
		return nil, err
	}
	if cfg.Comment, err = addrComment.Optional("comments", cfg.Comment); err != nil {
		return nil, err
	}
	cfg.Visibility = copyBool(cfg.Visibility)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

// checkRange validates the iprange pair: both or neither, same family,
// start strictly below end.
func checkRange(cfg *AddressConfig) error {
	if cfg.StartIP == "" && cfg.EndIP == "" {
		return nil
	}
	if cfg.StartIP == "" {
		return util.NewMissingError("start-ip", "start-ip and end-ip must be set together")
	}
	if cfg.EndIP == "" {
		return util.NewMissingError("end-ip", "start-ip and end-ip must be set together")
	}

	s, err := field.ParseAddress("start-ip", cfg.StartIP)
	if err != nil {
		return err
	}
	e, err := field.ParseAddress("end-ip", cfg.EndIP)
	if err != nil {
		return err
	}
	start, end := s.String(), e.String()
	if s.Is4() != e.Is4() {
		return util.NewCrossFieldError("end-ip", end, "must be the same address family as start-ip")
	}
	if !s.Less(e) {
		return util.NewCrossFieldError("end-ip", end, "must be higher than start-ip "+start)
	}
	cfg.StartIP, cfg.EndIP = start, end
	return nil
}

// checkAddressType infers the type from the address fields when it was not
// given and rejects fields that do not belong to the type.
func checkAddressType(cfg *AddressConfig) error {
	hasMask := cfg.Subnet != ""
	hasRange := cfg.StartIP != ""
	hasFQDN := cfg.FQDN != ""

	if cfg.Type == "" {
		n := 0
		for _, b := range []bool{hasMask, hasRange, hasFQDN} {
			if b {
				n++
			}
		}
		if n > 1 {
			return util.NewCrossFieldError("type", nil, "subnet, start-ip/end-ip and fqdn are mutually exclusive")
		}
		switch {
		case hasMask:
			cfg.Type = AddrIPMask
		case hasRange:
			cfg.Type = AddrIPRange
		case hasFQDN:
			cfg.Type = AddrFQDN
		}
		return nil
	}

	switch cfg.Type {
	case AddrIPMask:
		if hasRange || hasFQDN {
			return util.NewCrossFieldError("type", AddrIPMask, "only subnet applies")
		}
	case AddrIPRange:
		if !hasRange {
			return util.NewMissingError("start-ip", "required for iprange addresses")
		}
		if hasMask || hasFQDN {
			return util.NewCrossFieldError("type", AddrIPRange, "only start-ip and end-ip apply")
		}
	case AddrFQDN:
		if !hasFQDN {
			return util.NewMissingError("fqdn", "required for fqdn addresses")
		}
		if hasMask || hasRange {
			return util.NewCrossFieldError("type", AddrFQDN, "only fqdn applies")
		}
	}
	return nil
}

// Kind implements Object.
func (o *Address) Kind() Kind { return KindAddress }

// ID implements Object.
func (o *Address) ID() interface{} {
	if o.cfg.Name == "" {
		return nil
	}
	return o.cfg.Name
}

// Fields implements Object.
func (o *Address) Fields() []Field { return addressSchema.fields(o) }

// Config returns a copy of the normalized configuration.
func (o *Address) Config() AddressConfig {
	c := o.cfg
	c.Visibility = copyBool(c.Visibility)
	return c
}
