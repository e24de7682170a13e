package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Phase1Config holds the constructor input for an IPsec phase1-interface.
type Phase1Config struct {
	Name                string
	VDOM                string
	Type                string // static (device default) or dynamic
	Interface           string
	Proposal            []string
	IKEVersion          *int64
	LocalGW             string
	PSK                 string
	LocalID             string
	RemoteGW            string // required unless Type is dynamic
	Comment             string
	Keepalive           *int64
	AddRoute            *bool
	AddGWRoute          *bool
	NetDevice           *bool
	TunnelSearch        string // selectors or nexthop
	DPD                 string // disable, on-idle or on-demand
	DHGroups            []int64
	NATTraversal        string // enable, disable or forced
	ExchangeInterfaceIP *bool
}

// Phase1 is a validated IPsec phase1-interface.
type Phase1 struct {
	scope
	cfg      Phase1Config
	proposal string
	dhgrp    string
}

// Phase2Config holds the constructor input for an IPsec phase2-interface.
type Phase2Config struct {
	Name          string
	VDOM          string
	Phase1Name    string
	Proposal      []string
	PFS           *bool
	DHGroups      []int64
	Keepalive     *int64
	Replay        *bool
	AutoNegotiate *bool
	SrcSubnet     string
	DstSubnet     string
	Comment       string
}

// Phase2 is a validated IPsec phase2-interface.
type Phase2 struct {
	scope
	cfg      Phase2Config
	proposal string
	dhgrp    string
}

var (
	ipsecName      = field.Str{Min: 1, Max: 35}
	ipsecComment   = field.Str{Min: 1, Max: 1023}
	ipsecKeepalive = field.IntRange{Min: 10, Max: 900}
	p1Intf         = field.Str{Min: 1, Max: 34}
	p1PSK          = field.Str{Min: 6, Max: 30}
	p1LocalID      = field.Str{Min: 1, Max: 63}
	p1IKEVersion   = field.IntRange{Min: 1, Max: 2}
	p1Types        = field.NewEnum("static", "dynamic")
	p1TunnelSearch = field.NewEnum("selectors", "nexthop")
	p1DPD          = field.NewEnum("disable", "on-idle", "on-demand")
	p1NAT          = field.NewEnum("enable", "disable", "forced")
	dhGroups       = field.NewIntSet(1, 2, 5, 14, 15, 16, 17, 18, 19, 20, 21, 27, 28, 30, 31, 32)
	p1Proposals    = field.NewEnum(cipherSuites(nil)...).Alias("des-sha", "des-sha1")
	p2Proposals    = field.NewEnum(cipherSuites([]string{
		"chacha20poly1305",
		"null-md5", "null-sha1", "null-sha256", "null-sha384", "null-sha512",
		"des-null", "3des-null", "aes128-null", "aes192-null", "aes256-null",
		"aria128-null", "aria192-null", "aria256-null", "seed-null",
	})...).Alias("des-sha", "des-sha1")
)

// cipherSuites returns every encryption-hash pairing FortiOS offers in IKE
// proposals, followed by extra.
func cipherSuites(extra []string) []string {
	ciphers := []string{"des", "3des", "aes128", "aes192", "aes256", "aria128", "aria192", "aria256", "seed"}
	hashes := []string{"md5", "sha1", "sha256", "sha384", "sha512"}
	out := make([]string, 0, len(ciphers)*len(hashes)+len(extra))
	for _, c := range ciphers {
		for _, h := range hashes {
			out = append(out, c+"-"+h)
		}
	}
	return append(out, extra...)
}

var phase1Schema = schema[Phase1]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.Name) }},
	{name: "type", wire: "type", get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.Type) }},
	{name: "interface", wire: "interface", get: func(o *Phase1) field.Value { return field.OptText(o.cfg.Interface) }},
	{name: "proposal", wire: "proposal", get: func(o *Phase1) field.Value { return field.OptToken(o.proposal) }},
	{name: "ike_version", wire: "ike-version", get: func(o *Phase1) field.Value { return field.OptInt(o.cfg.IKEVersion) }},
	{name: "local_gw", wire: "local-gw", get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.LocalGW) }},
	{name: "psk", wire: "psksecret", get: func(o *Phase1) field.Value { return field.OptText(o.cfg.PSK) }},
	{name: "local_id", wire: "localid", get: func(o *Phase1) field.Value { return field.OptText(o.cfg.LocalID) }},
	{name: "remote_gw", wire: "remote-gw", get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.RemoteGW) }},
	{name: "comment", wire: "comments", get: func(o *Phase1) field.Value { return field.OptText(o.cfg.Comment) }},
	{name: "keepalive", wire: "keepalive", get: func(o *Phase1) field.Value { return field.OptInt(o.cfg.Keepalive) }},
	{name: "add_route", wire: "add-route", get: func(o *Phase1) field.Value { return field.Toggle(o.cfg.AddRoute) }},
	{name: "add_gw_route", wire: "add-gw-route", get: func(o *Phase1) field.Value { return field.Toggle(o.cfg.AddGWRoute) }},
	{name: "net_device", wire: "net-device", get: func(o *Phase1) field.Value { return field.Toggle(o.cfg.NetDevice) }},
	{name: "tunnel_search", wire: "tunnel-search", get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.TunnelSearch) }},
	{name: "dpd", wire: "dpd", get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.DPD) }},
	{name: "dhgrp", wire: "dhgrp", get: func(o *Phase1) field.Value { return field.OptToken(o.dhgrp) }},
	{name: "nat_traversal", wire: "nattraversal", get: func(o *Phase1) field.Value { return field.OptToken(o.cfg.NATTraversal) }},
	{name: "exchange_interface_ip", wire: "exchange-interface-ip", get: func(o *Phase1) field.Value {
		return field.Toggle(o.cfg.ExchangeInterfaceIP)
	}},
}

var phase2Schema = schema[Phase2]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Phase2) field.Value { return field.OptToken(o.cfg.Name) }},
	{name: "phase1name", wire: "phase1name", get: func(o *Phase2) field.Value { return field.OptText(o.cfg.Phase1Name) }},
	{name: "proposal", wire: "proposal", get: func(o *Phase2) field.Value { return field.OptToken(o.proposal) }},
	{name: "pfs", wire: "pfs", get: func(o *Phase2) field.Value { return field.Toggle(o.cfg.PFS) }},
	{name: "dhgrp", wire: "dhgrp", get: func(o *Phase2) field.Value { return field.OptToken(o.dhgrp) }},
	{name: "keepalive", wire: "keepalive", get: func(o *Phase2) field.Value { return field.OptInt(o.cfg.Keepalive) }},
	{name: "replay", wire: "replay", get: func(o *Phase2) field.Value { return field.Toggle(o.cfg.Replay) }},
	{name: "auto_negotiate", wire: "auto-negotiate", get: func(o *Phase2) field.Value { return field.Toggle(o.cfg.AutoNegotiate) }},
	{name: "src_subnet", wire: "src-subnet", get: func(o *Phase2) field.Value { return field.OptToken(o.cfg.SrcSubnet) }},
	{name: "dst_subnet", wire: "dst-subnet", get: func(o *Phase2) field.Value { return field.OptToken(o.cfg.DstSubnet) }},
	{name: "comment", wire: "comments", get: func(o *Phase2) field.Value { return field.OptText(o.cfg.Comment) }},
}

func init() {
	describe(KindPhase1, phase1Schema.names())
	describe(KindPhase2, phase2Schema.names())
}

// NewPhase1 validates cfg and builds a Phase1.
func NewPhase1(cfg Phase1Config) (*Phase1, error) {
	var err error
	o := &Phase1{}

	if cfg.Name, err = ipsecName.Required("name", cfg.Name); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	if cfg.Type, err = p1Types.Optional("type", cfg.Type); err != nil {
		return nil, err
	}
	if cfg.Interface, err = p1Intf.Required("interface", cfg.Interface); err != nil {
		return nil, err
	}
	if o.proposal, err = p1Proposals.List("proposal", cfg.Proposal); err != nil {
		return nil, err
	}
	cfg.Proposal = splitWords(o.proposal)
	if cfg.IKEVersion, err = p1IKEVersion.Optional("ike-version", cfg.IKEVersion); err != nil {
		return nil, err
	}
	if cfg.LocalGW, err = field.Address("local-gw", cfg.LocalGW); err != nil {
		return nil, err
	}
	if cfg.PSK, err = p1PSK.Required("psksecret", cfg.PSK); err != nil {
		return nil, err
	}
	if cfg.LocalID, err = p1LocalID.Optional("localid", cfg.LocalID); err != nil {
		return nil, err
	}

	if cfg.RemoteGW, err = field.Address("remote-gw", cfg.RemoteGW); err != nil {
		return nil, err
	}
	if cfg.Type == "dynamic" {
		if cfg.RemoteGW != "" {
			return nil, util.NewCrossFieldError("remote-gw", cfg.RemoteGW, "not allowed when type is dynamic")
		}
	} else if cfg.RemoteGW == "" {
		return nil, util.NewMissingError("remote-gw", "required unless type is dynamic")
	}

	if cfg.Comment, err = ipsecComment.Optional("comments", cfg.Comment); err != nil {
		return nil, err
	}
	if cfg.Keepalive, err = ipsecKeepalive.Optional("keepalive", cfg.Keepalive); err != nil {
		return nil, err
	}
	if cfg.TunnelSearch, err = p1TunnelSearch.Optional("tunnel-search", cfg.TunnelSearch); err != nil {
		return nil, err
	}
	if cfg.DPD, err = p1DPD.Optional("dpd", cfg.DPD); err != nil {
		return nil, err
	}
	if o.dhgrp, err = dhGroups.List("dhgrp", cfg.DHGroups); err != nil {
		return nil, err
	}
	cfg.DHGroups = copyInts(cfg.DHGroups)
	if cfg.NATTraversal, err = p1NAT.Optional("nattraversal", cfg.NATTraversal); err != nil {
		return nil, err
	}
	cfg.AddRoute = copyBool(cfg.AddRoute)
	cfg.AddGWRoute = copyBool(cfg.AddGWRoute)
	cfg.NetDevice = copyBool(cfg.NetDevice)
	cfg.ExchangeInterfaceIP = copyBool(cfg.ExchangeInterfaceIP)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

// Kind implements Object.
func (o *Phase1) Kind() Kind { return KindPhase1 }

// ID implements Object.
func (o *Phase1) ID() interface{} {
	if o.cfg.Name == "" {
		return nil
	}
	return o.cfg.Name
}

// Fields implements Object.
func (o *Phase1) Fields() []Field { return phase1Schema.fields(o) }

// Config returns a copy of the normalized configuration.
func (o *Phase1) Config() Phase1Config {
	c := o.cfg
	c.Proposal, c.DHGroups = copyStrings(c.Proposal), copyInts(c.DHGroups)
	c.IKEVersion, c.Keepalive = copyInt(c.IKEVersion), copyInt(c.Keepalive)
	c.AddRoute, c.AddGWRoute = copyBool(c.AddRoute), copyBool(c.AddGWRoute)
	c.NetDevice = copyBool(c.NetDevice)
	c.ExchangeInterfaceIP = copyBool(c.ExchangeInterfaceIP)
	return c
}

// NewPhase2 validates cfg and builds a Phase2.
func NewPhase2(cfg Phase2Config) (*Phase2, error) {
	var err error
	o := &Phase2{}

	if cfg.Name, err = ipsecName.Required("name", cfg.Name); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	if cfg.Phase1Name, err = ipsecName.Required("phase1name", cfg.Phase1Name); err != nil {
		return nil, err
	}
	if len(field.Words(cfg.Proposal)) == 0 {
		return nil, util.NewMissingError("proposal", "required")
	}
	if o.proposal, err = p2Proposals.List("proposal", cfg.Proposal); err != nil {
		return nil, err
	}
	cfg.Proposal = splitWords(o.proposal)
	if o.dhgrp, err = dhGroups.List("dhgrp", cfg.DHGroups); err != nil {
		return nil, err
	}
	cfg.DHGroups = copyInts(cfg.DHGroups)
	if o.dhgrp != "" && cfg.PFS != nil && !*cfg.PFS {
		return nil, util.NewCrossFieldError("dhgrp", o.dhgrp, "requires pfs enabled")
	}
	if cfg.Keepalive, err = ipsecKeepalive.Optional("keepalive", cfg.Keepalive); err != nil {
		return nil, err
	}
	if cfg.SrcSubnet, err = field.Network("src-subnet", cfg.SrcSubnet); err != nil {
		return nil, err
	}
	if cfg.DstSubnet, err = field.Network("dst-subnet", cfg.DstSubnet); err != nil {
		return nil, err
	}
	if cfg.Comment, err = ipsecComment.Optional("comments", cfg.Comment); err != nil {
		return nil, err
	}
	cfg.PFS = copyBool(cfg.PFS)
	cfg.Replay = copyBool(cfg.Replay)
	cfg.AutoNegotiate = copyBool(cfg.AutoNegotiate)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

// Kind implements Object.
func (o *Phase2) Kind() Kind { return KindPhase2 }

// ID implements Object.
func (o *Phase2) ID() interface{} {
	if o.cfg.Name == "" {
		return nil
	}
	return o.cfg.Name
}

// Fields implements Object.
func (o *Phase2) Fields() []Field { return phase2Schema.fields(o) }

// Config returns a copy of the normalized configuration.
func (o *Phase2) Config() Phase2Config {
	c := o.cfg
	c.Proposal, c.DHGroups = copyStrings(c.Proposal), copyInts(c.DHGroups)
	c.Keepalive = copyInt(c.Keepalive)
	c.PFS, c.Replay = copyBool(c.PFS), copyBool(c.Replay)
	c.AutoNegotiate = copyBool(c.AutoNegotiate)
	return c
}
