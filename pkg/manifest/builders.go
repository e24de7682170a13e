package manifest

import (
	"sort"
	"strings"

	"github.com/newtron-network/fgobj/pkg/fgobj"
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// builder turns one entry's params into an object. preset selects a
// convenience constructor.
type builder func(p *params, preset string) (fgobj.Object, error)

var builders = map[fgobj.Kind]builder{
	fgobj.KindInterface: buildInterface,
	fgobj.KindAddress:   buildAddress,
	fgobj.KindPolicy:    buildPolicy,
	fgobj.KindService:   buildService,
	fgobj.KindRoute:     buildRoute,
	fgobj.KindVdom:      buildVdom,
	fgobj.KindVdomLink:  buildVdomLink,
	fgobj.KindPhase1:    buildPhase1,
	fgobj.KindPhase2:    buildPhase2,
}

// params reads typed values out of an entry's raw map. The first coercion
// failure sticks; later reads return zero values and done reports it.
type params struct {
	kind        fgobj.Kind
	raw         map[string]interface{}
	defaultVDOM string
	used        map[string]bool
	err         error
}

func newParams(kind fgobj.Kind, raw map[string]interface{}, defaultVDOM string) *params {
	return &params{kind: kind, raw: raw, defaultVDOM: defaultVDOM, used: map[string]bool{}}
}

func (p *params) get(key string) interface{} {
	p.used[key] = true
	return p.raw[key]
}

func (p *params) fail(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *params) str(key string) string {
	s, err := field.AsString(key, p.get(key))
	p.fail(err)
	return s
}

func (p *params) strs(key string) []string {
	v, err := field.AsStrings(key, p.get(key))
	p.fail(err)
	return v
}

func (p *params) int(key string) *int64 {
	v, err := field.AsInt(key, p.get(key))
	p.fail(err)
	return v
}

func (p *params) ints(key string) []int64 {
	v, err := field.AsInts(key, p.get(key))
	p.fail(err)
	return v
}

func (p *params) bool(key string) *bool {
	v, err := field.AsBool(key, p.get(key))
	p.fail(err)
	return v
}

// vdom returns the entry's vdom, falling back to the manifest default.
func (p *params) vdom() string {
	if _, ok := p.raw["vdom"]; ok {
		return p.str("vdom")
	}
	p.used["vdom"] = true
	return p.defaultVDOM
}

// done returns the first coercion error, or an error for the first key the
// builder never read.
func (p *params) done() error {
	if p.err != nil {
		return p.err
	}
	var unknown []string
	for k := range p.raw {
		if !p.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	allowed := make([]string, 0, len(p.used))
	for k := range p.used {
		allowed = append(allowed, k)
	}
	sort.Strings(allowed)
	return util.NewEnumError("params", unknown[0], allowed)
}

func badPreset(preset string, allowed ...string) error {
	return util.NewEnumError("preset", preset, allowed)
}

// asObject drops the typed pointer so a failed constructor yields a nil
// interface.
func asObject(obj fgobj.Object, err error) (fgobj.Object, error) {
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func buildInterface(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.InterfaceConfig{
		Name:                 p.str("name"),
		VDOM:                 p.vdom(),
		Type:                 p.str("type"),
		Mode:                 p.str("mode"),
		IP:                   p.str("ip"),
		IPv6:                 p.str("ipv6"),
		IPv6Mode:             p.str("ipv6_mode"),
		AllowAccess:          p.strs("allowaccess"),
		Role:                 p.str("role"),
		VLANID:               p.int("vlanid"),
		Parent:               p.str("parent"),
		VRF:                  p.int("vrf"),
		DeviceIdentification: p.bool("device_identification"),
		Alias:                p.str("alias"),
		Description:          p.str("description"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	// vdom-links live in the global context; only an explicit vdom param
	// reaches the constructor.
	if _, explicit := p.raw["vdom"]; !explicit &&
		(preset == fgobj.IntfVdomLink || strings.EqualFold(cfg.Type, fgobj.IntfVdomLink)) {
		cfg.VDOM = ""
	}

	switch preset {
	case "":
		return asObject(fgobj.NewInterface(cfg))
	case fgobj.IntfStandard:
		return asObject(fgobj.NewStandardInterface(cfg))
	case fgobj.IntfVLAN:
		return asObject(fgobj.NewVLANInterface(cfg))
	case fgobj.IntfVdomLink:
		cfg.Type = fgobj.IntfVdomLink
		return asObject(fgobj.NewInterface(cfg))
	default:
		return nil, badPreset(preset, fgobj.IntfStandard, fgobj.IntfVLAN, fgobj.IntfVdomLink)
	}
}

func buildAddress(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.AddressConfig{
		Name:                p.str("name"),
		VDOM:                p.vdom(),
		Type:                p.str("type"),
		Subnet:              p.str("subnet"),
		FQDN:                p.str("fqdn"),
		StartIP:             p.str("start_ip"),
		EndIP:               p.str("end_ip"),
		Visibility:          p.bool("visibility"),
		AssociatedInterface: p.str("associated_interface"),
		Comment:             p.str("comment"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewAddress(cfg))
}

func buildPolicy(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.PolicyConfig{
		ID:            p.int("id"),
		VDOM:          p.vdom(),
		Name:          p.str("name"),
		SrcIntf:       p.strs("srcintf"),
		DstIntf:       p.strs("dstintf"),
		SrcAddr:       p.strs("srcaddr"),
		DstAddr:       p.strs("dstaddr"),
		Service:       p.strs("service"),
		Schedule:      p.str("schedule"),
		Action:        p.str("action"),
		LogTraffic:    p.str("logtraffic"),
		NAT:           p.bool("nat"),
		SrcAddrNegate: p.bool("srcaddr_negate"),
		DstAddrNegate: p.bool("dstaddr_negate"),
		ServiceNegate: p.bool("service_negate"),
		Comment:       p.str("comment"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewPolicy(cfg))
}

func buildService(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.ServiceConfig{
		Name:           p.str("name"),
		VDOM:           p.vdom(),
		Protocol:       p.str("protocol"),
		TCPPortRange:   p.strs("tcp_portrange"),
		UDPPortRange:   p.strs("udp_portrange"),
		SCTPPortRange:  p.strs("sctp_portrange"),
		ProtocolNumber: p.int("protocol_number"),
		ICMPType:       p.int("icmp_type"),
		SessionTTL:     p.int("session_ttl"),
		UDPIdleTimer:   p.int("udp_idle_timer"),
		Category:       p.str("category"),
		Visibility:     p.bool("visibility"),
		Comment:        p.str("comment"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewService(cfg))
}

func buildRoute(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.RouteConfig{
		SeqNum:    p.int("seq_num"),
		VDOM:      p.vdom(),
		Dst:       p.str("dst"),
		Device:    p.str("device"),
		Gateway:   p.str("gateway"),
		Distance:  p.int("distance"),
		Weight:    p.int("weight"),
		Priority:  p.int("priority"),
		VRF:       p.int("vrf"),
		Blackhole: p.bool("blackhole"),
		Comment:   p.str("comment"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}

	switch preset {
	case "":
		return asObject(fgobj.NewRoute(cfg))
	case "blackhole":
		return asObject(fgobj.NewBlackholeRoute(cfg))
	default:
		return nil, badPreset(preset, "blackhole")
	}
}

func buildVdom(p *params, preset string) (fgobj.Object, error) {
	name := p.str("name")
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewVdom(name))
}

func buildVdomLink(p *params, preset string) (fgobj.Object, error) {
	name, linkType := p.str("name"), p.str("type")
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewVdomLink(name, linkType))
}

func buildPhase1(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.Phase1Config{
		Name:                p.str("name"),
		VDOM:                p.vdom(),
		Type:                p.str("type"),
		Interface:           p.str("interface"),
		Proposal:            p.strs("proposal"),
		IKEVersion:          p.int("ike_version"),
		LocalGW:             p.str("local_gw"),
		PSK:                 p.str("psk"),
		LocalID:             p.str("local_id"),
		RemoteGW:            p.str("remote_gw"),
		Comment:             p.str("comment"),
		Keepalive:           p.int("keepalive"),
		AddRoute:            p.bool("add_route"),
		AddGWRoute:          p.bool("add_gw_route"),
		NetDevice:           p.bool("net_device"),
		TunnelSearch:        p.str("tunnel_search"),
		DPD:                 p.str("dpd"),
		DHGroups:            p.ints("dhgrp"),
		NATTraversal:        p.str("nat_traversal"),
		ExchangeInterfaceIP: p.bool("exchange_interface_ip"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewPhase1(cfg))
}

func buildPhase2(p *params, preset string) (fgobj.Object, error) {
	cfg := fgobj.Phase2Config{
		Name:          p.str("name"),
		VDOM:          p.vdom(),
		Phase1Name:    p.str("phase1name"),
		Proposal:      p.strs("proposal"),
		PFS:           p.bool("pfs"),
		DHGroups:      p.ints("dhgrp"),
		Keepalive:     p.int("keepalive"),
		Replay:        p.bool("replay"),
		AutoNegotiate: p.bool("auto_negotiate"),
		SrcSubnet:     p.str("src_subnet"),
		DstSubnet:     p.str("dst_subnet"),
		Comment:       p.str("comment"),
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	if preset != "" {
		return nil, badPreset(preset)
	}
	return asObject(fgobj.NewPhase2(cfg))
}
