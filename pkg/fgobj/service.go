package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// Service protocols, in FortiOS spelling.
const (
	ProtoTCPUDPSCTP = "TCP/UDP/SCTP"
	ProtoICMP       = "ICMP"
	ProtoIP         = "IP"
)

// ServiceConfig holds the constructor input for a custom firewall service.
// Port ranges accept "N" or "N-M" components.
type ServiceConfig struct {
	Name           string
	VDOM           string
	Protocol       string // tcp, udp, sctp or TCP/UDP/SCTP; icmp; ip
	TCPPortRange   []string
	UDPPortRange   []string
	SCTPPortRange  []string
	ProtocolNumber *int64 // protocol IP only
	ICMPType       *int64 // protocol ICMP only
	SessionTTL     *int64
	UDPIdleTimer   *int64
	Category       string
	Visibility     *bool
	Comment        string
}

// Service is a validated custom firewall service.
type Service struct {
	scope
	cfg  ServiceConfig
	tcp  string
	udp  string
	sctp string
}

var (
	svcName      = field.Str{Min: 1, Max: 79}
	svcCategory  = field.Str{Min: 1, Max: 63}
	svcComment   = field.Str{Min: 1, Max: 255}
	svcProtoNum  = field.IntRange{Min: 0, Max: 254}
	svcICMPType  = field.IntRange{Min: 0, Max: 255}
	svcTTL       = field.IntRange{Min: 300, Max: 2764800}
	svcUDPIdle   = field.IntRange{Min: 0, Max: 86400}
	svcProtocols = field.NewEnum(ProtoTCPUDPSCTP, ProtoICMP, ProtoIP).
		Alias("tcp", ProtoTCPUDPSCTP).
		Alias("udp", ProtoTCPUDPSCTP).
		Alias("sctp", ProtoTCPUDPSCTP)
)

var serviceSchema = schema[Service]{
	{name: "name", wire: "name", cliSkip: true, get: func(o *Service) field.Value { return field.OptToken(o.cfg.Name) }},
	{name: "protocol", wire: "protocol", get: func(o *Service) field.Value { return field.OptToken(o.cfg.Protocol) }},
	{name: "tcp_portrange", wire: "tcp-portrange", get: func(o *Service) field.Value { return field.OptToken(o.tcp) }},
	{name: "udp_portrange", wire: "udp-portrange", get: func(o *Service) field.Value { return field.OptToken(o.udp) }},
	{name: "sctp_portrange", wire: "sctp-portrange", get: func(o *Service) field.Value { return field.OptToken(o.sctp) }},
	{name: "protocol_number", wire: "protocol-number", get: func(o *Service) field.Value { return field.OptInt(o.cfg.ProtocolNumber) }},
	{name: "icmp_type", wire: "icmptype", get: func(o *Service) field.Value { return field.OptInt(o.cfg.ICMPType) }},
	{name: "session_ttl", wire: "session-ttl", get: func(o *Service) field.Value { return field.OptInt(o.cfg.SessionTTL) }},
	{name: "udp_idle_timer", wire: "udp-idle-timer", get: func(o *Service) field.Value { return field.OptInt(o.cfg.UDPIdleTimer) }},
	{name: "category", wire: "category", get: func(o *Service) field.Value { return field.OptText(o.cfg.Category) }},
	{name: "visibility", wire: "visibility", get: func(o *Service) field.Value { return field.Toggle(o.cfg.Visibility) }},
	{name: "comment", wire: "comments", get: func(o *Service) field.Value { return field.OptText(o.cfg.Comment) }},
}

func init() {
	describe(KindService, serviceSchema.names())
}

// NewService validates cfg and builds a Service. The protocol defaults to
// TCP/UDP/SCTP when port ranges are given without one.
func NewService(cfg ServiceConfig) (*Service, error) {
	var err error
	o := &Service{}

	if cfg.Name, err = svcName.Required("name", cfg.Name); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	if cfg.Protocol, err = svcProtocols.Optional("protocol", cfg.Protocol); err != nil {
		return nil, err
	}
	if o.tcp, err = field.PortRanges("tcp-portrange", cfg.TCPPortRange); err != nil {
		return nil, err
	}
	if o.udp, err = field.PortRanges("udp-portrange", cfg.UDPPortRange); err != nil {
		return nil, err
	}
	if o.sctp, err = field.PortRanges("sctp-portrange", cfg.SCTPPortRange); err != nil {
		return nil, err
	}
	cfg.TCPPortRange, cfg.UDPPortRange, cfg.SCTPPortRange = splitWords(o.tcp), splitWords(o.udp), splitWords(o.sctp)

	hasPorts := o.tcp != "" || o.udp != "" || o.sctp != ""
	if hasPorts {
		if cfg.Protocol == "" {
			cfg.Protocol = ProtoTCPUDPSCTP
		}
		if cfg.Protocol != ProtoTCPUDPSCTP {
			return nil, util.NewCrossFieldError("protocol", cfg.Protocol, "port ranges require protocol TCP/UDP/SCTP")
		}
	}

	if cfg.ProtocolNumber, err = svcProtoNum.Optional("protocol-number", cfg.ProtocolNumber); err != nil {
		return nil, err
	}
	if cfg.ProtocolNumber != nil && cfg.Protocol != ProtoIP {
		return nil, util.NewCrossFieldError("protocol-number", *cfg.ProtocolNumber, "requires protocol IP")
	}
	if cfg.ICMPType, err = svcICMPType.Optional("icmptype", cfg.ICMPType); err != nil {
		return nil, err
	}
	if cfg.ICMPType != nil && cfg.Protocol != ProtoICMP {
		return nil, util.NewCrossFieldError("icmptype", *cfg.ICMPType, "requires protocol ICMP")
	}

	if cfg.SessionTTL, err = svcTTL.Optional("session-ttl", cfg.SessionTTL); err != nil {
		return nil, err
	}
	if cfg.UDPIdleTimer, err = svcUDPIdle.Optional("udp-idle-timer", cfg.UDPIdleTimer); err != nil {
		return nil, err
	}
	if cfg.Category, err = svcCategory.Optional("category", cfg.Category); err != nil {
		return nil, err
	}
	if cfg.Comment, err = svcComment.Optional("comments", cfg.Comment); err != nil {
		return nil, err
	}
	cfg.Visibility = copyBool(cfg.Visibility)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

// Kind implements Object.
func (o *Service) Kind() Kind { return KindService }

// ID implements Object.
func (o *Service) ID() interface{} {
	if o.cfg.Name == "" {
		return nil
	}
	return o.cfg.Name
}

// Fields implements Object.
func (o *Service) Fields() []Field { return serviceSchema.fields(o) }

// Config returns a copy of the normalized configuration.
func (o *Service) Config() ServiceConfig {
	c := o.cfg
	c.TCPPortRange = copyStrings(c.TCPPortRange)
	c.UDPPortRange = copyStrings(c.UDPPortRange)
	c.SCTPPortRange = copyStrings(c.SCTPPortRange)
	c.ProtocolNumber, c.ICMPType = copyInt(c.ProtocolNumber), copyInt(c.ICMPType)
	c.SessionTTL, c.UDPIdleTimer = copyInt(c.SessionTTL), copyInt(c.UDPIdleTimer)
	c.Visibility = copyBool(c.Visibility)
	return c
}
