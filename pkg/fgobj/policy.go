package fgobj

import (
	"github.com/newtron-network/fgobj/pkg/field"
	"github.com/newtron-network/fgobj/pkg/util"
)

// PolicyConfig holds the constructor input for a firewall policy.
//
// ID may be left nil at construction, but every render call requires it.
// An explicit zero is a valid ID.
type PolicyConfig struct {
	ID            *int64
	VDOM          string
	Name          string
	SrcIntf       []string
	DstIntf       []string
	SrcAddr       []string
	DstAddr       []string
	Service       []string
	Schedule      string
	Action        string // accept (alias allow) or deny (alias drop)
	LogTraffic    string // utm, all or disabled (alias disable); utm requires accept
	NAT           *bool
	SrcAddrNegate *bool
	DstAddrNegate *bool
	ServiceNegate *bool
	Comment       string
}

// Policy is a validated firewall policy.
type Policy struct {
	scope
	cfg PolicyConfig
}

var (
	policyID       = field.IntRange{Min: 0, Max: 4294967295}
	policyName     = field.Str{Min: 1, Max: 35}
	policySchedule = field.Str{Min: 1, Max: 36}
	policyComment  = field.Str{Min: 1, Max: 1023}
	policyActions  = field.NewEnum("accept", "deny").Alias("allow", "accept").Alias("drop", "deny")
	policyLogging  = field.NewEnum("utm", "all", "disabled").Alias("disable", "disabled")
)

var policySchema = schema[Policy]{
	{name: "id", wire: "policyid", cliSkip: true, get: func(o *Policy) field.Value { return field.OptInt(o.cfg.ID) }},
	{name: "name", wire: "name", get: func(o *Policy) field.Value { return field.OptText(o.cfg.Name) }},
	{name: "srcintf", wire: "srcintf", get: func(o *Policy) field.Value { return field.OptRefs(o.cfg.SrcIntf) }},
	{name: "dstintf", wire: "dstintf", get: func(o *Policy) field.Value { return field.OptRefs(o.cfg.DstIntf) }},
	{name: "srcaddr", wire: "srcaddr", get: func(o *Policy) field.Value { return field.OptRefs(o.cfg.SrcAddr) }},
	{name: "dstaddr", wire: "dstaddr", get: func(o *Policy) field.Value { return field.OptRefs(o.cfg.DstAddr) }},
	{name: "service", wire: "service", get: func(o *Policy) field.Value { return field.OptRefs(o.cfg.Service) }},
	{name: "schedule", wire: "schedule", get: func(o *Policy) field.Value { return field.OptText(o.cfg.Schedule) }},
	{name: "action", wire: "action", get: func(o *Policy) field.Value { return field.OptToken(o.cfg.Action) }},
	{name: "logtraffic", wire: "logtraffic", get: func(o *Policy) field.Value { return field.OptToken(o.cfg.LogTraffic) }},
	{name: "nat", wire: "nat", get: func(o *Policy) field.Value { return field.Toggle(o.cfg.NAT) }},
	{name: "srcaddr_negate", wire: "srcaddr-negate", get: func(o *Policy) field.Value { return field.Toggle(o.cfg.SrcAddrNegate) }},
	{name: "dstaddr_negate", wire: "dstaddr-negate", get: func(o *Policy) field.Value { return field.Toggle(o.cfg.DstAddrNegate) }},
	{name: "service_negate", wire: "service-negate", get: func(o *Policy) field.Value { return field.Toggle(o.cfg.ServiceNegate) }},
	{name: "comment", wire: "comments", get: func(o *Policy) field.Value { return field.OptText(o.cfg.Comment) }},
}

func init() {
	describe(KindPolicy, policySchema.names())
}

// NewPolicy validates cfg and builds a Policy.
func NewPolicy(cfg PolicyConfig) (*Policy, error) {
	var err error
	o := &Policy{}

	if cfg.ID, err = policyID.Optional("policyid", cfg.ID); err != nil {
		return nil, err
	}
	if o.vdom, err = checkVDOM(cfg.VDOM); err != nil {
		return nil, err
	}
	cfg.VDOM = o.vdom

	if cfg.Name, err = policyName.Optional("name", cfg.Name); err != nil {
		return nil, err
	}
	refs := []struct {
		wire string
		list *[]string
	}{
		{"srcintf", &cfg.SrcIntf},
		{"dstintf", &cfg.DstIntf},
		{"srcaddr", &cfg.SrcAddr},
		{"dstaddr", &cfg.DstAddr},
		{"service", &cfg.Service},
	}
	for _, r := range refs {
		if *r.list, err = field.NameRefs(r.wire, *r.list); err != nil {
			return nil, err
		}
	}
	if cfg.Schedule, err = policySchedule.Optional("schedule", cfg.Schedule); err != nil {
		return nil, err
	}
	if cfg.Action, err = policyActions.Optional("action", cfg.Action); err != nil {
		return nil, err
	}
	if cfg.LogTraffic, err = policyLogging.Optional("logtraffic", cfg.LogTraffic); err != nil {
		return nil, err
	}
	if cfg.LogTraffic == "utm" && cfg.Action != "accept" {
		return nil, util.NewCrossFieldError("logtraffic", "utm", "requires action accept")
	}
	if cfg.Comment, err = policyComment.Optional("comments", cfg.Comment); err != nil {
		return nil, err
	}
	cfg.NAT = copyBool(cfg.NAT)
	cfg.SrcAddrNegate = copyBool(cfg.SrcAddrNegate)
	cfg.DstAddrNegate = copyBool(cfg.DstAddrNegate)
	cfg.ServiceNegate = copyBool(cfg.ServiceNegate)

	o.cfg = cfg
	logBuilt(o)
	return o, nil
}

// Kind implements Object.
func (o *Policy) Kind() Kind { return KindPolicy }

// ID implements Object. It returns an int64 policy ID or nil.
func (o *Policy) ID() interface{} {
	if o.cfg.ID == nil {
		return nil
	}
	return *o.cfg.ID
}

// Fields implements Object.
func (o *Policy) Fields() []Field { return policySchema.fields(o) }

// Config returns a copy of the normalized configuration.
func (o *Policy) Config() PolicyConfig {
	c := o.cfg
	c.ID = copyInt(c.ID)
	c.SrcIntf, c.DstIntf = copyStrings(c.SrcIntf), copyStrings(c.DstIntf)
	c.SrcAddr, c.DstAddr = copyStrings(c.SrcAddr), copyStrings(c.DstAddr)
	c.Service = copyStrings(c.Service)
	c.NAT = copyBool(c.NAT)
	c.SrcAddrNegate = copyBool(c.SrcAddrNegate)
	c.DstAddrNegate = copyBool(c.DstAddrNegate)
	c.ServiceNegate = copyBool(c.ServiceNegate)
	return c
}
