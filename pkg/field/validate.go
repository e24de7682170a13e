package field

import (
	"fmt"
	"net/netip"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/newtron-network/fgobj/pkg/util"
)

// Str bounds a string field's length in characters.
type Str struct {
	Min, Max int
	NoSpace  bool // reject embedded whitespace, as in VDOM names
}

// Check validates s. Blank input is always rejected, even when Min would
// allow its length.
func (c Str) Check(name, s string) (string, error) {
	if util.IsBlank(s) {
		return "", util.NewLengthError(name, s, "must not be empty or whitespace")
	}
	if c.NoSpace && util.HasWhitespace(s) {
		return "", util.NewFormatError(name, s, "must not contain whitespace")
	}
	if n := utf8.RuneCountInString(s); n < c.Min || n > c.Max {
		return "", util.NewLengthError(name, s, fmt.Sprintf("length must be between %d and %d", c.Min, c.Max))
	}
	return s, nil
}

// Optional validates s when it is non-empty. Empty means not provided.
func (c Str) Optional(name, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return c.Check(name, s)
}

// Required validates s and reports an empty string as missing.
func (c Str) Required(name, s string) (string, error) {
	if s == "" {
		return "", util.NewMissingError(name, "required")
	}
	return c.Check(name, s)
}

// Enum is a case-insensitive set of allowed values. Matches normalize to
// the canonical spelling given to NewEnum.
type Enum struct {
	values []string
	lookup map[string]string
}

// NewEnum creates an enum from its canonical values.
func NewEnum(values ...string) *Enum {
	e := &Enum{lookup: make(map[string]string, len(values))}
	for _, v := range values {
		e.values = append(e.values, v)
		e.lookup[strings.ToLower(v)] = v
	}
	return e
}

// Alias accepts alias as another spelling of canonical.
func (e *Enum) Alias(alias, canonical string) *Enum {
	e.lookup[strings.ToLower(alias)] = canonical
	return e
}

// Values returns the canonical values in declaration order.
func (e *Enum) Values() []string {
	return append([]string(nil), e.values...)
}

// Check normalizes s or fails with an EnumViolation naming s.
func (e *Enum) Check(name, s string) (string, error) {
	if v, ok := e.lookup[strings.ToLower(s)]; ok {
		return v, nil
	}
	return "", util.NewEnumError(name, s, e.values)
}

// Optional checks s when it is non-empty.
func (e *Enum) Optional(name, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return e.Check(name, s)
}

// Required checks s and reports an empty string as missing.
func (e *Enum) Required(name, s string) (string, error) {
	if s == "" {
		return "", util.NewMissingError(name, "required")
	}
	return e.Check(name, s)
}

// List validates a multi-value field. Each item may itself hold several
// space-separated words; every word is checked and the normalized words are
// joined with single spaces in input order. No words yields "".
func (e *Enum) List(name string, items []string) (string, error) {
	words := Words(items)
	out := make([]string, 0, len(words))
	for _, w := range words {
		v, err := e.Check(name, w)
		if err != nil {
			return "", err
		}
		out = append(out, v)
	}
	return strings.Join(out, " "), nil
}

// Words splits every item on whitespace and flattens the result, so both
// []string{"ping https"} and []string{"ping", "https"} read as two words.
func Words(items []string) []string {
	var out []string
	for _, item := range items {
		out = append(out, strings.Fields(item)...)
	}
	return out
}

// IntRange is an inclusive integer bound.
type IntRange struct {
	Min, Max int64
}

// Check validates n against the bound.
func (r IntRange) Check(name string, n int64) (int64, error) {
	if n < r.Min || n > r.Max {
		return 0, util.NewRangeError(name, n, r.Min, r.Max)
	}
	return n, nil
}

// Optional validates *p when p is non-nil and returns a copy.
func (r IntRange) Optional(name string, p *int64) (*int64, error) {
	if p == nil {
		return nil, nil
	}
	n, err := r.Check(name, *p)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// IntSet is a fixed set of allowed integers, such as Diffie-Hellman groups.
type IntSet struct {
	allowed map[int64]bool
}

// NewIntSet creates an IntSet.
func NewIntSet(values ...int64) *IntSet {
	s := &IntSet{allowed: make(map[int64]bool, len(values))}
	for _, v := range values {
		s.allowed[v] = true
	}
	return s
}

func (s *IntSet) names() []string {
	vals := make([]int64, 0, len(s.allowed))
	for v := range s.allowed {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatInt(v, 10)
	}
	return out
}

// List validates every member and joins them with spaces in input order.
func (s *IntSet) List(name string, values []int64) (string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !s.allowed[v] {
			return "", util.NewEnumError(name, v, s.names())
		}
		out = append(out, strconv.FormatInt(v, 10))
	}
	return strings.Join(out, " "), nil
}

// ParseAddress validates an IPv4 or IPv6 host address. Empty input is "not
// provided" and yields the zero Addr.
func ParseAddress(name, s string) (netip.Addr, error) {
	if s == "" {
		return netip.Addr{}, nil
	}
	addr, err := util.ParseHostAddr(s)
	if err != nil {
		return netip.Addr{}, util.NewFormatError(name, s, "must be an IPv4 or IPv6 address")
	}
	return addr, nil
}

// Address is ParseAddress returning the canonical text.
func Address(name, s string) (string, error) {
	return addrText(ParseAddress(name, s))
}

// ParseHostPrefix validates an interface address with optional mask length,
// keeping the host bits. A bare address gets /32 or /128.
func ParseHostPrefix(name, s string) (netip.Prefix, error) {
	if s == "" {
		return netip.Prefix{}, nil
	}
	p, err := util.ParseHostPrefix(s)
	if err != nil {
		return netip.Prefix{}, util.NewFormatError(name, s, "must be an IP address with optional mask length")
	}
	return p, nil
}

// HostPrefix is ParseHostPrefix returning the canonical text.
func HostPrefix(name, s string) (string, error) {
	return prefixText(ParseHostPrefix(name, s))
}

// ParseNetwork validates a network in CIDR form. Host bits must be clear; a
// bare address is a /32 or /128 host network.
func ParseNetwork(name, s string) (netip.Prefix, error) {
	if s == "" {
		return netip.Prefix{}, nil
	}
	p, err := util.ParseNetwork(s)
	if err != nil {
		return netip.Prefix{}, util.NewFormatError(name, s, "must be an IP network with host bits clear")
	}
	return p, nil
}

// Network is ParseNetwork returning the canonical text.
func Network(name, s string) (string, error) {
	return prefixText(ParseNetwork(name, s))
}

func addrText(a netip.Addr, err error) (string, error) {
	if err != nil || !a.IsValid() {
		return "", err
	}
	return a.String(), nil
}

func prefixText(p netip.Prefix, err error) (string, error) {
	if err != nil || !p.IsValid() {
		return "", err
	}
	return p.String(), nil
}

// PortRanges validates each component as "N" or "N-M" and joins them with
// spaces in input order.
func PortRanges(name string, ranges []string) (string, error) {
	words := Words(ranges)
	for _, w := range words {
		if !util.IsPortRange(w) {
			return "", util.NewFormatError(name, w, `must match "N" or "N-M"`)
		}
	}
	return util.JoinPortRanges(words), nil
}

// NameRefs validates a list of object names for a reference field. Each
// name must be non-blank and shorter than 80 characters.
func NameRefs(name string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		v, err := refName.Check(name, n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var refName = Str{Min: 1, Max: 79}
