package field

import (
	"errors"
	"strings"
	"testing"

	"github.com/newtron-network/fgobj/pkg/util"
)

func TestStrBoundaries(t *testing.T) {
	c := Str{Min: 1, Max: 25}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"min length", "a", nil},
		{"max length", strings.Repeat("a", 25), nil},
		{"one over max", strings.Repeat("a", 26), util.ErrLengthViolation},
		{"whitespace only", "   ", util.ErrLengthViolation},
		{"tab only", "\t", util.ErrLengthViolation},
		{"multibyte counts runes", strings.Repeat("é", 25), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Check("alias", tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Check(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestStrMinAboveOne(t *testing.T) {
	c := Str{Min: 6, Max: 30}
	if _, err := c.Check("psksecret", "12345"); !errors.Is(err, util.ErrLengthViolation) {
		t.Errorf("min-1 should fail, got %v", err)
	}
	if _, err := c.Check("psksecret", "123456"); err != nil {
		t.Errorf("min should pass, got %v", err)
	}
	// Six spaces satisfy the length bound but are still blank.
	if _, err := c.Check("psksecret", "      "); !errors.Is(err, util.ErrLengthViolation) {
		t.Errorf("blank at min length should fail, got %v", err)
	}
}

func TestStrNoSpace(t *testing.T) {
	c := Str{Min: 1, Max: 31, NoSpace: true}
	if _, err := c.Check("vdom", "cust a"); !errors.Is(err, util.ErrFormatViolation) {
		t.Errorf("embedded space should fail with format violation, got %v", err)
	}
}

func TestStrOptionalRequired(t *testing.T) {
	c := Str{Min: 1, Max: 35}
	if v, err := c.Optional("name", ""); err != nil || v != "" {
		t.Errorf("Optional(\"\") = %q, %v", v, err)
	}
	if _, err := c.Required("name", ""); !errors.Is(err, util.ErrMissingRequired) {
		t.Errorf("Required(\"\") error = %v, want missing", err)
	}
	fe, ok := util.AsFieldError(func() error { _, err := c.Required("name", ""); return err }())
	if !ok || fe.Field != "name" {
		t.Errorf("missing error should carry the field name: %+v", fe)
	}
}

func TestEnumCaseInsensitive(t *testing.T) {
	mode := NewEnum("static", "dhcp")
	for _, in := range []string{"STATIC", "Static", "static"} {
		got, err := mode.Check("mode", in)
		if err != nil || got != "static" {
			t.Errorf("Check(%q) = %q, %v; want static", in, got, err)
		}
	}
}

func TestEnumCanonicalCase(t *testing.T) {
	proto := NewEnum("TCP/UDP/SCTP", "ICMP", "IP").
		Alias("tcp", "TCP/UDP/SCTP").
		Alias("udp", "TCP/UDP/SCTP")

	got, err := proto.Check("protocol", "udp")
	if err != nil || got != "TCP/UDP/SCTP" {
		t.Errorf("alias = %q, %v", got, err)
	}
	got, _ = proto.Check("protocol", "icmp")
	if got != "ICMP" {
		t.Errorf("icmp normalized to %q, want ICMP", got)
	}
}

func TestEnumUnsupported(t *testing.T) {
	action := NewEnum("accept", "deny")
	_, err := action.Check("action", "maybe")
	if !errors.Is(err, util.ErrEnumViolation) {
		t.Fatalf("error = %v, want enum violation", err)
	}
	if !strings.Contains(err.Error(), `"maybe"`) {
		t.Errorf("error should name the offending value: %v", err)
	}
}

func TestEnumList(t *testing.T) {
	access := NewEnum("ping", "http", "https", "ssh")

	tests := []struct {
		name    string
		items   []string
		want    string
		wantErr bool
	}{
		{"single string with spaces", []string{"ping https"}, "ping https", false},
		{"list", []string{"PING", "ssh"}, "ping ssh", false},
		{"mixed", []string{"ping  http", "https"}, "ping http https", false},
		{"empty", nil, "", false},
		{"bad member", []string{"ping", "telnet"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := access.List("allowaccess", tt.items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("List = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntRangeBoundaries(t *testing.T) {
	tests := []struct {
		r     IntRange
		value int64
		ok    bool
	}{
		{IntRange{1, 4096}, 1, true},
		{IntRange{1, 4096}, 4096, true},
		{IntRange{1, 4096}, 0, false},
		{IntRange{1, 4096}, 4097, false},
		{IntRange{0, 31}, 0, true},
		{IntRange{0, 31}, -1, false},
		{IntRange{0, 4294967295}, 4294967295, true},
		{IntRange{0, 4294967295}, 4294967296, false},
		{IntRange{300, 2764800}, 299, false},
	}

	for _, tt := range tests {
		_, err := tt.r.Check("n", tt.value)
		if tt.ok && err != nil {
			t.Errorf("%v.Check(%d) unexpected error: %v", tt.r, tt.value, err)
		}
		if !tt.ok && !errors.Is(err, util.ErrRangeViolation) {
			t.Errorf("%v.Check(%d) error = %v, want range violation", tt.r, tt.value, err)
		}
	}
}

func TestIntRangeOptionalKeepsZero(t *testing.T) {
	p, err := IntRange{0, 31}.Optional("vrf", Int64(0))
	if err != nil || p == nil || *p != 0 {
		t.Fatalf("Optional(0) = %v, %v; zero must be kept", p, err)
	}
	p, err = IntRange{0, 31}.Optional("vrf", nil)
	if err != nil || p != nil {
		t.Errorf("Optional(nil) = %v, %v", p, err)
	}
}

func TestIntSetList(t *testing.T) {
	dh := NewIntSet(1, 2, 5, 14, 19, 20, 21)
	got, err := dh.List("dhgrp", []int64{14, 5, 21})
	if err != nil || got != "14 5 21" {
		t.Errorf("List = %q, %v", got, err)
	}
	_, err = dh.List("dhgrp", []int64{14, 3})
	if !errors.Is(err, util.ErrEnumViolation) {
		t.Errorf("List with 3 error = %v, want enum violation", err)
	}
}

func TestAddressAndNetwork(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string, string) (string, error)
		input   string
		want    string
		wantErr bool
	}{
		{"address", Address, "192.0.2.1", "192.0.2.1", false},
		{"address v6", Address, "2001:DB8::1", "2001:db8::1", false},
		{"address bad", Address, "192.0.2.300", "", true},
		{"address with mask", Address, "192.0.2.1/24", "", true},
		{"address empty", Address, "", "", false},
		{"host prefix", HostPrefix, "10.0.0.1/24", "10.0.0.1/24", false},
		{"host prefix bare", HostPrefix, "10.0.0.1", "10.0.0.1/32", false},
		{"network", Network, "10.10.0.0/16", "10.10.0.0/16", false},
		{"network bare", Network, "10.10.0.9", "10.10.0.9/32", false},
		{"network bare v6", Network, "2001:db8::9", "2001:db8::9/128", false},
		{"network host bits", Network, "10.10.0.9/16", "", true},
		{"host prefix mapped", HostPrefix, "::ffff:10.0.0.1/120", "10.0.0.1/24", false},
		{"host prefix mapped short mask", HostPrefix, "::ffff:10.0.0.1/64", "", true},
		{"host prefix empty", HostPrefix, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn("f", tt.input)
			if tt.wantErr {
				if !errors.Is(err, util.ErrFormatViolation) {
					t.Errorf("error = %v, want format violation", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestPortRanges(t *testing.T) {
	got, err := PortRanges("tcp-portrange", []string{"443", "8000-8080 80"})
	if err != nil || got != "443 8000-8080 80" {
		t.Errorf("PortRanges = %q, %v", got, err)
	}
	_, err = PortRanges("tcp-portrange", []string{"http"})
	if !errors.Is(err, util.ErrFormatViolation) {
		t.Errorf("non-numeric port error = %v, want format violation", err)
	}
}

func TestNameRefs(t *testing.T) {
	got, err := NameRefs("srcaddr", []string{"all", "web servers"})
	if err != nil || len(got) != 2 || got[1] != "web servers" {
		t.Errorf("NameRefs = %v, %v", got, err)
	}
	if _, err := NameRefs("srcaddr", []string{"ok", " "}); !errors.Is(err, util.ErrLengthViolation) {
		t.Errorf("blank ref error = %v", err)
	}
	if _, err := NameRefs("srcaddr", []string{strings.Repeat("x", 80)}); !errors.Is(err, util.ErrLengthViolation) {
		t.Errorf("80-char ref error = %v", err)
	}
	if _, err := NameRefs("srcaddr", []string{strings.Repeat("x", 79)}); err != nil {
		t.Errorf("79-char ref should pass: %v", err)
	}
}
