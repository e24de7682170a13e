package field

import (
	"errors"
	"reflect"
	"testing"

	"github.com/newtron-network/fgobj/pkg/util"
)

func TestToggle(t *testing.T) {
	if v := Toggle(Bool(true)); v.CLI() != "enable" || v.API() != "enable" {
		t.Errorf("true = %v", v)
	}
	if v := Toggle(Bool(false)); v.CLI() != "disable" || v.API() != "disable" {
		t.Errorf("false = %v", v)
	}
	if v := Toggle(nil); v != nil {
		t.Errorf("nil toggle should be absent, got %v", v)
	}
}

func TestValueForms(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		wantCLI string
		wantAPI interface{}
	}{
		{"text", Text("uplink to core"), `"uplink to core"`, "uplink to core"},
		{"token", Token("ping https"), "ping https", "ping https"},
		{"int", Int(0), "0", int64(0)},
		{
			"refs",
			Refs{"port1", "port2"},
			"port1 port2",
			[]map[string]string{{"name": "port1"}, {"name": "port2"}},
		},
		{
			"refs with spaces",
			Refs{"Branch LAN", "HQ"},
			`"Branch LAN" HQ`,
			[]map[string]string{{"name": "Branch LAN"}, {"name": "HQ"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.CLI(); got != tt.wantCLI {
				t.Errorf("CLI() = %q, want %q", got, tt.wantCLI)
			}
			if got := tt.value.API(); !reflect.DeepEqual(got, tt.wantAPI) {
				t.Errorf("API() = %#v, want %#v", got, tt.wantAPI)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tbl := Table{
		{Wire: "ip6-mode", Value: Token("static")},
		{Wire: "ip6-address", Value: Token("2001:db8::1/64")},
		{Wire: "ip6-allowaccess", Value: nil},
	}
	want := map[string]interface{}{"ip6-mode": "static", "ip6-address": "2001:db8::1/64"}
	if got := tbl.API(); !reflect.DeepEqual(got, want) {
		t.Errorf("API() = %#v, want %#v", got, want)
	}
	if got := tbl.CLI(); got != "set ip6-mode static\nset ip6-address 2001:db8::1/64" {
		t.Errorf("CLI() = %q", got)
	}
}

func TestOptionalConstructors(t *testing.T) {
	if OptText("") != nil || OptToken("") != nil || OptInt(nil) != nil || OptRefs(nil) != nil {
		t.Error("empty inputs must produce absent values")
	}
	if v := OptInt(Int64(0)); v == nil || v.CLI() != "0" {
		t.Errorf("OptInt(0) = %v, zero must be present", v)
	}
}

func TestCoercion(t *testing.T) {
	t.Run("int kinds", func(t *testing.T) {
		for _, raw := range []interface{}{100, int64(100), float64(100), uint64(100)} {
			n, err := AsInt("vlanid", raw)
			if err != nil || n == nil || *n != 100 {
				t.Errorf("AsInt(%#v) = %v, %v", raw, n, err)
			}
		}
	})

	t.Run("int mismatch", func(t *testing.T) {
		for _, raw := range []interface{}{"100", 1.5, true, []interface{}{1}} {
			if _, err := AsInt("vlanid", raw); !errors.Is(err, util.ErrTypeMismatch) {
				t.Errorf("AsInt(%#v) error = %v, want type mismatch", raw, err)
			}
		}
	})

	t.Run("string mismatch", func(t *testing.T) {
		if _, err := AsString("name", 42); !errors.Is(err, util.ErrTypeMismatch) {
			t.Errorf("AsString(42) error = %v", err)
		}
	})

	t.Run("bool", func(t *testing.T) {
		b, err := AsBool("nat", false)
		if err != nil || b == nil || *b {
			t.Errorf("AsBool(false) = %v, %v", b, err)
		}
		if _, err := AsBool("nat", "yes"); !errors.Is(err, util.ErrTypeMismatch) {
			t.Errorf("AsBool(\"yes\") error = %v", err)
		}
	})

	t.Run("scalar or list", func(t *testing.T) {
		one, _ := AsStrings("srcintf", "port1")
		many, _ := AsStrings("srcintf", []interface{}{"port1", "port2"})
		if len(one) != 1 || len(many) != 2 {
			t.Errorf("AsStrings = %v, %v", one, many)
		}
		if _, err := AsStrings("srcintf", []interface{}{"port1", 2}); !errors.Is(err, util.ErrTypeMismatch) {
			t.Errorf("mixed list error = %v", err)
		}
	})

	t.Run("ints", func(t *testing.T) {
		for _, raw := range []interface{}{"14 19", []interface{}{14, 19}} {
			got, err := AsInts("dhgrp", raw)
			if err != nil || !reflect.DeepEqual(got, []int64{14, 19}) {
				t.Errorf("AsInts(%#v) = %v, %v", raw, got, err)
			}
		}
		got, err := AsInts("dhgrp", 14)
		if err != nil || !reflect.DeepEqual(got, []int64{14}) {
			t.Errorf("AsInts(14) = %v, %v", got, err)
		}
		if _, err := AsInts("dhgrp", "fourteen"); !errors.Is(err, util.ErrTypeMismatch) {
			t.Errorf("AsInts(\"fourteen\") error = %v", err)
		}
	})
}
