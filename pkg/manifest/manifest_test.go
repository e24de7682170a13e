package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/newtron-network/fgobj/pkg/fgobj"
	"github.com/newtron-network/fgobj/pkg/util"
)

const siteManifest = `
vdom: cust1
objects:
  - kind: vdom
    params:
      name: cust1
  - kind: interface
    preset: vlan
    params:
      name: vlan100
      vlanid: 100
      parent: port1
      ip: 10.1.0.1/24
      allowaccess: [ping, https]
  - kind: address
    params:
      name: web
      fqdn: www.example.com
  - kind: policy
    params:
      id: 0
      srcintf: vlan100
      dstintf: [wan1]
      srcaddr: all
      dstaddr: web
      service: HTTPS
      action: accept
      nat: true
  - kind: route
    preset: blackhole
    op: delete
    params:
      seq_num: 9
      dst: 192.0.2.0/24
  - kind: phase1
    params:
      name: to-hq
      interface: wan1
      psk: hunter2hunter2
      remote_gw: 198.51.100.7
      proposal: aes256-sha256 aes128-sha1
      dhgrp: [14, 19]
  - kind: phase2
    params:
      name: to-hq-p2
      vdom: root
      phase1name: to-hq
      proposal: [aes256-sha256]
      dhgrp: "14"
`

func TestLoadSiteManifest(t *testing.T) {
	items, err := Load([]byte(siteManifest))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 7 {
		t.Fatalf("got %d items, want 7", len(items))
	}

	wantKinds := []fgobj.Kind{
		fgobj.KindVdom, fgobj.KindInterface, fgobj.KindAddress, fgobj.KindPolicy,
		fgobj.KindRoute, fgobj.KindPhase1, fgobj.KindPhase2,
	}
	for i, k := range wantKinds {
		if items[i].Object.Kind() != k {
			t.Errorf("items[%d].Kind() = %s, want %s", i, items[i].Object.Kind(), k)
		}
	}

	if items[0].Object.VDOM() != "" {
		t.Errorf("vdom object must not inherit the manifest vdom")
	}
	if items[1].Object.VDOM() != "cust1" {
		t.Errorf("interface vdom = %q, want manifest default", items[1].Object.VDOM())
	}
	if items[6].Object.VDOM() != "root" {
		t.Errorf("explicit vdom param must win, got %q", items[6].Object.VDOM())
	}
	if items[3].Object.ID() != int64(0) {
		t.Errorf("policy id = %#v, want int64(0)", items[3].Object.ID())
	}
	if items[4].Op != fgobj.OpDelete || items[0].Op != "" {
		t.Errorf("ops = %q, %q", items[4].Op, items[0].Op)
	}

	script, err := fgobj.CLIAdd(items[1].Object)
	if err != nil {
		t.Fatalf("CLIAdd: %v", err)
	}
	for _, want := range []string{"    set vlanid 100\n", "    set interface \"port1\"\n", "    set allowaccess ping https\n"} {
		if !strings.Contains(script, want) {
			t.Errorf("interface CLI missing %q:\n%s", want, script)
		}
	}

	p1, _ := fgobj.APIAdd(items[5].Object)
	if p1.Data["dhgrp"] != "14 19" || p1.Data["proposal"] != "aes256-sha256 aes128-sha1" {
		t.Errorf("phase1 data = %v", p1.Data)
	}
}

func TestLoadReportsEveryFailingEntry(t *testing.T) {
	data := `
objects:
  - kind: interface
    params:
      name: port1
      vlanid: "100"
  - kind: address
    params:
      name: ok
      subnet: 10.0.0.0/8
  - kind: policy
    params:
      id: 1
      action: deny
      logtraffic: utm
  - kind: tunnel
    params:
      name: x
`
	_, err := Load([]byte(data))
	if err == nil {
		t.Fatal("Load should fail")
	}

	var verr *util.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %T is not a ValidationError", err)
	}
	if len(verr.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(verr.Errors), verr.Errors)
	}
	for i, prefix := range []string{"objects[0] (interface)", "objects[2] (policy)", "objects[3] (tunnel)"} {
		if !strings.HasPrefix(verr.Errors[i], prefix) {
			t.Errorf("errors[%d] = %q, want prefix %q", i, verr.Errors[i], prefix)
		}
	}
	if !errors.Is(err, util.ErrTypeMismatch) {
		t.Error("string vlanid should surface as a type mismatch")
	}
	if !errors.Is(err, util.ErrCrossFieldViolation) {
		t.Error("utm with deny should surface as a cross-field violation")
	}
	if !errors.Is(err, util.ErrValidationFailed) {
		t.Error("aggregate error should unwrap to ErrValidationFailed")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  error
		field string
	}{
		{
			name:  "unknown param",
			entry: Entry{Kind: "address", Params: map[string]interface{}{"name": "a", "colour": "red"}},
			want:  util.ErrEnumViolation,
			field: "params",
		},
		{
			name:  "vdom param on vdom kind",
			entry: Entry{Kind: "vdom", Params: map[string]interface{}{"name": "a", "vdom": "root"}},
			want:  util.ErrEnumViolation,
			field: "params",
		},
		{
			name:  "unknown preset",
			entry: Entry{Kind: "route", Preset: "null", Params: map[string]interface{}{"seq_num": 1}},
			want:  util.ErrEnumViolation,
			field: "preset",
		},
		{
			name:  "float id",
			entry: Entry{Kind: "policy", Params: map[string]interface{}{"id": 1.5}},
			want:  util.ErrTypeMismatch,
			field: "id",
		},
		{
			name:  "bool as string",
			entry: Entry{Kind: "policy", Params: map[string]interface{}{"id": 1, "nat": "yes"}},
			want:  util.ErrTypeMismatch,
			field: "nat",
		},
		{
			name:  "list of non-strings",
			entry: Entry{Kind: "policy", Params: map[string]interface{}{"id": 1, "srcintf": []interface{}{1, 2}}},
			want:  util.ErrTypeMismatch,
			field: "srcintf",
		},
		{
			name:  "vlan preset without id",
			entry: Entry{Kind: "interface", Preset: "vlan", Params: map[string]interface{}{"name": "v1", "parent": "port1"}},
			want:  util.ErrMissingRequired,
			field: "vlanid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Objects: []Entry{tt.entry}}
			_, err := m.Build()
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			fe, ok := util.AsFieldError(err)
			if !ok {
				t.Fatalf("no FieldError in %v", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestVdomLinkIgnoresManifestVDOM(t *testing.T) {
	m := &Manifest{VDOM: "cust1", Objects: []Entry{
		{Kind: "interface", Preset: "vdom-link", Params: map[string]interface{}{"name": "vl1"}},
		{Kind: "interface", Params: map[string]interface{}{"name": "vl2", "type": "vdom-link"}},
	}}
	items, err := m.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, it := range items {
		if it.Object.Kind() != fgobj.KindVdomLink || it.Object.VDOM() != "" {
			t.Errorf("%v: kind %s, vdom %q", it.Object.ID(), it.Object.Kind(), it.Object.VDOM())
		}
	}

	m.Objects[0].Params["vdom"] = "cust1"
	_, err = m.Build()
	if !errors.Is(err, util.ErrCrossFieldViolation) {
		t.Errorf("explicit vdom on a vdom-link: error = %v, want cross-field violation", err)
	}
}

func TestBuildEmptyManifest(t *testing.T) {
	_, err := (&Manifest{}).Build()
	if !errors.Is(err, util.ErrValidationFailed) {
		t.Errorf("empty manifest: %v", err)
	}
}

func TestBadOp(t *testing.T) {
	m := &Manifest{Objects: []Entry{{Kind: "vdom", Op: "replace", Params: map[string]interface{}{"name": "a"}}}}
	if _, err := m.Build(); err == nil || !strings.Contains(err.Error(), "replace") {
		t.Errorf("Build() error = %v", err)
	}
}

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.json")
	content := `{"vdom": "root", "objects": [{"kind": "service", "params": {"name": "web-alt", "tcp_portrange": ["8080", "8443"]}}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	objs := Objects(items)
	if len(objs) != 1 || objs[0].VDOM() != "root" {
		t.Fatalf("objects = %v", objs)
	}
	req, _ := fgobj.APIAdd(objs[0])
	if req.Data["tcp-portrange"] != "8080 8443" || req.Data["protocol"] != "TCP/UDP/SCTP" {
		t.Errorf("data = %v", req.Data)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile on a missing file should fail")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("objects: [kind: : x")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}
