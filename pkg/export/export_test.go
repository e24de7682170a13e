package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/newtron-network/fgobj/pkg/fgobj"
	"github.com/newtron-network/fgobj/pkg/field"
)

func testObjects(t *testing.T) []fgobj.Object {
	t.Helper()
	addr, err := fgobj.NewAddress(fgobj.AddressConfig{Name: "web", VDOM: "root", Subnet: "10.0.0.0/24"})
	if err != nil {
		t.Fatal(err)
	}
	pol, err := fgobj.NewPolicy(fgobj.PolicyConfig{ID: field.Int64(3), Action: "deny"})
	if err != nil {
		t.Fatal(err)
	}
	return []fgobj.Object{addr, pol}
}

func TestRender(t *testing.T) {
	objs := testObjects(t)

	r, err := Render(objs[0], fgobj.OpAdd)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if r.Kind != fgobj.KindAddress || r.ID != "web" || r.VDOM != "root" {
		t.Errorf("Rendered = %+v", r)
	}
	if !strings.Contains(r.CLI, "config firewall address\n") || r.API == nil {
		t.Errorf("missing forms: %+v", r)
	}

	r, err = Render(objs[0], fgobj.OpGet)
	if err != nil {
		t.Fatalf("Render(get): %v", err)
	}
	if r.CLI != "" || r.API.MKey != "web" {
		t.Errorf("get = %+v", r)
	}
}

func TestRenderAllOps(t *testing.T) {
	objs := testObjects(t)
	out, err := RenderAll(objs, []fgobj.Op{"", fgobj.OpDelete}, fgobj.OpUpdate)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if out[0].Op != fgobj.OpUpdate || out[1].Op != fgobj.OpDelete {
		t.Errorf("ops = %s, %s", out[0].Op, out[1].Op)
	}
	if out[1].CLI != "config firewall policy\ndelete 3\nend\n" {
		t.Errorf("delete CLI = %q", out[1].CLI)
	}

	noID, _ := fgobj.NewPolicy(fgobj.PolicyConfig{})
	if _, err := RenderAll([]fgobj.Object{noID}, nil, fgobj.OpAdd); err == nil {
		t.Error("RenderAll should fail for an object without identifier")
	}
}

func TestWriterSinkFormats(t *testing.T) {
	batch, err := RenderAll(testObjects(t), nil, fgobj.OpAdd)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	t.Run("cli", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewWriterSink(&buf, FormatCLI).Write(ctx, batch); err != nil {
			t.Fatal(err)
		}
		if buf.String() != batch[0].CLI+batch[1].CLI {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewWriterSink(&buf, FormatJSON).Write(ctx, batch); err != nil {
			t.Fatal(err)
		}
		var got []map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
		}
		if len(got) != 2 || got[0]["path"] != "firewall" || got[1]["name"] != "policy" {
			t.Errorf("decoded = %v", got)
		}
		if got[0]["mkey"] != nil {
			t.Errorf("add mkey = %v, want null", got[0]["mkey"])
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewWriterSink(&buf, FormatYAML).Write(ctx, batch); err != nil {
			t.Fatal(err)
		}
		dec := yaml.NewDecoder(&buf)
		var docs int
		for {
			var doc map[string]interface{}
			if err := dec.Decode(&doc); err != nil {
				break
			}
			if doc["api"] != "cmdb" {
				t.Errorf("doc %d api = %v", docs, doc["api"])
			}
			docs++
		}
		if docs != 2 {
			t.Errorf("got %d YAML documents, want 2", docs)
		}
	})
}

func TestWriterSinkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := NewWriterSink(&buf, FormatCLI).Write(ctx, nil); err == nil {
		t.Error("Write should fail on a cancelled context")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat should reject xml")
	}
}

func TestOutboxKeys(t *testing.T) {
	batch, err := RenderAll(testObjects(t), nil, fgobj.OpAdd)
	if err != nil {
		t.Fatal(err)
	}
	if got := APIKey(batch[0]); got != "FGAPI|root|firewall.address|web|add" {
		t.Errorf("APIKey = %q", got)
	}
	if got := APIKey(batch[1]); got != "FGAPI|global|firewall.policy|3|add" {
		t.Errorf("APIKey = %q", got)
	}
	if got := CLIKey(batch[0]); got != "FGCLI|root" {
		t.Errorf("CLIKey = %q", got)
	}
	if got := CLIKey(batch[1]); got != "FGCLI|global" {
		t.Errorf("CLIKey = %q", got)
	}
	if APIKey(Rendered{}) != "" {
		t.Error("APIKey without a request should be empty")
	}
}

func TestOutboxKeysAreDistinct(t *testing.T) {
	routeIn := func(vdom string) fgobj.Object {
		t.Helper()
		r, err := fgobj.NewRoute(fgobj.RouteConfig{
			SeqNum: field.Int64(1), VDOM: vdom, Dst: "10.1.0.0/16", Gateway: "192.0.2.1", Device: "port1",
		})
		if err != nil {
			t.Fatal(err)
		}
		return r
	}
	addr := testObjects(t)[0]

	tests := []struct {
		name string
		a, b fgobj.Object
		opA  fgobj.Op
		opB  fgobj.Op
	}{
		{"same route in two vdoms", routeIn("cust1"), routeIn("cust2"), fgobj.OpAdd, fgobj.OpAdd},
		{"route in a vdom and global", routeIn("cust1"), routeIn(""), fgobj.OpAdd, fgobj.OpAdd},
		{"two ops on one object", addr, addr, fgobj.OpAdd, fgobj.OpDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, err := Render(tt.a, tt.opA)
			if err != nil {
				t.Fatal(err)
			}
			rb, err := Render(tt.b, tt.opB)
			if err != nil {
				t.Fatal(err)
			}
			if APIKey(ra) == APIKey(rb) {
				t.Errorf("both requests map to %q", APIKey(ra))
			}
		})
	}
}

func TestAPIFields(t *testing.T) {
	r, err := Render(testObjects(t)[0], fgobj.OpUpdate)
	if err != nil {
		t.Fatal(err)
	}
	fields, err := apiFields(r)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]interface{}{}
	for i := 0; i < len(fields); i += 2 {
		got[fields[i].(string)] = fields[i+1]
	}
	want := map[string]string{
		"api":        "cmdb",
		"mkey":       `"web"`,
		"parameters": `{"vdom":"root"}`,
		"op":         "update",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %s", k, got[k], v)
		}
	}
	if !strings.Contains(got["data"].(string), `"subnet":"10.0.0.0/24"`) {
		t.Errorf("data = %v", got["data"])
	}
}
