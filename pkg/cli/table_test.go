package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "KIND", "SCOPE")
	tbl.Row("interface", "vdom")
	tbl.Row("vdom-link", "global")
	tbl.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "KIND") || !strings.HasPrefix(lines[1], "----") {
		t.Errorf("header = %q / %q", lines[0], lines[1])
	}
	if strings.Index(lines[2], "vdom") != strings.Index(lines[3], "global") {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTableTo(&buf, "A", "B").Flush()
	if buf.Len() != 0 {
		t.Errorf("empty table wrote %q", buf.String())
	}
}

func TestTableShortRow(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "SETTING", "VALUE")
	tbl.Row("redis_db")
	tbl.Row("default_vdom", "")
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	tbl.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines[2:] {
		if !strings.HasSuffix(line, "-") {
			t.Errorf("missing cell not shown as '-': %q", line)
		}
	}
	if tbl.Len() != 0 {
		t.Error("Flush should reset the table")
	}
}
