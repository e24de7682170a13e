// Package field holds the value validators for FortiGate object fields and the
// typed wire values the renderers consume.
//
// A validator takes raw input plus the field's constraint, and returns either
// a normalized value or a *util.FieldError. A Value is what survives
// validation: it knows how to print itself on a CLI "set" line and how to
// appear in an API request body. A nil Value means the field is absent and is
// omitted from both forms.
package field

import (
	"strconv"
	"strings"

	"github.com/newtron-network/fgobj/pkg/util"
)

// Value is a validated field value in wire form.
type Value interface {
	// CLI returns the text that follows "set <wire-name> ".
	CLI() string
	// API returns the JSON-compatible value for the request data.
	API() interface{}
}

// Text is a free-form string. The CLI form is double quoted.
type Text string

// CLI implements Value.
func (t Text) CLI() string { return strconv.Quote(string(t)) }

// API implements Value.
func (t Text) API() interface{} { return string(t) }

// Token is a bare word or space-separated word list: enum values, addresses,
// networks, enable/disable toggles, proposal and port-range lists.
type Token string

// CLI implements Value.
func (t Token) CLI() string { return string(t) }

// API implements Value.
func (t Token) API() interface{} { return string(t) }

// Int is an integer field.
type Int int64

// CLI implements Value.
func (i Int) CLI() string { return strconv.FormatInt(int64(i), 10) }

// API implements Value.
func (i Int) API() interface{} { return int64(i) }

// Refs is an ordered list of named references (interfaces, addresses,
// services). The API form is a list of {"name": ...} records; the CLI form
// unwraps it to space-joined names, quoting any name that contains spaces.
type Refs []string

// CLI implements Value.
func (r Refs) CLI() string {
	words := make([]string, len(r))
	for i, name := range r {
		words[i] = util.QuoteIfSpaced(name)
	}
	return strings.Join(words, " ")
}

// API implements Value.
func (r Refs) API() interface{} {
	out := make([]map[string]string, len(r))
	for i, name := range r {
		out[i] = map[string]string{"name": name}
	}
	return out
}

// Entry is one member of a Table.
type Entry struct {
	Wire  string
	Value Value
}

// Table is a nested settings block such as an interface's "config ipv6".
// The CLI renderer opens a sub-block for it; the API form is a nested object.
type Table []Entry

// CLI returns the nested set lines joined by newlines. Renderers that need
// indentation walk the entries directly.
func (t Table) CLI() string {
	lines := make([]string, 0, len(t))
	for _, e := range t {
		if e.Value == nil {
			continue
		}
		lines = append(lines, "set "+e.Wire+" "+e.Value.CLI())
	}
	return strings.Join(lines, "\n")
}

// API implements Value.
func (t Table) API() interface{} {
	out := make(map[string]interface{}, len(t))
	for _, e := range t {
		if e.Value == nil {
			continue
		}
		out[e.Wire] = e.Value.API()
	}
	return out
}

// OptText returns a Text value, or nil when s is empty.
func OptText(s string) Value {
	if s == "" {
		return nil
	}
	return Text(s)
}

// OptToken returns a Token value, or nil when s is empty.
func OptToken(s string) Value {
	if s == "" {
		return nil
	}
	return Token(s)
}

// OptInt returns an Int value, or nil when p is nil. Zero is a real value.
func OptInt(p *int64) Value {
	if p == nil {
		return nil
	}
	return Int(*p)
}

// OptRefs returns a Refs value, or nil when names is empty.
func OptRefs(names []string) Value {
	if len(names) == 0 {
		return nil
	}
	return Refs(names)
}

// Toggle maps true to "enable", false to "disable" and nil to an absent
// value, which leaves the device setting untouched.
func Toggle(b *bool) Value {
	if b == nil {
		return nil
	}
	if *b {
		return Token("enable")
	}
	return Token("disable")
}

// Bool returns a pointer to b, for optional toggle fields.
func Bool(b bool) *bool { return &b }

// Int64 returns a pointer to n, for optional integer fields.
func Int64(n int64) *int64 { return &n }
