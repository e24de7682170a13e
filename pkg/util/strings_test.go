package util

import "testing"

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" x ") {
		t.Error(`IsBlank(" x ") = true`)
	}
}

func TestQuoteIfSpaced(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"port1", "port1"},
		{"web servers", `"web servers"`},
		{"tab\there", "\"tab\there\""},
		{"12", "12"},
	}
	for _, tt := range tests {
		if got := QuoteIfSpaced(tt.input); got != tt.want {
			t.Errorf("QuoteIfSpaced(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
