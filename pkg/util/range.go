package util

import (
	"regexp"
	"strings"
)

var portRangeRegexp = regexp.MustCompile(`^\d+$|^\d+-\d+$`)

// IsPortRange reports whether s is a single port ("443") or a low-high
// span ("8000-8080").
func IsPortRange(s string) bool {
	return portRangeRegexp.MatchString(s)
}

// JoinPortRanges joins port-range components into the space-separated form
// FortiOS stores them in. Order is preserved.
func JoinPortRanges(ranges []string) string {
	return strings.Join(ranges, " ")
}
