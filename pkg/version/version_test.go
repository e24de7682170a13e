package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestUnstampedBuild(t *testing.T) {
	if !IsDev() {
		t.Errorf("IsDev() = false for Version %q", Version)
	}
}

func TestInfo(t *testing.T) {
	saved := [3]string{Version, GitCommit, BuildDate}
	defer func() { Version, GitCommit, BuildDate = saved[0], saved[1], saved[2] }()

	Version, GitCommit, BuildDate = "v1.2.0", "abc1234", "2026-10-01"
	got := Info()
	for _, want := range []string{"v1.2.0", "(abc1234)", "2026-10-01", runtime.Version()} {
		if !strings.Contains(got, want) {
			t.Errorf("Info() = %q, missing %q", got, want)
		}
	}
	if IsDev() {
		t.Error("IsDev() = true for a stamped version")
	}
}
