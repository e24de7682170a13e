// Package version carries build metadata stamped in by the linker.
package version

import (
	"fmt"
	"runtime"
)

// Version, GitCommit, and BuildDate are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/newtron-network/fgobj/pkg/version.Version=v1.0.0 \
//	  -X github.com/newtron-network/fgobj/pkg/version.GitCommit=abc1234 \
//	  -X github.com/newtron-network/fgobj/pkg/version.BuildDate=2026-01-01T00:00:00Z"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// IsDev reports whether the binary was built without version stamping.
func IsDev() bool {
	return Version == "dev"
}

// Info returns the version line printed by "fgobj version".
func Info() string {
	return fmt.Sprintf("%s (%s) built %s with %s", Version, GitCommit, BuildDate, runtime.Version())
}
