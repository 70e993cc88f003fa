// Package version holds build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

// Populated via -ldflags at build time.
var (
	// GitRelease is the release tag (e.g. v0.3.0).
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the date of that commit.
	GitCommitDate = "unknown"
)

// GoInfo describes the Go toolchain and platform.
var GoInfo = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
