package genesistools

import (
	"fmt"
	"io"
	"runtime"
)

// Populated during build, overridden with ldflags
var (
	// Version is the release tag
	Version = "v0.1.0"
	// GitRev is the hash of the last commit
	GitRev = "undefined"
	// GitBranch is the name of the branch of the last commit
	GitBranch = "undefined"
	// BuildDate is the date of the build
	BuildDate = "Mon 01 Jan 2024 00:00:00 UTC"
)

// PrintVersion prints version info into the provided io.Writer
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "Version:      %s\n", Version)
	fmt.Fprintf(w, "Git revision: %s\n", GitRev)
	fmt.Fprintf(w, "Git branch:   %s\n", GitBranch)
	fmt.Fprintf(w, "Go version:   %s\n", runtime.Version())
	fmt.Fprintf(w, "Built:        %s\n", BuildDate)
	fmt.Fprintf(w, "OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
