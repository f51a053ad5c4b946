// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/katalvlaran/chainorder/internal/version.Version=v0.2.0"
var (
	Version = "dev"
	Commit  = "none"
)

// Info is the printable build description.
type Info struct {
	Version string
	Commit  string
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit}
}

func (i Info) String() string {
	return fmt.Sprintf("chainorder %s (%s)", i.Version, i.Commit)
}
