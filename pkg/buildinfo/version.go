// Package buildinfo reports which geograph build is running.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/geograph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/geograph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/geograph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Other builds fall back to the VCS stamp the Go toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the resolved build identity.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Modified bool // working tree had uncommitted changes
}

var (
	vcsOnce sync.Once
	vcs     Info
)

// readVCS reads the toolchain VCS stamp once per process.
func readVCS() Info {
	vcsOnce.Do(func() {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				vcs.Commit = s.Value
			case "vcs.time":
				vcs.Date = s.Value
			case "vcs.modified":
				vcs.Modified = s.Value == "true"
			}
		}
	})
	return vcs
}

// Get returns the ldflags values, filling unset commit and date from the
// VCS stamp.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if info.Commit == "none" || info.Date == "unknown" {
		stamp := readVCS()
		if info.Commit == "none" && stamp.Commit != "" {
			info.Commit, info.Modified = stamp.Commit, stamp.Modified
		}
		if info.Date == "unknown" && stamp.Date != "" {
			info.Date = stamp.Date
		}
	}
	return info
}

// String renders the build as three "key: value" lines.
func String() string {
	i := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.commit(), i.Date)
}

// Template returns a cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.commit(), i.Date)
}

func (i Info) commit() string {
	if i.Modified {
		return i.Commit + "+dirty"
	}
	return i.Commit
}

// CacheScope returns the key prefix for persistent caches. Release builds
// are scoped by version and development builds by commit, so a rebuilt
// binary never reads results written by different code. Dirty trees get
// their own scope.
func CacheScope() string {
	i := Get()
	if i.Version == "dev" {
		return fmt.Sprintf("geograph@%s:", i.commit())
	}
	return fmt.Sprintf("geograph@%s:", i.Version)
}
