// Package version reports the objcgen build. Release builds stamp it with
// ldflags:
//
//	go build -ldflags "-X github.com/syssam/objcgen/internal/version.Version=v0.3.0 \
//		-X github.com/syssam/objcgen/internal/version.Commit=$(git rev-parse HEAD) \
//		-X github.com/syssam/objcgen/internal/version.BuildTime=$(date -u +%FT%TZ)"
//
// Builds without ldflags fall back to the VCS data recorded by the go tool.
package version

import (
	"runtime/debug"
	"strings"
)

var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

var readBuildInfo = debug.ReadBuildInfo

// String returns the version printed by objcgen --version, e.g.
// "v0.3.0 (0123456, 2026-01-02T15:04:05Z)" or "dev (0123456, modified)".
func String() string {
	commit, built, modified := Commit, BuildTime, false
	if commit == "" {
		commit, built, modified = vcs()
	}
	var details []string
	if commit != "" {
		details = append(details, shortCommit(commit))
	}
	if built != "" {
		details = append(details, built)
	}
	if modified {
		details = append(details, "modified")
	}
	if len(details) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(details, ", ") + ")"
}

func vcs() (commit, built string, modified bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			built = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return commit, built, modified
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
