package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, version, commit, built string, info *debug.BuildInfo) {
	t.Helper()
	v, c, b, r := Version, Commit, BuildTime, readBuildInfo
	t.Cleanup(func() { Version, Commit, BuildTime, readBuildInfo = v, c, b, r })
	Version, Commit, BuildTime = version, commit, built
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestString(t *testing.T) {
	t.Run("ldflags", func(t *testing.T) {
		stamp(t, "v0.3.0", "0123456789abcdef", "2026-01-02T15:04:05Z", nil)
		assert.Equal(t, "v0.3.0 (0123456, 2026-01-02T15:04:05Z)", String())
	})

	t.Run("ldflags win over build info", func(t *testing.T) {
		stamp(t, "v0.3.0", "abc", "", &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
		}})
		assert.Equal(t, "v0.3.0 (abc)", String())
	})

	t.Run("build info", func(t *testing.T) {
		stamp(t, "dev", "", "", &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			{Key: "vcs.modified", Value: "true"},
		}})
		assert.Equal(t, "dev (fedcba9, 2026-03-04T05:06:07Z, modified)", String())
	})

	t.Run("nothing known", func(t *testing.T) {
		stamp(t, "dev", "", "", nil)
		assert.Equal(t, "dev", String())
	})
}
