package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	info := fromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.21.0",
		Path:      "github.com/carbocation/otutable/cmd/relabelcounts",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-07-18T13:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	if info.Commit != "abc123" || info.CommitTime != "2024-07-18T13:00:00Z" || !info.Modified {
		t.Fatalf("Unexpected compile info: %+v", info)
	}

	s := info.String()
	for _, want := range []string{"relabelcounts", "go1.21.0", "abc123", "modified"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q does not mention %q", s, want)
		}
	}
}

func TestZeroValueString(t *testing.T) {
	if got := (CompileInfo{}).String(); !strings.Contains(got, "unavailable") {
		t.Errorf("Got %q", got)
	}
}
