package version

import "testing"

func TestGet_DevDefaults(t *testing.T) {
	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev without ldflags", info.Version)
	}
	if info.IsRelease {
		t.Error("IsRelease = true for a dev build")
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.0", GitCommit: "0123456789abcdef"}
	if got := info.String(); got != "1.2.0 (0123456789ab)" {
		t.Errorf("String = %q, want the version with a short commit", got)
	}

	info.GitCommit = ""
	if got := info.String(); got != "1.2.0" {
		t.Errorf("String = %q, want the bare version", got)
	}
}
