package buildinfo

import "testing"

func TestShortPrefersVersion(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.0", "0123456789abcdef"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short()=%q", got)
	}
	Version = "dev"
	if got := Short(); got != "0123456" {
		t.Fatalf("Short()=%q", got)
	}
}
