package version

import "testing"

func TestString(t *testing.T) {
	oldV, oldSHA, oldBT := Version, GitSHA, BuildTime
	t.Cleanup(func() { Version, GitSHA, BuildTime = oldV, oldSHA, oldBT })

	Version, GitSHA, BuildTime = "1.2.0", "abc1234", "2026-01-02T03:04:05Z"
	want := "fold 1.2.0 (git abc1234, built 2026-01-02T03:04:05Z)"
	if got := String("fold"); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
