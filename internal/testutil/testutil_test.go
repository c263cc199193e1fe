package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()
	AssertError(t, errors.New("boom"))
}

func TestLines(t *testing.T) {
	got := Lines(`
		6,10
		0,14

		fold along y=7
	`)
	want := []string{"6,10", "0,14", "", "fold along y=7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if got := Lines("\n\t\n"); got != nil {
		t.Errorf("blank fixture = %q, want nil", got)
	}
}

func TestMemInput(t *testing.T) {
	mfs := MemInput("/in.txt", "0,9 -> 5,9", "8,0 -> 0,8")
	got, err := fsutil.ReadLines(mfs, "/in.txt")
	AssertNoError(t, err)
	if diff := cmp.Diff([]string{"0,9 -> 5,9", "8,0 -> 0,8"}, got); diff != "" {
		t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
	}
}

func TestMuteLogs(t *testing.T) {
	prev := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = prev })

	var calls int
	monitoring.SetLogger(func(string, ...interface{}) { calls++ })
	t.Run("muted", func(t *testing.T) {
		MuteLogs(t)
		monitoring.Logf("hidden")
	})
	monitoring.Logf("visible")
	if calls != 1 {
		t.Errorf("logger called %d times, want 1", calls)
	}
}
