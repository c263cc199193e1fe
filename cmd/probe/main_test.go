package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/parse"
	"github.com/banshee-data/gridpuzzles/internal/testutil"
)

func TestRunSample(t *testing.T) {
	testutil.MuteLogs(t)
	mfs := testutil.MemInput("/in.txt", "target area: x=20..30, y=-10..-5")
	var out bytes.Buffer
	require.NoError(t, run(mfs, "/in.txt", &out))
	assert.Equal(t, "45\n112\n", out.String())
}

func TestRunTargetWithoutStallingXVelocity(t *testing.T) {
	testutil.MuteLogs(t)
	mfs := testutil.MemInput("/in.txt", "target area: x=17..19, y=-10..-5")
	var out bytes.Buffer
	testutil.AssertNoError(t, run(mfs, "/in.txt", &out))
	assert.Equal(t, "0\n28\n", out.String())
}

func TestRunErrors(t *testing.T) {
	testutil.MuteLogs(t)

	err := run(fsutil.NewMemoryFileSystem(), "/in.txt", &bytes.Buffer{})
	assert.True(t, errors.Is(err, fsutil.ErrNotFound), "got %v", err)

	mfs := testutil.MemInput("/in.txt", testutil.Lines(`

		target area: x=20..30
	`)...)
	err = run(mfs, "/in.txt", &bytes.Buffer{})
	var pe *parse.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 2, pe.Line)

	mfs = testutil.MemInput("/in.txt", "")
	err = run(mfs, "/in.txt", &bytes.Buffer{})
	assert.True(t, errors.As(err, &pe), "got %v", err)
}
