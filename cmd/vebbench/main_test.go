package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--help"})

	assert.NoError(t, cmd.Execute())
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--log-level", "chatty", "check"})

	assert.Error(t, cmd.Execute())
}

// Broken workload flags must surface as command errors, never as panics
// out of the set constructors or the random generator.
func TestRootCmd_BadFlags(t *testing.T) {
	tcases := [][]string{
		{"check", "--inserts=0"},
		{"check", "--universe=0"},
		{"check", "--rounds=-1"},
		{"bench", "--universe=-3"},
		{"bench", "--erases=-1"},
	}

	for _, args := range tcases {
		cmd := newRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(args)

		var err error
		require.NotPanics(t, func() { err = cmd.Execute() }, "args: %v", args)
		assert.Error(t, err, "args: %v", args)
	}
}

func TestNewImpl(t *testing.T) {
	for _, name := range []string{"veb", "critbit"} {
		s, err := newImpl(name, 1024)

		require.NoError(t, err, name)
		require.NotNil(t, s, name)

		assert.True(t, s.Add(5))
		assert.True(t, s.Has(5))
		assert.Equal(t, 1, s.Len())
	}

	_, err := newImpl("btree", 1024)
	assert.Error(t, err)
}
