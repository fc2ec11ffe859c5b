package cmd

import (
	"bytes"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newVersionCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version", "--log-file", filepath.Join(t.TempDir(), "retest.log")})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "retest version")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestBuildSetting(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
	}}

	assert.Equal(t, "abc123", buildSetting(info, "vcs.revision"))
	assert.Empty(t, buildSetting(info, "vcs.time"))
}
