package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/colfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sixItems = "a\nbb\nccc\nd\nee\nf\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootStdin(t *testing.T) {
	out, _, err := execute(t, sixItems, "--width", "10")
	require.NoError(t, err)
	assert.Equal(t, "a    d\nbb   ee\nccc  f\n", out)
}

func TestRootSkipsBlankLines(t *testing.T) {
	out, _, err := execute(t, "a\n\n  \nb\n", "-w", "80")
	require.NoError(t, err)
	assert.Equal(t, "a  b\n", out)
}

func TestRootEmptyInput(t *testing.T) {
	out, _, err := execute(t, "", "-w", "80")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootFiles(t *testing.T) {
	first := writeFile(t, "first.txt", "one\ntwo\n")
	second := writeFile(t, "second.txt", "three\n")
	out, _, err := execute(t, "", "-w", "80", first, second)
	require.NoError(t, err)
	assert.Equal(t, "one  two  three\n", out)
}

func TestRootMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "-w", "80", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestRootSpacerAndAlign(t *testing.T) {
	out, _, err := execute(t, "1\n22\n333\n4\n", "-w", "10", "-s", " | ", "--align", "right,right")
	require.NoError(t, err)
	assert.Equal(t, " 1 | 333\n22 |   4\n", out)
}

func TestRootWidths(t *testing.T) {
	out, _, err := execute(t, "a\nb\nc\nd\n", "-w", "10", "-s", " ", "--widths", "6")
	require.NoError(t, err)
	assert.Equal(t, "a      c\nb      d\n", out)
}

func TestRootOverflowWrap(t *testing.T) {
	out, _, err := execute(t, "abcdef\nx\n", "-w", "80", "--widths", "3", "--overflow", "wrap")
	require.NoError(t, err)
	assert.Equal(t, "abc  x\ndef\n", out)
}

func TestRootInvalidOverflow(t *testing.T) {
	_, _, err := execute(t, sixItems, "-w", "80", "--overflow", "squash")
	assert.ErrorIs(t, err, colfmt.ErrUnsupportedOverflow)
}

func TestRootInvalidAlign(t *testing.T) {
	_, _, err := execute(t, sixItems, "-w", "80", "--align", "sideways")
	assert.ErrorIs(t, err, colfmt.ErrUnsupportedAlignment)
}

func TestRootNegativeWidths(t *testing.T) {
	_, _, err := execute(t, sixItems, "-w", "80", "--widths=-3")
	assert.ErrorIs(t, err, colfmt.ErrInvalidWidth)
}

func TestRootYAMLMapping(t *testing.T) {
	out, _, err := execute(t, "name: colfmt\nversion: 1.0\n", "--yaml", "-w", "5")
	require.NoError(t, err)
	assert.Equal(t, "name     colfmt\nversion  1.0\n", out)
}

func TestRootYAMLSequence(t *testing.T) {
	path := writeFile(t, "list.yaml", "- a\n- bb\n- ccc\n- d\n- ee\n- f\n")
	out, _, err := execute(t, "", "--yaml", "-w", "10", path)
	require.NoError(t, err)
	assert.Equal(t, "a    d\nbb   ee\nccc  f\n", out)
}

func TestRootYAMLTooManyFiles(t *testing.T) {
	a := writeFile(t, "a.yaml", "a: 1\n")
	b := writeFile(t, "b.yaml", "b: 2\n")
	_, _, err := execute(t, "", "--yaml", "-w", "80", a, b)
	assert.ErrorIs(t, err, errTooManyYAMLInputs)
}

func TestRootYAMLInvalid(t *testing.T) {
	_, _, err := execute(t, "key: [oops\n", "--yaml", "-w", "80")
	assert.ErrorIs(t, err, colfmt.ErrInvalidInput)
}

func TestRootEnvSettings(t *testing.T) {
	t.Setenv("COLFMT_WIDTH", "10")
	t.Setenv("COLFMT_SPACER", "|")
	out, _, err := execute(t, sixItems)
	require.NoError(t, err)
	assert.Equal(t, "a |ccc|ee\nbb|d  |f\n", out)
}

func TestRootFlagsOverrideEnv(t *testing.T) {
	t.Setenv("COLFMT_WIDTH", "10")
	out, _, err := execute(t, sixItems, "--width", "80")
	require.NoError(t, err)
	assert.Equal(t, "a  bb  ccc  d  ee  f\n", out)
}

func TestRootConfigFile(t *testing.T) {
	cfg := writeFile(t, "colfmt.yaml", "spacer: \" - \"\nwidth: 80\nalign: [right]\n")
	out, _, err := execute(t, "a\nb\n", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "a - b\n", out)
}

func TestRootMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "a\n", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRootVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, sixItems, "-w", "10", "-vv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Input read")
	assert.Contains(t, stderr, "Layout chosen")
	assert.Contains(t, stderr, "columns=2")
}

func TestRootQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, sixItems, "-w", "10")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "colfmt version dev\n", out)
}
