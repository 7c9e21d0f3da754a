package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.xml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeFile(t, "<PISI><Package><Name>nano</Name></Package><PartOf>system.devel</PartOf></PISI>")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Name:   nano\nPartOf: system.devel\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunFieldsAbsent(t *testing.T) {
	path := writeFile(t, "<SOL></SOL>")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
}

func TestRunMalformed(t *testing.T) {
	path := writeFile(t, "<PISI><Package>")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "solmeta:")
}

func TestRunVerboseMalformed(t *testing.T) {
	path := writeFile(t, "<PISI><Package>")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--verbose", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "sol: badly formed XML document")
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "nope.xml")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "solmeta:")
}

func TestRunNoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}
