package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCSVFlag(t *testing.T) {
	assert.Equal(t, []string{"Python", "SQL"}, splitCSVFlag("Python, SQL"))
	assert.Equal(t, []string{"Go"}, splitCSVFlag("Go,,"))
	assert.Empty(t, splitCSVFlag(""))
	assert.Empty(t, splitCSVFlag(" , "))
}

func TestReadTextArg(t *testing.T) {
	text, err := readTextArg("inline text", "")
	require.NoError(t, err)
	assert.Equal(t, "inline text", text)

	_, err = readTextArg("", "")
	assert.Error(t, err)

	_, err = readTextArg("inline", "also-a-file")
	assert.Error(t, err)
}

func TestReadTextArg_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o644))

	text, err := readTextArg("", path)
	require.NoError(t, err)
	assert.Equal(t, "file contents", text)

	_, err = readTextArg("", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func newEngineTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("taxonomy", "", "")
	cmd.Flags().String("catalog", "", "")
	return cmd
}

func TestLoadExtractionEngines_FallsBackToBuiltinTaxonomy(t *testing.T) {
	cmd := newEngineTestCmd(t)
	missing := filepath.Join(t.TempDir(), "nope.json")
	require.NoError(t, cmd.Flags().Set("taxonomy", missing))

	eng, err := loadExtractionEngines(cmd, "", missing, "", false)
	require.NoError(t, err)

	// The compiled-in vocabulary still resolves skills and aliases.
	got := eng.extractor.Extract("python and k8s")
	assert.Equal(t, []string{"Kubernetes", "Python"}, got)
}

func TestLoadEngines_MissingTaxonomyFails(t *testing.T) {
	cmd := newEngineTestCmd(t)
	missing := filepath.Join(t.TempDir(), "nope.json")
	require.NoError(t, cmd.Flags().Set("taxonomy", missing))

	_, err := loadEngines(cmd, "", missing, "", false)
	assert.Error(t, err)
}
