package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestConvertTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"velocity.yml":    "name: Velocity\n",
		"waterfall.yaml":  "name: Waterfall\n",
		"nested/mcdr.yml": "name: MCDR\n",
		"README.md":       "not an egg\n",
		"forge.json":      `{"name": "Forge"}`,
	})

	res, err := ConvertTree(root, "", YAMLToJSON)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Converted)
	assert.Empty(t, res.Failures)

	assert.FileExists(t, filepath.Join(root, "velocity.json"))
	assert.FileExists(t, filepath.Join(root, "waterfall.json"))
	assert.FileExists(t, filepath.Join(root, "nested", "mcdr.json"))
	assert.NoFileExists(t, filepath.Join(root, "forge.yml"))
}

func TestConvertTreeSkipsFailures(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.yml": "name: A\n",
		"b.yml": "name: [broken\n  {",
		"c.yml": "name: C\n",
	})

	res, err := ConvertTree(root, "", YAMLToJSON)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Converted)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, filepath.Join(root, "b.yml"), res.Failures[0].Path)
	assert.True(t, res.Failed())

	assert.FileExists(t, filepath.Join(root, "a.json"))
	assert.FileExists(t, filepath.Join(root, "c.json"))
	assert.NoFileExists(t, filepath.Join(root, "b.json"))
}

func TestConvertTreeNoMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"README.md": "nothing to see\n"})

	res, err := ConvertTree(root, "", JSONToYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Converted)
	assert.False(t, res.Failed())
}

func TestConvertTreeOutputDirectory(t *testing.T) {
	root := t.TempDir()
	output := t.TempDir()
	writeTree(t, root, map[string]string{
		"velocity.yml":    "name: Velocity\n",
		"nested/mcdr.yml": "name: MCDR\n",
	})

	res, err := ConvertTree(root, output, YAMLToJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Converted)

	assert.FileExists(t, filepath.Join(output, "velocity.json"))
	assert.FileExists(t, filepath.Join(output, "nested", "mcdr.json"))
	assert.NoFileExists(t, filepath.Join(root, "velocity.json"))
}
