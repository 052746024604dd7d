package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfileDefaults(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile(), p)
	assert.Len(t, p.RetentionHeader, 6)
	assert.Len(t, p.RetentionRow, 5)
}

func TestLoadProfileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	content := `
organization: "OBRA NORTE LTDA."
city: Parnaíba
retention_row:
  - text: "ARQUIVO"
    x: 55
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "OBRA NORTE LTDA.", p.Organization)
	assert.Equal(t, "Parnaíba", p.City)
	assert.Equal(t, []Cell{{Text: "ARQUIVO", X: 55}}, p.RetentionRow)
	assert.Equal(t, DefaultProfile().FormNumber, p.FormNumber)
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("city: [unclosed"), 0o600))
	_, err = LoadProfile(path)
	assert.Error(t, err)
}
