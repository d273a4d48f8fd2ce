package flagx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_DoesNotOverrideAndSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("FOLIO_TEST_A=from-file\nFOLIO_TEST_B=file-b\n"), 0o600))

	t.Setenv("FOLIO_TEST_A", "from-env")
	os.Unsetenv("FOLIO_TEST_B")
	t.Cleanup(func() { os.Unsetenv("FOLIO_TEST_B") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))

	assert.Equal(t, "from-env", os.Getenv("FOLIO_TEST_A"))
	assert.Equal(t, "file-b", os.Getenv("FOLIO_TEST_B"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FOLIO_S", "value")
	t.Setenv("FOLIO_B", "true")
	t.Setenv("FOLIO_I", "42")
	t.Setenv("FOLIO_D", "5s")
	t.Setenv("FOLIO_L", " a, b ,,c ")
	t.Setenv("FOLIO_EMPTY", "")

	s := "default"
	EnvString("FOLIO_S", &s)
	assert.Equal(t, "value", s)

	EnvString("FOLIO_EMPTY", &s)
	assert.Equal(t, "value", s)

	var b bool
	require.NoError(t, EnvBool("FOLIO_B", &b))
	assert.True(t, b)

	var i int
	require.NoError(t, EnvInt("FOLIO_I", &i))
	assert.Equal(t, 42, i)

	var d time.Duration
	require.NoError(t, EnvDuration("FOLIO_D", &d))
	assert.Equal(t, 5*time.Second, d)

	var l []string
	EnvList("FOLIO_L", &l)
	assert.Equal(t, []string{"a", "b", "c"}, l)
}

func TestEnvHelpers_BadValues(t *testing.T) {
	t.Setenv("FOLIO_B", "maybe")
	t.Setenv("FOLIO_I", "many")
	t.Setenv("FOLIO_D", "soon")

	var b bool
	var i int
	var d time.Duration
	assert.Error(t, EnvBool("FOLIO_B", &b))
	assert.Error(t, EnvInt("FOLIO_I", &i))
	assert.Error(t, EnvDuration("FOLIO_D", &d))
}
