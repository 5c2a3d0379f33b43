package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesConsoleAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	logger, err := initLogger("test", dir, &console)
	require.NoError(t, err)

	logger.Debug("debug only in file")
	logger.Info("seating optimized")
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "seating optimized")
	assert.NotContains(t, console.String(), "debug only in file")

	files, err := filepath.Glob(filepath.Join(dir, "test_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	contents, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"msg":"debug only in file"`)
	assert.Contains(t, string(contents), `"msg":"seating optimized"`)
}
