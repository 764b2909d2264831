package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, outDir, contract, content string) {
	t.Helper()
	dir := filepath.Join(outDir, contract+".sol")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, contract+".json"), []byte(content), 0600))
}

func setupDirs(t *testing.T) (srcDir, outDir string) {
	t.Helper()
	root := t.TempDir()
	srcDir = filepath.Join(root, "src")
	outDir = filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(srcDir, 0750))
	require.NoError(t, os.MkdirAll(outDir, 0750))
	return srcDir, outDir
}

func TestExtract(t *testing.T) {
	srcDir, outDir := setupDirs(t)
	writeArtifact(t, outDir, "ValidatorManager",
		`{"bytecode": {"object": "0x0011"}, "deployedBytecode": {"object": "0x6001"}}`)
	writeArtifact(t, outDir, "JWKManager",
		`{"deployedBytecode": {"object": "0x6002"}}`)
	// field absent entirely, extracted as an empty string
	writeArtifact(t, outDir, "Empty", `{}`)

	bytecodes, err := Extract(srcDir, outDir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"ValidatorManager": "0x6001",
		"JWKManager":       "0x6002",
		"Empty":            "",
	}, bytecodes)
}

func TestExtractSkipsBrokenContracts(t *testing.T) {
	srcDir, outDir := setupDirs(t)
	writeArtifact(t, outDir, "Good", `{"deployedBytecode": {"object": "0x6001"}}`)

	// directory without any artifact JSON
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "NoArtifact.sol"), 0750))
	// unparseable artifact
	writeArtifact(t, outDir, "Broken", `{not json`)
	// non-.sol entries are not contract directories
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "build-info"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "stray.json"), []byte(`{}`), 0600))

	bytecodes, err := Extract(srcDir, outDir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Good": "0x6001"}, bytecodes)
}

func TestExtractFailures(t *testing.T) {
	t.Run("missing src dir", func(t *testing.T) {
		root := t.TempDir()
		outDir := filepath.Join(root, "out")
		require.NoError(t, os.MkdirAll(outDir, 0750))
		_, err := Extract(filepath.Join(root, "src"), outDir)
		require.Error(t, err)
	})
	t.Run("missing out dir", func(t *testing.T) {
		root := t.TempDir()
		srcDir := filepath.Join(root, "src")
		require.NoError(t, os.MkdirAll(srcDir, 0750))
		_, err := Extract(srcDir, filepath.Join(root, "out"))
		require.Error(t, err)
	})
	t.Run("nothing extracted", func(t *testing.T) {
		srcDir, outDir := setupDirs(t)
		require.NoError(t, os.MkdirAll(filepath.Join(outDir, "NoArtifact.sol"), 0750))
		_, err := Extract(srcDir, outDir)
		require.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	outDir := t.TempDir()
	saved, err := Save(map[string]string{"ValidatorManager": "0x6001", "Empty": ""}, outDir)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	data, err := os.ReadFile(filepath.Join(outDir, "ValidatorManager.hex"))
	require.NoError(t, err)
	assert.Equal(t, "0x6001", string(data))

	data, err = os.ReadFile(filepath.Join(outDir, "Empty.hex"))
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestExtractAndSave(t *testing.T) {
	srcDir, outDir := setupDirs(t)
	writeArtifact(t, outDir, "Good", `{"deployedBytecode": {"object": "0x6001"}}`)

	require.NoError(t, ExtractAndSave(srcDir, outDir))

	data, err := os.ReadFile(filepath.Join(outDir, "Good.hex"))
	require.NoError(t, err)
	assert.Equal(t, "0x6001", string(data))
}
