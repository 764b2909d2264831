package hexfix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		expectedValue string
		expectedFixed bool
	}{
		{
			name:          "odd length gets padded",
			input:         "0x123",
			expectedValue: "0x0123",
			expectedFixed: true,
		},
		{
			name:          "even length unchanged",
			input:         "0x1234",
			expectedValue: "0x1234",
			expectedFixed: false,
		},
		{
			name:          "bare prefix unchanged",
			input:         "0x",
			expectedValue: "0x",
			expectedFixed: false,
		},
		{
			name:          "single nibble",
			input:         "0x1",
			expectedValue: "0x01",
			expectedFixed: true,
		},
		{
			name:          "no prefix unchanged",
			input:         "abc",
			expectedValue: "abc",
			expectedFixed: false,
		},
		{
			name:          "empty string unchanged",
			input:         "",
			expectedValue: "",
			expectedFixed: false,
		},
		{
			name:          "non-hex characters are not validated",
			input:         "0xzzz",
			expectedValue: "0x0zzz",
			expectedFixed: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			val, fixed := Fix(c.input)
			assert.Equal(t, c.expectedValue, val)
			assert.Equal(t, c.expectedFixed, fixed)
		})
	}
}

func TestApplyWalksKeysAndValues(t *testing.T) {
	doc := map[string]interface{}{
		"0x123": map[string]interface{}{
			"balance": "0x1",
			"storage": map[string]interface{}{"0x2": "0x333"},
		},
		"plain": []interface{}{"0x4", "0x44", json.Number("12"), true, nil},
	}

	fixed, count := Apply(doc)
	assert.Equal(t, 5, count)

	out := fixed.(map[string]interface{})
	account, ok := out["0x0123"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "0x01", account["balance"])
	assert.Equal(t, map[string]interface{}{"0x02": "0x0333"}, account["storage"])

	list := out["plain"].([]interface{})
	assert.Equal(t, []interface{}{"0x04", "0x44", json.Number("12"), true, nil}, list)
}

func TestApplyIdempotent(t *testing.T) {
	doc := map[string]interface{}{
		"0x123": []interface{}{"0x1", "0x22", "plain"},
	}

	once, count := Apply(doc)
	assert.Equal(t, 2, count)

	twice, count := Apply(once)
	assert.Equal(t, 0, count)
	assert.Equal(t, once, twice)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "account_alloc.json")
	input := `{"0x123": {"balance": "0x1", "nonce": 12345678901234567890123456789}}`
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0600))

	outputPath := filepath.Join(dir, "fixed.json")
	count, err := ProcessFile(inputPath, outputPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"0x0123"`)
	assert.Contains(t, string(data), `"balance": "0x01"`)
	// big integers must not be mangled through float64
	assert.Contains(t, string(data), "12345678901234567890123456789")
}

func TestProcessFileOverwritesInputByDefault(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`["0x123"]`), 0600))

	count, err := ProcessFile(inputPath, "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(inputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"0x0123"`)
}

func TestProcessFileFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ProcessFile(filepath.Join(t.TempDir(), "nope.json"), "")
		require.Error(t, err)
	})
	t.Run("invalid json", func(t *testing.T) {
		inputPath := filepath.Join(t.TempDir(), "doc.json")
		require.NoError(t, os.WriteFile(inputPath, []byte(`{"0x1": `), 0600))
		_, err := ProcessFile(inputPath, "")
		require.Error(t, err)
	})
}
