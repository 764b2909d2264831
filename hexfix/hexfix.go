// Package hexfix pads odd-length 0x-hex strings in JSON documents so that
// every hex value decodes to whole bytes. Genesis consumers reject values
// like "0x123"; this rewrites them to "0x0123".
package hexfix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gravity-chain/genesis-tools/log"
)

const filePerm = 0644

// Fix pads a 0x-prefixed string of odd length with a single zero after the
// prefix. Any other string is returned unchanged. The reported bool tells
// whether a correction was made. Characters after the prefix are not
// validated; parity is the only concern here.
func Fix(s string) (string, bool) {
	if !strings.HasPrefix(s, "0x") {
		return s, false
	}
	if len(s[2:])%2 == 0 {
		return s, false
	}
	return "0x0" + s[2:], true
}

// Apply walks a decoded JSON value and fixes every string in it, map keys
// included. Containers are rebuilt; scalars other than strings pass through.
// It returns the rewritten value and the number of strings corrected.
func Apply(v interface{}) (interface{}, int) {
	switch val := v.(type) {
	case string:
		fixed, changed := Fix(val)
		if changed {
			return fixed, 1
		}
		return fixed, 0
	case map[string]interface{}:
		count := 0
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			key, changed := Fix(k)
			if changed {
				count++
			}
			fixedItem, n := Apply(item)
			out[key] = fixedItem
			count += n
		}
		return out, count
	case []interface{}:
		count := 0
		out := make([]interface{}, len(val))
		for i, item := range val {
			fixedItem, n := Apply(item)
			out[i] = fixedItem
			count += n
		}
		return out, count
	default:
		return v, 0
	}
}

// ProcessFile fixes every hex string of the JSON document at inputPath and
// writes the result to outputPath. An empty outputPath overwrites the input
// file. Returns the number of corrected strings.
func ProcessFile(inputPath, outputPath string) (int, error) {
	if outputPath == "" {
		outputPath = inputPath
	}
	log.Infof("Processing %s", inputPath)

	data, err := os.ReadFile(inputPath) //nolint:gosec
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	// json.Number keeps large genesis integers intact through the rewrite
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("invalid JSON in %s: %w", inputPath, err)
	}

	fixed, count := Apply(doc)

	out, err := json.MarshalIndent(fixed, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(outputPath, out, filePerm); err != nil { //nolint:gosec
		return 0, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Infof("Corrected %d hex strings", count)
	log.Infof("Saved to %s", outputPath)
	return count, nil
}
