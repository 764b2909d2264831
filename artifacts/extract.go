// Package artifacts pulls contract bytecode out of Foundry build output.
// Each compiled source gets a directory out/<Name>.sol containing the
// artifact JSON; the deployed (runtime) bytecode of each one is written next
// to it as <Name>.hex.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gravity-chain/genesis-tools/log"
)

const hexFilePerm = 0644

// artifact is the part of the Foundry artifact JSON we care about
type artifact struct {
	DeployedBytecode struct {
		Object string `json:"object"`
	} `json:"deployedBytecode"`
}

// Extract reads every contract artifact under outDir and returns the deployed
// bytecode keyed by contract name. A contract whose artifact is missing or
// unreadable is skipped with a warning; the whole run fails only if the
// directories themselves are missing or nothing could be extracted.
func Extract(srcDir, outDir string) (map[string]string, error) {
	if _, err := os.Stat(srcDir); err != nil {
		return nil, fmt.Errorf("src directory not found at %s: %w", srcDir, err)
	}
	if _, err := os.Stat(outDir); err != nil {
		return nil, fmt.Errorf("out directory not found at %s, run `forge build` first: %w", outDir, err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", outDir, err)
	}

	var contractDirs []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), ".sol") {
			contractDirs = append(contractDirs, entry.Name())
		}
	}
	log.Infof("Found %d contract directories in %s", len(contractDirs), outDir)

	bytecodes := make(map[string]string, len(contractDirs))
	for _, dir := range contractDirs {
		name := strings.TrimSuffix(dir, ".sol")

		artifactPath, err := findArtifact(filepath.Join(outDir, dir))
		if err != nil {
			log.Warnf("Skipping %s: %v", dir, err)
			continue
		}

		data, err := os.ReadFile(artifactPath) //nolint:gosec
		if err != nil {
			log.Warnf("Skipping %s: %v", dir, err)
			continue
		}
		var art artifact
		if err := json.Unmarshal(data, &art); err != nil {
			log.Warnf("Skipping %s: invalid artifact JSON: %v", dir, err)
			continue
		}

		bytecodes[name] = art.DeployedBytecode.Object
		log.Infof("Extracted bytecode for %s", name)
	}

	if len(bytecodes) == 0 {
		return nil, fmt.Errorf("no bytecodes extracted from %s, make sure the contracts are compiled", outDir)
	}
	return bytecodes, nil
}

// findArtifact returns the first JSON file inside a contract directory. There
// is normally exactly one.
func findArtifact(contractDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(contractDir, "*.json"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no artifact JSON found")
	}
	sort.Strings(matches)
	return matches[0], nil
}

// Save writes each bytecode as <name>.hex inside outDir and returns the
// number of files written.
func Save(bytecodes map[string]string, outDir string) (int, error) {
	saved := 0
	for name, bytecode := range bytecodes {
		path := filepath.Join(outDir, name+".hex")
		if err := os.WriteFile(path, []byte(bytecode), hexFilePerm); err != nil { //nolint:gosec
			return saved, fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Infof("Saved %s.hex", name)
		saved++
	}
	log.Infof("Saved %d bytecode files", saved)
	return saved, nil
}

// ExtractAndSave runs Extract followed by Save against the same build output
// directory.
func ExtractAndSave(srcDir, outDir string) error {
	bytecodes, err := Extract(srcDir, outDir)
	if err != nil {
		return err
	}
	_, err = Save(bytecodes, outDir)
	return err
}
