// Package genesis assembles the genesis state for a network launch: it
// combines externally produced account and contract files into one account
// allocation and merges that allocation into a genesis template.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"
)

// Account is one entry of the genesis account allocation
type Account struct {
	// Balance is the starting balance, a decimal or 0x-hex numeric string
	Balance string `json:"balance"`
	// Nonce is the starting nonce
	Nonce uint64 `json:"nonce"`
	// Code is the deployed bytecode, null for non-contract accounts
	Code *string `json:"code"`
	// Storage is the initial storage of the account, keyed by 32-byte slot
	Storage map[string]string `json:"storage"`
}

// Alloc maps a 0x-prefixed address to its allocation entry
type Alloc map[string]Account

const jsonFilePerm = 0644

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, jsonFilePerm); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
