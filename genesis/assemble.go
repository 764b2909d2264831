package genesis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/holiman/uint256"

	"github.com/gravity-chain/genesis-tools/common"
	"github.com/gravity-chain/genesis-tools/log"
)

// Framework contracts that must be able to fund system transactions at any
// point. Their balance is forced regardless of what the template or the
// allocation say.
const (
	// ValidatorManagerAddr is the validator manager system contract
	ValidatorManagerAddr = "0x0000000000000000000000000000000000002013"
	// JWKManagerAddr is the JWK manager system contract
	JWKManagerAddr = "0x0000000000000000000000000000000000002018"

	// SystemBalance is the balance forced onto the system addresses
	SystemBalance = "0x1999999999999999999999999999999999999999999999999999999999999999"
)

var systemAddresses = []struct {
	addr string
	name string
}{
	{ValidatorManagerAddr, "VALIDATOR_MANAGER_ADDR"},
	{JWKManagerAddr, "JWK_MANAGER_ADDR"},
}

// Summary describes the assembled genesis document
type Summary struct {
	// Accounts is the number of entries in the final alloc
	Accounts int
	// ChainID, GasLimit and Timestamp are the template scalars, rendered as-is
	ChainID   string
	GasLimit  string
	Timestamp string
	// Contracts is the number of alloc entries carrying non-empty code
	Contracts int
	// TotalBalance is the sum of every parseable alloc balance
	TotalBalance *uint256.Int
	// UnparseableBalances counts alloc balances that could not be summed
	UnparseableBalances int
}

// Assemble merges the account allocation into the genesis template and forces
// the system address balances, writing the final genesis document to
// outputPath. The template's own alloc entries win key collisions against the
// allocation file.
func Assemble(templatePath, allocPath, outputPath string) (*Summary, error) {
	log.Info("Starting genesis generation")

	log.Infof("Loading genesis template from %s", templatePath)
	genesis, err := readJSONDocument(templatePath)
	if err != nil {
		return nil, err
	}

	log.Infof("Loading account allocation from %s", allocPath)
	alloc, err := readJSONDocument(allocPath)
	if err != nil {
		return nil, err
	}

	// The allocation goes in first so that template entries overwrite it on
	// collision.
	merged := make(map[string]interface{}, len(alloc))
	for addr, account := range alloc {
		merged[addr] = account
	}
	if templateAlloc, ok := genesis["alloc"].(map[string]interface{}); ok {
		for addr, account := range templateAlloc {
			merged[addr] = account
		}
	}
	genesis["alloc"] = merged

	for _, sys := range systemAddresses {
		account, ok := merged[sys.addr].(map[string]interface{})
		if !ok {
			log.Infof("%s (%s): creating new account with balance %s", sys.name, sys.addr, SystemBalance)
			merged[sys.addr] = map[string]interface{}{
				"balance": SystemBalance,
				"nonce":   json.Number("0"),
			}
			continue
		}
		if old, ok := account["balance"]; ok {
			log.Infof("%s (%s): balance %v -> %s", sys.name, sys.addr, old, SystemBalance)
		} else {
			log.Infof("%s (%s): setting balance to %s", sys.name, sys.addr, SystemBalance)
		}
		account["balance"] = SystemBalance
	}

	if err := writeJSONFile(outputPath, genesis); err != nil {
		return nil, err
	}
	log.Infof("Genesis written to %s", outputPath)

	summary, err := summarize(genesis)
	if err != nil {
		return nil, err
	}
	log.Infof("Total accounts: %d", summary.Accounts)
	log.Infof("Chain ID: %s", summary.ChainID)
	log.Infof("Gas limit: %s", summary.GasLimit)
	log.Infof("Timestamp: %s", summary.Timestamp)
	log.Infof("Contracts: %d", summary.Contracts)
	log.Infof("Total allocated balance: %s", summary.TotalBalance.Dec())
	if summary.UnparseableBalances > 0 {
		log.Warnf("%d alloc balances could not be parsed and were left out of the total", summary.UnparseableBalances)
	}
	return summary, nil
}

// readJSONDocument decodes a JSON file into a generic tree. Numbers are kept
// as json.Number so that integers wider than a float64 mantissa survive the
// round trip.
func readJSONDocument(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return doc, nil
}

func summarize(genesis map[string]interface{}) (*Summary, error) {
	cfg, ok := genesis["config"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("genesis template is missing the config section")
	}
	chainID, ok := cfg["chainId"]
	if !ok {
		return nil, fmt.Errorf("genesis template is missing config.chainId")
	}
	gasLimit, ok := genesis["gasLimit"]
	if !ok {
		return nil, fmt.Errorf("genesis template is missing gasLimit")
	}
	timestamp, ok := genesis["timestamp"]
	if !ok {
		return nil, fmt.Errorf("genesis template is missing timestamp")
	}

	alloc, _ := genesis["alloc"].(map[string]interface{})
	summary := &Summary{
		Accounts:     len(alloc),
		ChainID:      fmt.Sprint(chainID),
		GasLimit:     fmt.Sprint(gasLimit),
		Timestamp:    fmt.Sprint(timestamp),
		TotalBalance: uint256.NewInt(0),
	}

	for _, entry := range alloc {
		account, ok := entry.(map[string]interface{})
		if !ok {
			summary.UnparseableBalances++
			continue
		}
		if code, ok := account["code"].(string); ok && code != "" {
			summary.Contracts++
		}
		balance, ok := parseBalance(account["balance"])
		if !ok {
			summary.UnparseableBalances++
			continue
		}
		summary.TotalBalance.Add(summary.TotalBalance, balance)
	}
	return summary, nil
}

// parseBalance reads a decimal or 0x-hex balance value. Balances that are
// absent, malformed or wider than 256 bits are reported as unparseable.
func parseBalance(v interface{}) (*uint256.Int, bool) {
	var raw string
	switch b := v.(type) {
	case string:
		raw = b
	case json.Number:
		raw = b.String()
	default:
		return nil, false
	}

	i := new(big.Int)
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		if _, ok := i.SetString(raw[2:], 16); !ok {
			return nil, false
		}
	} else if _, ok := i.SetString(raw, common.Base10); !ok {
		return nil, false
	}
	if i.Sign() < 0 {
		return nil, false
	}
	balance, overflow := uint256.FromBig(i)
	if overflow {
		return nil, false
	}
	return balance, true
}
