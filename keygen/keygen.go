// Package keygen produces secp256k1 test accounts for a network launch.
// Every account carries a bip39 mnemonic from which its private key is
// derived, so a generated account can be re-imported into a wallet later.
package keygen

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/gravity-chain/genesis-tools/log"
)

const (
	// mnemonic entropy in bits, 12 words
	entropyBits = 128

	// accounts above this count only produce a warning, generation still runs
	warnAccountCount = 100

	outputFilePerm = 0600
)

// ErrInvalidCount is returned when the requested account count is not positive
var ErrInvalidCount = errors.New("number of accounts must be greater than 0")

// Account is one generated keypair. Public and private keys are hex encoded
// without the 0x prefix; the public key is the uncompressed 64-byte form.
type Account struct {
	Index      int    `json:"account_index"`
	Address    string `json:"address"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	Mnemonic   string `json:"mnemonic"`
}

// Report is the document written to the accounts file
type Report struct {
	TotalAccounts int       `json:"total_accounts"`
	Accounts      []Account `json:"accounts"`
}

// Generate creates n independent accounts with fresh entropy
func Generate(n int) ([]Account, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	if n > warnAccountCount {
		log.Warnf("Generating %d accounts may take some time", n)
	}

	accounts := make([]Account, 0, n)
	for i := 0; i < n; i++ {
		account, err := newAccount(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to generate account %d: %w", i+1, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func newAccount(index int) (Account, error) {
	for {
		entropy, err := bip39.NewEntropy(entropyBits)
		if err != nil {
			return Account{}, err
		}
		mnemonic, err := bip39.NewMnemonic(entropy)
		if err != nil {
			return Account{}, err
		}

		seed := bip39.NewSeed(mnemonic, "")
		key, err := crypto.ToECDSA(seed[:32])
		if err != nil {
			// the seed is not a valid curve scalar, roll new entropy
			continue
		}

		// strip the 0x04 uncompressed-point marker
		pub := crypto.FromECDSAPub(&key.PublicKey)[1:]
		return Account{
			Index:      index,
			Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
			PublicKey:  hex.EncodeToString(pub),
			PrivateKey: hex.EncodeToString(crypto.FromECDSA(key)),
			Mnemonic:   mnemonic,
		}, nil
	}
}

// Save writes the accounts with their count header to path
func Save(accounts []Account, path string) error {
	report := Report{
		TotalAccounts: len(accounts),
		Accounts:      accounts,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, outputFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Infof("Account information saved to %s", path)
	return nil
}

// PrintSummary logs every generated account with truncated key material
func PrintSummary(accounts []Account) {
	log.Infof("Generated %d accounts", len(accounts))
	for _, account := range accounts {
		log.Infof("Account %d: address=%s public_key=%s private_key=%s",
			account.Index, account.Address,
			truncate(account.PublicKey), truncate(account.PrivateKey))
	}
}

func truncate(s string) string {
	const edge = 20
	if len(s) <= 2*edge {
		return s
	}
	return s[:edge] + "..." + s[len(s)-edge:]
}
