package genesis

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gravity-chain/genesis-tools/log"
)

// accountFromJSON is the shape of one entry of the genesis accounts file.
// Required fields are pointers so that their absence can be told apart from a
// zero value.
type accountFromJSON struct {
	Info *struct {
		Balance *string `json:"balance"`
		Nonce   *uint64 `json:"nonce"`
	} `json:"info"`
	Storage map[string]string `json:"storage"`
}

// Combine merges the genesis accounts file (address -> balance/nonce/storage)
// with the genesis contracts file (address -> bytecode) into one account
// allocation. The accounts file drives the key set; an address missing from
// the contracts file gets a null code.
func Combine(accountsPath, contractsPath string) (Alloc, error) {
	var accounts map[string]accountFromJSON
	if err := readJSONFile(accountsPath, &accounts); err != nil {
		return nil, err
	}

	var contracts map[string]string
	if err := readJSONFile(contractsPath, &contracts); err != nil {
		return nil, err
	}

	alloc := make(Alloc, len(accounts))
	for addr, account := range accounts {
		if !common.IsHexAddress(addr) {
			log.Warnf("Accounts file key %q is not a valid address", addr)
		}
		if account.Info == nil {
			return nil, fmt.Errorf("account %s is missing the info field", addr)
		}
		if account.Info.Balance == nil {
			return nil, fmt.Errorf("account %s is missing info.balance", addr)
		}
		if account.Info.Nonce == nil {
			return nil, fmt.Errorf("account %s is missing info.nonce", addr)
		}

		var code *string
		if bytecode, ok := contracts[addr]; ok {
			code = &bytecode
		}

		storage := account.Storage
		if storage == nil {
			storage = map[string]string{}
		}

		alloc[addr] = Account{
			Balance: *account.Info.Balance,
			Nonce:   *account.Info.Nonce,
			Code:    code,
			Storage: storage,
		}
	}

	log.Infof("Combined %d accounts and %d contracts", len(accounts), len(contracts))
	return alloc, nil
}

// CombineToFile runs Combine and writes the resulting allocation to outputPath
func CombineToFile(accountsPath, contractsPath, outputPath string) error {
	alloc, err := Combine(accountsPath, contractsPath)
	if err != nil {
		return err
	}
	if err := writeJSONFile(outputPath, alloc); err != nil {
		return err
	}
	log.Infof("Total accounts in allocation: %d", len(alloc))
	log.Infof("Account allocation written to %s", outputPath)
	return nil
}
