package config

// Flag names shared by the cli commands
const (
	// FlagAccounts is the path to the genesis accounts file
	FlagAccounts = "accounts"
	// FlagContracts is the path to the genesis contracts file
	FlagContracts = "contracts"
	// FlagTemplate is the path to the genesis template file
	FlagTemplate = "template"
	// FlagAccountAlloc is the path to the combined account allocation file
	FlagAccountAlloc = "account-alloc"
	// FlagOutput is the path of the file a command writes
	FlagOutput = "output"
	// FlagSrcDir is the contracts source directory
	FlagSrcDir = "src"
	// FlagOutDir is the compiler build-output directory
	FlagOutDir = "out"
	// FlagNumAccounts is the number of keypairs to generate
	FlagNumAccounts = "num-accounts"
	// FlagNoSave disables writing the generated accounts to disk
	FlagNoSave = "no-save"
)
