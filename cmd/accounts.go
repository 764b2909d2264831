package main

import (
	"github.com/gravity-chain/genesis-tools/config"
	"github.com/gravity-chain/genesis-tools/keygen"
	"github.com/urfave/cli/v2"
)

var accountsCmd = &cli.Command{
	Name:   "accounts",
	Usage:  "Generate test account keypairs and write them to a JSON file",
	Action: generateAccounts,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    config.FlagNumAccounts,
			Aliases: []string{"n"},
			Usage:   "Number of accounts to generate",
			Value:   4,
		},
		&cli.StringFlag{
			Name:    config.FlagOutput,
			Aliases: []string{"o"},
			Usage:   "Output `FILE`",
			Value:   "account_info.json",
		},
		&cli.BoolFlag{
			Name:  config.FlagNoSave,
			Usage: "Do not write a file, only log the generated accounts",
		},
	},
}

func generateAccounts(ctx *cli.Context) error {
	accounts, err := keygen.Generate(ctx.Int(config.FlagNumAccounts))
	if err != nil {
		return err
	}
	keygen.PrintSummary(accounts)
	if ctx.Bool(config.FlagNoSave) {
		return nil
	}
	return keygen.Save(accounts, ctx.String(config.FlagOutput))
}
