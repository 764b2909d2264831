package main

import (
	"github.com/gravity-chain/genesis-tools/config"
	"github.com/gravity-chain/genesis-tools/genesis"
	"github.com/urfave/cli/v2"
)

var combineCmd = &cli.Command{
	Name:   "combine",
	Usage:  "Combine the genesis accounts and contracts files into one account allocation",
	Action: combine,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     config.FlagAccounts,
			Aliases:  []string{"a"},
			Usage:    "Genesis accounts `FILE` (address -> info/storage)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     config.FlagContracts,
			Aliases:  []string{"c"},
			Usage:    "Genesis contracts `FILE` (address -> bytecode)",
			Required: true,
		},
		&cli.StringFlag{
			Name:    config.FlagOutput,
			Aliases: []string{"o"},
			Usage:   "Output `FILE`",
			Value:   "account_alloc.json",
		},
	},
}

func combine(ctx *cli.Context) error {
	return genesis.CombineToFile(
		ctx.String(config.FlagAccounts),
		ctx.String(config.FlagContracts),
		ctx.String(config.FlagOutput),
	)
}
