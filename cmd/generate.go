package main

import (
	"github.com/gravity-chain/genesis-tools/config"
	"github.com/gravity-chain/genesis-tools/genesis"
	"github.com/urfave/cli/v2"
)

var generateCmd = &cli.Command{
	Name:   "generate",
	Usage:  "Merge the account allocation into the genesis template and write the final genesis file",
	Action: generate,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagTemplate,
			Usage: "Genesis template `FILE`",
			Value: "generate/genesis_template.json",
		},
		&cli.StringFlag{
			Name:  config.FlagAccountAlloc,
			Usage: "Account allocation `FILE` (output of the combine command)",
			Value: "account_alloc.json",
		},
		&cli.StringFlag{
			Name:    config.FlagOutput,
			Aliases: []string{"o"},
			Usage:   "Output `FILE`",
			Value:   "genesis.json",
		},
	},
}

func generate(ctx *cli.Context) error {
	_, err := genesis.Assemble(
		ctx.String(config.FlagTemplate),
		ctx.String(config.FlagAccountAlloc),
		ctx.String(config.FlagOutput),
	)
	return err
}
