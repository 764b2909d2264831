package main

import (
	"github.com/gravity-chain/genesis-tools/config"
	"github.com/gravity-chain/genesis-tools/hexfix"
	"github.com/urfave/cli/v2"
)

var fixHexCmd = &cli.Command{
	Name:      "fix-hex",
	Usage:     "Pad odd-length 0x-hex strings of a JSON file to even length",
	ArgsUsage: "<input-file>",
	Action:    fixHex,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    config.FlagOutput,
			Aliases: []string{"o"},
			Usage:   "Output `FILE` (defaults to overwriting the input file)",
		},
	},
}

func fixHex(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("usage: fix-hex <input-file>", 1)
	}
	_, err := hexfix.ProcessFile(ctx.Args().First(), ctx.String(config.FlagOutput))
	return err
}
