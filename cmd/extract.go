package main

import (
	"github.com/gravity-chain/genesis-tools/artifacts"
	"github.com/gravity-chain/genesis-tools/config"
	"github.com/urfave/cli/v2"
)

var extractBytecodeCmd = &cli.Command{
	Name:   "extract-bytecode",
	Usage:  "Extract deployed bytecode from Foundry build artifacts into .hex files",
	Action: extractBytecode,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagSrcDir,
			Usage: "Contracts source `DIR`",
			Value: "src",
		},
		&cli.StringFlag{
			Name:  config.FlagOutDir,
			Usage: "Compiler build output `DIR`",
			Value: "out",
		},
	},
}

func extractBytecode(ctx *cli.Context) error {
	return artifacts.ExtractAndSave(ctx.String(config.FlagSrcDir), ctx.String(config.FlagOutDir))
}
