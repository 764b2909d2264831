package main

import (
	"os"

	genesistools "github.com/gravity-chain/genesis-tools"
	"github.com/urfave/cli/v2"
)

var versionCmd = &cli.Command{
	Name:   "version",
	Usage:  "Application version and build",
	Action: version,
}

func version(*cli.Context) error {
	genesistools.PrintVersion(os.Stdout)
	return nil
}
