package main

import (
	"os"

	genesistools "github.com/gravity-chain/genesis-tools"
	"github.com/gravity-chain/genesis-tools/log"
	"github.com/urfave/cli/v2"
)

const appName = "genesis-tools"

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = genesistools.Version
	app.Usage = "One-shot utilities that prepare the genesis state for a network launch"
	app.Before = func(*cli.Context) error {
		// diagnostics go to stderr; stdout is reserved for command output
		log.Init(log.Config{
			Environment: log.EnvironmentDevelopment,
			Level:       "info",
			Outputs:     []string{"stderr"},
		})
		return nil
	}
	app.Commands = []*cli.Command{
		combineCmd,
		fixHexCmd,
		generateCmd,
		extractBytecodeCmd,
		accountsCmd,
		hoursToMicrosCmd,
		versionCmd,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
