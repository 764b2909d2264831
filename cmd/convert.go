package main

import (
	"fmt"
	"strconv"

	"github.com/gravity-chain/genesis-tools/common"
	"github.com/urfave/cli/v2"
)

var hoursToMicrosCmd = &cli.Command{
	Name:      "hours-to-micros",
	Usage:     "Convert a decimal hours value to an integer microsecond count",
	ArgsUsage: "<hours>",
	Action:    hoursToMicros,
}

// The resulting integer is the only thing printed on stdout so that callers
// can use it in shell substitution.
func hoursToMicros(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("usage: hours-to-micros <hours>", 1)
	}
	hours, err := strconv.ParseFloat(ctx.Args().First(), 64)
	if err != nil {
		return cli.Exit("invalid number format", 1)
	}
	micros, err := common.HoursToMicroseconds(hours)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Println(micros)
	return nil
}
