package cmd

import (
	"github.com/achilleasa/accelpack/log"
	"github.com/urfave/cli"
)

var logger = log.New("accelpack")

func setupLogging(ctx *cli.Context) {
	verbosity := 0
	if ctx.GlobalBool("v") {
		verbosity = 1
	}
	if ctx.GlobalBool("vv") {
		verbosity = 2
	}

	log.SetLevel(log.Verbosity(verbosity))
}
