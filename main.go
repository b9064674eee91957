// Package main is the entry point for stackcalc.
package main

import (
	"github.com/samber/lo"
	"github.com/stackcalc/stackcalc/cmd"
	"github.com/stackcalc/stackcalc/config"
	"github.com/stackcalc/stackcalc/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
