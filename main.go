// Package main is the entry point for the castgrab application.
package main

import (
	"os"

	"github.com/castgrab/castgrab/cmd"
	"github.com/castgrab/castgrab/config"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	os.Exit(cmd.Execute())
}
