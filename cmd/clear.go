// Package cmd implements the command-line interface for castgrab.
package cmd

import (
	"fmt"

	"github.com/castgrab/castgrab/color"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/icon"
	"github.com/castgrab/castgrab/style"
	"github.com/castgrab/castgrab/util"
	"github.com/castgrab/castgrab/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"config file", "config", mo.None[string](), where.ConfigFile},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes persisted application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear log files and the persisted configuration",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			path := target.location()
			if lo.Must(filesystem.API().Exists(path)) {
				handleErr(util.Delete(path))
			}

			fmt.Printf(
				"%s %s cleared\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				util.Capitalize(target.name),
			)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
