// Package cmd implements the command-line interface for castgrab.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/castgrab/castgrab/color"
	"github.com/castgrab/castgrab/constant"
	"github.com/castgrab/castgrab/icon"
	"github.com/castgrab/castgrab/key"
	"github.com/castgrab/castgrab/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd defines the entry point for the castgrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Castgrab,
	Short: "Mirror podcast feeds into local folders",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.Castgrab) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Mirror podcast feeds into local folders, one episode at a time"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing, runs the CLI and returns the process exit code.
// SIGINT and SIGTERM cancel the context handed to every command.
func Execute() int {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitStatus(rootCmd.ExecuteContext(ctx))
}

// exitStatus maps the error returned by a command to a process exit code.
func exitStatus(err error) int {
	var exit *exitError
	switch {
	case err == nil:
		return constant.ExitOK
	case errors.As(err, &exit):
		return exit.code
	default:
		_, _ = fmt.Fprintln(os.Stderr, err)
		return constant.ExitFatal
	}
}

func handleErr(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.ErrorTitle("error"), strings.Trim(err.Error(), " \n"))
		os.Exit(constant.ExitFatal)
	}
}
