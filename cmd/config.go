package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/castgrab/castgrab/color"
	"github.com/castgrab/castgrab/config"
	"github.com/castgrab/castgrab/icon"
	"github.com/castgrab/castgrab/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configWriteCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "Print the settings as JSON")
	configWriteCmd.Flags().BoolP("force", "f", false, "Replace an existing config file")

	for _, c := range []*cobra.Command{configInfoCmd, configGetCmd, configSetCmd} {
		c.ValidArgsFunction = completeConfigKeys
		c.SetOut(os.Stdout)
	}
}

func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Map(config.Fields(), func(f config.Field, _ int) string { return f.Key })
	return lo.Without(keys, args...), cobra.ShellCompDirectiveNoFileComp
}

// lookupFields resolves names to registered settings; no names means all of them.
func lookupFields(names []string) ([]config.Field, error) {
	if len(names) == 0 {
		return config.Fields(), nil
	}

	fields := make([]config.Field, 0, len(names))
	for _, name := range names {
		field, ok := config.Lookup(name)
		if !ok {
			return nil, fmt.Errorf(
				"unknown key %s, did you mean %s?",
				style.Fg(color.Red)(name),
				style.Fg(color.Yellow)(config.Suggest(name)),
			)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change castgrab settings",
	Long: `Inspect and change castgrab settings.

Settings are resolved from command-line flags, then CASTGRAB_* environment
variables, then the config file, then the built-in defaults.`,
}

var configInfoCmd = &cobra.Command{
	Use:     "info [key...]",
	Short:   "Describe settings with their current and default values",
	Example: "  castgrab config info download.chunks network.timeout",
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := lookupFields(args)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		cmd.Println(strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := lookupFields(args)
		handleErr(err)
		cmd.Println(viper.Get(fields[0].Key))
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Validate a value and save it to the config file",
	Example: "  castgrab config set download.chunks 4\n  castgrab config set network.timeout 90s",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := lookupFields(args[:1])
		handleErr(err)

		field := fields[0]
		value, err := field.Parse(args[1])
		handleErr(err)

		viper.Set(field.Key, value)
		path, err := config.Write(true)
		handleErr(err)

		cmd.Printf(
			"%s %s = %s %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(fmt.Sprint(value)),
			style.Faint("("+path+")"),
		)
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the effective settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.Write(lo.Must(cmd.Flags().GetBool("force")))
		handleErr(err)

		fmt.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}
