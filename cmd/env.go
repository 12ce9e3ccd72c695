package cmd

import (
	"os"

	"github.com/castgrab/castgrab/color"
	"github.com/castgrab/castgrab/config"
	"github.com/castgrab/castgrab/style"
	"github.com/castgrab/castgrab/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

type envVar struct {
	name    string
	value   string
	present bool
}

// envVars lists every variable castgrab reads, sorted by name.
func envVars() []envVar {
	names := append(
		lo.Map(config.Fields(), func(f config.Field, _ int) string { return f.Env() }),
		where.EnvConfigPath,
	)
	slices.Sort(names)

	return lo.Map(names, func(name string, _ int) envVar {
		value, present := os.LookupEnv(name)
		return envVar{name: name, value: value, present: present}
	})
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the CASTGRAB_* environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, v := range envVars() {
			if (setOnly && !v.present) || (unsetOnly && v.present) {
				continue
			}

			value := style.Fg(color.Red)("unset")
			if v.present {
				value = style.Fg(color.Green)(v.value)
			}
			cmd.Printf("%s=%s\n", style.Bold(v.name), value)
		}
	},
}
