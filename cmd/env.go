package cmd

import (
	"os"

	"github.com/framecast/framecast/color"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/style"
	"github.com/framecast/framecast/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables framecast reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := lo.Map(config.EnvExposed, func(k string, _ int) string {
			field := config.Default[k]
			return field.Env()
		})
		envs = append(envs, where.EnvConfigPath, where.EnvCachePath)
		slices.Sort(envs)

		for _, env := range envs {
			value := os.Getenv(env)
			present := value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
