package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/open"
	"github.com/framecast/framecast/progress"
	"github.com/framecast/framecast/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	resolveCmd.Flags().BoolP("no-cache", "n", false, "Ignore a fresh cache entry and resolve again")
	resolveCmd.Flags().BoolP("open", "o", false, "Open the player in the default browser")

	resolveCmd.SetOut(os.Stdout)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [source]",
	Short: "Print the player URL embedded in a source page",
	Long: `Print the player URL embedded in a source page.
The configured source is used when none is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
			noCache = lo.Must(cmd.Flags().GetBool("no-cache"))
			source  = config.SourceURL()
		)

		if len(args) == 1 {
			source = args[0]
		}

		if source == "" {
			handleErr(errors.New("no source given and none configured"))
		}
		handleErr(config.ValidateSource(source))

		loc, err := newLocator()
		handleErr(err)

		task := func(ctx context.Context) (string, error) {
			if noCache {
				return loc.Refresh(ctx, source)
			}
			return loc.Get(ctx, source)
		}

		var player string
		if util.IsTerminal(os.Stderr) && !asJson {
			player, err = progress.Run(cmd.Context(), "Resolving "+util.Ellipsis(source, 60), task)
		} else {
			player, err = task(cmd.Context())
		}
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(map[string]string{
				"source": source,
				"url":    player,
			}))
			return
		}

		cmd.Println(player)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(player))
		}
	},
}
