package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/framecast/framecast/color"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/icon"
	"github.com/framecast/framecast/store"
	"github.com/framecast/framecast/style"
	"github.com/framecast/framecast/util"
	"github.com/invopop/jsonschema"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and edit resolved players",
}

// cacheRecord is the JSON form of an entry printed by "cache list --json".
type cacheRecord struct {
	Source     string    `json:"source"`
	URL        string    `json:"url"`
	ResolvedAt time.Time `json:"resolved_at"`
	Fresh      bool      `json:"fresh"`
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheListCmd.Flags().StringP("filter", "f", "", "Show only sources fuzzy matching this text")
	cacheListCmd.Flags().BoolP("json", "j", false, "Print entries as JSON")

	cacheListCmd.SetOut(os.Stdout)
}

var cacheListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List cached resolutions",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filter = lo.Must(cmd.Flags().GetString("filter"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			now    = time.Now()
			ttl    = config.TTL()
		)

		file, err := newStore().All()
		handleErr(err)

		sources := lo.Filter(file.Sources(), func(source string, _ int) bool {
			return filter == "" || fuzzy.MatchFold(filter, source)
		})

		if asJson {
			records := lo.Map(sources, func(source string, _ int) cacheRecord {
				entry := file[source]
				return cacheRecord{
					Source:     source,
					URL:        entry.URL,
					ResolvedAt: entry.ResolvedAt(),
					Fresh:      entry.Fresh(now, ttl),
				}
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(records))
			return
		}

		if len(sources) == 0 {
			cmd.Println(style.Faint("nothing cached"))
			return
		}

		width := util.TerminalWidth(100) - 4
		fresh := style.Tag(color.New("0"), style.SuccessColor)("fresh")
		stale := style.Tag(color.New("0"), style.WarningColor)("stale")

		for i, source := range sources {
			entry := file[source]

			state := stale
			if entry.Fresh(now, ttl) {
				state = fresh
			}

			cmd.Printf("%s %s\n", state, style.Fg(color.Purple)(util.Ellipsis(source, width)))
			cmd.Printf("  %s %s\n", icon.Get(icon.Link), style.Fg(style.LinkColor)(util.Ellipsis(entry.URL, width)))
			cmd.Printf("  %s\n", style.Faint("resolved "+now.Sub(entry.ResolvedAt()).Round(time.Second).String()+" ago"))

			if i < len(sources)-1 {
				cmd.Println()
			}
		}

		cmd.Println()
		cmd.Printf("%s %s\n", icon.Get(icon.Cache), style.Faint(util.Quantify(len(sources), "entry", "entries")))
	},
}

func init() {
	cacheCmd.AddCommand(cacheRemoveCmd)
}

var cacheRemoveCmd = &cobra.Command{
	Use:     "remove [source...]",
	Aliases: []string{"rm"},
	Short:   "Forget the resolutions of the given sources",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		file, err := newStore().All()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return lo.Without(file.Sources(), args...), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		s := newStore()

		for _, source := range args {
			removed, err := s.Remove(source)
			handleErr(err)

			if removed {
				fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(source))
			} else {
				fmt.Printf("%s %s was not cached\n", style.Fg(color.Yellow)(icon.Get(icon.Fail)), style.Fg(color.Purple)(source))
			}
		}
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every resolution",
	Run: func(cmd *cobra.Command, args []string) {
		e := util.PrintErasable(fmt.Sprintf("%s Clearing cache...", icon.Get(icon.Progress)))
		err := newStore().Clear()
		e()
		handleErr(err)

		fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Capitalize("cache cleared"))
	},
}

func init() {
	cacheCmd.AddCommand(cacheSchemaCmd)
}

var cacheSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the cache file",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true

		schema := reflector.Reflect(store.File{})
		schema.Title = "framecast cache"
		schema.Description = "Source page URL mapped to its resolved player"

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}

func init() {
	cacheCmd.AddCommand(cachePruneCmd)
	cachePruneCmd.Flags().DurationP("older-than", "o", 7*24*time.Hour, "Drop entries resolved longer ago than this")
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop resolutions that have not been refreshed for a long time",
	Run: func(cmd *cobra.Command, args []string) {
		age := lo.Must(cmd.Flags().GetDuration("older-than"))

		n, err := newStore().Prune(time.Now().Add(-age))
		handleErr(err)

		fmt.Printf(
			"%s pruned %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(n, "entry", "entries"),
		)
	},
}
