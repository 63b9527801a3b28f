package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/framecast/framecast/browser"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/icon"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	name   string
	detail string
	ok     bool
}

func runChecks() []checkResult {
	var results []checkResult

	source := config.SourceURL()
	switch {
	case source == "":
		results = append(results, checkResult{"source", "not configured", false})
	case config.ValidateSource(source) != nil:
		results = append(results, checkResult{"source", source + " does not match " + viper.GetString(key.SourcePrefix), false})
	default:
		results = append(results, checkResult{"source", source, true})
	}

	if _, err := newEngine(); err != nil {
		results = append(results, checkResult{"engine", err.Error(), false})
	} else {
		results = append(results, checkResult{"engine", viper.GetString(key.ResolverEngine), true})
	}

	if viper.GetString(key.ResolverEngine) != engineStatic {
		if bin, ok := browser.Bin(); ok {
			results = append(results, checkResult{"chromium", bin, true})
		} else {
			results = append(results, checkResult{"chromium", "not found, one will be downloaded on first use", false})
		}
	}

	if file, err := newStore().All(); err != nil {
		results = append(results, checkResult{"cache", err.Error(), false})
	} else {
		results = append(results, checkResult{"cache", fmt.Sprintf("%d entries", len(file)), true})
	}

	return results
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that framecast is ready to resolve players",
	Run: func(cmd *cobra.Command, args []string) {
		results := runChecks()

		lines := make([]string, 0, len(results))
		failed := 0
		for _, r := range results {
			mark := style.Fg(style.SuccessColor)(icon.Get(icon.Success))
			if !r.ok {
				mark = style.Fg(style.ErrorColor)(icon.Get(icon.Fail))
				failed++
			}
			lines = append(lines, fmt.Sprintf("%s %s %s", mark, style.Bold(r.name), style.Faint(r.detail)))
		}

		fmt.Println(style.Box(strings.Join(lines, "\n")))

		if failed > 0 {
			handleErr(errors.New("some checks failed"))
		}
	},
}
