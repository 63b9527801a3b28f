package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/framecast/framecast/color"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/icon"
	"github.com/framecast/framecast/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourceCmd)
	sourceCmd.AddCommand(sourceGetCmd)
	sourceCmd.AddCommand(sourceSetCmd)

	sourceGetCmd.SetOut(os.Stdout)
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Show or change the configured source page",
}

var sourceGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the configured source page",
	Run: func(cmd *cobra.Command, args []string) {
		source := config.SourceURL()
		if source == "" {
			handleErr(errors.New("no source configured"))
		}
		cmd.Println(source)
	},
}

var sourceSetCmd = &cobra.Command{
	Use:   "set [url]",
	Short: "Change the configured source page",
	Long: `Change the configured source page.
Prompts for the URL when it is not given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var source string

		if len(args) == 1 {
			source = args[0]
		} else {
			handleErr(survey.AskOne(
				&survey.Input{
					Message: "Source page",
					Default: config.SourceURL(),
				},
				&source,
				survey.WithValidator(survey.Required),
				survey.WithValidator(func(ans any) error {
					s, _ := ans.(string)
					return config.ValidateSource(s)
				}),
			))
		}

		handleErr(config.SetSourceURL(source))
		fmt.Printf(
			"%s source set to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(source),
		)
	},
}
