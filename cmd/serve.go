package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/framecast/framecast/color"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/icon"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/log"
	"github.com/framecast/framecast/open"
	"github.com/framecast/framecast/server"
	"github.com/framecast/framecast/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Address to bind to")
	lo.Must0(viper.BindPFlag(key.ServerHost, serveCmd.Flags().Lookup("host")))

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().BoolP("open", "o", false, "Open the player page in the default browser")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resolved player over HTTP",
	Long: `Serve a page that embeds the player resolved from the configured source.
The source can be changed at runtime with POST /update-url.`,
	Run: func(cmd *cobra.Command, args []string) {
		loc, err := newLocator()
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := net.JoinHostPort(
			viper.GetString(key.ServerHost),
			strconv.Itoa(viper.GetInt(key.ServerPort)),
		)

		fmt.Printf(
			"%s listening on %s\n",
			style.Fg(color.Green)(icon.Get(icon.Link)),
			style.Fg(style.LinkColor)("http://"+addr),
		)
		if source := config.SourceURL(); source == "" {
			fmt.Println(style.Faint("no source configured yet, set one with \"framecast source set\""))
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			if err := open.Start("http://" + addr + "/"); err != nil {
				log.Warnf("opening browser: %v", err)
			}
		}

		log.Infof("serving on %s", addr)
		handleErr(server.ListenAndServe(ctx, addr, server.New(loc, config.Source{})))
	},
}
