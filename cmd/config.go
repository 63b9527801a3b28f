package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/framecast/framecast/color"
	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/constant"
	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/icon"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/store"
	"github.com/framecast/framecast/style"
	"github.com/framecast/framecast/util"
	"github.com/framecast/framecast/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// durationKeys hold Go duration strings such as "30s" or "1h".
var durationKeys = []string{key.CacheTTL, key.ResolverLaunchTimeout, key.ResolverNavigationTimeout}

// choiceKeys accept a closed set of values.
var choiceKeys = map[string][]string{
	key.ResolverEngine: engines,
	key.CacheOnCorrupt: {store.PolicyFail.String(), store.PolicyReset.String()},
	key.IconsVariant:   icon.AvailableVariants(),
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Framecast+".toml")
}

func errUnknownKey(name string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// keyArg takes the key from the first argument or the --key flag and checks it is registered.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	name := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" {
		return "", errors.New("no key given")
	}
	if _, ok := config.Default[name]; !ok {
		return "", errUnknownKey(name)
	}
	return name, nil
}

// parseValue converts raw into the type of the key's default and checks it is acceptable for the key.
func parseValue(name, raw string) (any, error) {
	switch config.Default[name].Value.(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", name, raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", name, raw)
		}
		return b, nil
	}

	if lo.Contains(durationKeys, name) {
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			return nil, fmt.Errorf("%s expects a positive duration like 30s or 1h, got %q", name, raw)
		}
	}

	if choices, ok := choiceKeys[name]; ok && !lo.Contains(choices, raw) {
		return nil, fmt.Errorf("%s must be one of %v, got %q", name, choices, raw)
	}

	return raw, nil
}

func printSet(name string, value any) {
	fmt.Printf(
		"%s %s = %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Fg(color.Purple)(name),
		style.Fg(color.Yellow)(fmt.Sprint(value)),
	)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)

		if names := lo.Must(cmd.Flags().GetStringSlice("key")); len(names) > 0 {
			fields = fields[:0]
			for _, name := range names {
				field, ok := config.Default[name]
				if !ok {
					handleErr(errUnknownKey(name))
				}
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		width := util.TerminalWidth(80)
		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty(width))
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to set")
	configSetCmd.Flags().StringP("value", "v", "", "Value to set")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Set a configuration key",
	Example:           "  framecast config set cache.ttl 30m\n  framecast config set resolver.engine static",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := keyArg(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetString("value"))
		if len(args) == 2 {
			raw = args[1]
		}
		if raw == "" && !cmd.Flags().Changed("value") {
			handleErr(errors.New("no value given"))
		}

		value, err := parseValue(name, raw)
		handleErr(err)

		if name == keySource {
			handleErr(config.SetSourceURL(raw))
		} else {
			viper.Set(name, value)
			handleErr(config.Write())
		}

		printSet(name, value)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to print")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := keyArg(cmd, args)
		handleErr(err)

		fmt.Println(viper.Get(name))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Replace an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to " + constant.Framecast + ".toml",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf("%s wrote %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()
		handleErr(filesystem.API().Remove(path))
		fmt.Printf("%s deleted %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for name, field := range config.Default {
				viper.Set(name, field.Value)
			}
			handleErr(config.Write())
			fmt.Printf("%s every key reset\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		name, err := keyArg(cmd, nil)
		handleErr(err)

		viper.Set(name, config.Default[name].Value)
		handleErr(config.Write())
		printSet(name, config.Default[name].Value)
	},
}
