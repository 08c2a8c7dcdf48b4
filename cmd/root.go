// Package cmd implements the command-line interface for filmschool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/color"
	"github.com/filmschoolyt/filmschoolyt/constant"
	"github.com/filmschoolyt/filmschoolyt/icon"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/filmschoolyt/filmschoolyt/style"
	"github.com/filmschoolyt/filmschoolyt/tui"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/filmschoolyt/filmschoolyt/version"
	"github.com/filmschoolyt/filmschoolyt/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("catalog", "C", "", "Specify the default lesson catalog to load")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("catalog", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var catalogs []string

		for _, p := range catalog.All() {
			catalogs = append(catalogs, p.Name)
		}

		return catalogs, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.CatalogDefault, rootCmd.PersistentFlags().Lookup("catalog")))

	rootCmd.PersistentFlags().BoolP("fetch-titles", "T", false, "Resolve lesson titles from the video metadata endpoint")
	lo.Must0(viper.BindPFlag(key.CatalogFetchTitles, rootCmd.PersistentFlags().Lookup("fetch-titles")))

	rootCmd.Flags().StringP("query", "q", "", "Pre-fill the lesson search input")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the filmschool application.
var rootCmd = &cobra.Command{
	Use:   constant.FilmSchool,
	Short: "A terminal client for film-craft video lessons with watch-time gated resources",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal client for film-craft video lessons with watch-time gated resources"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Query: lo.Must(cmd.Flags().GetString("query")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
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

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
