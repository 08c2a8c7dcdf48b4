// Package cmd implements the command-line interface for filmschool.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/filmschoolyt/filmschoolyt/color"
	"github.com/filmschoolyt/filmschoolyt/constant"
	"github.com/filmschoolyt/filmschoolyt/util"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/filesystem"
	"github.com/filmschoolyt/filmschoolyt/icon"
	"github.com/filmschoolyt/filmschoolyt/style"
	"github.com/filmschoolyt/filmschoolyt/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogsCmd)
}

// catalogsCmd provides a parent command for managing lesson catalogs.
var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Manage built-in and custom lesson catalogs",
}

func init() {
	catalogsCmd.AddCommand(catalogsListCmd)

	catalogsListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	catalogsListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua catalogs")
	catalogsListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in catalogs")

	catalogsListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	catalogsListCmd.SetOut(os.Stdout)
}

// catalogsListCmd displays a summary of all registered lesson catalogs.
var catalogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered lesson catalogs",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range catalog.Builtins() {
				cmd.Println(p.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range catalog.Customs() {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	catalogsCmd.AddCommand(catalogsRemoveCmd)

	catalogsRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom catalog(s) to uninstall")
	lo.Must0(catalogsRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		catalogs, err := filesystem.API().ReadDir(where.Catalogs())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(catalogs, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, ".lua") {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// catalogsRemoveCmd facilitates the uninstallation of custom Lua catalogs.
var catalogsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua catalogs from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Catalogs(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	catalogsCmd.AddCommand(catalogsGenCmd)

	catalogsGenCmd.Flags().StringP("name", "n", "", "The display name of the new lesson catalog")
	catalogsGenCmd.Flags().StringP("url", "u", "", "The base URL of the course or channel the catalog covers")

	lo.Must0(catalogsGenCmd.MarkFlagRequired("name"))
	lo.Must0(catalogsGenCmd.MarkFlagRequired("url"))
}

// catalogsGenCmd scaffolds a boilerplate Lua catalog script.
var catalogsGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua catalog script using a predefined template",
	Long:  `Generate a boilerplate Lua catalog script with core functions and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name             string
			URL              string
			CatalogLessonsFn string
			Author           string
		}{
			Name:             lo.Must(cmd.Flags().GetString("name")),
			URL:              lo.Must(cmd.Flags().GetString("url")),
			CatalogLessonsFn: constant.CatalogLessonsFn,
			Author:           author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("catalog").Funcs(funcMap).Parse(constant.CatalogTemplate)
		handleErr(err)

		target := filepath.Join(where.Catalogs(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
