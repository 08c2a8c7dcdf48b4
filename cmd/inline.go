// Package cmd implements the command-line interface for filmschool.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/filmschoolyt/filmschoolyt/catalog"
	"github.com/filmschoolyt/filmschoolyt/filesystem"
	"github.com/filmschoolyt/filmschoolyt/inline"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/query"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to narrow the lesson list")
	inlineCmd.Flags().StringP("lesson", "l", "", "Criteria for selecting a single lesson from the results")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("links", "L", false, "Print resource links instead of watch page URLs")
	inlineCmd.Flags().BoolP("fetch-titles", "f", false, "Resolve lesson titles from the video metadata endpoint")

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// parseLessonFlag maps the CLI selector syntax onto a lesson picker.
func parseLessonFlag(value string) (inline.LessonPicker, error) {
	switch value {
	case "first", "last":
		return inline.ParseLessonPicker(value, "")
	default:
		if _, err := strconv.ParseUint(value, 10, 16); err == nil {
			return inline.ParseLessonPicker("index", value)
		}
		return inline.ParseLessonPicker("exact", value)
	}
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Lesson selectors:
  first - first lesson in the list
  last - last lesson in the list
  [number] - select lesson by index (starting from 0)
  [id] - select lesson by its exact id

When using the json flag the lesson selector could be omitted. That way, it will list all matched lessons`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			catalogs []catalog.Catalog
			err      error
		)

		name := viper.GetString(key.CatalogDefault)
		if name == "" {
			handleErr(errors.New("catalog not set"))
		}

		p, ok := catalog.Get(name)
		if !ok {
			handleErr(fmt.Errorf("catalog not found: %s", name))
		}

		c, err := p.CreateCatalog()
		handleErr(err)
		catalogs = append(catalogs, c)

		searchQuery := lo.Must(cmd.Flags().GetString("query"))

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		lessonFlag := lo.Must(cmd.Flags().GetString("lesson"))
		lessonPicker := mo.None[inline.LessonPicker]()
		if lessonFlag != "" {
			fn, err := parseLessonFlag(lessonFlag)
			handleErr(err)
			lessonPicker = mo.Some(fn)
		}

		options := &inline.Options{
			Catalogs:     catalogs,
			Json:         lo.Must(cmd.Flags().GetBool("json")),
			Query:        searchQuery,
			LessonPicker: lessonPicker,
			FetchTitles:  lo.Must(cmd.Flags().GetBool("fetch-titles")),
			Links:        lo.Must(cmd.Flags().GetBool("links")),
			Out:          writer,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "lesson", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
