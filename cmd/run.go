// Package cmd implements the command-line interface for filmschool.
package cmd

import (
	"fmt"

	"github.com/filmschoolyt/filmschoolyt/catalog/custom"
	"github.com/filmschoolyt/filmschoolyt/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

// runCmd facilitates the execution of local Lua catalog files for development and debugging.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a local Lua catalog file",
	Long: `Initialize the Lua 5.1 virtual machine to execute a specified catalog script. Useful for catalog development and debugging.
Validates the script shape and reports how many lessons it yields.`,
	Args:    cobra.ExactArgs(1),
	Example: "  filmschool run ./test.lua",
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath := args[0]

		// Invoke the Lua interpreter to load and execute the target script.
		c, err := custom.LoadCatalog(catalogPath)
		handleErr(err)

		lessons, err := c.Lessons()
		handleErr(err)

		fmt.Printf("%s yields %s\n", c.Name(), util.Quantify(len(lessons), "lesson", "lessons"))
	},
}
