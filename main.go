// Package main is the entry point for the filmschool application.
package main

import (
	"github.com/filmschoolyt/filmschoolyt/cmd"
	"github.com/filmschoolyt/filmschoolyt/config"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
