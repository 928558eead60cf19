// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package command holds command related files
package command

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// LoggerName defines the logger name for the check-context command
const LoggerName = "CHECKCTX"

// GlobalParams contains the values of global Cobra flags.
//
// A pointer to this type is passed to SubcommandFactory's, but its contents
// are not valid until Cobra calls the subcommand's Run or RunE function.
type GlobalParams struct {
	// ConfFilePath holds the path to the folder containing the configuration
	// file, or to the file itself, to allow overrides from the command line
	ConfFilePath string

	// NoColor is a flag to disable color output
	NoColor bool
}

// SubcommandFactory returns a sub-command factory
type SubcommandFactory func(globalParams *GlobalParams) []*cobra.Command

// MakeCommand makes the top-level Cobra command for this command.
func MakeCommand(subcommandFactories []SubcommandFactory) *cobra.Command {
	var globalParams GlobalParams

	checkContextCmd := &cobra.Command{
		Use:   "check-context [command]",
		Short: "Inspect the execution context handed to checks.",
		Long: `
check-context resolves the agent hostname and the default HTTP headers that
checks attach to their requests, the same way the agent does.`,
		SilenceUsage: true,
	}

	checkContextCmd.PersistentFlags().StringVarP(&globalParams.ConfFilePath, "cfgpath", "c", "", "path to directory containing datadog.yaml")
	checkContextCmd.PersistentFlags().BoolVarP(&globalParams.NoColor, "no-color", "n", false, "disable color output")

	checkContextCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if globalParams.NoColor {
			color.NoColor = true
		}
	}
	for _, factory := range subcommandFactories {
		for _, subcmd := range factory(&globalParams) {
			checkContextCmd.AddCommand(subcmd)
		}
	}

	return checkContextCmd
}
