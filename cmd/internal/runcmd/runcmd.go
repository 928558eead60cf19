// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package runcmd runs a top-level cobra command and turns its result into a
// process exit code.
package runcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
)

// Run executes a cobra command and handles the results. It is intended for
// use in `main` functions, returning the exit code for the process:
//
//	os.Exit(runcmd.Run(cmd))
func Run(cmd *cobra.Command) int {
	// always silence errors, since they are handled here
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err != nil {
		displayError(err, cmd.ErrOrStderr())
		return -1
	}
	return 0
}

// displayError prints the error, trimming the fx wrapping of errors returned
// by component constructors.
func displayError(err error, w io.Writer) {
	if rootCause := dig.RootCause(err); rootCause != err {
		fmt.Fprintln(w, color.RedString("Error: %v", rootCause))
		return
	}
	fmt.Fprintln(w, color.RedString("Error: %v", err))
}
