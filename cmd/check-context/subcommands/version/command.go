// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package version implements 'check-context version'.
package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	"github.com/DataDog/datadog-checkctx/pkg/version"
)

// Commands returns a slice of subcommands for the 'check-context' command.
func Commands(_ *command.GlobalParams) []*cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version info",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout())
		},
	}
	return []*cobra.Command{versionCmd}
}

func printVersion(w io.Writer) error {
	av, err := version.Agent()
	if err != nil {
		return fmt.Errorf("invalid agent version %q: %w", version.AgentVersion, err)
	}

	meta := ""
	if av.Meta != "" {
		meta = fmt.Sprintf("- Meta: %s ", color.YellowString(av.Meta))
	}
	fmt.Fprintf(w, "Agent %s %s- Commit: %s - Go version: %s\n",
		color.CyanString(av.GetNumberAndPre()),
		meta,
		color.GreenString(av.Commit),
		color.RedString(runtime.Version()),
	)
	return nil
}
