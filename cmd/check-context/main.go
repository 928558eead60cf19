// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package main implements the check-context command.
package main

import (
	"os"

	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	"github.com/DataDog/datadog-checkctx/cmd/check-context/subcommands"
	"github.com/DataDog/datadog-checkctx/cmd/internal/runcmd"
)

func main() {
	os.Exit(runcmd.Run(command.MakeCommand(subcommands.CheckContextSubcommands())))
}
