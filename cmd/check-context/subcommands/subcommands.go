// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package subcommands holds the subcommands for the check-context command
package subcommands

import (
	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	"github.com/DataDog/datadog-checkctx/cmd/check-context/subcommands/hostname"
	"github.com/DataDog/datadog-checkctx/cmd/check-context/subcommands/show"
	"github.com/DataDog/datadog-checkctx/cmd/check-context/subcommands/version"
)

// CheckContextSubcommands returns all subcommands for the check-context command
func CheckContextSubcommands() []command.SubcommandFactory {
	return []command.SubcommandFactory{
		show.Commands,
		hostname.Commands,
		version.Commands,
	}
}
