// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package hostname implements 'check-context hostname'.
package hostname

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	"github.com/DataDog/datadog-checkctx/comp/core/config"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameimpl"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameinterface"
	log "github.com/DataDog/datadog-checkctx/comp/core/log/def"
	logimpl "github.com/DataDog/datadog-checkctx/comp/core/log/impl"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

// cliParams are the command-line arguments for this subcommand
type cliParams struct {
	*command.GlobalParams

	showProvider bool
	out          io.Writer
}

// Commands returns a slice of subcommands for the 'check-context' command.
func Commands(globalParams *command.GlobalParams) []*cobra.Command {
	cliParams := &cliParams{
		GlobalParams: globalParams,
	}
	getHostnameCommand := &cobra.Command{
		Use:   "hostname",
		Short: "Print the hostname checks run with",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliParams.out = cmd.OutOrStdout()
			return fxutil.OneShot(printHostname,
				fx.Supply(cliParams),
				fx.Supply(config.NewParams(globalParams.ConfFilePath, config.WithConfigMissingOK(true))),
				// never output anything but the hostname, unless DD_LOG_LEVEL says otherwise
				fx.Supply(log.ForOneShot(command.LoggerName, "off", true)),
				config.Module(),
				logimpl.Module(),
				hostnameimpl.Module(),
			)
		},
	}
	getHostnameCommand.Flags().BoolVarP(&cliParams.showProvider, "provider", "p", false, "also print the provider that resolved the hostname")

	return []*cobra.Command{getHostnameCommand}
}

func printHostname(_ log.Component, hostname hostnameinterface.Component, params *cliParams) error {
	data, err := hostname.GetWithProvider(context.Background())
	if err != nil {
		return fmt.Errorf("Error getting the hostname: %v", err)
	}

	if params.showProvider {
		fmt.Fprintf(params.out, "%s (provider: %s)\n", data.Hostname, color.CyanString(data.Provider))
		return nil
	}
	fmt.Fprintln(params.out, data.Hostname)
	return nil
}
