// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package show implements 'check-context show'.
package show

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"

	"github.com/DataDog/datadog-checkctx/cmd/check-context/command"
	executioncontext "github.com/DataDog/datadog-checkctx/comp/checks/executioncontext/def"
	executioncontextfx "github.com/DataDog/datadog-checkctx/comp/checks/executioncontext/fx"
	"github.com/DataDog/datadog-checkctx/comp/core/config"
	"github.com/DataDog/datadog-checkctx/comp/core/hostname/hostnameimpl"
	log "github.com/DataDog/datadog-checkctx/comp/core/log/def"
	logimpl "github.com/DataDog/datadog-checkctx/comp/core/log/impl"
	"github.com/DataDog/datadog-checkctx/pkg/collector/check/execctx"
	"github.com/DataDog/datadog-checkctx/pkg/util/fxutil"
)

// cliParams are the command-line arguments for this subcommand
type cliParams struct {
	*command.GlobalParams

	// `field=value` overrides applied on top of the defaults, and fields to remove
	headers      []string
	unsetHeaders []string
	jsonOutput   bool
	yamlOutput   bool
	request      bool
	out          io.Writer
}

type printableContext struct {
	Hostname string            `json:"hostname" yaml:"hostname"`
	Headers  map[string]string `json:"headers" yaml:"headers"`
}

// Commands returns a slice of subcommands for the 'check-context' command.
func Commands(globalParams *command.GlobalParams) []*cobra.Command {
	cliParams := &cliParams{
		GlobalParams: globalParams,
	}
	showCommand := &cobra.Command{
		Use:   "show",
		Short: "Print the execution context handed to checks",
		Long: `Print the hostname and the default HTTP headers checks attach to their requests.

Header overrides preview what a check gets after changing its defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliParams.out = cmd.OutOrStdout()
			return fxutil.OneShot(showContext,
				fx.Supply(cliParams),
				fx.Supply(config.NewParams(globalParams.ConfFilePath, config.WithConfigMissingOK(true))),
				fx.Supply(log.ForOneShot(command.LoggerName, "off", true)),
				config.Module(),
				logimpl.Module(),
				hostnameimpl.Module(),
				executioncontextfx.Module(),
			)
		},
	}
	showCommand.Flags().StringArrayVarP(&cliParams.headers, "header", "H", nil, "override a default header, as field=value (repeatable)")
	showCommand.Flags().StringArrayVar(&cliParams.unsetHeaders, "unset-header", nil, "remove a default header (repeatable)")
	showCommand.Flags().BoolVarP(&cliParams.jsonOutput, "json", "j", false, "print the context as JSON")
	showCommand.Flags().BoolVarP(&cliParams.yamlOutput, "yaml", "y", false, "print the context as YAML")
	showCommand.Flags().BoolVarP(&cliParams.request, "request", "r", false, "print the headers as a check request would carry them")
	showCommand.MarkFlagsMutuallyExclusive("json", "yaml", "request")

	return []*cobra.Command{showCommand}
}

func showContext(_ log.Component, execContext executioncontext.Component, params *cliParams) error {
	ec := execContext.Get()
	if err := applyOverrides(&ec, params.headers, params.unsetHeaders); err != nil {
		return err
	}

	switch {
	case params.jsonOutput:
		return printJSON(params.out, ec)
	case params.yamlOutput:
		return printYAML(params.out, ec)
	case params.request:
		return printRequestHeaders(params.out, ec)
	}
	printTable(params.out, ec)
	return nil
}

func applyOverrides(ec *execctx.ExecutionContext, headers, unsetHeaders []string) error {
	for _, field := range unsetHeaders {
		ec.UnsetHeader(field)
	}
	for _, header := range headers {
		field, value, ok := strings.Cut(header, "=")
		if !ok || field == "" {
			return fmt.Errorf("invalid header %q: expected field=value", header)
		}
		ec.SetHeader(field, value)
	}
	return nil
}

func toPrintable(ec execctx.ExecutionContext) printableContext {
	return printableContext{
		Hostname: ec.Hostname,
		Headers:  maps.Collect(ec.HTTPHeaders.All()),
	}
}

func printJSON(w io.Writer, ec execctx.ExecutionContext) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toPrintable(ec))
}

func printYAML(w io.Writer, ec execctx.ExecutionContext) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toPrintable(ec)); err != nil {
		return err
	}
	return enc.Close()
}

// printRequestHeaders writes the header block of a request built from ec.
func printRequestHeaders(w io.Writer, ec execctx.ExecutionContext) error {
	header := make(http.Header)
	ec.HTTPHeaders.ApplyTo(header)
	return header.Write(w)
}

func printTable(w io.Writer, ec execctx.ExecutionContext) {
	hostname := ec.Hostname
	if hostname == "" {
		hostname = color.YellowString("<unknown>")
	}
	fmt.Fprintf(w, "Hostname: %s\n\n", hostname)

	headers := maps.Collect(ec.HTTPHeaders.All())

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Header", "Value"})
	table.SetAutoWrapText(false)
	for _, field := range slices.Sorted(maps.Keys(headers)) {
		table.Append([]string{field, headers[field]})
	}
	table.Render()
}
