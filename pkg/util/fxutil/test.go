// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Test starts an fx app with the given options, populates a value of type T
// from it, and stops the app when the test completes.
//
// T is typically a component interface or an fx.In struct listing several
// components.
func Test[T any](t testing.TB, opts ...fx.Option) T {
	t.Helper()
	var deps T

	app := fxtest.New(
		t,
		fx.Supply(fx.Annotate(t, fx.As(new(testing.TB)))),
		fx.Options(opts...),
		fx.Populate(&deps),
	)
	app.RequireStart()
	t.Cleanup(func() {
		app.RequireStop()
	})

	return deps
}

// TestOneShotSubcommand is a helper for testing commands implemented with fxutil.OneShot.
//
// It takes a slice of subcommands, each of which is expected to set up a cobra
// subcommand, and a command line to execute. It checks that the command calls
// fxutil.OneShot with expectedOneShotFunc, and that the fx options it passes
// can provide the arguments of verifyFn, which is then called.
func TestOneShotSubcommand(
	t *testing.T,
	subcommands []*cobra.Command,
	commandline []string,
	expectedOneShotFunc interface{},
	verifyFn interface{},
) {
	t.Helper()
	var oneShotCalled bool
	fxAppTestOverride = func(oneShotFunc interface{}, opts []fx.Option) error {
		oneShotCalled = true
		require.Equal(t,
			reflect.ValueOf(expectedOneShotFunc).Pointer(),
			reflect.ValueOf(oneShotFunc).Pointer(),
			"got a different OneShot function than expected")

		app := fxtest.New(t,
			fx.Supply(fx.Annotate(t, fx.As(new(testing.TB)))),
			fx.Options(opts...),
			fx.Invoke(verifyFn),
		)
		app.RequireStart().RequireStop()
		return nil
	}
	defer func() { fxAppTestOverride = nil }()

	cmd := &cobra.Command{Use: "test"}
	for _, c := range subcommands {
		cmd.AddCommand(c)
	}
	cmd.SetArgs(commandline)

	require.NoError(t, cmd.Execute())
	require.True(t, oneShotCalled, "fxutil.OneShot was not called")
}
