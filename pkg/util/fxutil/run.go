// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"context"
	"errors"
	"reflect"

	"go.uber.org/fx"
)

// OneShot runs the given function in an fx.App using the supplied options.
// The function's arguments are supplied by Fx and can be any provided type.
// The function must return `error` or nothing.
//
// The resulting app starts all components, then invokes the function, then
// immediately shuts down. This is typically used for command-line tools.
func OneShot(oneShotFunc interface{}, opts ...fx.Option) error {
	if fxAppTestOverride != nil {
		return fxAppTestOverride(oneShotFunc, opts)
	}

	delayedCall := newDelayedFxInvocation(oneShotFunc)

	opts = append(opts,
		delayedCall.option(),
		fx.NopLogger,
	)
	app := fx.New(opts...)

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Join(UnwrapIfErrArgumentsFailed(err), stopApp(app))
	}

	err := delayedCall.call()
	return errors.Join(err, stopApp(app))
}

func stopApp(app *fx.App) error {
	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

// UnwrapIfErrArgumentsFailed unwrap the error if the error was returned by an FX invoke method otherwise return the error.
func UnwrapIfErrArgumentsFailed(err error) error {
	// This is a workaround until https://github.com/uber-go/fx/issues/988 will be done.
	if err == nil {
		return nil
	}
	if unwrapped := errors.Unwrap(err); unwrapped != nil && reflect.TypeOf(err).String() == "fx.errArgumentsFailed" {
		return unwrapped
	}
	return err
}

// delayedFxInvocation captures the arguments of a function from Fx so that
// it can be called once the app has started.
type delayedFxInvocation struct {
	fn       interface{}
	args     []reflect.Value
	captured bool
}

func newDelayedFxInvocation(fn interface{}) *delayedFxInvocation {
	if reflect.TypeOf(fn).Kind() != reflect.Func {
		panic("delayedFxInvocation requires a function")
	}
	return &delayedFxInvocation{fn: fn}
}

// option returns an fx.Option that will capture the arguments of the function.
func (i *delayedFxInvocation) option() fx.Option {
	t := reflect.TypeOf(i.fn)

	inTypes := make([]reflect.Type, t.NumIn())
	for n := range inTypes {
		inTypes[n] = t.In(n)
	}

	// a function with the same inputs as i.fn that only records its arguments
	captureArgs := reflect.MakeFunc(
		reflect.FuncOf(inTypes, []reflect.Type{}, false),
		func(args []reflect.Value) []reflect.Value {
			i.args = args
			i.captured = true
			return []reflect.Value{}
		})

	return fx.Invoke(captureArgs.Interface())
}

// call calls the underlying function with the captured arguments.
func (i *delayedFxInvocation) call() error {
	if !i.captured {
		return errors.New("fx app did not supply the function arguments")
	}
	res := reflect.ValueOf(i.fn).Call(i.args)
	if len(res) > 0 {
		if err, ok := res[0].Interface().(error); ok {
			return err
		}
	}
	return nil
}
