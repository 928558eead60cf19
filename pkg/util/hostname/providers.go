// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package hostname

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
	"github.com/DataDog/datadog-checkctx/pkg/util/hostname/file"
	"github.com/DataDog/datadog-checkctx/pkg/util/hostname/gce"
	"github.com/DataDog/datadog-checkctx/pkg/util/hostname/validate"
	"github.com/DataDog/datadog-checkctx/pkg/util/log"
)

const (
	// ConfigProvider is the name of the provider reading the `hostname` setting
	ConfigProvider = "configuration"
	fileProvider   = "hostname_file"
	gceProvider    = "gce"
	fqdnProvider   = "fqdn"
	osProvider     = "os"
)

// for testing
var (
	osHostname   = os.Hostname
	fqdnHostname = getSystemFQDN
	gceHostname  = func(ctx context.Context) (string, error) {
		return gce.HostnameProvider(ctx, gce.NewClient())
	}
)

// provider is one step of the resolution pipeline. cb receives the hostname
// found by the previous steps, empty if none.
type provider struct {
	name string
	cb   func(ctx context.Context, cfg model.Reader, currentHostname string) (string, error)

	// stopIfSuccessful stops the pipeline when this provider succeeds
	stopIfSuccessful bool
}

// order matters!
var providerCatalog = []provider{
	{name: ConfigProvider, cb: fromConfig, stopIfSuccessful: true},
	{name: fileProvider, cb: fromHostnameFile, stopIfSuccessful: true},
	{name: gceProvider, cb: fromGCE, stopIfSuccessful: true},
	{name: fqdnProvider, cb: fromFQDN, stopIfSuccessful: false},
	{name: osProvider, cb: fromOS, stopIfSuccessful: false},
}

func fromConfig(_ context.Context, cfg model.Reader, _ string) (string, error) {
	configName := cfg.GetString("hostname")
	if configName == "" {
		return "", errors.New("no hostname set in the configuration")
	}
	if err := validate.ValidHostname(configName); err != nil {
		return "", err
	}
	return configName, nil
}

func fromHostnameFile(ctx context.Context, cfg model.Reader, _ string) (string, error) {
	filename := cfg.GetString("hostname_file")
	if filename == "" {
		return "", errors.New("'hostname_file' configuration is not enabled")
	}
	return file.HostnameProvider(ctx, map[string]interface{}{"filename": filename})
}

func fromGCE(ctx context.Context, cfg model.Reader, _ string) (string, error) {
	if !slices.Contains(cfg.GetStringSlice("cloud_provider_metadata"), gce.CloudProviderName) {
		return "", fmt.Errorf("cloud provider %q is disabled by 'cloud_provider_metadata'", gce.CloudProviderName)
	}
	return gceHostname(ctx)
}

func fromFQDN(ctx context.Context, cfg model.Reader, _ string) (string, error) {
	if !cfg.GetBool("hostname_fqdn") {
		return "", errors.New("'hostname_fqdn' configuration is not enabled")
	}

	fqdn, err := fqdnHostname(ctx)
	if err != nil {
		return "", fmt.Errorf("unable to get FQDN from system: %w", err)
	}
	if err := validate.ValidHostname(fqdn); err != nil {
		return "", err
	}
	return fqdn, nil
}

func fromOS(_ context.Context, _ model.Reader, currentHostname string) (string, error) {
	if currentHostname != "" {
		return "", errors.New("skipping OS hostname as a previous provider found a valid hostname")
	}

	name, err := osHostname()
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("the OS reported an empty hostname")
	}
	log.Debugf("Using the OS hostname %q", name)
	return name, nil
}
