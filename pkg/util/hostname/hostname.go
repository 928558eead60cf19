// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package hostname resolves the hostname of the host the agent runs on.
package hostname

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
	"github.com/DataDog/datadog-checkctx/pkg/util/cache"
	"github.com/DataDog/datadog-checkctx/pkg/util/log"
)

// Data contains hostname and the hostname provider
type Data struct {
	Hostname string
	Provider string
}

// FromConfiguration returns true if the hostname was found through the configuration file
func (h Data) FromConfiguration() bool {
	return h.Provider == ConfigProvider
}

var cacheHostnameKey = cache.BuildAgentKey("hostname")

// concurrent lookups on a cold cache share a single run of the providers
var lookupGroup singleflight.Group

// Get returns the host name for the agent.
func Get(ctx context.Context, cfg model.Reader) (string, error) {
	data, err := GetWithProvider(ctx, cfg)
	return data.Hostname, err
}

// GetWithProvider returns the hostname for the Agent and the provider that was used
// to retrieve it. Providers are tried in order:
//   - configuration ('hostname')
//   - 'hostname_file'
//   - GCE metadata, when 'cloud_provider_metadata' lists gcp
//   - FQDN, when 'hostname_fqdn' is enabled
//   - os
//
// The first resolved hostname is cached for the lifetime of the process. When
// ctx is done before the lookup completes, ctx.Err() is returned and the lookup
// keeps running for the other callers.
func GetWithProvider(ctx context.Context, cfg model.Reader) (Data, error) {
	if cached, found := cache.Cache.Get(cacheHostnameKey); found {
		return cached.(Data), nil
	}

	// the shared run ignores caller cancellation; providers bound it with their own timeouts
	lookup := lookupGroup.DoChan(cacheHostnameKey, func() (interface{}, error) {
		return resolve(context.WithoutCancel(ctx), cfg)
	})

	select {
	case <-ctx.Done():
		return Data{}, ctx.Err()
	case res := <-lookup:
		if res.Err != nil {
			return Data{}, res.Err
		}
		return res.Val.(Data), nil
	}
}

// resolve runs the providers in order and caches the first hostname found.
func resolve(ctx context.Context, cfg model.Reader) (Data, error) {
	var (
		hostname string
		provider string
		errs     error
	)

	for _, p := range providerCatalog {
		log.Debugf("GetHostname trying provider '%s' ...", p.name)

		detected, err := p.cb(ctx, cfg, hostname)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.name, err))
			log.Debugf("Unable to get the hostname from provider '%s': %v", p.name, err)
			continue
		}

		log.Debugf("Hostname provider '%s' successfully found hostname '%s'", p.name, detected)
		hostname = detected
		provider = p.name

		if p.stopIfSuccessful {
			break
		}
	}

	if hostname == "" {
		return Data{}, fmt.Errorf("unable to reliably determine the host name. You can define one in the agent config file or in your hosts file: %w", errs)
	}

	data := Data{Hostname: hostname, Provider: provider}
	cache.Cache.Set(cacheHostnameKey, data, cache.NoExpiration)
	log.Infof("Hostname is: %s (provider: %s)", hostname, provider)
	return data, nil
}

// ResetCache forgets the resolved hostname so the next Get runs the providers again.
func ResetCache() {
	cache.Cache.Delete(cacheHostnameKey)
}
