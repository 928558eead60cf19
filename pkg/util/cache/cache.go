// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package cache provides the process-wide in-memory cache of the agent.
package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// AgentCachePrefix is the common root of the keys owned by the agent.
	AgentCachePrefix = "agent"

	defaultExpire = 5 * time.Minute
	defaultPurge  = 30 * time.Second
)

// NoExpiration keeps an item until it is deleted explicitly.
const NoExpiration = cache.NoExpiration

// Cache provides an in-memory key:value store similar to memcached
var Cache = cache.New(defaultExpire, defaultPurge)

// BuildAgentKey creates a cache key by joining the constant AgentCachePrefix
// and the provided keys, separated by a slash.
func BuildAgentKey(keys ...string) string {
	k := AgentCachePrefix
	for _, s := range keys {
		k += "/" + s
	}
	return k
}
