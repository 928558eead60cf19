// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package viperconfig provides a viper-based implementation of the config interface.
package viperconfig

import (
	"fmt"
	"strings"
	"sync"

	"github.com/DataDog/viper"

	"github.com/DataDog/datadog-checkctx/pkg/config/model"
)

// safeConfig implements Config by wrapping viper with a safety lock
type safeConfig struct {
	*viper.Viper
	sync.RWMutex
}

// NewConfig returns a new Config object.
func NewConfig(name string, envPrefix string, envKeyReplacer *strings.Replacer) model.Config {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.SetTypeByDefaultValue(true)

	return &safeConfig{Viper: v}
}

// Set wraps Viper for concurrent access
func (c *safeConfig) Set(key string, value interface{}) {
	c.Lock()
	defer c.Unlock()
	c.Viper.Set(key, value)
}

// SetDefault wraps Viper for concurrent access
func (c *safeConfig) SetDefault(key string, value interface{}) {
	c.Lock()
	defer c.Unlock()
	c.Viper.SetDefault(key, value)
}

// BindEnv wraps Viper for concurrent access. Without explicit env var names,
// viper derives one from the prefix and the key replacer.
func (c *safeConfig) BindEnv(key string, envvars ...string) {
	c.Lock()
	defer c.Unlock()
	_ = c.Viper.BindEnv(append([]string{key}, envvars...)...)
}

// BindEnvAndSetDefault sets the default value for a config parameter, and adds an env binding
func (c *safeConfig) BindEnvAndSetDefault(key string, val interface{}, env ...string) {
	c.SetDefault(key, val)
	c.BindEnv(key, env...)
}

// Get wraps Viper for concurrent access
func (c *safeConfig) Get(key string) interface{} {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.Get(key)
}

// GetString wraps Viper for concurrent access
func (c *safeConfig) GetString(key string) string {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetString(key)
}

// GetBool wraps Viper for concurrent access
func (c *safeConfig) GetBool(key string) bool {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetBool(key)
}

// GetStringSlice wraps Viper for concurrent access
func (c *safeConfig) GetStringSlice(key string) []string {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetStringSlice(key)
}

// IsSet wraps Viper for concurrent access
func (c *safeConfig) IsSet(key string) bool {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.IsSet(key)
}

// AllKeys wraps Viper for concurrent access
func (c *safeConfig) AllKeys() []string {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.AllKeys()
}

// SetConfigFile wraps Viper for concurrent access
func (c *safeConfig) SetConfigFile(in string) {
	c.Lock()
	defer c.Unlock()
	c.Viper.SetConfigFile(in)
}

// ReadInConfig wraps Viper for concurrent access
func (c *safeConfig) ReadInConfig() error {
	c.Lock()
	defer c.Unlock()
	if err := c.Viper.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to load configuration file %s: %w", c.Viper.ConfigFileUsed(), err)
	}
	return nil
}

// ConfigFileUsed wraps Viper for concurrent access
func (c *safeConfig) ConfigFileUsed() string {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.ConfigFileUsed()
}
