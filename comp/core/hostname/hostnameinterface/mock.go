// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package hostnameinterface

import (
	"context"
	"errors"
	"sync"
)

// MockHostname is the hostname returned by the mock. An empty MockHostname
// makes every lookup fail.
type MockHostname string

// Mock implements mock-specific methods.
type Mock interface {
	Component

	// Set changes the hostname returned by the mock.
	Set(name string)
}

type mockService struct {
	mu   sync.Mutex
	name string
}

var _ Mock = (*mockService)(nil)

// NewMock returns a hostname component returning name, along with its Mock
// interface to change it.
func NewMock(name MockHostname) (Component, Mock) {
	m := &mockService{name: string(name)}
	return m, m
}

func (m *mockService) Get(ctx context.Context) (string, error) {
	data, err := m.GetWithProvider(ctx)
	return data.Hostname, err
}

func (m *mockService) GetSafe(ctx context.Context) string {
	name, err := m.Get(ctx)
	if err != nil {
		return "unknown host"
	}
	return name
}

func (m *mockService) GetWithProvider(context.Context) (Data, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.name == "" {
		return Data{}, errors.New("mock hostname is not set")
	}
	return Data{Hostname: m.name, Provider: "mock"}, nil
}

func (m *mockService) Set(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
}
