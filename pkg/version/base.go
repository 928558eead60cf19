// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package version defines the version of the agent
package version

// AgentVersion contains the version of the Agent.
// It is populated at build time using build flags:
//
//	-ldflags "-X github.com/DataDog/datadog-checkctx/pkg/version.AgentVersion=7.50.0"
var AgentVersion string

// Commit is populated with the short commit hash from which the Agent was built
var Commit string

var agentVersionDefault = "6.0.0"

func init() {
	if AgentVersion == "" {
		AgentVersion = agentVersionDefault
	}
}

// Metadata reads the build information of the running agent.
type Metadata struct{}

// Version returns AgentVersion as set at build time, without any reformatting.
func (Metadata) Version() string {
	return AgentVersion
}
