// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version holds SemVer infos for the agent and friends
type Version struct {
	Major  int64
	Minor  int64
	Patch  int64
	Pre    string
	Meta   string
	Commit string
}

// Agent returns the Datadog Agent version.
func Agent() (Version, error) {
	return New(AgentVersion, Commit)
}

// New parses a version string like `x.y.z-pre+meta` and returns a Version.
func New(raw, commit string) (Version, error) {
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("version string has wrong format %q: %w", raw, err)
	}

	return Version{
		Major:  int64(v.Major()),
		Minor:  int64(v.Minor()),
		Patch:  int64(v.Patch()),
		Pre:    v.Prerelease(),
		Meta:   v.Metadata(),
		Commit: commit,
	}, nil
}

func (v *Version) String() string {
	ver := v.GetNumberAndPre()
	if v.Meta != "" {
		ver = fmt.Sprintf("%s+%s", ver, v.Meta)
	}
	if v.Commit != "" {
		if v.Meta != "" {
			ver = fmt.Sprintf("%s.commit.%s", ver, v.Commit)
		} else {
			ver = fmt.Sprintf("%s+commit.%s", ver, v.Commit)
		}
	}

	return ver
}

// GetNumber returns a string containing version numbers only, e.g. `0.0.0`
func (v *Version) GetNumber() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// GetNumberAndPre returns a string containing version number and the pre only, e.g. `0.0.0-beta.1`
func (v *Version) GetNumberAndPre() string {
	version := v.GetNumber()
	if v.Pre != "" {
		version = fmt.Sprintf("%s-%s", version, v.Pre)
	}
	return version
}
