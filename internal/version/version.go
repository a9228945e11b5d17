// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version of scriptctl.
package version

import (
	"fmt"
	"strings"
)

const (
	// preReleaseAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	preReleaseAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// buildAlphabet defines the allowed characters for the build metadata
	// portion of a semantic version string.
	buildAlphabet = preReleaseAlphabet + "."
)

// Semantic version of the tool.
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden at build time with
	// '-ldflags "-X github.com/diemtools/txbuilder/internal/version.PreRelease=foo"'.
	// Characters outside preReleaseAlphabet are dropped.
	PreRelease = "pre"

	// BuildMetadata may be overridden at build time in the same way.
	// Characters outside buildAlphabet are dropped.
	BuildMetadata = "dev"
)

// String returns the version as a semantic versioning 2.0.0 string, for
// example 0.1.0-pre+dev.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if pre := filterAlphabet(PreRelease, preReleaseAlphabet); pre != "" {
		version += "-" + pre
	}
	if build := filterAlphabet(BuildMetadata, buildAlphabet); build != "" {
		version += "+" + build
	}
	return version
}

// filterAlphabet returns str without the characters missing from alphabet.
func filterAlphabet(str, alphabet string) string {
	var sb strings.Builder
	for _, r := range str {
		if strings.ContainsRune(alphabet, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
