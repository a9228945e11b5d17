// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestString tests the version string with various pre-release and build
// metadata overrides.
func TestString(t *testing.T) {
	tests := []struct {
		preRelease string
		build      string
		want       string
	}{
		{"pre", "dev", "0.1.0-pre+dev"},
		{"", "", "0.1.0"},
		{"rc.1", "", "0.1.0-rc1"},
		{"beta", "2024.10.01", "0.1.0-beta+2024.10.01"},
		{"$%", "a_b", "0.1.0+ab"},
	}

	origPre, origBuild := PreRelease, BuildMetadata
	defer func() {
		PreRelease, BuildMetadata = origPre, origBuild
	}()

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		PreRelease, BuildMetadata = test.preRelease, test.build
		require.Equal(t, test.want, String())
	}
}
