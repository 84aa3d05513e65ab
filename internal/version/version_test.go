// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInfoVCS(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-03-07T10:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}}
	vcs, ok := buildInfoVCS(info)
	require.True(t, ok)
	require.Equal(t, VCSInfo{Commit: "0123456789abcdef", Date: "20250307", Dirty: true}, vcs)

	_, ok = buildInfoVCS(&debug.BuildInfo{})
	require.False(t, ok)
}

func TestWithCommit(t *testing.T) {
	require.Equal(t, WithMeta, WithCommit("", ""))
	require.Equal(t, WithMeta+"-01234567-20250307", WithCommit("0123456789abcdef", "20250307"))
}
