// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvlrd/keccaklac/keccak"
)

func resetViper() {
	viper.Reset()
}

func TestResolveParamsPreset(t *testing.T) {
	resetViper()
	viper.Set("preset", "SHAKE128")

	r, c, l, err := resolveParams()
	require.NoError(t, err)
	assert.Equal(t, keccak.SHAKE128.R, r)
	assert.Equal(t, keccak.SHAKE128.C, c)
	assert.Equal(t, keccak.SHAKE128.L, l)
}

func TestResolveParamsUnknownPreset(t *testing.T) {
	resetViper()
	viper.Set("preset", "nope")

	_, _, _, err := resolveParams()
	assert.Error(t, err)
}

func TestResolveParamsFlags(t *testing.T) {
	resetViper()
	viper.Set("r", 1088)
	viper.Set("c", 512)
	viper.Set("l", 256)

	r, c, l, err := resolveParams()
	require.NoError(t, err)
	assert.Equal(t, 1088, r)
	assert.Equal(t, 512, c)
	assert.Equal(t, 256, l)
}

func TestResolveInputBitsHex(t *testing.T) {
	resetViper()
	viper.Set("hex", "0x61")

	bits, err := resolveInputBits()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0, 0, 0, 0, 1}, bits)
}

func TestResolveInputBitsAscii(t *testing.T) {
	resetViper()
	viper.Set("ascii", "a")

	bits, err := resolveInputBits()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0, 0, 0, 0, 1}, bits)
}

func TestFormatDigest(t *testing.T) {
	resetViper()
	bits := []int{0, 1, 1, 0, 0, 0, 0, 1}

	assert.Equal(t, "61", formatDigest(bits))

	viper.Set("binary", true)
	assert.Equal(t, "01100001", formatDigest(bits))
}
