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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/dvlrd/keccaklac/crypto/circuit"
	"github.com/dvlrd/keccaklac/keccak"
)

// ParamConfig is the optional YAML shape read via --config, letting a caller
// pin r/c/l once instead of repeating flags.
type ParamConfig struct {
	R int `yaml:"r"`
	C int `yaml:"c"`
	L int `yaml:"l"`
}

var namedPresets = map[string]keccak.Preset{
	"keccak256": keccak.Keccak256,
	"sha3-256":  keccak.SHA3_256,
	"shake128":  keccak.SHAKE128,
}

// resolveParams turns the --preset/--r/--c/--l flags (plus an optional
// --config YAML file) into a concrete (r, c, l) triple. An explicit --preset
// wins over --config, which wins over the --r/--c/--l flags' defaults.
func resolveParams() (r, c, l int, err error) {
	if name := viper.GetString("preset"); name != "" {
		preset, ok := namedPresets[strings.ToLower(name)]
		if !ok {
			return 0, 0, 0, fmt.Errorf("unknown preset %q", name)
		}
		return preset.R, preset.C, preset.L, nil
	}

	if path := viper.GetString("config"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return 0, 0, 0, err
		}
		var cfg ParamConfig
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return 0, 0, 0, err
		}
		return cfg.R, cfg.C, cfg.L, nil
	}

	return viper.GetInt("r"), viper.GetInt("c"), viper.GetInt("l"), nil
}

// resolveInputBits reads the input bit vector from, in order of precedence,
// --hex, --ascii, or stdin (treated as ASCII text).
func resolveInputBits() ([]int, error) {
	if h := viper.GetString("hex"); h != "" {
		data, err := hex.DecodeString(strings.TrimPrefix(h, "0x"))
		if err != nil {
			return nil, fmt.Errorf("decoding --hex: %w", err)
		}
		return circuit.BitsFromBytes(data), nil
	}
	if a := viper.GetString("ascii"); a != "" {
		return circuit.BitsFromBytes([]byte(a)), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return circuit.BitsFromBytes(data), nil
}

// formatDigest renders digest bits as lowercase hex, or as a raw 0/1 string
// when --binary is set.
func formatDigest(bits []int) string {
	if viper.GetBool("binary") {
		var sb strings.Builder
		for _, b := range bits {
			if b == 0 {
				sb.WriteByte('0')
			} else {
				sb.WriteByte('1')
			}
		}
		return sb.String()
	}
	return hex.EncodeToString(circuit.BytesFromBits(bits))
}
