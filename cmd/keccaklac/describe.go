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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dvlrd/keccaklac/crypto/circuit"
	"github.com/dvlrd/keccaklac/keccak"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: `Reports layer/gate counts for a given parameter set without printing the digest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, c, l, err := resolveParams()
		if err != nil {
			return err
		}
		inputBits, err := resolveInputBits()
		if err != nil {
			return err
		}

		lac, err := keccak.Build(inputBits, r, c, l)
		if err != nil {
			return err
		}
		if err := lac.Validate(); err != nil {
			return err
		}

		byKind := lac.GateCountByKind()
		fmt.Printf("layers: %d\n", lac.LayerCount())
		fmt.Printf("gates:  %d (weighted)\n", lac.GateCount())
		fmt.Printf("  add:      %d\n", byKind[circuit.KindAdd])
		fmt.Printf("  mul:      %d\n", byKind[circuit.KindMul])
		fmt.Printf("  bilinear: %d\n", byKind[circuit.KindBilinear])
		return nil
	},
}

func init() {
	describeCmd.Flags().String("preset", "", "named parameter preset: keccak256, sha3-256, shake128")
	describeCmd.Flags().Int("r", keccak.Keccak256.R, "rate, in bits")
	describeCmd.Flags().Int("c", keccak.Keccak256.C, "capacity, in bits")
	describeCmd.Flags().Int("l", keccak.Keccak256.L, "digest length, in bits")
	describeCmd.Flags().String("hex", "", "input as a hex string")
	describeCmd.Flags().String("ascii", "", "input as an ASCII string")
}
