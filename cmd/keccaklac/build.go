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

	"github.com/dvlrd/keccaklac/keccak"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: `Builds and evaluates the Keccak sponge LAC, printing the digest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, c, l, err := resolveParams()
		if err != nil {
			return err
		}
		inputBits, err := resolveInputBits()
		if err != nil {
			return err
		}

		digest, err := keccak.BuildAndEvaluate(inputBits, r, c, l)
		if err != nil {
			return err
		}

		fmt.Println(formatDigest(digest))
		return nil
	},
}

func init() {
	buildCmd.Flags().String("preset", "", "named parameter preset: keccak256, sha3-256, shake128")
	buildCmd.Flags().Int("r", keccak.Keccak256.R, "rate, in bits")
	buildCmd.Flags().Int("c", keccak.Keccak256.C, "capacity, in bits")
	buildCmd.Flags().Int("l", keccak.Keccak256.L, "digest length, in bits")
	buildCmd.Flags().String("hex", "", "input as a hex string")
	buildCmd.Flags().String("ascii", "", "input as an ASCII string")
	buildCmd.Flags().Bool("binary", false, "print the digest as a raw 0/1 string instead of hex")
}
