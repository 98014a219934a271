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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/sirius/log"

	"github.com/dvlrd/keccaklac/logger"
)

var cmd = &cobra.Command{
	Use:   "keccaklac",
	Short: `Builds and evaluates a layered arithmetic circuit for the Keccak sponge hash`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		logger.SetLogger(log.New())
		return nil
	},
}

func init() {
	cmd.PersistentFlags().String("config", "", "optional YAML config file path (see ParamConfig)")

	cmd.AddCommand(buildCmd)
	cmd.AddCommand(describeCmd)
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
