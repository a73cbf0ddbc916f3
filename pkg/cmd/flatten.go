// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"os"

	"github.com/modelscript/modelscript/pkg/instance"
	"github.com/modelscript/modelscript/pkg/printer"
	"github.com/spf13/cobra"
)

// flattenCmd loads and instantiates a library, printing the resulting
// instance tree.
var flattenCmd = &cobra.Command{
	Use:   "flatten [path]",
	Short: "Instantiate a library and print its instance tree.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := configure(cmd); err != nil {
			return err
		}
		//
		library := instance.NewLibrary(instance.NewContext(), args[0])
		//
		if err := library.Instantiate(); err != nil {
			reportParseError(err)
			return err
		}
		//
		return printer.Library(os.Stdout, library)
	},
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}
