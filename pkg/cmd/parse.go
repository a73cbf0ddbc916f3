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
	"fmt"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/syntax/modelica"
	"github.com/modelscript/modelscript/pkg/util/source"
	"github.com/spf13/cobra"
)

// parseCmd parses a source file and emits its AST in the serialised shape.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its AST as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := configure(cmd); err != nil {
			return err
		}
		//
		files, err := source.ReadFiles(args[0])
		if err != nil {
			return err
		}
		//
		tree, err := modelica.NewParser().Parse(&files[0], uint(len(files[0].Contents()))*2)
		if err != nil {
			reportParseError(err)
			return err
		}
		//
		stored, err := ast.StoredDefinitionFromSyntax(tree.RootNode())
		if err != nil {
			return err
		}
		//
		bytes, err := ast.ToJSON(stored)
		if err != nil {
			return err
		}
		//
		fmt.Println(string(bytes))
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
