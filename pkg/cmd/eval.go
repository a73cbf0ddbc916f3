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
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/eval"
	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/syntax/modelica"
	"github.com/modelscript/modelscript/pkg/util/source"
	"github.com/spf13/cobra"
)

// evalCmd evaluates the top-level expression of a source file, emitting the
// result as pretty-printed JSON.
var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate the top-level expression of a source file.",
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
		node, err := modelica.ParseExpression(&files[0])
		if err != nil {
			reportParseError(err)
			return err
		}
		//
		expr, err := ast.ExpressionFromSyntax(node)
		if err != nil {
			return err
		}
		//
		value, err := eval.Evaluate(expr, eval.EmptyResolver{})
		if err != nil {
			return err
		}
		//
		bytes, err := json.MarshalIndent(eval.ToAny(value), "", "  ")
		if err != nil {
			return err
		}
		//
		fmt.Println(string(bytes))
		//
		return nil
	},
}

// reportParseError highlights the offending source lines of a parse error.
func reportParseError(err error) {
	if parseError, ok := err.(*syntax.ParseError); ok {
		for _, syntaxError := range parseError.Errors {
			syntaxError.Report(os.Stderr)
		}
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
