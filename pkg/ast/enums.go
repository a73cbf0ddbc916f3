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
package ast

import "fmt"

// BinaryOperator identifies one of the fixed Modelica binary operators.
type BinaryOperator uint

// Binary operators, with their Modelica spellings.
const (
	// BinaryOr is the logical disjunction "or".
	BinaryOr BinaryOperator = iota
	// BinaryAnd is the logical conjunction "and".
	BinaryAnd
	// BinaryLessThan is the relation "<".
	BinaryLessThan
	// BinaryLessEqual is the relation "<=".
	BinaryLessEqual
	// BinaryGreaterThan is the relation ">".
	BinaryGreaterThan
	// BinaryGreaterEqual is the relation ">=".
	BinaryGreaterEqual
	// BinaryEqual is the relation "==".
	BinaryEqual
	// BinaryNotEqual is the relation "<>".
	BinaryNotEqual
	// BinaryAdd is arithmetic addition "+".
	BinaryAdd
	// BinarySubtract is arithmetic subtraction "-".
	BinarySubtract
	// BinaryElementwiseAdd is elementwise addition ".+".
	BinaryElementwiseAdd
	// BinaryElementwiseSubtract is elementwise subtraction ".-".
	BinaryElementwiseSubtract
	// BinaryMultiply is arithmetic multiplication "*".
	BinaryMultiply
	// BinaryDivide is arithmetic division "/".
	BinaryDivide
	// BinaryElementwiseMultiply is elementwise multiplication ".*".
	BinaryElementwiseMultiply
	// BinaryElementwiseDivide is elementwise division "./".
	BinaryElementwiseDivide
	// BinaryExponentiate is exponentiation "^".
	BinaryExponentiate
	// BinaryElementwiseExponentiate is elementwise exponentiation ".^".
	BinaryElementwiseExponentiate
)

var binaryOperatorNames = map[BinaryOperator]string{
	BinaryOr: "or", BinaryAnd: "and",
	BinaryLessThan: "<", BinaryLessEqual: "<=",
	BinaryGreaterThan: ">", BinaryGreaterEqual: ">=",
	BinaryEqual: "==", BinaryNotEqual: "<>",
	BinaryAdd: "+", BinarySubtract: "-",
	BinaryElementwiseAdd: ".+", BinaryElementwiseSubtract: ".-",
	BinaryMultiply: "*", BinaryDivide: "/",
	BinaryElementwiseMultiply: ".*", BinaryElementwiseDivide: "./",
	BinaryExponentiate: "^", BinaryElementwiseExponentiate: ".^",
}

func (o BinaryOperator) String() string {
	return binaryOperatorNames[o]
}

// BinaryOperatorOf converts a Modelica operator spelling into the
// corresponding binary operator.
func BinaryOperatorOf(spelling string) (BinaryOperator, error) {
	for op, name := range binaryOperatorNames {
		if name == spelling {
			return op, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown binary operator %q", spelling)
}

// UnaryOperator identifies one of the fixed Modelica unary operators.
type UnaryOperator uint

// Unary operators, with their Modelica spellings.
const (
	// UnaryNot is logical negation "not".
	UnaryNot UnaryOperator = iota
	// UnaryMinus is arithmetic negation "-".
	UnaryMinus
	// UnaryPlus is the identity prefix "+".
	UnaryPlus
	// UnaryElementwiseMinus is elementwise negation ".-".
	UnaryElementwiseMinus
	// UnaryElementwisePlus is the elementwise identity prefix ".+".
	UnaryElementwisePlus
)

var unaryOperatorNames = map[UnaryOperator]string{
	UnaryNot: "not", UnaryMinus: "-", UnaryPlus: "+",
	UnaryElementwiseMinus: ".-", UnaryElementwisePlus: ".+",
}

func (o UnaryOperator) String() string {
	return unaryOperatorNames[o]
}

// UnaryOperatorOf converts a Modelica operator spelling into the
// corresponding unary operator.
func UnaryOperatorOf(spelling string) (UnaryOperator, error) {
	for op, name := range unaryOperatorNames {
		if name == spelling {
			return op, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown unary operator %q", spelling)
}

// ClassKind identifies the specialised kind of a class definition.
type ClassKind uint

// Class kinds, with their Modelica reserved-word spellings.
const (
	// KindClass corresponds to "class".
	KindClass ClassKind = iota
	// KindModel corresponds to "model".
	KindModel
	// KindRecord corresponds to "record".
	KindRecord
	// KindOperatorRecord corresponds to "operator record".
	KindOperatorRecord
	// KindBlock corresponds to "block".
	KindBlock
	// KindConnector corresponds to "connector".
	KindConnector
	// KindExpandableConnector corresponds to "expandable connector".
	KindExpandableConnector
	// KindType corresponds to "type".
	KindType
	// KindPackage corresponds to "package".
	KindPackage
	// KindFunction corresponds to "function".
	KindFunction
	// KindOperatorFunction corresponds to "operator function".
	KindOperatorFunction
	// KindOperator corresponds to "operator".
	KindOperator
)

var classKindNames = map[ClassKind]string{
	KindClass: "class", KindModel: "model", KindRecord: "record",
	KindOperatorRecord: "operator record", KindBlock: "block",
	KindConnector: "connector", KindExpandableConnector: "expandable connector",
	KindType: "type", KindPackage: "package", KindFunction: "function",
	KindOperatorFunction: "operator function", KindOperator: "operator",
}

func (k ClassKind) String() string {
	return classKindNames[k]
}

// ClassKindOf converts a Modelica class-kind spelling into the corresponding
// class kind.
func ClassKindOf(spelling string) (ClassKind, error) {
	for kind, name := range classKindNames {
		if name == spelling {
			return kind, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown class kind %q", spelling)
}

// Variability identifies the variability prefix of a component.
type Variability uint

// Variability prefixes.
const (
	// VariabilityConstant corresponds to "constant".
	VariabilityConstant Variability = iota
	// VariabilityDiscrete corresponds to "discrete".
	VariabilityDiscrete
	// VariabilityParameter corresponds to "parameter".
	VariabilityParameter
)

var variabilityNames = map[Variability]string{
	VariabilityConstant: "constant", VariabilityDiscrete: "discrete",
	VariabilityParameter: "parameter",
}

func (v Variability) String() string {
	return variabilityNames[v]
}

// VariabilityOf converts a Modelica variability spelling into the
// corresponding variability.
func VariabilityOf(spelling string) (Variability, error) {
	for variability, name := range variabilityNames {
		if name == spelling {
			return variability, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown variability %q", spelling)
}

// Causality identifies the causality prefix of a component.
type Causality uint

// Causality prefixes.
const (
	// CausalityInput corresponds to "input".
	CausalityInput Causality = iota
	// CausalityOutput corresponds to "output".
	CausalityOutput
)

var causalityNames = map[Causality]string{
	CausalityInput: "input", CausalityOutput: "output",
}

func (c Causality) String() string {
	return causalityNames[c]
}

// CausalityOf converts a Modelica causality spelling into the corresponding
// causality.
func CausalityOf(spelling string) (Causality, error) {
	for causality, name := range causalityNames {
		if name == spelling {
			return causality, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown causality %q", spelling)
}

// Visibility identifies the visibility of an element section.
type Visibility uint

// Visibilities.
const (
	// VisibilityPublic corresponds to "public".
	VisibilityPublic Visibility = iota
	// VisibilityProtected corresponds to "protected".
	VisibilityProtected
)

var visibilityNames = map[Visibility]string{
	VisibilityPublic: "public", VisibilityProtected: "protected",
}

func (v Visibility) String() string {
	return visibilityNames[v]
}

// VisibilityOf converts a Modelica visibility spelling into the corresponding
// visibility.
func VisibilityOf(spelling string) (Visibility, error) {
	for visibility, name := range visibilityNames {
		if name == spelling {
			return visibility, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown visibility %q", spelling)
}

// Purity identifies the purity prefix of a function class.
type Purity uint

// Purity prefixes.
const (
	// PurityPure corresponds to "pure".
	PurityPure Purity = iota
	// PurityImpure corresponds to "impure".
	PurityImpure
)

var purityNames = map[Purity]string{
	PurityPure: "pure", PurityImpure: "impure",
}

func (p Purity) String() string {
	return purityNames[p]
}

// PurityOf converts a Modelica purity spelling into the corresponding purity.
func PurityOf(spelling string) (Purity, error) {
	for purity, name := range purityNames {
		if name == spelling {
			return purity, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown purity %q", spelling)
}

// Flow identifies the flow prefix of a component.
type Flow uint

// Flow prefixes.
const (
	// FlowFlow corresponds to "flow".
	FlowFlow Flow = iota
	// FlowStream corresponds to "stream".
	FlowStream
)

var flowNames = map[Flow]string{
	FlowFlow: "flow", FlowStream: "stream",
}

func (f Flow) String() string {
	return flowNames[f]
}

// FlowOf converts a Modelica flow spelling into the corresponding flow.
func FlowOf(spelling string) (Flow, error) {
	for flow, name := range flowNames {
		if name == spelling {
			return flow, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown flow %q", spelling)
}
