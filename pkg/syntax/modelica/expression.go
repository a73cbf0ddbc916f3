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
package modelica

import (
	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/util/source"
)

// Expression parsing follows the Modelica operator precedence ladder:
// if-expression > range > or > and > not > relation > addition >
// multiplication > exponentiation > primary.

func (p *parser) parseExpression() (*node, *source.SyntaxError) {
	if p.at("if") {
		return p.parseIfExpression()
	}
	//
	return p.parseSimpleExpression()
}

func (p *parser) parseIfExpression() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindIfExpression)
	//
	if _, err := p.expect("if"); err != nil {
		return nil, err
	}
	//
	for {
		branch := p.mark(syntax.KindIfExpressionBranch)
		//
		condition, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		branch.add("condition", condition)
		//
		if _, err := p.expect("then"); err != nil {
			return nil, err
		}
		//
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		branch.add("value", value)
		n.add("branch", branch)
		//
		if !p.accept("elseif") {
			break
		}
	}
	//
	if _, err := p.expect("else"); err != nil {
		return nil, err
	}
	//
	elseValue, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	n.add("else", elseValue)
	//
	return n, nil
}

func (p *parser) parseSimpleExpression() (*node, *source.SyntaxError) {
	start, err := p.parseLogicalExpression()
	if err != nil {
		return nil, err
	}
	//
	if !p.at(":") {
		return start, nil
	}
	//
	p.index++
	//
	second, err := p.parseLogicalExpression()
	if err != nil {
		return nil, err
	}
	//
	n := newNode(syntax.KindRangeExpression, p.file, start.Span())
	n.add("start", start)
	//
	if p.accept(":") {
		end, err := p.parseLogicalExpression()
		if err != nil {
			return nil, err
		}
		//
		n.add("step", second)
		n.add("end", end)
	} else {
		n.add("end", second)
	}
	//
	return n, nil
}

// binary constructs a left-associative binary expression node.
func (p *parser) binary(operator token, lhs *node, rhs *node) *node {
	n := newNode(syntax.KindBinaryExpression, p.file, lhs.Span())
	n.add("lhs", lhs)
	n.add("operator", p.leaf(syntax.KindToken, operator))
	n.add("rhs", rhs)
	//
	return n
}

func (p *parser) parseLogicalExpression() (*node, *source.SyntaxError) {
	lhs, err := p.parseLogicalTerm()
	if err != nil {
		return nil, err
	}
	//
	for p.at("or") {
		operator := p.token()
		p.index++
		//
		rhs, err := p.parseLogicalTerm()
		if err != nil {
			return nil, err
		}
		//
		lhs = p.binary(operator, lhs, rhs)
	}
	//
	return lhs, nil
}

func (p *parser) parseLogicalTerm() (*node, *source.SyntaxError) {
	lhs, err := p.parseLogicalFactor()
	if err != nil {
		return nil, err
	}
	//
	for p.at("and") {
		operator := p.token()
		p.index++
		//
		rhs, err := p.parseLogicalFactor()
		if err != nil {
			return nil, err
		}
		//
		lhs = p.binary(operator, lhs, rhs)
	}
	//
	return lhs, nil
}

func (p *parser) parseLogicalFactor() (*node, *source.SyntaxError) {
	if p.at("not") {
		operator := p.token()
		p.index++
		//
		operand, err := p.parseRelation()
		if err != nil {
			return nil, err
		}
		//
		n := newNode(syntax.KindUnaryExpression, p.file, operator.span)
		n.add("operator", p.leaf(syntax.KindToken, operator))
		n.add("operand", operand)
		//
		return n, nil
	}
	//
	return p.parseRelation()
}

var relationalOperators = map[string]bool{
	"<": true, "<=": true, ">": true, ">=": true, "==": true, "<>": true,
}

func (p *parser) parseRelation() (*node, *source.SyntaxError) {
	lhs, err := p.parseArithmeticExpression()
	if err != nil {
		return nil, err
	}
	//
	if t := p.token(); t.kind == tokSymbol && relationalOperators[p.text(t)] {
		p.index++
		//
		rhs, err := p.parseArithmeticExpression()
		if err != nil {
			return nil, err
		}
		//
		lhs = p.binary(t, lhs, rhs)
	}
	//
	return lhs, nil
}

var additiveOperators = map[string]bool{
	"+": true, "-": true, ".+": true, ".-": true,
}

func (p *parser) parseArithmeticExpression() (*node, *source.SyntaxError) {
	var sign *token
	//
	if t := p.token(); t.kind == tokSymbol && additiveOperators[p.text(t)] {
		p.index++
		sign = &t
	}
	//
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	//
	if sign != nil {
		n := newNode(syntax.KindUnaryExpression, p.file, sign.span)
		n.add("operator", p.leaf(syntax.KindToken, *sign))
		n.add("operand", lhs)
		lhs = n
	}
	//
	for {
		t := p.token()
		//
		if t.kind != tokSymbol || !additiveOperators[p.text(t)] {
			return lhs, nil
		}
		//
		p.index++
		//
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		//
		lhs = p.binary(t, lhs, rhs)
	}
}

var multiplicativeOperators = map[string]bool{
	"*": true, "/": true, ".*": true, "./": true,
}

func (p *parser) parseTerm() (*node, *source.SyntaxError) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	//
	for {
		t := p.token()
		//
		if t.kind != tokSymbol || !multiplicativeOperators[p.text(t)] {
			return lhs, nil
		}
		//
		p.index++
		//
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		//
		lhs = p.binary(t, lhs, rhs)
	}
}

func (p *parser) parseFactor() (*node, *source.SyntaxError) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	//
	if t := p.token(); t.kind == tokSymbol && (p.text(t) == "^" || p.text(t) == ".^") {
		p.index++
		//
		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		//
		lhs = p.binary(t, lhs, rhs)
	}
	//
	return lhs, nil
}

func (p *parser) parsePrimary() (*node, *source.SyntaxError) {
	t := p.token()
	//
	switch t.kind {
	case tokInteger:
		p.index++
		return p.leaf(syntax.KindUnsignedInteger, t), nil
	case tokReal:
		p.index++
		return p.leaf(syntax.KindUnsignedReal, t), nil
	case tokString:
		p.index++
		return p.leaf(syntax.KindString, t), nil
	case tokIdent:
		switch p.text(t) {
		case "true", "false":
			p.index++
			return p.leaf(syntax.KindBoolean, t), nil
		case "end":
			p.index++
			return p.leaf(syntax.KindEndExpression, t), nil
		default:
			return p.parseReferenceOrCall()
		}
	case tokSymbol:
		switch p.text(t) {
		case "(":
			p.index++
			//
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			//
			if _, err := p.expect(")"); err != nil {
				return nil, err
			}
			//
			return expr, nil
		case "{":
			return p.parseArrayConstructor()
		case "[":
			return p.parseArrayConcatenation()
		case ".":
			return p.parseReferenceOrCall()
		}
	}
	//
	return nil, p.errorHere("expected expression")
}

func (p *parser) parseArrayConstructor() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindArrayConstructor)
	//
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	//
	if !p.at("}") {
		for {
			element, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			//
			n.add("element", element)
			//
			if !p.accept(",") {
				break
			}
		}
	}
	//
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	//
	return n, nil
}

func (p *parser) parseArrayConcatenation() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindArrayConcatenation)
	//
	if _, err := p.expect("["); err != nil {
		return nil, err
	}
	//
	for {
		row := p.mark(syntax.KindExpressionList)
		//
		for {
			element, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			//
			row.add("element", element)
			//
			if !p.accept(",") {
				break
			}
		}
		//
		n.add("row", row)
		//
		if !p.accept(";") {
			break
		}
	}
	//
	if _, err := p.expect("]"); err != nil {
		return nil, err
	}
	//
	return n, nil
}

func (p *parser) parseReferenceOrCall() (*node, *source.SyntaxError) {
	ref, err := p.parseComponentReference()
	if err != nil {
		return nil, err
	}
	//
	if !p.at("(") {
		return ref, nil
	}
	//
	call := newNode(syntax.KindFunctionCall, p.file, ref.Span())
	call.add("callee", ref)
	//
	if err := p.parseFunctionArguments(call); err != nil {
		return nil, err
	}
	//
	return call, nil
}

func (p *parser) parseComponentReference() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindComponentReference)
	//
	if p.at(".") {
		n.add("global", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	for {
		part := p.mark(syntax.KindComponentReferencePart)
		//
		identifier, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		//
		part.add("identifier", p.leaf(syntax.KindIdent, identifier))
		//
		if p.at("[") {
			if err := p.parseOptionalSubscripts(part); err != nil {
				return nil, err
			}
		}
		//
		n.add("part", part)
		//
		if !p.at(".") || !p.peekIsIdent() {
			return n, nil
		}
		//
		p.index++
	}
}

// peekIsIdent checks whether the token after the current one is an
// identifier, distinguishing the name-dot from elementwise operators.
func (p *parser) peekIsIdent() bool {
	if p.index+1 >= len(p.tokens) {
		return false
	}
	//
	return p.tokens[p.index+1].kind == tokIdent
}

func (p *parser) parseFunctionArguments(call *node) *source.SyntaxError {
	if _, err := p.expect("("); err != nil {
		return err
	}
	//
	if !p.at(")") {
		for {
			if p.isIdent() && p.peekAt("=") {
				named := p.mark(syntax.KindNamedArgument)
				//
				identifier, err := p.expectIdent()
				if err != nil {
					return err
				}
				//
				named.add("identifier", p.leaf(syntax.KindIdent, identifier))
				//
				if _, err := p.expect("="); err != nil {
					return err
				}
				//
				value, err := p.parseExpression()
				if err != nil {
					return err
				}
				//
				named.add("value", value)
				call.add("namedArgument", named)
			} else {
				argument, err := p.parseExpression()
				if err != nil {
					return err
				}
				//
				call.add("argument", argument)
			}
			//
			if !p.accept(",") {
				break
			}
		}
	}
	//
	_, err := p.expect(")")
	//
	return err
}
