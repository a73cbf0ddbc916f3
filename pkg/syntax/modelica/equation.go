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

// branchTerminators end the body of one branch of a structured equation or
// statement.
var branchTerminators = map[string]bool{
	"end": true, "elseif": true, "else": true, "elsewhen": true,
}

// ============================================================================
// Equations
// ============================================================================

func (p *parser) parseEquation() (*node, *source.SyntaxError) {
	switch {
	case p.at("for"):
		return p.parseForEquation()
	case p.at("if"):
		return p.parseBranchedEquation(syntax.KindIfEquation, "if", "elseif")
	case p.at("when"):
		return p.parseBranchedEquation(syntax.KindWhenEquation, "when", "elsewhen")
	case p.at("connect"):
		return p.parseConnectEquation()
	default:
		return p.parseSimpleEquation()
	}
}

func (p *parser) parseSimpleEquation() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindSimpleEquation)
	//
	lhs, err := p.parseSimpleExpression()
	if err != nil {
		return nil, err
	}
	//
	n.add("lhs", lhs)
	//
	if _, err := p.expect("="); err != nil {
		return nil, err
	}
	//
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	n.add("rhs", rhs)
	//
	if description, err := p.parseOptionalDescription(); err != nil {
		return nil, err
	} else if description != nil {
		n.add("description", description)
	}
	//
	return n, nil
}

func (p *parser) parseConnectEquation() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindConnectEquation)
	//
	if _, err := p.expect("connect"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	//
	from, err := p.parseComponentReference()
	if err != nil {
		return nil, err
	}
	//
	n.add("from", from)
	//
	if _, err := p.expect(","); err != nil {
		return nil, err
	}
	//
	to, err := p.parseComponentReference()
	if err != nil {
		return nil, err
	}
	//
	n.add("to", to)
	//
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	//
	if description, err := p.parseOptionalDescription(); err != nil {
		return nil, err
	} else if description != nil {
		n.add("description", description)
	}
	//
	return n, nil
}

func (p *parser) parseForIndices(n *node) *source.SyntaxError {
	for {
		index := p.mark(syntax.KindForIndex)
		//
		identifier, err := p.expectIdent()
		if err != nil {
			return err
		}
		//
		index.add("identifier", p.leaf(syntax.KindIdent, identifier))
		//
		if p.accept("in") {
			expr, err := p.parseExpression()
			if err != nil {
				return err
			}
			//
			index.add("expression", expr)
		}
		//
		n.add("index", index)
		//
		if !p.accept(",") {
			return nil
		}
	}
}

func (p *parser) parseForEquation() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindForEquation)
	//
	if _, err := p.expect("for"); err != nil {
		return nil, err
	}
	//
	if err := p.parseForIndices(n); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("loop"); err != nil {
		return nil, err
	}
	//
	for !p.at("end") {
		equation, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		//
		n.add("body", equation)
		//
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	//
	if _, err := p.expect("end"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("for"); err != nil {
		return nil, err
	}
	//
	return n, nil
}

func (p *parser) parseBranchedEquation(kind string, keyword string, elseKeyword string) (*node, *source.SyntaxError) {
	n := p.mark(kind)
	//
	if _, err := p.expect(keyword); err != nil {
		return nil, err
	}
	//
	for {
		branch := p.mark(syntax.KindEquationBranch)
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
		for !branchTerminators[p.text(p.token())] {
			equation, err := p.parseEquation()
			if err != nil {
				return nil, err
			}
			//
			branch.add("body", equation)
			//
			if _, err := p.expect(";"); err != nil {
				return nil, err
			}
		}
		//
		n.add("branch", branch)
		//
		if !p.accept(elseKeyword) {
			break
		}
	}
	//
	if keyword == "if" && p.accept("else") {
		for !branchTerminators[p.text(p.token())] {
			equation, err := p.parseEquation()
			if err != nil {
				return nil, err
			}
			//
			n.add("else", equation)
			//
			if _, err := p.expect(";"); err != nil {
				return nil, err
			}
		}
	}
	//
	if _, err := p.expect("end"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(keyword); err != nil {
		return nil, err
	}
	//
	return n, nil
}

// ============================================================================
// Statements
// ============================================================================

func (p *parser) parseStatement() (*node, *source.SyntaxError) {
	switch {
	case p.at("for"):
		return p.parseForStatement()
	case p.at("while"):
		return p.parseWhileStatement()
	case p.at("if"):
		return p.parseBranchedStatement(syntax.KindIfStatement, "if", "elseif")
	case p.at("when"):
		return p.parseBranchedStatement(syntax.KindWhenStatement, "when", "elsewhen")
	default:
		return p.parseSimpleStatement()
	}
}

func (p *parser) parseSimpleStatement() (*node, *source.SyntaxError) {
	target, err := p.parseReferenceOrCall()
	if err != nil {
		return nil, err
	}
	//
	if target.Type() == syntax.KindFunctionCall && !p.at(":=") {
		n := newNode(syntax.KindCallStatement, p.file, target.Span())
		n.add("call", target)
		//
		if description, err := p.parseOptionalDescription(); err != nil {
			return nil, err
		} else if description != nil {
			n.add("description", description)
		}
		//
		return n, nil
	}
	//
	n := newNode(syntax.KindAssignmentStatement, p.file, target.Span())
	n.add("target", target)
	//
	if _, err := p.expect(":="); err != nil {
		return nil, err
	}
	//
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	n.add("value", value)
	//
	if description, err := p.parseOptionalDescription(); err != nil {
		return nil, err
	} else if description != nil {
		n.add("description", description)
	}
	//
	return n, nil
}

func (p *parser) parseForStatement() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindForStatement)
	//
	if _, err := p.expect("for"); err != nil {
		return nil, err
	}
	//
	if err := p.parseForIndices(n); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("loop"); err != nil {
		return nil, err
	}
	//
	for !p.at("end") {
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		//
		n.add("body", statement)
		//
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	//
	if _, err := p.expect("end"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("for"); err != nil {
		return nil, err
	}
	//
	return n, nil
}

func (p *parser) parseWhileStatement() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindWhileStatement)
	//
	if _, err := p.expect("while"); err != nil {
		return nil, err
	}
	//
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	n.add("condition", condition)
	//
	if _, err := p.expect("loop"); err != nil {
		return nil, err
	}
	//
	for !p.at("end") {
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		//
		n.add("body", statement)
		//
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	//
	if _, err := p.expect("end"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("while"); err != nil {
		return nil, err
	}
	//
	return n, nil
}

func (p *parser) parseBranchedStatement(kind string, keyword string, elseKeyword string) (*node, *source.SyntaxError) {
	n := p.mark(kind)
	//
	if _, err := p.expect(keyword); err != nil {
		return nil, err
	}
	//
	for {
		branch := p.mark(syntax.KindStatementBranch)
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
		for !branchTerminators[p.text(p.token())] {
			statement, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			//
			branch.add("body", statement)
			//
			if _, err := p.expect(";"); err != nil {
				return nil, err
			}
		}
		//
		n.add("branch", branch)
		//
		if !p.accept(elseKeyword) {
			break
		}
	}
	//
	if keyword == "if" && p.accept("else") {
		for !branchTerminators[p.text(p.token())] {
			statement, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			//
			n.add("else", statement)
			//
			if _, err := p.expect(";"); err != nil {
				return nil, err
			}
		}
	}
	//
	if _, err := p.expect("end"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(keyword); err != nil {
		return nil, err
	}
	//
	return n, nil
}
