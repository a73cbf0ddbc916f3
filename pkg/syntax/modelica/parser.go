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

// Parser implements the syntax collaborator for ".mo" files via recursive
// descent.
type Parser struct{}

// NewParser constructs a Modelica parser.
func NewParser() *Parser {
	return &Parser{}
}

// Register installs this parser in a registry under the ".mo" extension.
func Register(registry *syntax.Registry) {
	registry.Register(".mo", func() syntax.Parser { return NewParser() })
}

// Parse turns a source file into a concrete syntax tree.  The hint is
// ignored; parse buffers grow as needed.
func (p *Parser) Parse(file *source.File, hint uint) (syntax.Tree, error) {
	parser, err := newParser(file)
	if err != nil {
		return nil, err
	}
	//
	root, perr := parser.parseStoredDefinition()
	if perr != nil {
		return nil, &syntax.ParseError{Errors: []source.SyntaxError{*perr}}
	}
	//
	return &tree{root, file}, nil
}

// ParseExpression parses a source file holding a single expression.
func ParseExpression(file *source.File) (syntax.Node, error) {
	parser, err := newParser(file)
	if err != nil {
		return nil, err
	}
	//
	expr, perr := parser.parseExpression()
	//
	if perr == nil && parser.token().kind != tokEOF {
		perr = parser.errorHere("expected end of expression")
	}
	//
	if perr != nil {
		return nil, &syntax.ParseError{Errors: []source.SyntaxError{*perr}}
	}
	//
	return expr, nil
}

// classKinds contains every keyword which can begin a class kind.
var classKinds = map[string]bool{
	"class": true, "model": true, "record": true, "block": true,
	"connector": true, "type": true, "package": true, "function": true,
	"operator": true, "expandable": true,
}

// sectionBoundaries terminate element, equation and statement lists.
var sectionBoundaries = map[string]bool{
	"end": true, "public": true, "protected": true, "equation": true,
	"algorithm": true, "initial": true, "annotation": true,
}

type parser struct {
	file   *source.File
	tokens []token
	index  int
}

func newParser(file *source.File) (*parser, error) {
	tokens, err := newLexer(file).collect()
	if err != nil {
		return nil, &syntax.ParseError{Errors: []source.SyntaxError{*err}}
	}
	//
	return &parser{file, tokens, 0}, nil
}

// ============================================================================
// Token handling
// ============================================================================

func (p *parser) token() token {
	return p.tokens[p.index]
}

func (p *parser) text(t token) string {
	return p.file.Text(t.span)
}

// at checks whether the current token spells the given text.
func (p *parser) at(text string) bool {
	t := p.token()
	return t.kind != tokEOF && p.text(t) == text
}

// peekAt checks whether the token after the current one spells the given
// text.
func (p *parser) peekAt(text string) bool {
	if p.index+1 >= len(p.tokens) {
		return false
	}
	//
	t := p.tokens[p.index+1]
	//
	return t.kind != tokEOF && p.text(t) == text
}

// accept consumes the current token when it spells the given text.
func (p *parser) accept(text string) bool {
	if p.at(text) {
		p.index++
		return true
	}
	//
	return false
}

// expect consumes the current token when it spells the given text, failing
// otherwise.
func (p *parser) expect(text string) (token, *source.SyntaxError) {
	t := p.token()
	//
	if t.kind == tokEOF || p.text(t) != text {
		return token{}, p.errorHere("expected \"" + text + "\"")
	}
	//
	p.index++
	//
	return t, nil
}

func (p *parser) expectIdent() (token, *source.SyntaxError) {
	t := p.token()
	//
	if t.kind != tokIdent {
		return token{}, p.errorHere("expected identifier")
	}
	//
	p.index++
	//
	return t, nil
}

func (p *parser) errorHere(msg string) *source.SyntaxError {
	return p.file.SyntaxError(p.token().span, msg)
}

// leaf constructs a token node of the given kind.
func (p *parser) leaf(kind string, t token) *node {
	return newNode(kind, p.file, t.span)
}

// mark returns a fresh node anchored at the current token.
func (p *parser) mark(kind string) *node {
	span := p.token().span
	return newNode(kind, p.file, source.NewSpan(span.Start(), span.Start()))
}

// isIdent checks whether the current token is an identifier.
func (p *parser) isIdent() bool {
	return p.token().kind == tokIdent
}

// ============================================================================
// Stored definition
// ============================================================================

func (p *parser) parseStoredDefinition() (*node, *source.SyntaxError) {
	root := p.mark(syntax.KindStoredDefinition)
	//
	if p.accept("within") {
		if !p.at(";") {
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			//
			root.add("within", name)
		}
		//
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	//
	for p.token().kind != tokEOF {
		class, err := p.parseClassDefinition()
		if err != nil {
			return nil, err
		}
		//
		root.add("class", class)
		//
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	//
	return root, nil
}

// classPrefixNames are the boolean prefixes shared by class definitions and
// component clauses.
var classPrefixNames = []string{
	"final", "encapsulated", "partial", "inner", "outer", "redeclare", "replaceable",
}

func (p *parser) parsePrefixes(n *node) {
	for {
		progressed := false
		//
		for _, prefix := range classPrefixNames {
			if p.at(prefix) {
				n.add(prefix, p.leaf(syntax.KindToken, p.token()))
				p.index++
				progressed = true
			}
		}
		//
		if !progressed {
			return
		}
	}
}

func (p *parser) parseClassDefinition() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindClassDefinition)
	p.parsePrefixes(n)
	//
	if p.at("pure") || p.at("impure") {
		n.add("purity", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	if err := p.parseClassKind(n); err != nil {
		return nil, err
	}
	//
	specifier, err := p.parseClassSpecifier()
	if err != nil {
		return nil, err
	}
	//
	n.add("specifier", specifier)
	//
	if p.at("constrainedby") {
		constraint, err := p.parseConstrainingClause()
		if err != nil {
			return nil, err
		}
		//
		n.add("constraint", constraint)
	}
	//
	return n, nil
}

func (p *parser) parseClassKind(n *node) *source.SyntaxError {
	t := p.token()
	//
	if t.kind != tokIdent || !classKinds[p.text(t)] {
		return p.errorHere("expected class kind")
	}
	//
	p.index++
	//
	kind := p.leaf(syntax.KindToken, t)
	//
	switch p.text(t) {
	case "operator":
		if p.at("record") || p.at("function") {
			second := p.token()
			p.index++
			kind = newNode(syntax.KindToken, p.file, t.span.Join(second.span))
			kind.literal = "operator " + p.text(second)
		}
	case "expandable":
		second, err := p.expect("connector")
		if err != nil {
			return err
		}
		//
		kind = newNode(syntax.KindToken, p.file, t.span.Join(second.span))
		kind.literal = "expandable connector"
	}
	//
	n.add("kind", kind)
	//
	return nil
}

func (p *parser) parseConstrainingClause() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindConstrainingClause)
	//
	if _, err := p.expect("constrainedby"); err != nil {
		return nil, err
	}
	//
	ts, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	//
	n.add("typeSpecifier", ts)
	//
	if p.at("(") {
		modification, err := p.parseClassModification()
		if err != nil {
			return nil, err
		}
		//
		n.add("classModification", modification)
	}
	//
	return n, nil
}

// ============================================================================
// Class specifiers
// ============================================================================

func (p *parser) parseClassSpecifier() (*node, *source.SyntaxError) {
	extends := false
	//
	if p.at("extends") {
		// The "class extends X" redeclaration form.
		extends = true
		p.index++
	}
	//
	identifier, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	//
	if p.at("=") {
		return p.parseShortClassSpecifier(identifier)
	}
	//
	return p.parseLongClassSpecifier(identifier, extends)
}

func (p *parser) parseLongClassSpecifier(identifier token, extends bool) (*node, *source.SyntaxError) {
	n := newNode(syntax.KindLongClassSpecifier, p.file, identifier.span)
	n.add("identifier", p.leaf(syntax.KindIdent, identifier))
	//
	if extends {
		n.add("extends", p.leaf(syntax.KindToken, identifier))
	}
	//
	// Only strings form the class description; an annotation here is the
	// class annotation, which parseSections collects.
	if p.token().kind == tokString {
		description := p.mark(syntax.KindDescription)
		for p.token().kind == tokString {
			description.add("text", p.leaf(syntax.KindString, p.token()))
			p.index++
			if !p.accept("+") {
				break
			}
		}
		n.add("description", description)
	}
	//
	if err := p.parseSections(n); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("end"); err != nil {
		return nil, err
	}
	//
	endIdentifier, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	//
	n.add("endIdentifier", p.leaf(syntax.KindIdent, endIdentifier))
	//
	return n, nil
}

func (p *parser) parseShortClassSpecifier(identifier token) (*node, *source.SyntaxError) {
	if _, err := p.expect("="); err != nil {
		return nil, err
	}
	//
	if p.at("enumeration") {
		return p.parseEnumerationClassSpecifier(identifier)
	}
	//
	if p.at("der") && p.peekAt("(") {
		return p.parseDerClassSpecifier(identifier)
	}
	//
	n := newNode(syntax.KindShortClassSpecifier, p.file, identifier.span)
	n.add("identifier", p.leaf(syntax.KindIdent, identifier))
	//
	if p.at("input") || p.at("output") {
		n.add(p.text(p.token()), p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	ts, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	//
	n.add("typeSpecifier", ts)
	//
	if err := p.parseOptionalSubscripts(n); err != nil {
		return nil, err
	}
	//
	if p.at("(") {
		modification, err := p.parseClassModification()
		if err != nil {
			return nil, err
		}
		//
		n.add("classModification", modification)
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

func (p *parser) parseEnumerationClassSpecifier(identifier token) (*node, *source.SyntaxError) {
	n := newNode(syntax.KindEnumerationClassSpecifier, p.file, identifier.span)
	n.add("identifier", p.leaf(syntax.KindIdent, identifier))
	//
	if _, err := p.expect("enumeration"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	//
	for !p.at(")") {
		literal := p.mark(syntax.KindEnumerationLiteral)
		//
		id, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		//
		literal.add("identifier", p.leaf(syntax.KindIdent, id))
		//
		if description, err := p.parseOptionalDescription(); err != nil {
			return nil, err
		} else if description != nil {
			literal.add("description", description)
		}
		//
		n.add("literal", literal)
		//
		if !p.accept(",") {
			break
		}
	}
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

func (p *parser) parseDerClassSpecifier(identifier token) (*node, *source.SyntaxError) {
	n := newNode(syntax.KindDerClassSpecifier, p.file, identifier.span)
	n.add("identifier", p.leaf(syntax.KindIdent, identifier))
	//
	if _, err := p.expect("der"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	//
	ts, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	//
	n.add("typeSpecifier", ts)
	//
	for p.accept(",") {
		arg, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		//
		n.add("argument", p.leaf(syntax.KindIdent, arg))
	}
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

// ============================================================================
// Sections
// ============================================================================

func (p *parser) parseSections(specifier *node) *source.SyntaxError {
	// Leading element section with implicit public visibility.
	if err := p.parseElementSection(specifier, token{}, false); err != nil {
		return err
	}
	//
	for {
		switch {
		case p.at("public"), p.at("protected"):
			visibility := p.token()
			p.index++
			//
			if err := p.parseElementSection(specifier, visibility, true); err != nil {
				return err
			}
		case p.at("equation"):
			p.index++
			//
			if err := p.parseEquationSection(specifier, false); err != nil {
				return err
			}
		case p.at("algorithm"):
			p.index++
			//
			if err := p.parseAlgorithmSection(specifier, false); err != nil {
				return err
			}
		case p.at("initial"):
			p.index++
			//
			switch {
			case p.accept("equation"):
				if err := p.parseEquationSection(specifier, true); err != nil {
					return err
				}
			case p.accept("algorithm"):
				if err := p.parseAlgorithmSection(specifier, true); err != nil {
					return err
				}
			default:
				return p.errorHere("expected \"equation\" or \"algorithm\"")
			}
		case p.at("annotation"):
			annotation, err := p.parseAnnotation()
			if err != nil {
				return err
			}
			//
			specifier.add("annotation", annotation)
			//
			if _, err := p.expect(";"); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (p *parser) parseElementSection(specifier *node, visibility token, explicit bool) *source.SyntaxError {
	n := p.mark(syntax.KindElementSection)
	//
	if explicit {
		n.add("visibility", p.leaf(syntax.KindToken, visibility))
	}
	//
	count := 0
	//
	for p.token().kind != tokEOF && !sectionBoundaries[p.text(p.token())] {
		element, err := p.parseElement()
		if err != nil {
			return err
		}
		//
		n.add("element", element)
		count++
		//
		if _, err := p.expect(";"); err != nil {
			return err
		}
	}
	// An implicit leading section is only recorded when non-empty.
	if explicit || count > 0 {
		specifier.add("section", n)
	}
	//
	return nil
}

func (p *parser) parseEquationSection(specifier *node, initial bool) *source.SyntaxError {
	n := p.mark(syntax.KindEquationSection)
	//
	if initial {
		n.add("initial", p.leaf(syntax.KindToken, p.tokens[p.index-1]))
	}
	//
	for p.token().kind != tokEOF && !sectionBoundaries[p.text(p.token())] {
		equation, err := p.parseEquation()
		if err != nil {
			return err
		}
		//
		n.add("equation", equation)
		//
		if _, err := p.expect(";"); err != nil {
			return err
		}
	}
	//
	specifier.add("section", n)
	//
	return nil
}

func (p *parser) parseAlgorithmSection(specifier *node, initial bool) *source.SyntaxError {
	n := p.mark(syntax.KindAlgorithmSection)
	//
	if initial {
		n.add("initial", p.leaf(syntax.KindToken, p.tokens[p.index-1]))
	}
	//
	for p.token().kind != tokEOF && !sectionBoundaries[p.text(p.token())] {
		statement, err := p.parseStatement()
		if err != nil {
			return err
		}
		//
		n.add("statement", statement)
		//
		if _, err := p.expect(";"); err != nil {
			return err
		}
	}
	//
	specifier.add("section", n)
	//
	return nil
}

// ============================================================================
// Elements
// ============================================================================

func (p *parser) parseElement() (*node, *source.SyntaxError) {
	switch {
	case p.at("import"):
		return p.parseImportClause()
	case p.at("extends"):
		return p.parseExtendsClause()
	default:
		return p.parseClassOrComponent()
	}
}

func (p *parser) parseClassOrComponent() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindComponentClause)
	p.parsePrefixes(n)
	//
	t := p.token()
	//
	if t.kind == tokIdent && (classKinds[p.text(t)] || p.text(t) == "pure" || p.text(t) == "impure") {
		// A class definition; rebrand the node and continue there.
		n.kind = syntax.KindClassDefinition
		//
		if p.at("pure") || p.at("impure") {
			n.add("purity", p.leaf(syntax.KindToken, p.token()))
			p.index++
		}
		//
		if err := p.parseClassKind(n); err != nil {
			return nil, err
		}
		//
		specifier, err := p.parseClassSpecifier()
		if err != nil {
			return nil, err
		}
		//
		n.add("specifier", specifier)
		//
		if p.at("constrainedby") {
			constraint, err := p.parseConstrainingClause()
			if err != nil {
				return nil, err
			}
			//
			n.add("constraint", constraint)
		}
		//
		return n, nil
	}
	//
	return p.parseComponentClause(n)
}

func (p *parser) parseComponentClause(n *node) (*node, *source.SyntaxError) {
	if p.at("flow") || p.at("stream") {
		n.add("flow", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	if p.at("discrete") || p.at("parameter") || p.at("constant") {
		n.add("variability", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	if p.at("input") || p.at("output") {
		n.add("causality", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	ts, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	//
	n.add("typeSpecifier", ts)
	//
	if err := p.parseOptionalSubscripts(n); err != nil {
		return nil, err
	}
	//
	for {
		declaration, err := p.parseComponentDeclaration()
		if err != nil {
			return nil, err
		}
		//
		n.add("declaration", declaration)
		//
		if !p.accept(",") {
			return n, nil
		}
	}
}

func (p *parser) parseComponentDeclaration() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindComponentDeclaration)
	//
	identifier, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	//
	n.add("identifier", p.leaf(syntax.KindIdent, identifier))
	//
	if err := p.parseOptionalSubscripts(n); err != nil {
		return nil, err
	}
	//
	if p.at("(") || p.at("=") || p.at(":=") {
		modification, err := p.parseModification()
		if err != nil {
			return nil, err
		}
		//
		n.add("modification", modification)
	}
	//
	if p.accept("if") {
		condition, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		n.add("condition", condition)
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

func (p *parser) parseExtendsClause() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindExtendsClause)
	//
	if _, err := p.expect("extends"); err != nil {
		return nil, err
	}
	//
	ts, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}
	//
	n.add("typeSpecifier", ts)
	//
	if p.at("(") {
		modification, err := p.parseClassModification()
		if err != nil {
			return nil, err
		}
		//
		n.add("classModification", modification)
	}
	//
	if p.at("annotation") {
		annotation, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		//
		n.add("annotation", annotation)
	}
	//
	return n, nil
}

func (p *parser) parseImportClause() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindImportClause)
	//
	if _, err := p.expect("import"); err != nil {
		return nil, err
	}
	//
	first, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	//
	if p.accept("=") {
		// Renaming import.
		n.add("shortName", p.leaf(syntax.KindIdent, first))
		//
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		//
		n.add("name", name)
	} else {
		name := newNode(syntax.KindName, p.file, first.span)
		name.add("part", p.leaf(syntax.KindIdent, first))
		//
		for p.accept(".") {
			switch {
			case p.at("*"):
				n.add("wildcard", p.leaf(syntax.KindToken, p.token()))
				p.index++
			case p.accept("{"):
				for {
					imported, err := p.expectIdent()
					if err != nil {
						return nil, err
					}
					//
					n.add("import", p.leaf(syntax.KindIdent, imported))
					//
					if !p.accept(",") {
						break
					}
				}
				//
				if _, err := p.expect("}"); err != nil {
					return nil, err
				}
			default:
				part, err := p.expectIdent()
				if err != nil {
					return nil, err
				}
				//
				name.add("part", p.leaf(syntax.KindIdent, part))
				continue
			}
			//
			break
		}
		// The lexer reads ".*" as a single token.
		if p.at(".*") {
			n.add("wildcard", p.leaf(syntax.KindToken, p.token()))
			p.index++
		}
		//
		n.add("name", name)
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

// ============================================================================
// Modifications
// ============================================================================

func (p *parser) parseModification() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindModification)
	//
	if p.at("(") {
		modification, err := p.parseClassModification()
		if err != nil {
			return nil, err
		}
		//
		n.add("classModification", modification)
	}
	//
	if p.at("=") || p.at(":=") {
		if p.at(":=") {
			n.add("assign", p.leaf(syntax.KindToken, p.token()))
		}
		//
		p.index++
		//
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		n.add("expression", expr)
	}
	//
	return n, nil
}

func (p *parser) parseClassModification() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindClassModification)
	//
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	//
	if !p.at(")") {
		for {
			argument, err := p.parseModificationArgument()
			if err != nil {
				return nil, err
			}
			//
			n.add("argument", argument)
			//
			if !p.accept(",") {
				break
			}
		}
	}
	//
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	//
	return n, nil
}

func (p *parser) parseModificationArgument() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindElementModification)
	//
	if p.at("each") {
		n.add("each", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	if p.at("final") {
		n.add("final", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	if p.at("redeclare") || p.at("replaceable") {
		n.kind = syntax.KindElementRedeclaration
		//
		element, err := p.parseClassOrComponent()
		if err != nil {
			return nil, err
		}
		//
		n.add("element", element)
		//
		return n, nil
	}
	//
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	//
	n.add("name", name)
	//
	if p.at("(") {
		modification, err := p.parseClassModification()
		if err != nil {
			return nil, err
		}
		//
		n.add("classModification", modification)
	}
	//
	if p.at("=") || p.at(":=") {
		if p.at(":=") {
			n.add("assign", p.leaf(syntax.KindToken, p.token()))
		}
		//
		p.index++
		//
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		n.add("expression", expr)
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

func (p *parser) parseAnnotation() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindAnnotationClause)
	//
	if _, err := p.expect("annotation"); err != nil {
		return nil, err
	}
	//
	modification, err := p.parseClassModification()
	if err != nil {
		return nil, err
	}
	//
	n.add("classModification", modification)
	//
	return n, nil
}

func (p *parser) parseOptionalDescription() (*node, *source.SyntaxError) {
	if p.token().kind != tokString && !p.at("annotation") {
		return nil, nil
	}
	//
	n := p.mark(syntax.KindDescription)
	//
	for p.token().kind == tokString {
		n.add("text", p.leaf(syntax.KindString, p.token()))
		p.index++
		//
		if !p.accept("+") {
			break
		}
	}
	//
	if p.at("annotation") {
		annotation, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		//
		n.add("annotation", annotation)
	}
	//
	return n, nil
}

// ============================================================================
// Names, type specifiers, subscripts
// ============================================================================

func (p *parser) parseName() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindName)
	//
	for {
		part, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		//
		n.add("part", p.leaf(syntax.KindIdent, part))
		//
		if !p.accept(".") {
			return n, nil
		}
	}
}

func (p *parser) parseTypeSpecifier() (*node, *source.SyntaxError) {
	n := p.mark(syntax.KindTypeSpecifier)
	//
	if p.at(".") {
		n.add("global", p.leaf(syntax.KindToken, p.token()))
		p.index++
	}
	//
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	//
	n.add("name", name)
	//
	return n, nil
}

func (p *parser) parseOptionalSubscripts(n *node) *source.SyntaxError {
	if !p.accept("[") {
		return nil
	}
	//
	for {
		subscript := p.mark(syntax.KindSubscript)
		//
		if p.at(":") {
			subscript.add("flexible", p.leaf(syntax.KindToken, p.token()))
			p.index++
		} else {
			expr, err := p.parseExpression()
			if err != nil {
				return err
			}
			//
			subscript.add("expression", expr)
		}
		//
		n.add("subscript", subscript)
		//
		if !p.accept(",") {
			break
		}
	}
	//
	_, err := p.expect("]")
	//
	return err
}
