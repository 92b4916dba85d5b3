/*
File    : oxymix/parser/parser_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/oxymix/lexer"

// parseClassDefinition parses:
//
//	class NAME { public { attributes } public { methods } }
//
// Two sequential `public { ... }` sections: the first holds zero or
// more `field: TYPE` attribute entries, the second (optional) holds
// zero or more `fn NAME ( params ) { block }` method entries. Both are
// folded into the class's ordered member mapping; a name collision
// overwrites the earlier entry.
func (p *Parser) parseClassDefinition() Statement {
	p.advance() // consume `class`

	nameTok, ok := p.expect(lexer.IDENT, "class name")
	if !ok {
		return nil
	}

	if _, ok := p.expect(lexer.LBRACE, "to open class body"); !ok {
		return nil
	}

	def := NewClassDefinition(nameTok.Literal)

	if !p.parsePublicAttributeSection(def) {
		return nil
	}
	if p.checkTag(lexer.PUBLIC) {
		if !p.parsePublicMethodSection(def) {
			return nil
		}
	}

	if _, ok := p.expect(lexer.RBRACE, "to close class body"); !ok {
		return nil
	}

	return def
}

func (p *Parser) parsePublicAttributeSection(def *ClassDefinition) bool {
	if _, ok := p.expect(lexer.PUBLIC, "to open attribute section"); !ok {
		return false
	}
	if _, ok := p.expect(lexer.LBRACE, "to open attribute section"); !ok {
		return false
	}
	for !p.checkTag(lexer.RBRACE) && !p.isAtEnd() {
		nameTok, ok := p.expect(lexer.IDENT, "attribute name")
		if !ok {
			return false
		}
		if _, ok := p.expect(lexer.COLON, "after attribute name"); !ok {
			return false
		}
		typeTok, ok := p.expect(lexer.TYPE, "as attribute type")
		if !ok {
			return false
		}
		def.Set(ClassMember{
			Name:      nameTok.Literal,
			Attribute: &ClassAttribute{Name: nameTok.Literal, Type: typeTagFromLiteral(typeTok.Literal)},
		})
		p.match(lexer.COMMA)
	}
	_, ok := p.expect(lexer.RBRACE, "to close attribute section")
	return ok
}

func (p *Parser) parsePublicMethodSection(def *ClassDefinition) bool {
	if _, ok := p.expect(lexer.PUBLIC, "to open method section"); !ok {
		return false
	}
	if _, ok := p.expect(lexer.LBRACE, "to open method section"); !ok {
		return false
	}
	for !p.checkTag(lexer.RBRACE) && !p.isAtEnd() {
		stmt := p.parseFunctionDeclaration()
		fn, ok := stmt.(*FunctionDeclaration)
		if !ok {
			return false
		}
		def.Set(ClassMember{Name: fn.Name, Method: fn})
	}
	_, ok := p.expect(lexer.RBRACE, "to close method section")
	return ok
}
