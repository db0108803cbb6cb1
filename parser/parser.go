//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements a recursive-descent parser over the grammar:
//
//	start   := seq EOF
//	seq     := command (';' command)*
//	command := INIT '(' n ',' n ',' n ',' n ')'
//	         | TRANSLATION '(' n ',' n ')'
//	         | ROTATION '(' n ',' n ',' n ')'
//	         | ITER '{' seq '}'
//	         | '{' seq? '}' OR '{' seq? '}'
//	n       := ('-')? DIGIT+
//
// Every command it produces is tracked by an ast.Context owned by the
// Parser, so node identity is stable across a Parser's lifetime.
package parser

import (
	"fmt"

	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/diagnostic"
	"github.com/turtlewalk/turtlewalk/lexer"
)

// Parser consumes a token stream and produces ast.Node values. It is
// reentrant: calling Parse again after Feed appends more tokens continues
// parsing from where the previous call left off, reusing the same
// ast.Context so earlier nodes remain valid.
type Parser struct {
	ctx     *ast.Context
	diag    diagnostic.Sink
	tokens  []lexer.Token
	current int
}

// New creates a Parser over an initial token stream. diag receives every
// syntax error encountered.
func New(diag diagnostic.Sink, tokens []lexer.Token) *Parser {
	return &Parser{ctx: ast.NewContext(), diag: diag, tokens: tokens}
}

// Feed appends tokens to the stream still to be parsed. Any EOF sentinel
// left over from the previous token batch is dropped first, since it
// marked the end of that batch rather than the end of the program.
func (p *Parser) Feed(tokens []lexer.Token) {
	if n := len(p.tokens); n > 0 && p.tokens[n-1].Kind == lexer.EOF {
		p.tokens = p.tokens[:n-1]
	}
	p.tokens = append(p.tokens, tokens...)
}

// Context returns the arena owning every node this Parser has produced.
func (p *Parser) Context() *ast.Context {
	return p.ctx
}

// Parse consumes the full remaining token stream and returns the program's
// root Sequence. The root's first command must be an Init. On any syntax
// error, Parse reports it to diag and returns (nil, false).
func (p *Parser) Parse() (*ast.Sequence, bool) {
	root, ok := p.sequence(true)
	if !ok {
		return nil, false
	}
	if !p.isAtEnd() {
		p.error(p.peek(), "end of file expected.")
		return nil, false
	}
	return root, true
}

func (p *Parser) sequence(root bool) (*ast.Sequence, bool) {
	if root && !p.check(lexer.Init) {
		p.error(p.peek(), "'init' expected at the beginning of the program.")
		return nil, false
	}

	var commands []ast.Node
	for {
		com, ok := p.command()
		if !ok {
			return nil, false
		}
		commands = append(commands, com)
		if !p.match(lexer.Semicolon) {
			break
		}
	}

	line := 0
	if len(commands) > 0 {
		line = commands[0].Line()
	}
	return p.ctx.NewSequence(line, commands), true
}

func (p *Parser) command() (ast.Node, bool) {
	switch {
	case p.match(lexer.Init):
		kw := p.previous()
		if _, ok := p.consume(lexer.LeftParen, "a '(' expected."); !ok {
			return nil, false
		}
		topX, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.Comma, "a ',' expected."); !ok {
			return nil, false
		}
		topY, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.Comma, "a ',' expected."); !ok {
			return nil, false
		}
		width, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.Comma, "a ',' expected."); !ok {
			return nil, false
		}
		height, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.RightParen, "a ')' expected."); !ok {
			return nil, false
		}

		if width < 0 {
			p.error(kw, "the width of the initial area cannot be negative.")
			return nil, false
		}
		if height < 0 {
			p.error(kw, "the height of the initial area cannot be negative.")
			return nil, false
		}

		return p.ctx.NewInit(kw.Line, topX, topY, width, height), true

	case p.match(lexer.Translation):
		kw := p.previous()
		if _, ok := p.consume(lexer.LeftParen, "a '(' expected."); !ok {
			return nil, false
		}
		dx, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.Comma, "a ',' expected."); !ok {
			return nil, false
		}
		dy, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.RightParen, "a ')' expected."); !ok {
			return nil, false
		}

		return p.ctx.NewTranslation(kw.Line, dx, dy), true

	case p.match(lexer.Rotation):
		kw := p.previous()
		if _, ok := p.consume(lexer.LeftParen, "a '(' expected."); !ok {
			return nil, false
		}
		ox, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.Comma, "a ',' expected."); !ok {
			return nil, false
		}
		oy, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.Comma, "a ',' expected."); !ok {
			return nil, false
		}
		deg, ok := p.consumeNumber()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(lexer.RightParen, "a ')' expected."); !ok {
			return nil, false
		}

		return p.ctx.NewRotation(kw.Line, ox, oy, deg), true

	case p.match(lexer.Iter):
		return p.loop()

	case p.match(lexer.LeftBrace):
		return p.branch()
	}

	if p.isAtEnd() || p.check(lexer.RightBrace) {
		p.error(p.peek(), "redundant semicolon?")
	} else {
		p.error(p.peek(), "a command expected.")
	}
	return nil, false
}

func (p *Parser) branch() (ast.Node, bool) {
	kw := p.previous()

	var lhs *ast.Sequence
	if p.check(lexer.RightBrace) {
		lhs = p.ctx.NewSequence(kw.Line, nil)
	} else {
		var ok bool
		lhs, ok = p.sequence(false)
		if !ok {
			return nil, false
		}
	}

	if _, ok := p.consume(lexer.RightBrace, "a '}' expected."); !ok {
		return nil, false
	}
	orTok, ok := p.consume(lexer.Or, "'or' expected.")
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.LeftBrace, "a '{' expected."); !ok {
		return nil, false
	}

	var rhs *ast.Sequence
	if p.check(lexer.RightBrace) {
		rhs = p.ctx.NewSequence(orTok.Line, nil)
	} else {
		rhs, ok = p.sequence(false)
		if !ok {
			return nil, false
		}
	}

	if _, ok := p.consume(lexer.RightBrace, "a '}' expected."); !ok {
		return nil, false
	}

	if len(lhs.Nodes) == 0 && len(rhs.Nodes) == 0 {
		p.error(orTok, "at most one alternative can be empty.")
		return nil, false
	}

	return p.ctx.NewBranch(kw.Line, lhs, rhs), true
}

func (p *Parser) loop() (ast.Node, bool) {
	kw := p.previous()
	if _, ok := p.consume(lexer.LeftBrace, "a '{' expected."); !ok {
		return nil, false
	}

	if p.match(lexer.RightBrace) {
		p.error(kw, "the body of 'iter' must not be empty.")
		return nil, false
	}

	body, ok := p.sequence(false)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.RightBrace, "a '}' expected."); !ok {
		return nil, false
	}

	return p.ctx.NewLoop(kw.Line, body), true
}

func (p *Parser) consumeNumber() (int, bool) {
	tok, ok := p.consume(lexer.Number, "a number expected.")
	if !ok {
		return 0, false
	}
	return tok.Value, true
}

func (p *Parser) error(t lexer.Token, message string) {
	if t.Kind == lexer.EOF {
		p.diag.Report(t.Line, "at end of file", message)
	} else {
		p.diag.Report(t.Line, fmt.Sprintf("at '%s'", t.String()), message)
	}
}

func (p *Parser) peek() lexer.Token     { return p.tokens[p.current] }
func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) consume(kind lexer.Kind, message string) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.error(p.peek(), message)
	return lexer.Token{}, false
}
