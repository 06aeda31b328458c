// Package parser implements a hand-written, backtracking recursive-descent
// parser for WML documents. There is no lexer stage with its own token
// stream; every rule below reads directly from the byte buffer.
//
// A parse is single-shot: the grammar freely backtracks between
// alternatives, but once it commits to a production (for instance, once a
// tag's opening bracket has matched), a subsequent failure is fatal and
// unwinds the whole call stack via panic/recover to a single
// *wml.ParseError, with no partial AST returned. Unlike a parser that
// accumulates one error per top-level production and resynchronizes past
// it, Parse/ParseDocument return exactly one error, because WML's freely
// nested attributes and tags give no safe resynchronization point the way
// independent top-level productions in a line-oriented grammar would.
package parser

import (
	"io"

	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/preprocessor"
)

type parser struct {
	scanner
	filename string
	pp       *preprocessor.State
}

func (p *parser) positionAt(pos int) wml.Position {
	return wml.Position{File: p.filename, Row: p.lineAt(pos)}
}

func (p *parser) currentPosition() wml.Position {
	return p.positionAt(p.pos)
}

func (p *parser) currentLine() int {
	return p.lineAt(p.pos)
}

// syncPPLine brings the preprocessor cursor's line counter up to date with
// the scanner's current position. Called after every item the config list
// commits to, never inside speculative lookahead, so it never needs to be
// unwound on backtrack.
func (p *parser) syncPPLine() {
	p.pp.SetLine(p.currentLine())
}

// contextSnippet returns a short run of raw input starting at the current
// position, used to give a ParseError's reader something concrete to look
// at.
func (p *parser) contextSnippet() string {
	const maxLen = 80
	end := p.pos + maxLen
	if end > len(p.buf) {
		end = len(p.buf)
	}
	return string(p.buf[p.pos:end])
}

func (p *parser) fail(expected string) {
	panic(&wml.ParseError{
		Pos:          p.currentPosition(),
		ExpectedNode: expected,
		Context:      p.contextSnippet(),
	})
}

func ensureTrailingNewline(src []byte) []byte {
	if len(src) == 0 || src[len(src)-1] != '\n' {
		return append(append([]byte{}, src...), '\n')
	}
	return src
}

func recoverParseError(err *error) {
	if r := recover(); r != nil {
		pe, ok := r.(*wml.ParseError)
		if !ok {
			panic(r)
		}
		*err = pe
	}
}

// Parse reads a single top-level WML tag from src and returns its AST.
// The returned *wml.Body is the tag itself, not a synthetic wrapper — a
// document that starts with anything other than '[' fails to parse.
func Parse(src io.Reader) (*wml.Body, error) {
	return parseTag(src, "")
}

func parseTag(src io.Reader, filename string) (result *wml.Body, err error) {
	raw, readErr := io.ReadAll(src)
	if readErr != nil {
		return nil, readErr
	}
	p := &parser{
		scanner:  scanner{buf: ensureTrailingNewline(raw)},
		filename: filename,
		pp:       preprocessor.NewState(filename),
	}
	defer recoverParseError(&err)

	p.skipAll()
	b, ok := p.body()
	if !ok {
		p.fail(errExpectedTopLevelTag)
	}
	p.syncPPLine()
	p.skipAll()
	if !p.eof() {
		p.fail(errExpectedEndOfInput)
	}
	return b, nil
}

// ParseDocument parses a whole document: a sequence of zero or more
// top-level nodes (tags, pairs, macro invocations, directives) with no
// enclosing tag, wrapped in a synthetic body named "root". This is the
// multi-top-level-tag form, as opposed to Parse's single worked-example
// tag.
func ParseDocument(src io.Reader, filename string) (*wml.Body, error) {
	body, _, err := parseConfig(src, filename)
	return body, err
}

// ParseConfig is ParseDocument under the name this module's schema and
// coerce packages use for the same shape of input (an AST child-list with
// no enclosing tag).
func ParseConfig(src io.Reader, filename string) (*wml.Body, error) {
	body, _, err := parseConfig(src, filename)
	return body, err
}

// ParseConfigWithWarnings is ParseConfig but also returns any non-fatal
// preprocessor notes (macro redefinitions, #undef of an unknown name)
// accumulated along the way. Warnings never affect parse success and are
// reported in the order they occurred.
func ParseConfigWithWarnings(src io.Reader, filename string) (*wml.Body, []string, error) {
	return parseConfig(src, filename)
}

func parseConfig(src io.Reader, filename string) (result *wml.Body, warnings []string, err error) {
	raw, readErr := io.ReadAll(src)
	if readErr != nil {
		return nil, nil, readErr
	}
	p := &parser{
		scanner:  scanner{buf: ensureTrailingNewline(raw)},
		filename: filename,
		pp:       preprocessor.NewState(filename),
	}
	defer recoverParseError(&err)

	children := p.configList()
	p.syncPPLine()
	p.skipAll()
	if !p.eof() {
		p.fail(errExpectedEndOfInput)
	}
	body := &wml.Body{Name: "root", Children: children, Pos: wml.Position{File: filename, Row: 1}}
	return body, p.pp.Warnings(), nil
}
