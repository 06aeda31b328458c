package parser

import "github.com/nihei9/wml/wml"

// This file implements the grammar's lexical-level rules: the ones that
// consume raw bytes and never recurse into node/config. Each follows the
// same shape as the structural rules in grammar.go: try to match at the
// current position, and on failure restore the scanner to where the
// attempt began.

func (p *parser) skipWeak() {
	for isWeak(p.peek()) {
		p.advance()
	}
}

func (p *parser) skipWeakOneOrMore() bool {
	if !isWeak(p.peek()) {
		return false
	}
	p.skipWeak()
	return true
}

func (p *parser) skipAll() {
	for {
		c := p.peek()
		if isWeak(c) || c == '\n' {
			p.advance()
			continue
		}
		break
	}
}

// skipToEOL mirrors ws_skip_to_eol: optional trailing whitespace then an
// optional newline. It never fails.
func (p *parser) skipToEOL() {
	p.skipWeak()
	if p.peek() == '\n' {
		p.advance()
	}
}

// consumeToEOL mirrors ws_consume_to_eol: trailing whitespace followed by
// either a lookahead '#' (left unconsumed, so the next directive line is
// seen fresh) or an actual newline. End of input is tolerated too, since a
// document is expected to carry a trailing newline already.
func (p *parser) consumeToEOL() bool {
	p.skipWeak()
	if p.peek() == '#' {
		return true
	}
	if p.peek() == '\n' {
		p.advance()
		return true
	}
	return p.eof()
}

// ignoreLine consumes through and including the next newline, or to end of
// input if none remains. Used for preprocessor directive lines whose
// content this module does not interpret further.
func (p *parser) ignoreLine() {
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}
	if !p.eof() {
		p.advance()
	}
}

func (p *parser) key() (string, bool) {
	start := p.pos
	if !isKeyStart(p.peek()) {
		return "", false
	}
	p.advance()
	for isKeyCont(p.peek()) {
		p.advance()
	}
	return string(p.buf[start:p.pos]), true
}

// ppSymbol mirrors pp_symbol: one or more characters excluding braces,
// whitespace and newline. Used for macro names, parameters and the
// argument to #ifdef/#ifver and friends.
func (p *parser) ppSymbol() (string, bool) {
	start := p.pos
	for {
		c := p.peek()
		if c == 0 || c == '{' || c == '}' || c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			break
		}
		p.advance()
	}
	if p.pos == start {
		return "", false
	}
	return string(p.buf[start:p.pos]), true
}

func (p *parser) doubleQuotedString() (string, bool) {
	start := p.mark()
	if !p.tryConsumeByte('"') {
		p.restore(start)
		return "", false
	}
	contentStart := p.pos
	for {
		if p.eof() {
			p.fail(errUnterminatedString)
		}
		if p.peek() == '"' {
			break
		}
		p.advance()
	}
	content := string(p.buf[contentStart:p.pos])
	p.advance()
	return content, true
}

func (p *parser) angleQuotedString() (string, bool) {
	start := p.mark()
	if !p.tryConsumeLiteral("<<") {
		p.restore(start)
		return "", false
	}
	contentStart := p.pos
	for {
		if p.eof() {
			p.fail(errUnterminatedAngle)
		}
		if p.peek() == '>' && p.peekAt(1) == '>' {
			break
		}
		p.advance()
	}
	content := string(p.buf[contentStart:p.pos])
	p.advance()
	p.advance()
	return content, true
}

// noQuotesNoEndlString mirrors no_quotes_no_endl_string: one or more
// characters excluding '{', '"', '#', newline, and never starting "<<".
func (p *parser) noQuotesNoEndlString() (string, bool) {
	start := p.pos
	for {
		c := p.peek()
		if c == 0 && p.eof() {
			break
		}
		if c == '{' || c == '"' || c == '#' || c == '\n' {
			break
		}
		if c == '<' && p.peekAt(1) == '<' {
			break
		}
		p.advance()
	}
	if p.pos == start {
		return "", false
	}
	return string(p.buf[start:p.pos]), true
}

// noCommaNoQuotesNoEndlString additionally excludes ','; used for the
// values of a comma-separated multi-assignment (pairlist).
func (p *parser) noCommaNoQuotesNoEndlString() (string, bool) {
	start := p.pos
	for {
		c := p.peek()
		if c == 0 && p.eof() {
			break
		}
		if c == '{' || c == '"' || c == '#' || c == '\n' || c == ',' {
			break
		}
		if c == '<' && p.peekAt(1) == '<' {
			break
		}
		p.advance()
	}
	if p.pos == start {
		return "", false
	}
	return string(p.buf[start:p.pos]), true
}

// macroInstance mirrors pp_macro_instance_str: a brace-balanced span
// starting with '{' whose raw text (outer braces excluded, inner nested
// braces kept verbatim) is preserved without interpretation.
func (p *parser) macroInstance() (*wml.MacroInstance, bool) {
	start := p.mark()
	if !p.tryConsumeByte('{') {
		p.restore(start)
		return nil, false
	}
	pos := p.positionAt(start)
	textStart := p.pos
	depth := 1
	for depth > 0 {
		if p.eof() {
			p.fail(errUnterminatedMacro)
		}
		c := p.advance()
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	text := string(p.buf[textStart : p.pos-1])
	return &wml.MacroInstance{Text: text, Pos: pos}, true
}
