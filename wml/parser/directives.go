package parser

import "github.com/nihei9/wml/wml/preprocessor"

// preprocessorLine consumes one '#'-introduced line: a #define/#undef
// block, a #error/#warning line, an #ifver/#ifnver/#ifhave/#ifnhave/
// #ifdef/#ifndef conditional block, or (the catch-all, matching anything
// else including a stray #else/#endif/#comment) a plain ignored line.
// This module tracks macro names and bodies but never expands them or
// evaluates conditionals; content inside an #if block is discarded
// unconditionally and nesting is not supported, matching the simplified
// semantics called for where the source grammar's own behavior is a hack
// around an unconditional jump to the next #else/#endif token.
func (p *parser) preprocessorLine() {
	p.advance() // the '#' itself, already peeked by the caller
	afterHash := p.mark()

	if p.tryDefine(afterHash) {
		return
	}
	if p.tryUndef(afterHash) {
		return
	}
	if p.tryErrorOrWarning(afterHash) {
		return
	}
	if p.tryConditional(afterHash) {
		return
	}
	p.restore(afterHash)
	p.ignoreLine()
}

var conditionalKeywords = []string{"ifver", "ifnver", "ifhave", "ifnhave", "ifdef", "ifndef"}

func (p *parser) tryConditional(afterHash int) bool {
	for _, kw := range conditionalKeywords {
		if p.tryConsumeLiteral(kw) {
			if p.parseConditionalBody() {
				return true
			}
			p.restore(afterHash)
			return false
		}
	}
	return false
}

// parseConditionalBody mirrors pp_if after its keyword has already been
// consumed: required whitespace, a symbol argument, the rest of that line
// ignored, then lines discarded until one starting with "#else" or
// "#endif" (also discarded, ending the block).
func (p *parser) parseConditionalBody() bool {
	if !p.skipWeakOneOrMore() {
		return false
	}
	if _, ok := p.ppSymbol(); !ok {
		return false
	}
	p.ignoreLine()
	for {
		if p.eof() {
			return true
		}
		if p.peek() == '#' && (p.hasLiteralAt(1, "else") || p.hasLiteralAt(1, "endif")) {
			p.ignoreLine()
			return true
		}
		p.ignoreLine()
	}
}

func (p *parser) tryErrorOrWarning(afterHash int) bool {
	if p.tryConsumeLiteral("error") || p.tryConsumeLiteral("warning") {
		p.ignoreLine()
		return true
	}
	return false
}

func (p *parser) tryUndef(afterHash int) bool {
	if !p.tryConsumeLiteral("undef") {
		return false
	}
	if !p.skipWeakOneOrMore() {
		p.restore(afterHash)
		return false
	}
	name, ok := p.ppSymbol()
	if !ok {
		p.restore(afterHash)
		return false
	}
	p.ignoreLine()
	p.pp.Undef(name)
	return true
}

// tryDefine mirrors pp_define: "define", required whitespace, a name,
// zero or more additional whitespace-separated parameters, the rest of
// the declaration line ignored, then raw body lines collected until one
// exactly starting with "#enddef".
func (p *parser) tryDefine(afterHash int) bool {
	if !p.tryConsumeLiteral("define") {
		return false
	}
	if !p.skipWeakOneOrMore() {
		p.restore(afterHash)
		return false
	}
	name, ok := p.ppSymbol()
	if !ok {
		p.restore(afterHash)
		return false
	}
	var params []string
	for {
		m := p.mark()
		if !p.skipWeakOneOrMore() {
			p.restore(m)
			break
		}
		sym, ok := p.ppSymbol()
		if !ok {
			p.restore(m)
			break
		}
		params = append(params, sym)
	}
	p.ignoreLine()
	defCursor := preprocessor.Cursor{File: p.filename, Line: p.currentLine()}
	bodyStart := p.pos
	for {
		if p.eof() {
			p.fail(errExpectedDefineBody(name))
		}
		lineStart := p.pos
		if p.peek() == '#' && p.hasLiteralAt(1, "enddef") {
			body := string(p.buf[bodyStart:lineStart])
			p.advance()
			p.tryConsumeLiteral("enddef")
			p.ignoreLine()
			p.pp.Define(&preprocessor.MacroDef{
				Name:       name,
				Parameters: params,
				Body:       body,
				Cursor:     defCursor,
			})
			return true
		}
		p.ignoreLine()
	}
}
