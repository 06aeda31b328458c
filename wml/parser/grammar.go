package parser

import "github.com/nihei9/wml/wml"

// This file implements the structural grammar rules: values, pairs,
// tags, bodies and the node list that makes up a tag's content. Order of
// alternatives matters and is kept the same as the grammar it is grounded
// on: a bare key=value pair is always tried before falling back to a
// comma-separated multi-assignment, so "x=1,2" parses as one pair whose
// value is the literal string "1,2", while "x,y=1,2" (a key list) falls
// through to the multi-assignment form.

// quotedTerm mirrors one element of quoted_value's '+'-separated list: an
// optional whitespace-surrounded translatable marker '_' in front of a
// macro invocation or a quoted string.
func (p *parser) quotedTerm() (wml.Str, bool) {
	start := p.mark()
	p.skipWeak()
	p.tryConsumeByte('_')
	p.skipWeak()
	if m, ok := p.macroInstance(); ok {
		return wml.Str{{Macro: m}}, true
	}
	if s, ok := p.angleQuotedString(); ok {
		return wml.Str{{Literal: s}}, true
	}
	if s, ok := p.doubleQuotedString(); ok {
		return wml.Str{{Literal: s}}, true
	}
	p.restore(start)
	return nil, false
}

// quotedValue mirrors quoted_value: a '+'-separated list of quotedTerms.
// The '+' itself is optional, matching the grammar's actual behavior
// (surrounding whitespace alone is enough to separate two terms).
func (p *parser) quotedValue() (wml.Str, bool) {
	start := p.mark()
	first, ok := p.quotedTerm()
	if !ok {
		p.restore(start)
		return nil, false
	}
	result := append(wml.Str{}, first...)
	for {
		m := p.mark()
		p.skipAll()
		p.tryConsumeByte('+')
		p.skipAll()
		term, ok := p.quotedTerm()
		if !ok {
			p.restore(m)
			break
		}
		result = append(result, term...)
	}
	return result, true
}

// unquotedValue mirrors unquoted_value: optional leading whitespace
// followed by a run of macro invocations and/or unquoted text fragments.
// It always succeeds, possibly with an empty result.
func (p *parser) unquotedValue() wml.Str {
	p.skipWeak()
	var result wml.Str
	for {
		if m, ok := p.macroInstance(); ok {
			result = append(result, wml.TextVariant{Macro: m})
			continue
		}
		if s, ok := p.noQuotesNoEndlString(); ok {
			result = append(result, wml.TextVariant{Literal: s})
			continue
		}
		break
	}
	return result
}

// value mirrors the `value` rule: try the quoted form first, falling back
// to the always-succeeding unquoted form, each followed by consumeToEOL.
func (p *parser) value() (wml.Str, bool) {
	start := p.mark()
	if v, ok := p.quotedValue(); ok {
		if p.consumeToEOL() {
			return v, true
		}
		p.restore(start)
	}
	v := p.unquotedValue()
	if p.consumeToEOL() {
		return v, true
	}
	p.restore(start)
	return nil, false
}

// pair mirrors the `pair` rule: key '=' value.
func (p *parser) pair() (*wml.Pair, bool) {
	start := p.mark()
	p.skipAll()
	keyPos := p.currentPosition()
	key, ok := p.key()
	if !ok {
		p.restore(start)
		return nil, false
	}
	p.skipWeak()
	if !p.tryConsumeByte('=') {
		p.restore(start)
		return nil, false
	}
	val, ok := p.value()
	if !ok {
		p.restore(start)
		return nil, false
	}
	p.skipToEOL()
	return &wml.Pair{Key: key, Value: val, Pos: keyPos}, true
}

// keylist mirrors `(*ws_weak >> key) % (*ws_weak >> ',')`.
func (p *parser) keylist() ([]string, bool) {
	start := p.mark()
	p.skipWeak()
	k, ok := p.key()
	if !ok {
		p.restore(start)
		return nil, false
	}
	keys := []string{k}
	for {
		m := p.mark()
		p.skipWeak()
		if !p.tryConsumeByte(',') {
			p.restore(m)
			break
		}
		p.skipWeak()
		k2, ok := p.key()
		if !ok {
			p.restore(m)
			break
		}
		keys = append(keys, k2)
	}
	return keys, true
}

// valuelist mirrors `(*ws_weak >> no_comma_no_quotes_no_endl_string) % (*ws_weak >> ',')`.
func (p *parser) valuelist() ([]string, bool) {
	start := p.mark()
	p.skipWeak()
	v, ok := p.noCommaNoQuotesNoEndlString()
	if !ok {
		p.restore(start)
		return nil, false
	}
	values := []string{v}
	for {
		m := p.mark()
		p.skipWeak()
		if !p.tryConsumeByte(',') {
			p.restore(m)
			break
		}
		p.skipWeak()
		v2, ok := p.noCommaNoQuotesNoEndlString()
		if !ok {
			p.restore(m)
			break
		}
		values = append(values, v2)
	}
	return values, true
}

// pairlist mirrors `pairs`: a comma-separated key list, '=', and a
// comma-separated value list, zipped pairwise. The shorter list bounds how
// many pairs are produced (min(len(keys), len(values))).
func (p *parser) pairlist() ([]wml.Node, bool) {
	start := p.mark()
	p.skipAll()
	pos := p.currentPosition()
	keys, ok := p.keylist()
	if !ok {
		p.restore(start)
		return nil, false
	}
	p.skipWeak()
	if !p.tryConsumeByte('=') {
		p.restore(start)
		return nil, false
	}
	values, ok := p.valuelist()
	if !ok {
		p.restore(start)
		return nil, false
	}
	p.skipToEOL()
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	nodes := make([]wml.Node, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, wml.NewPairNode(&wml.Pair{
			Key:   keys[i],
			Value: wml.Str{{Literal: values[i]}},
			Pos:   pos,
		}))
	}
	return nodes, true
}

// startTag mirrors start_tag: '[' not followed by '/', the tag name up to
// the closing ']'. A leading '+' inside the name (a tag-merge marker in
// the source language) is kept as part of the name literally — this
// module does not implement merge semantics, so there is nothing to strip
// it for.
func (p *parser) startTag() (string, bool) {
	start := p.mark()
	p.skipAll()
	if !p.tryConsumeByte('[') {
		p.restore(start)
		return "", false
	}
	if p.peek() == '/' {
		p.restore(start)
		return "", false
	}
	nameStart := p.pos
	for {
		if p.eof() {
			p.restore(start)
			return "", false
		}
		if p.peek() == ']' {
			break
		}
		p.advance()
	}
	if p.pos == nameStart {
		p.restore(start)
		return "", false
	}
	name := string(p.buf[nameStart:p.pos])
	p.advance()
	return name, true
}

// endTag mirrors end_tag(name): "[/" name ']'.
func (p *parser) endTag(name string) bool {
	start := p.mark()
	p.skipAll()
	if !p.tryConsumeLiteral("[/") {
		p.restore(start)
		return false
	}
	if !p.tryConsumeLiteral(name) {
		p.restore(start)
		return false
	}
	if !p.tryConsumeByte(']') {
		p.restore(start)
		return false
	}
	return true
}

// body mirrors the `wml` rule: a start tag, its config, and a matching end
// tag. Once the start tag has matched, a missing or mismatched end tag is
// a fatal parse error rather than an ordinary backtracking failure — the
// grammar's '>' cut operator after config commits to this alternative.
func (p *parser) body() (*wml.Body, bool) {
	start := p.mark()
	p.skipAll()
	tagPos := p.currentPosition()
	name, ok := p.startTag()
	if !ok {
		p.restore(start)
		return nil, false
	}
	p.skipAll()
	children := p.configList()
	if !p.endTag(name) {
		p.fail(errExpectedEndTag(name))
	}
	p.skipToEOL()
	return &wml.Body{Name: name, Children: children, Pos: tagPos}, true
}

// node mirrors `node = wml | pair`.
func (p *parser) node() (wml.Node, bool) {
	if b, ok := p.body(); ok {
		return wml.NewBodyNode(b), true
	}
	if pr, ok := p.pair(); ok {
		return wml.NewPairNode(pr), true
	}
	return wml.Node{}, false
}

// configList mirrors `config = -nodelist`: zero or more items, where each
// item is a preprocessor directive (consumed but never emitted as a
// node), a standalone macro invocation, a tag or pair node, or a
// multi-assignment pairlist expanding to several pair nodes.
func (p *parser) configList() []wml.Node {
	var nodes []wml.Node
	for {
		p.skipAll()
		if p.eof() {
			break
		}
		if p.peek() == '#' {
			p.preprocessorLine()
			p.syncPPLine()
			continue
		}
		if m, ok := p.macroInstance(); ok {
			p.skipToEOL()
			nodes = append(nodes, wml.NewMacroNode(m))
			p.syncPPLine()
			continue
		}
		if n, ok := p.node(); ok {
			nodes = append(nodes, n)
			p.syncPPLine()
			continue
		}
		if pl, ok := p.pairlist(); ok {
			nodes = append(nodes, pl...)
			p.syncPPLine()
			continue
		}
		break
	}
	return nodes
}
