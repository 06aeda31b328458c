package parser

import (
	"strings"
	"testing"

	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/preprocessor"
)

func lit(s string) wml.Str {
	return wml.Str{{Literal: s}}
}

func pairNode(key string, v wml.Str) wml.Node {
	return wml.NewPairNode(&wml.Pair{Key: key, Value: v})
}

func bodyNode(name string, children ...wml.Node) wml.Node {
	return wml.NewBodyNode(&wml.Body{Name: name, Children: children})
}

func macroNode(text string) wml.Node {
	return wml.NewMacroNode(&wml.MacroInstance{Text: text})
}

// testNode recursively compares got against want, ignoring Position (the
// builders above don't set it).
func testNode(t *testing.T, path string, got, want wml.Node) {
	t.Helper()
	if got.Kind != want.Kind {
		t.Fatalf("%s: kind mismatch: got %v, want %v", path, got.Kind, want.Kind)
	}
	switch want.Kind {
	case wml.NodeBody:
		testBody(t, path+"."+want.Body.Name, got.Body, want.Body)
	case wml.NodePair:
		if got.Pair.Key != want.Pair.Key {
			t.Fatalf("%s: pair key mismatch: got %v, want %v", path, got.Pair.Key, want.Pair.Key)
		}
		if got.Pair.Value.String() != want.Pair.Value.String() {
			t.Fatalf("%s: pair %v value mismatch: got %q, want %q", path, want.Pair.Key, got.Pair.Value.String(), want.Pair.Value.String())
		}
	case wml.NodeMacro:
		if got.Macro.Text != want.Macro.Text {
			t.Fatalf("%s: macro text mismatch: got %q, want %q", path, got.Macro.Text, want.Macro.Text)
		}
	}
}

func testBody(t *testing.T, path string, got, want *wml.Body) {
	t.Helper()
	if got.Name != want.Name {
		t.Fatalf("%s: tag name mismatch: got %v, want %v", path, got.Name, want.Name)
	}
	if len(got.Children) != len(want.Children) {
		t.Fatalf("%s: child count mismatch: got %v, want %v", path, len(got.Children), len(want.Children))
	}
	for i := range want.Children {
		testNode(t, path, got.Children[i], want.Children[i])
	}
}

func TestParseSimpleTag(t *testing.T) {
	src := "[foo]\nx=1\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("1")),
	}}
	testBody(t, "root", got, want)
}

func TestParseNestedTag(t *testing.T) {
	src := "[foo]\n[bar]\ny=2\n[/bar]\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		bodyNode("bar", pairNode("y", lit("2"))),
	}}
	testBody(t, "root", got, want)
}

func TestParseMultiAssignment(t *testing.T) {
	src := "[foo]\nx,y=1,2\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("1")),
		pairNode("y", lit("2")),
	}}
	testBody(t, "root", got, want)
}

func TestParseSingleValueWithComma(t *testing.T) {
	// A single key paired with a comma-bearing value is an ordinary pair,
	// not a multi-assignment: the key list has no comma, so the `pair`
	// alternative matches before `pairlist` is ever tried.
	src := "[foo]\nx=1,2\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("1,2")),
	}}
	testBody(t, "root", got, want)
}

func TestParseQuotedValue(t *testing.T) {
	src := "[foo]\nx= \"hello\" + \"world\"\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("helloworld")),
	}}
	testBody(t, "root", got, want)
}

func TestParseAngleQuotedValue(t *testing.T) {
	src := "[foo]\nx=<<line one\nline two>>\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("line one\nline two")),
	}}
	testBody(t, "root", got, want)
}

func TestParseMacroInAttributeValue(t *testing.T) {
	src := "[foo]\nx={SOME_MACRO}\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", wml.Str{{Macro: &wml.MacroInstance{Text: "SOME_MACRO"}}}),
	}}
	testBody(t, "root", got, want)
}

func TestParseNestedMacroBraces(t *testing.T) {
	src := "[foo]\n{OUTER {INNER}}\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		macroNode("OUTER {INNER}"),
	}}
	testBody(t, "root", got, want)
}

func TestParsePreprocessorDefineIsInvisibleInAST(t *testing.T) {
	src := "[foo]\n#define GREETING\nhello\n#enddef\nx=1\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("1")),
	}}
	testBody(t, "root", got, want)
}

func TestParseConditionalBlockDiscarded(t *testing.T) {
	src := "[foo]\n#ifdef SOMETHING\ny=2\n#endif\nx=1\n[/foo]\n"
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &wml.Body{Name: "foo", Children: []wml.Node{
		pairNode("x", lit("1")),
	}}
	testBody(t, "root", got, want)
}

func TestParseMismatchedEndTagFails(t *testing.T) {
	src := "[foo]\nx=1\n[/bar]\n"
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected a parse error for a mismatched end tag")
	}
	if _, ok := err.(*wml.ParseError); !ok {
		t.Fatalf("expected *wml.ParseError, got %T", err)
	}
}

func TestParseUnterminatedMacroFails(t *testing.T) {
	src := "[foo]\nx={UNTERMINATED\n[/foo]\n"
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected a parse error for an unterminated macro invocation")
	}
}

func TestParseConfigTopLevel(t *testing.T) {
	src := "x=1\n[bar]\ny=2\n[/bar]\n"
	got, err := ParseConfig(strings.NewReader(src), "test.cfg")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	want := &wml.Body{Name: "root", Children: []wml.Node{
		pairNode("x", lit("1")),
		bodyNode("bar", pairNode("y", lit("2"))),
	}}
	testBody(t, "root", got, want)
}

// TestParseDocumentWrapsMultipleTopLevelTagsInRoot exercises ParseDocument
// specifically on a document with more than one top-level tag (the case
// Parse cannot handle, since Parse expects exactly one top-level tag and
// fails on trailing input) — this is the entire reason the two entry
// points are distinguished.
func TestParseDocumentWrapsMultipleTopLevelTagsInRoot(t *testing.T) {
	src := "[foo]\nx=1\n[/foo]\n[bar]\ny=2\n[/bar]\n"
	got, err := ParseDocument(strings.NewReader(src), "test.cfg")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	want := &wml.Body{Name: "root", Children: []wml.Node{
		bodyNode("foo", pairNode("x", lit("1"))),
		bodyNode("bar", pairNode("y", lit("2"))),
	}}
	testBody(t, "root", got, want)
}

func TestParseMacroRedefinitionWarns(t *testing.T) {
	src := "#define M\na\n#enddef\n#define M\nb\n#enddef\nx=1\n"
	_, warnings, err := ParseConfigWithWarnings(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("ParseConfigWithWarnings failed: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", warnings)
	}
}

func TestLineCountingInvariant(t *testing.T) {
	src := "[foo]\nx=1\ny=2\nz=3\n[/foo]\n"
	raw := ensureTrailingNewline([]byte(src))
	want := 1 + strings.Count(string(raw), "\n")

	p := &parser{scanner: scanner{buf: raw}}
	if got := p.lineAt(len(raw)); got != want {
		t.Fatalf("lineAt(len) = %v, want %v", got, want)
	}
}

// TestMacroDefinitionRegistersNameParamsAndBody exercises scenario 5: a
// #define with parameters must register a MacroDef with the declared name,
// parameter list, and exact raw body text in the preprocessor's macro
// table, not just vanish from the AST (already covered separately by
// TestParsePreprocessorDefineIsInvisibleInAST).
func TestMacroDefinitionRegistersNameParamsAndBody(t *testing.T) {
	src := "#define GREETING WHO\nhello {WHO}\n#enddef\nx=1\n"
	raw := ensureTrailingNewline([]byte(src))
	p := &parser{scanner: scanner{buf: raw}, pp: preprocessor.NewState("")}

	p.configList()

	def, ok := p.pp.Lookup("GREETING")
	if !ok {
		t.Fatal("expected GREETING to be registered in the macro table")
	}
	if len(def.Parameters) != 1 || def.Parameters[0] != "WHO" {
		t.Fatalf("got parameters %v, want [WHO]", def.Parameters)
	}
	if def.Body != "hello {WHO}\n" {
		t.Fatalf("got body %q, want %q", def.Body, "hello {WHO}\n")
	}
}
