// Package preprocessor holds the mutable state a single parse session
// carries while scanning a WML document: the current file/line cursor and
// the table of macro definitions seen so far. It is owned exclusively by
// one parsing session (see wml/parser) and is never shared across parses.
package preprocessor

// Cursor is a (filename, current line) pair. A parse session keeps a stack
// of these, one entry per nested document, initialized with a single entry
// for the top-level document.
type Cursor struct {
	File string
	Line int
}

// MacroDef is a registered `#define` directive: its name, its declared
// parameter list, its raw body text, and the cursor at its definition site.
type MacroDef struct {
	Name       string
	Parameters []string
	Body       string
	Cursor     Cursor
}

// State is the preprocessor record for one parse session.
type State struct {
	files       []Cursor
	macros      map[string]*MacroDef
	currentDir  string
	warnings    []string
}

// NewState creates preprocessor state for a document with the given
// filename, starting at line 1.
func NewState(filename string) *State {
	return &State{
		files:      []Cursor{{File: filename, Line: 1}},
		macros:     make(map[string]*MacroDef),
		currentDir: ".",
	}
}

// Cursor returns the current (filename, line) at the top of the file stack.
func (s *State) Cursor() Cursor {
	return s.files[len(s.files)-1]
}

// NewLine increments the line counter of the current cursor by one. The
// parser in wml/parser does not call it; it keeps the cursor current with
// SetLine instead.
func (s *State) NewLine() {
	s.files[len(s.files)-1].Line++
}

// SetLine sets the current cursor's line counter directly. The parser uses
// this to keep the cursor in sync at commit points it can reach without
// threading a NewLine call through every byte of speculative, possibly
// backtracked, lookahead.
func (s *State) SetLine(n int) {
	s.files[len(s.files)-1].Line = n
}

// CurrentDirectory returns the session's working directory, used to
// resolve any future file-relative macro lookups.
func (s *State) CurrentDirectory() string {
	return s.currentDir
}

// Define registers a macro definition. First-definition-wins: if a macro
// with this name is already registered, the new definition is ignored and
// a warning is recorded (see Warnings), but the call never fails the parse.
func (s *State) Define(def *MacroDef) {
	if _, exists := s.macros[def.Name]; exists {
		s.warnings = append(s.warnings, "macro '"+def.Name+"' redefined at "+def.Cursor.render()+"; keeping first definition")
		return
	}
	s.macros[def.Name] = def
}

// Undef removes a macro definition. Undefining a name that was never
// defined is a no-op, recorded as a warning rather than an error.
func (s *State) Undef(name string) {
	if _, exists := s.macros[name]; !exists {
		s.warnings = append(s.warnings, "#undef of unknown macro '"+name+"'")
		return
	}
	delete(s.macros, name)
}

// Lookup returns the macro definition registered under name, if any.
func (s *State) Lookup(name string) (*MacroDef, bool) {
	m, ok := s.macros[name]
	return m, ok
}

// Warnings returns non-fatal preprocessor notes accumulated so far (macro
// redefinitions, undef-of-unknown-name). These never affect parse success.
func (s *State) Warnings() []string {
	return s.warnings
}

func (c Cursor) render() string {
	if c.File == "" {
		return "<input>"
	}
	return c.File
}
