package parser

// The expected-node descriptions a *wml.ParseError carries, cataloged here
// as a flat set of values rather than formatted ad hoc at each call site.
const (
	errExpectedTopLevelTag = "a top-level tag"
	errExpectedEndOfInput  = "end of input"
	errUnterminatedMacro   = "a closing '}' for a macro invocation"
	errUnterminatedString  = "a closing quote"
	errUnterminatedAngle   = "a closing '>>'"
)

func errExpectedEndTag(name string) string {
	return "a closing [/" + name + "]"
}

func errExpectedDefineBody(name string) string {
	return "a '#enddef' closing the body of macro '" + name + "'"
}
