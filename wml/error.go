package wml

import "fmt"

// ParseError is the structured record produced when parsing fails. Per the
// grammar's failure semantics, a parse call returns at most one of these;
// no partial AST accompanies it.
type ParseError struct {
	Pos          Position
	ExpectedNode string
	Context      string
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%v: expected %v, found: %q", e.Pos, e.ExpectedNode, e.Context)
	}
	return fmt.Sprintf("%v: expected %v", e.Pos, e.ExpectedNode)
}

// Banner renders the error in the "Parsing failed" banner format used by
// the command-line driver.
func (e *ParseError) Banner() string {
	return fmt.Sprintf(
		"-------------------------\n"+
			"Parsing failed\n"+
			"stopped at: %q...\n"+
			"-------------------------\n"+
			"Error at position: %v\n"+
			"Expected a node of type '%v'\n"+
			"-------------------------\n",
		e.Context, e.Pos, e.ExpectedNode,
	)
}
