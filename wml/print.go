package wml

import (
	"fmt"
	"io"
	"strings"
)

const tabSize = 4

func tab(indent int) string {
	return strings.Repeat(" ", indent)
}

// Write prints a human-readable dump of the body and its children, used by
// the command-line driver and by tests to display a parse result.
func (b *Body) Write(w io.Writer, indent int) {
	fmt.Fprintf(w, "%stag: %q ( %d children )\n", tab(indent), b.Name, len(b.Children))
	fmt.Fprintf(w, "%s{\n", tab(indent))
	for _, n := range b.Children {
		n.write(w, indent)
	}
	fmt.Fprintf(w, "%s}\n", tab(indent))
}

func (n Node) write(w io.Writer, indent int) {
	switch n.Kind {
	case NodeBody:
		n.Body.Write(w, indent+tabSize)
	case NodePair:
		fmt.Fprintf(w, "%s%s: %q\n", tab(indent+tabSize), n.Pair.Key, n.Pair.Value.String())
	case NodeMacro:
		fmt.Fprintf(w, "%smacro: %q\n", tab(indent+tabSize), n.Macro.Text)
	}
}

// WriteConfig prints a top-level node list without a wrapping tag banner.
func WriteConfig(w io.Writer, cfg Config, indent int) {
	fmt.Fprintf(w, "%s{\n", tab(indent))
	for _, n := range cfg {
		n.write(w, indent)
	}
	fmt.Fprintf(w, "%s}\n", tab(indent))
}
