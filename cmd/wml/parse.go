package main

import (
	"fmt"
	"os"

	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/parser"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a WML document and print its AST",
		Example: `  cat scenario.cfg | wml parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src := os.Stdin
	filename := ""
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open the source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
		filename = *parseFlags.source
	}

	body, warnings, err := parser.ParseConfigWithWarnings(src, filename)
	if err != nil {
		if pe, ok := err.(*wml.ParseError); ok {
			fmt.Fprint(os.Stderr, pe.Banner())
			return fmt.Errorf("parse failed")
		}
		return err
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	wml.WriteConfig(os.Stdout, body.Children, 0)
	return nil
}
