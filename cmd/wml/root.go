package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wml",
	Short: "Parse and coerce Wesnoth Markup Language documents",
	Long: `wml provides two features:
- Parses a WML document and prints its AST.
- Coerces a parsed document against a worked-example schema.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
