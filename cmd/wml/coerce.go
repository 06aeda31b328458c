package main

import (
	"fmt"
	"os"

	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/coerce"
	"github.com/nihei9/wml/wml/diag"
	"github.com/nihei9/wml/wml/parser"
	"github.com/nihei9/wml/wml/schema"
	"github.com/spf13/cobra"
)

var coerceFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "coerce",
		Short:   "Coerce a single top-level [unit] tag against a worked-example schema",
		Example: `  cat unit.cfg | wml coerce`,
		Args:    cobra.NoArgs,
		RunE:    runCoerce,
	}
	coerceFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

// attack is the worked-example schema for a unit's [attack] child tag.
type attack struct {
	Name   string
	Damage int
	Count  int
}

func (a *attack) TagName() string { return "attack" }
func (a *attack) Fields() []schema.Field {
	return []schema.Field{
		{Name: "name", Kind: schema.KindAttribute, DebugName: schema.DebugString, CoerceAttribute: schema.CoerceString(&a.Name)},
		{Name: "damage", Kind: schema.KindAttribute, DebugName: schema.DebugInt, CoerceAttribute: schema.CoerceInt(&a.Damage)},
		{Name: "number", Kind: schema.KindAttribute, DebugName: schema.DebugInt, CoerceAttribute: schema.CoerceInt(&a.Count)},
	}
}

// unit is the worked-example top-level schema this subcommand coerces the
// document's single top-level tag against.
type unit struct {
	ID      string
	Name    string
	HP      int
	Traits  []string
	Attacks []*attack
}

func (u *unit) TagName() string { return "unit" }
func (u *unit) Fields() []schema.Field {
	return []schema.Field{
		{Name: "id", Kind: schema.KindAttribute, DebugName: schema.DebugString, CoerceAttribute: schema.CoerceString(&u.ID)},
		{Name: "name", Kind: schema.KindAttribute, DebugName: schema.DebugString, CoerceAttribute: schema.CoerceString(&u.Name)},
		{Name: "hitpoints", Kind: schema.KindAttribute, DebugName: schema.DebugInt, CoerceAttribute: schema.CoerceInt(&u.HP)},
		{Name: "traits", Kind: schema.KindAttribute, DebugName: schema.DebugStringList, CoerceAttribute: schema.CoerceStringList(&u.Traits)},
		{Name: "attacks", Kind: schema.KindContainer, Container: schema.NewVector(&u.Attacks, func() *attack { return &attack{} })},
	}
}

func runCoerce(cmd *cobra.Command, args []string) error {
	src := os.Stdin
	if *coerceFlags.source != "" {
		f, err := os.Open(*coerceFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open the source file %s: %w", *coerceFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	body, err := parser.Parse(src)
	if err != nil {
		if pe, ok := err.(*wml.ParseError); ok {
			fmt.Fprint(os.Stderr, pe.Banner())
			return fmt.Errorf("parse failed")
		}
		return err
	}

	log := diag.New()
	var u unit
	if err := coerce.Body(&u, body, log); err != nil {
		return fmt.Errorf("coerce failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "unit %q (%q): %d hp, %d attack(s), traits: %v\n", u.ID, u.Name, u.HP, len(u.Attacks), u.Traits)
	for _, a := range u.Attacks {
		fmt.Fprintf(os.Stdout, "  attack %q: %dx%d\n", a.Name, a.Count, a.Damage)
	}

	if len(log.Incidents) > 0 {
		fmt.Fprintln(os.Stderr, "coercion diagnostics:")
		log.Write(os.Stderr)
	}
	return nil
}
