package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/schema/valuelist"
)

// Debug names for the built-in attribute coercers, used verbatim in
// diagnostics (see wml/diag).
const (
	DebugInt        = "integer"
	DebugUint       = "nonnegative integer"
	DebugFloat      = "decimal number"
	DebugString     = "string"
	DebugBool       = "boolean"
	DebugStringList = "comma separated list"
	DebugIntPair    = "int pair"
)

// Optional renders the debug name of an optional<T> attribute from T's
// own debug name, e.g. Optional(DebugInt) == "optional integer".
func Optional(inner string) string {
	return "optional " + inner
}

var errLexicalCastFailed = errors.New("lexical cast failed")

// CoerceInt binds an "integer" attribute to dst. Failure leaves dst
// untouched, matching the attribute-coerce purity rule.
func CoerceInt(dst *int) func(wml.Str) error {
	return func(s wml.Str) error {
		v, err := strconv.Atoi(strings.TrimSpace(s.String()))
		if err != nil {
			return errLexicalCastFailed
		}
		*dst = v
		return nil
	}
}

// CoerceUint binds a "nonnegative integer" attribute to dst, rejecting a
// leading '-' the way a lexical cast to an unsigned type does.
func CoerceUint(dst *uint) func(wml.Str) error {
	return func(s wml.Str) error {
		text := strings.TrimSpace(s.String())
		if strings.HasPrefix(text, "-") {
			return errLexicalCastFailed
		}
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return errLexicalCastFailed
		}
		*dst = uint(v)
		return nil
	}
}

// CoerceFloat binds a "decimal number" attribute to dst.
func CoerceFloat(dst *float64) func(wml.Str) error {
	return func(s wml.Str) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s.String()), 64)
		if err != nil {
			return errLexicalCastFailed
		}
		*dst = v
		return nil
	}
}

// CoerceString binds a "string" attribute to dst: the raw text, with any
// macro-invocation segments flattened to their source textual form (see
// wml.Str.String).
func CoerceString(dst *string) func(wml.Str) error {
	return func(s wml.Str) error {
		*dst = s.String()
		return nil
	}
}

// CoerceBool binds a "boolean" attribute to dst: yes/on -> true, no/off
// -> false, anything else an error naming the offending value.
func CoerceBool(dst *bool) func(wml.Str) error {
	return func(s wml.Str) error {
		f := s.String()
		switch f {
		case "yes", "on":
			*dst = true
			return nil
		case "no", "off":
			*dst = false
			return nil
		}
		return fmt.Errorf("Legal values are: 'yes', 'no', 'on', 'off'. Found '%s'.", f)
	}
}

// CoerceStringList binds a "comma separated list" attribute to dst. Each
// element is trimmed of surrounding whitespace. An empty (or
// whitespace-only) value coerces to an empty list; a trailing comma is a
// coercion error.
func CoerceStringList(dst *[]string) func(wml.Str) error {
	return func(s wml.Str) error {
		items, err := valuelist.Parse(s.String())
		if err != nil {
			return fmt.Errorf("Stopped parsing at '%v'", err)
		}
		*dst = items
		return nil
	}
}

// CoerceIntPair binds an "int pair" attribute to dst: exactly two
// comma-separated integers. dst is left untouched unless both parse.
func CoerceIntPair(dst *[2]int) func(wml.Str) error {
	return func(s wml.Str) error {
		var items []string
		if err := CoerceStringList(&items)(s); err != nil {
			return err
		}
		if len(items) != 2 {
			return fmt.Errorf("Expected pair, found %d elements", len(items))
		}
		first, err := strconv.Atoi(items[0])
		if err != nil {
			return fmt.Errorf("Expected integer, found '%s' (first element)", items[0])
		}
		second, err := strconv.Atoi(items[1])
		if err != nil {
			return fmt.Errorf("Expected integer, found '%s' (second element)", items[1])
		}
		dst[0] = first
		dst[1] = second
		return nil
	}
}

// CoerceOptional lifts a built-in coercer for T into a coercer for *T: an
// empty value coerces to none (dst set to nil, no error), anything else is
// delegated to coerce and, on success, lifted into a freshly allocated T.
// dst is left untouched on failure, same as every other built-in coercer.
//
// Usage binds one of the coercers above directly, e.g.
// CoerceOptional(&field, schema.CoerceInt) for an optional<int> attribute.
func CoerceOptional[T any](dst **T, coerce func(*T) func(wml.Str) error) func(wml.Str) error {
	return func(s wml.Str) error {
		if s.String() == "" {
			*dst = nil
			return nil
		}
		var v T
		if err := coerce(&v)(s); err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}
