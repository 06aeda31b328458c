package schema_test

import (
	"testing"

	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/schema"
)

func str(s string) wml.Str { return wml.Str{{Literal: s}} }

func TestCoerceIntSuccessAndFailure(t *testing.T) {
	var n int
	if err := schema.CoerceInt(&n)(str(" 42 ")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}

	n = 7
	if err := schema.CoerceInt(&n)(str("not a number")); err == nil {
		t.Fatal("expected an error")
	}
	if n != 7 {
		t.Fatalf("dst must be left untouched on failure, got %d", n)
	}
}

func TestCoerceUintRejectsNegative(t *testing.T) {
	var n uint
	if err := schema.CoerceUint(&n)(str("-1")); err == nil {
		t.Fatal("expected an error for a negative value")
	}
	if n != 0 {
		t.Fatalf("dst must be left untouched on failure, got %d", n)
	}
	if err := schema.CoerceUint(&n)(str("5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Fatalf("got %d, want 5", n)
	}
}

func TestCoerceFloat(t *testing.T) {
	var f float64
	if err := schema.CoerceFloat(&f)(str("3.5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 3.5 {
		t.Fatalf("got %v, want 3.5", f)
	}
}

func TestCoerceIntPair(t *testing.T) {
	var p [2]int
	if err := schema.CoerceIntPair(&p)(str("3,4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != [2]int{3, 4} {
		t.Fatalf("got %v, want [3 4]", p)
	}
}

func TestCoerceIntPairRejectsWrongArity(t *testing.T) {
	var p [2]int
	if err := schema.CoerceIntPair(&p)(str("1,2,3")); err == nil {
		t.Fatal("expected an error for a 3-element list")
	}
}

func TestOptionalPrefixesDebugName(t *testing.T) {
	if got := schema.Optional(schema.DebugInt); got != "optional integer" {
		t.Fatalf("got %q, want %q", got, "optional integer")
	}
}

func TestCoerceOptionalEmptyInputIsNone(t *testing.T) {
	var dst *int
	if err := schema.CoerceOptional(&dst, schema.CoerceInt)(str("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst != nil {
		t.Fatalf("got %v, want nil", dst)
	}
}

func TestCoerceOptionalDelegatesAndLifts(t *testing.T) {
	var dst *int
	if err := schema.CoerceOptional(&dst, schema.CoerceInt)(str("42")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst == nil || *dst != 42 {
		t.Fatalf("got %v, want *42", dst)
	}
}

func TestCoerceOptionalPropagatesInnerErrorAndLeavesDstUntouched(t *testing.T) {
	dst := new(int)
	*dst = 7
	prev := dst
	if err := schema.CoerceOptional(&dst, schema.CoerceInt)(str("not a number")); err == nil {
		t.Fatal("expected an error")
	}
	if dst != prev || *dst != 7 {
		t.Fatalf("dst must be left untouched on failure, got %v", dst)
	}
}
