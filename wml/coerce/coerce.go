// Package coerce is the public entry point for schema-driven coercion:
// given a target record (a schema.Tag) and an AST child-list or body, it
// drives the coercion walk and accumulates diagnostics into a log.
//
// The walk itself (the used-bit bookkeeping and field-kind dispatch) is
// implemented in wml/schema, where it is reachable from the built-in
// child containers without an import cycle; this package only adds the
// caller-facing convenience of an optional log (nil allocates a
// throwaway one whose incidents are simply discarded).
package coerce

import (
	"github.com/nihei9/wml/wml"
	"github.com/nihei9/wml/wml/diag"
	"github.com/nihei9/wml/wml/schema"
)

// Body coerces b.Children into t. If log is nil, a throwaway log is used
// and its incidents are discarded — callers that want to inspect
// diagnostics should pass their own.
func Body(t schema.Tag, b *wml.Body, log *diag.Log) error {
	if log == nil {
		log = diag.New()
	}
	return schema.CoerceBody(t, b, log)
}

// Config coerces an AST child-list directly, equivalent to Body when the
// caller already holds config rather than a wrapping body (for instance,
// the synthetic "root" body's children).
func Config(t schema.Tag, config wml.Config, log *diag.Log) error {
	if log == nil {
		log = diag.New()
	}
	return schema.CoerceConfig(t, config, log)
}
