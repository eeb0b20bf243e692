package schema

import "fmt"

// SyntaxError reports a malformed input statement. Line is 1-based;
// Text carries the offending source text when available.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Line > 0 && e.Text != "":
		return fmt.Sprintf("syntax error at line %d: %s: %q", e.Line, e.Msg, e.Text)
	case e.Line > 0:
		return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Msg)
	default:
		return "syntax error: " + e.Msg
	}
}

// ReferenceError reports a field, parent, or property that refers to a
// name never declared in the same input.
type ReferenceError struct {
	Symbol   string // the missing name
	Referrer string // the entity or property that referred to it
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference error: %q referenced by %q is not declared", e.Symbol, e.Referrer)
}

// ConflictError reports an entity or field declared twice with
// incompatible types. Field is empty for duplicate entity declarations.
type ConflictError struct {
	Entity      string
	Field       string
	Existing    string
	Conflicting string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("conflict error: entity %q declared more than once", e.Entity)
	}
	return fmt.Sprintf("conflict error: field %q of %q declared as both %q and %q",
		e.Field, e.Entity, e.Existing, e.Conflicting)
}

// IOError reports an unreadable input or unwritable output path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
