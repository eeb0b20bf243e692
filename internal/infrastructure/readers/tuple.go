package readers

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// reBlockHeader matches the start of an entity block:
// "Name {" or "Name : Parent {".
var reBlockHeader = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(?::\s*([A-Za-z_][A-Za-z0-9_]*))?\s*\{`)

// TupleReader parses the block-structured tuple notation:
//
//	# comment
//	Satellite { name: string, one; orbits: Orbit, one }
//	Orbit : Path {
//	    altitude: float
//	}
//
// Fields are "name: type" with an optional cardinality marker (one, many,
// optional); the marker defaults to one. The whole file is scanned before
// field types are resolved, so entities may be referenced before they are
// declared.
type TupleReader struct{}

// Kind returns the reader kind for diagram style selection.
func (p *TupleReader) Kind() string { return KindTuple }

type tupleStatement struct {
	name   string
	parent string
	line   int
	fields []tupleField
}

type tupleField struct {
	name     string
	typeName string
	marker   string
	raw      string
	line     int
}

// Parse reads tuple notation and returns the resulting graph.
func (p *TupleReader) Parse(r io.Reader) (*schema.Graph, error) {
	stmts, err := scanStatements(r)
	if err != nil {
		return nil, err
	}

	g := schema.NewGraph()
	for _, st := range stmts {
		e := &schema.Entity{Name: st.name, Parent: st.parent}
		for _, f := range st.fields {
			card := schema.One
			if f.marker != "" {
				c, ok := schema.ParseCardinality(f.marker)
				if !ok {
					return nil, &schema.SyntaxError{
						Line: f.line,
						Text: f.raw,
						Msg:  fmt.Sprintf("unrecognized cardinality marker %q", f.marker),
					}
				}
				card = c
			}
			if e.FindField(f.name) != nil {
				return nil, &schema.ConflictError{
					Entity:      st.name,
					Field:       f.name,
					Existing:    e.FindField(f.name).Type,
					Conflicting: f.typeName,
				}
			}
			e.Fields = append(e.Fields, schema.Field{
				Name:         f.name,
				Type:         f.typeName,
				Cardinality:  card,
				Relationship: !schema.IsPrimitive(f.typeName),
			})
		}
		if err := g.Add(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// scanStatements performs the first pass: it parses every block in the
// file into statements, failing fast on malformed syntax.
func scanStatements(r io.Reader) ([]tupleStatement, error) {
	sc := bufio.NewScanner(r)

	var stmts []tupleStatement
	var cur *tupleStatement
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if cur == nil {
			m := reBlockHeader.FindStringSubmatch(text)
			if m == nil {
				return nil, &schema.SyntaxError{Line: line, Text: text, Msg: "expected entity declaration"}
			}
			cur = &tupleStatement{name: m[1], parent: m[2], line: line}
			text = text[len(m[0]):]
		}

		closed, err := parseBlockBody(cur, text, line)
		if err != nil {
			return nil, err
		}
		if closed {
			stmts = append(stmts, *cur)
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if cur != nil {
		return nil, &schema.SyntaxError{
			Line: cur.line,
			Msg:  fmt.Sprintf("unterminated block for entity %q", cur.name),
		}
	}

	return stmts, nil
}

// parseBlockBody consumes one line of block body, which may include the
// closing brace. It reports whether the block was closed.
func parseBlockBody(st *tupleStatement, text string, line int) (bool, error) {
	closed := false
	if i := strings.Index(text, "}"); i >= 0 {
		if rest := strings.TrimSpace(text[i+1:]); rest != "" {
			return false, &schema.SyntaxError{Line: line, Text: text, Msg: "unexpected text after closing brace"}
		}
		text = text[:i]
		closed = true
	}

	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := parseFieldTuple(part, line)
		if err != nil {
			return false, err
		}
		st.fields = append(st.fields, f)
	}

	return closed, nil
}

// parseFieldTuple parses one "name: type[, cardinality]" tuple.
func parseFieldTuple(text string, line int) (tupleField, error) {
	name, rest, ok := strings.Cut(text, ":")
	if !ok {
		return tupleField{}, &schema.SyntaxError{Line: line, Text: text, Msg: "expected \"name: type\" field"}
	}

	parts := strings.Split(rest, ",")
	if len(parts) > 2 {
		return tupleField{}, &schema.SyntaxError{Line: line, Text: text, Msg: "too many elements in field tuple"}
	}

	f := tupleField{
		name:     strings.TrimSpace(name),
		typeName: strings.TrimSpace(parts[0]),
		raw:      text,
		line:     line,
	}
	if len(parts) == 2 {
		f.marker = strings.TrimSpace(parts[1])
	}

	if !reIdent.MatchString(f.name) {
		return tupleField{}, &schema.SyntaxError{Line: line, Text: text, Msg: fmt.Sprintf("invalid field name %q", f.name)}
	}
	if !reIdent.MatchString(f.typeName) {
		return tupleField{}, &schema.SyntaxError{Line: line, Text: text, Msg: fmt.Sprintf("invalid type name %q", f.typeName)}
	}

	return f, nil
}
