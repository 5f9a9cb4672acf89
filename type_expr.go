// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import (
	"fmt"
	"strings"
)

const (
	// linkPrefix marks a type name as cross-reference in type expressions.
	linkPrefix = '@'
	// maxExpressionDepth bounds parser recursion for hostile input.
	maxExpressionDepth = 128
)

// typeParser is a recursive descent parser over one type expression.
type typeParser struct {
	input string
	pos   int
}

// ParseType parses a compact type expression such as "Vec<HashMap<String, @Item>>".
//
// A name prefixed with '@' is parsed as Link, any other name as Primitive.
// An empty argument list ("Vec<>") yields Nested with no arguments.
func ParseType(expr string) (Type, error) {
	parser := &typeParser{input: expr}
	t, err := parser.parseType(0)
	if err != nil {
		return nil, err
	}

	parser.skipSpace()
	if parser.pos < len(parser.input) {
		return nil, parser.errorf("unexpected trailing %q", parser.input[parser.pos:])
	}

	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(expr string) Type {
	t, err := ParseType(expr)
	if err != nil {
		panic(err)
	}

	return t
}

// FormatType returns the canonical type expression for t.
func FormatType(t Type) string {
	var out strings.Builder
	formatType(&out, t)
	return out.String()
}

func formatType(out *strings.Builder, t Type) {
	switch typed := t.(type) {
	case Flat:
		formatTypeName(out, typed.Name)
	case *Flat:
		if typed != nil {
			formatTypeName(out, typed.Name)
		}
	case Nested:
		formatNested(out, typed)
	case *Nested:
		if typed != nil {
			formatNested(out, *typed)
		}
	}
}

func formatNested(out *strings.Builder, t Nested) {
	formatTypeName(out, t.Container)
	out.WriteByte('<')
	for i, arg := range t.Nested {
		if i > 0 {
			out.WriteString(", ")
		}

		formatType(out, arg)
	}

	out.WriteByte('>')
}

func formatTypeName(out *strings.Builder, name TypeName) {
	switch typed := name.(type) {
	case Primitive:
		out.WriteString(string(typed))
	case Link:
		out.WriteByte(linkPrefix)
		out.WriteString(string(typed))
	}
}

// parseType parses one type with optional argument list.
func (parser *typeParser) parseType(depth int) (Type, error) {
	if depth > maxExpressionDepth {
		return nil, parser.errorf("nesting deeper than %d", maxExpressionDepth)
	}

	parser.skipSpace()
	name, err := parser.parseName()
	if err != nil {
		return nil, err
	}

	parser.skipSpace()
	if !parser.consume('<') {
		return Flat{Name: name}, nil
	}

	nested := Nested{Container: name}
	parser.skipSpace()
	if parser.consume('>') {
		return nested, nil
	}

	for {
		arg, err := parser.parseType(depth + 1)
		if err != nil {
			return nil, err
		}

		nested.Nested = append(nested.Nested, arg)

		parser.skipSpace()
		if parser.consume('>') {
			return nested, nil
		}

		if !parser.consume(',') {
			if parser.pos >= len(parser.input) {
				return nil, parser.errorf("missing closing '>'")
			}

			return nil, parser.errorf("expected ',' or '>'")
		}
	}
}

// parseName parses a Primitive or '@'-prefixed Link name.
func (parser *typeParser) parseName() (TypeName, error) {
	link := parser.consume(linkPrefix)
	start := parser.pos
	for parser.pos < len(parser.input) && !isTypeDelimiter(parser.input[parser.pos]) {
		parser.pos++
	}

	if parser.pos == start {
		return nil, parser.errorf("expected type name")
	}

	name := parser.input[start:parser.pos]
	if link {
		return Link(name), nil
	}

	return Primitive(name), nil
}

// consume advances past c when it is the next byte.
func (parser *typeParser) consume(c byte) bool {
	if parser.pos < len(parser.input) && parser.input[parser.pos] == c {
		parser.pos++
		return true
	}

	return false
}

func (parser *typeParser) skipSpace() {
	for parser.pos < len(parser.input) && isSpace(parser.input[parser.pos]) {
		parser.pos++
	}
}

func (parser *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %q at offset %d: %s", ErrParseType, parser.input, parser.pos, fmt.Sprintf(format, args...))
}

// isTypeDelimiter reports whether c ends a type name.
func isTypeDelimiter(c byte) bool {
	switch c {
	case '<', '>', ',', linkPrefix:
		return true
	default:
		return isSpace(c)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
