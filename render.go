// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import (
	"io"
	"strings"
)

const (
	// defaultGenerator is named in the banner when caller does not provide one.
	defaultGenerator = "structdoc"
)

// Options configures document rendering.
type Options struct {
	// Banner prepends a "generated file, do not edit" comment block.
	// It only controls the banner; see FieldsGap for the rest of the
	// fields-only document layout.
	Banner bool
	// FieldsGap writes a blank line before the ".Fields" title, as
	// fields-only documents generated together with the banner did.
	FieldsGap bool
	// Generator is the tool name printed in the banner.
	Generator string
	// MaxTypeDepth limits nested type depth; zero means unlimited.
	MaxTypeDepth int
}

// generatorName returns banner generator name with default fallback.
func (opt Options) generatorName() string {
	generator := strings.TrimSpace(opt.Generator)
	if generator == "" {
		return defaultGenerator
	}

	return generator
}

// Render writes the AsciiDoc document for s into w.
//
// Output is written incrementally. The first write error aborts rendering and
// is returned unchanged; bytes already written are left in w.
//
// Field docs that do not end with a newline get one appended, so the next
// list item starts on its own line. This is the one place where output
// differs from writing docs verbatim; docs that already end with "\n" are
// emitted unchanged.
func Render(w io.Writer, s Struct, opt Options) error {
	out := &adocWriter{w: w, maxDepth: opt.MaxTypeDepth}
	return out.writeStruct(s, opt)
}

// RenderString renders s into a string.
func RenderString(s Struct, opt Options) (string, error) {
	var out strings.Builder
	if err := Render(&out, s, opt); err != nil {
		return "", err
	}

	return out.String(), nil
}

// RenderType returns the AsciiDoc text of a single type expression.
func RenderType(t Type) (string, error) {
	var out strings.Builder
	w := &adocWriter{w: &out}
	if err := w.writeType(t, 0); err != nil {
		return "", err
	}

	return out.String(), nil
}
