// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import (
	"fmt"
	"io"
	"strings"
)

const (
	// bannerFirstLine opens the generated-file warning.
	bannerFirstLine = "// Do not edit this file directly!\n"
	// continuation attaches following blocks to the current list item.
	continuation = "+\n"
	// paragraphBreak is a blank line between prose paragraphs.
	paragraphBreak = "\n\n"
	// listParagraphBreak keeps a paragraph break inside one list item.
	listParagraphBreak = "\n" + continuation
)

// adocWriter streams AsciiDoc markup into the underlying writer.
type adocWriter struct {
	w        io.Writer
	maxDepth int
}

// write emits parts in order and stops at the first write error.
func (out *adocWriter) write(parts ...string) error {
	for _, part := range parts {
		if part == "" {
			continue
		}

		if _, err := io.WriteString(out.w, part); err != nil {
			return err
		}
	}

	return nil
}

// writeStruct renders a complete struct section.
func (out *adocWriter) writeStruct(s Struct, opt Options) error {
	if opt.Banner {
		if err := out.write(
			bannerFirstLine,
			"// It was generated using ", opt.generatorName(), " and will be updated automatically.\n",
			"\n",
		); err != nil {
			return err
		}
	}

	if err := out.write("= ", s.Name, "\n\n", s.Docs, "\n\n"); err != nil {
		return err
	}

	for _, example := range s.Examples {
		if err := out.writeExample(example); err != nil {
			return err
		}

		if err := out.write("\n"); err != nil {
			return err
		}
	}

	if len(s.Fields) > 0 {
		gap := ""
		if opt.FieldsGap {
			gap = "\n"
		}

		if err := out.write(gap, ".Fields\n"); err != nil {
			return err
		}
	}

	for _, field := range s.Fields {
		if err := out.writeField(field); err != nil {
			return err
		}
	}

	return out.write("\n")
}

// writeField renders one field as a list item with continuation blocks.
func (out *adocWriter) writeField(f Field) error {
	requirement := " _(optional)_\n"
	if f.Required {
		requirement = " _(required)_\n"
	}

	if err := out.write("* `", f.Name, "`", requirement, continuation, "Type: `"); err != nil {
		return err
	}

	if err := out.writeType(f.Type, 0); err != nil {
		return err
	}

	if err := out.write("`\n"); err != nil {
		return err
	}

	docs := strings.ReplaceAll(f.Docs, paragraphBreak, listParagraphBreak)
	if docs != "" {
		if err := out.write(continuation, docs); err != nil {
			return err
		}

		// docs without a final newline would swallow the next list item
		if !strings.HasSuffix(docs, "\n") {
			if err := out.write("\n"); err != nil {
				return err
			}
		}
	}

	if len(f.Examples) == 0 {
		return nil
	}

	if err := out.write(continuation); err != nil {
		return err
	}

	for _, example := range f.Examples {
		if err := out.writeExample(example); err != nil {
			return err
		}
	}

	return out.write("\n")
}

// writeExample renders a titled source block.
func (out *adocWriter) writeExample(example Example) error {
	return out.write(
		".Example\n",
		"[source,", example.Lang, "]\n",
		"----\n",
		example.Content, "\n",
		"----\n",
	)
}

// writeType renders a type expression; level is the count of enclosing angle brackets.
func (out *adocWriter) writeType(t Type, level int) error {
	switch typed := t.(type) {
	case Flat:
		return out.writeTypeName(typed.Name)
	case *Flat:
		if typed == nil {
			return ErrNilType
		}

		return out.writeTypeName(typed.Name)
	case Nested:
		return out.writeNested(typed, level)
	case *Nested:
		if typed == nil {
			return ErrNilType
		}

		return out.writeNested(*typed, level)
	default:
		return ErrNilType
	}
}

// writeNested renders container name followed by its argument list.
func (out *adocWriter) writeNested(t Nested, level int) error {
	if out.maxDepth > 0 && level+1 > out.maxDepth {
		return fmt.Errorf("%w: limit %d", ErrTypeDepth, out.maxDepth)
	}

	if err := out.writeTypeName(t.Container); err != nil {
		return err
	}

	if err := out.write("<"); err != nil {
		return err
	}

	for i, arg := range t.Nested {
		if i > 0 {
			if err := out.write(", "); err != nil {
				return err
			}
		}

		if err := out.writeType(arg, level+1); err != nil {
			return err
		}
	}

	return out.write(">")
}

// writeTypeName renders a primitive name with aliasing or a cross-reference.
func (out *adocWriter) writeTypeName(name TypeName) error {
	switch typed := name.(type) {
	case Primitive:
		return out.write(typed.displayName())
	case Link:
		return out.write("<<", string(typed), ">>")
	default:
		return ErrNilType
	}
}
