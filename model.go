// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

// Model is a decoded documentation model file.
type Model struct {
	Structs []Struct `yaml:"structs"`
}

// Struct documents one data structure.
type Struct struct {
	// Name is the document title.
	Name string `yaml:"name"`
	// Docs is free prose, possibly multi-paragraph.
	Docs string `yaml:"docs"`
	// Examples are rendered between the description and the field list.
	Examples []Example `yaml:"examples"`
	// Fields are rendered in slice order.
	Fields []Field `yaml:"fields"`
}

// Field documents one member of a Struct.
type Field struct {
	Name     string
	Required bool
	Type     Type
	// Docs paragraphs are separated by blank lines.
	Docs     string
	Examples []Example
}

// Example is a labeled literal code sample.
type Example struct {
	// Lang is the source block language tag, written verbatim.
	Lang string `yaml:"lang"`
	// Content is written verbatim, without escaping.
	Content string `yaml:"content"`
}

// Type is a field type expression: either Flat or Nested.
type Type interface {
	isType()
}

// Flat is a type without generic parameters.
type Flat struct {
	Name TypeName
}

// Nested is a generic container over an ordered list of type arguments.
type Nested struct {
	Container TypeName
	Nested    []Type
}

func (Flat) isType()   {}
func (Nested) isType() {}

// TypeName is a leaf type identifier: either Primitive or Link.
type TypeName interface {
	isTypeName()
}

// Primitive is a plain type name, subject to display aliasing.
type Primitive string

// Link names another documented struct and renders as a cross-reference.
type Link string

func (Primitive) isTypeName() {}
func (Link) isTypeName()      {}

// primitiveAliases maps library type names to their display label.
var primitiveAliases = map[string]string{
	"HashMap":  "Map",
	"BTreeMap": "Map",
}

// displayName applies primitive aliasing.
func (p Primitive) displayName() string {
	if alias, ok := primitiveAliases[string(p)]; ok {
		return alias
	}

	return string(p)
}

// Links returns cross-reference targets used by field types, in first-use order.
func (s Struct) Links() []string {
	seen := make(map[string]struct{})
	var links []string

	visitName := func(name TypeName) {
		link, ok := name.(Link)
		if !ok {
			return
		}

		if _, dup := seen[string(link)]; dup {
			return
		}

		seen[string(link)] = struct{}{}
		links = append(links, string(link))
	}

	var visit func(t Type)
	visit = func(t Type) {
		switch typed := t.(type) {
		case Flat:
			visitName(typed.Name)
		case *Flat:
			if typed != nil {
				visitName(typed.Name)
			}
		case Nested:
			visitName(typed.Container)
			for _, arg := range typed.Nested {
				visit(arg)
			}
		case *Nested:
			if typed != nil {
				visit(*typed)
			}
		}
	}

	for _, field := range s.Fields {
		visit(field.Type)
	}

	return links
}
