// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// modelDocument is the top-level model file shape.
//
// A file either lists structs under "structs" or describes one struct inline.
type modelDocument struct {
	Structs []Struct `yaml:"structs"`
	Struct  `yaml:",inline"`
}

// fieldDocument is the YAML shape of Field before type decoding.
type fieldDocument struct {
	Name     string    `yaml:"name"`
	Required bool      `yaml:"required"`
	Type     yaml.Node `yaml:"type"`
	Docs     string    `yaml:"docs"`
	Examples []Example `yaml:"examples"`
}

// typeDocument is the mapping form of a type.
type typeDocument struct {
	Name   string       `yaml:"name"`
	Link   string       `yaml:"link"`
	Nested *[]yaml.Node `yaml:"nested"`
}

// Keys accepted in mappings decoded by hand; KnownFields does not reach them.
var (
	fieldKeys   = []string{"name", "required", "type", "docs", "examples"}
	typeKeys    = []string{"name", "link", "nested"}
	exampleKeys = []string{"lang", "content"}
)

// LoadModel reads a YAML or JSON model file.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("%w: %w", ErrReadModelFile, err)
	}

	return DecodeModel(data)
}

// DecodeModel decodes and validates YAML or JSON model bytes.
func DecodeModel(data []byte) (Model, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc modelDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Model{}, fmt.Errorf("%w: empty document", ErrDecodeModel)
		}

		return Model{}, fmt.Errorf("%w: %w", ErrDecodeModel, err)
	}

	model := Model{Structs: doc.Structs}
	if !doc.Struct.isZero() {
		model.Structs = append([]Struct{doc.Struct}, model.Structs...)
	}

	if err := validateModel(model); err != nil {
		return Model{}, err
	}

	return model, nil
}

// Names returns struct names in model order.
func (m Model) Names() []string {
	names := make([]string, 0, len(m.Structs))
	for _, s := range m.Structs {
		names = append(names, s.Name)
	}

	return names
}

// Lookup finds a struct by exact name.
func (m Model) Lookup(name string) (Struct, bool) {
	for _, s := range m.Structs {
		if s.Name == name {
			return s, true
		}
	}

	return Struct{}, false
}

// UnmarshalYAML decodes a field whose type is an expression string or mapping.
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	if err := checkFieldKeys(value); err != nil {
		return err
	}

	var doc fieldDocument
	if err := value.Decode(&doc); err != nil {
		return err
	}

	fieldType, err := decodeTypeNode(&doc.Type)
	if err != nil {
		return fmt.Errorf("field %q: %w", doc.Name, err)
	}

	*f = Field{
		Name:     doc.Name,
		Required: doc.Required,
		Type:     fieldType,
		Docs:     doc.Docs,
		Examples: doc.Examples,
	}

	return nil
}

// decodeTypeNode converts a YAML scalar or mapping into Type; missing or null nodes yield nil.
func decodeTypeNode(node *yaml.Node) (Type, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}

		return ParseType(node.Value)
	case yaml.MappingNode:
		if err := checkMappingKeys(node, typeKeys); err != nil {
			return nil, err
		}

		var doc typeDocument
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}

		return doc.toType(node.Line)
	default:
		return nil, fmt.Errorf("%w: line %d: type must be expression string or mapping", ErrDecodeModel, node.Line)
	}
}

// checkFieldKeys rejects unknown keys in a field mapping and its examples.
func checkFieldKeys(value *yaml.Node) error {
	if err := checkMappingKeys(value, fieldKeys); err != nil {
		return err
	}

	if value.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != "examples" || value.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}

		for _, example := range value.Content[i+1].Content {
			if err := checkMappingKeys(example, exampleKeys); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkMappingKeys returns ErrDecodeModel for the first key of node outside allowed.
func checkMappingKeys(node *yaml.Node, allowed []string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("%w: line %d: unknown key %q", ErrDecodeModel, key.Line, key.Value)
		}
	}

	return nil
}

// toType builds Flat or Nested from the mapping form.
func (doc typeDocument) toType(line int) (Type, error) {
	name := strings.TrimSpace(doc.Name)
	link := strings.TrimSpace(doc.Link)

	var typeName TypeName
	switch {
	case name != "" && link != "":
		return nil, fmt.Errorf("%w: line %d: type sets both name and link", ErrDecodeModel, line)
	case link != "":
		typeName = Link(link)
	case name != "":
		typeName = Primitive(name)
	default:
		return nil, fmt.Errorf("%w: line %d: type needs name or link", ErrDecodeModel, line)
	}

	if doc.Nested == nil {
		return Flat{Name: typeName}, nil
	}

	nested := Nested{Container: typeName}
	for i := range *doc.Nested {
		arg, err := decodeTypeNode(&(*doc.Nested)[i])
		if err != nil {
			return nil, err
		}

		if arg == nil {
			return nil, fmt.Errorf("%w: line %d: null nested type", ErrDecodeModel, line)
		}

		nested.Nested = append(nested.Nested, arg)
	}

	return nested, nil
}

// isZero reports whether no struct value was decoded inline.
func (s Struct) isZero() bool {
	return s.Name == "" && s.Docs == "" && len(s.Examples) == 0 && len(s.Fields) == 0
}

// validateModel checks values that rendering and file layout rely on.
func validateModel(model Model) error {
	if len(model.Structs) == 0 {
		return fmt.Errorf("%w: no structs", ErrInvalidModel)
	}

	seen := make(map[string]struct{}, len(model.Structs))
	for i, s := range model.Structs {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: struct #%d: missing name", ErrInvalidModel, i+1)
		}

		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: struct %q: duplicate name", ErrInvalidModel, s.Name)
		}

		seen[s.Name] = struct{}{}

		if err := validateExamples(s.Examples); err != nil {
			return fmt.Errorf("%w: struct %q: %w", ErrInvalidModel, s.Name, err)
		}

		for j, field := range s.Fields {
			if strings.TrimSpace(field.Name) == "" {
				return fmt.Errorf("%w: struct %q: field #%d: missing name", ErrInvalidModel, s.Name, j+1)
			}

			if field.Type == nil {
				return fmt.Errorf("%w: struct %q: field %q: missing type", ErrInvalidModel, s.Name, field.Name)
			}

			if err := validateExamples(field.Examples); err != nil {
				return fmt.Errorf("%w: struct %q: field %q: %w", ErrInvalidModel, s.Name, field.Name, err)
			}
		}
	}

	return nil
}

// validateExamples requires a language tag on every example.
func validateExamples(examples []Example) error {
	for i, example := range examples {
		if strings.TrimSpace(example.Lang) == "" {
			return fmt.Errorf("example #%d: missing lang", i+1)
		}
	}

	return nil
}
