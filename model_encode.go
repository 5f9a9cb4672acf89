// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeModel serializes model as canonical YAML.
//
// Keys keep a fixed order, empty values are omitted, field types are written
// as type expressions and multi-line prose uses literal block style.
func EncodeModel(model Model) ([]byte, error) {
	structs := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range model.Structs {
		structs.Content = append(structs.Content, yamlNodeForStruct(s))
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	root.Content = append(root.Content, yamlScalarNode("!!str", "structs"), structs)

	data, err := marshalYAMLNode(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeModel, err)
	}

	return data, nil
}

// marshalYAMLNode serializes node as one YAML document with two-space indent.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func yamlNodeForStruct(s Struct) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	appendYAMLString(node, "name", s.Name)
	appendYAMLString(node, "docs", s.Docs)
	appendYAMLExamples(node, s.Examples)

	if len(s.Fields) > 0 {
		fields := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, field := range s.Fields {
			fields.Content = append(fields.Content, yamlNodeForField(field))
		}

		node.Content = append(node.Content, yamlScalarNode("!!str", "fields"), fields)
	}

	return node
}

func yamlNodeForField(f Field) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	appendYAMLString(node, "name", f.Name)
	if f.Required {
		node.Content = append(node.Content,
			yamlScalarNode("!!str", "required"),
			yamlScalarNode("!!bool", strconv.FormatBool(f.Required)),
		)
	}

	appendYAMLString(node, "type", FormatType(f.Type))
	appendYAMLString(node, "docs", f.Docs)
	appendYAMLExamples(node, f.Examples)
	return node
}

func appendYAMLExamples(node *yaml.Node, examples []Example) {
	if len(examples) == 0 {
		return
	}

	items := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, example := range examples {
		item := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		appendYAMLString(item, "lang", example.Lang)
		appendYAMLString(item, "content", example.Content)
		items.Content = append(items.Content, item)
	}

	node.Content = append(node.Content, yamlScalarNode("!!str", "examples"), items)
}

// appendYAMLString adds key/value pair when value is not empty.
func appendYAMLString(node *yaml.Node, key, value string) {
	if value == "" {
		return
	}

	valueNode := yamlScalarNode("!!str", value)
	if strings.Contains(value, "\n") {
		valueNode.Style = yaml.LiteralStyle
	}

	node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
