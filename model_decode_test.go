// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModelFixture(t *testing.T) {
	t.Parallel()

	model, err := LoadModel(filepath.Join("testdata", "model.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Config", "Item", "Empty"}, model.Names())

	config, ok := model.Lookup("Config")
	require.True(t, ok)
	require.Len(t, config.Fields, 3)
	require.Len(t, config.Examples, 1)
	assert.Equal(t, Example{Lang: "yaml", Content: "path: /srv/data\nitems: []"}, config.Examples[0])

	items := config.Fields[1]
	assert.Equal(t, "items", items.Name)
	assert.False(t, items.Required)
	assert.Equal(t, Nested{Container: Primitive("Vec"), Nested: []Type{Flat{Name: Link("Item")}}}, items.Type)
	assert.Equal(t, "Items to process.\n\nProcessed in declaration order.\n", items.Docs)

	item, ok := model.Lookup("Item")
	require.True(t, ok)
	assert.Equal(t, Flat{Name: Primitive("String")}, item.Fields[0].Type)
	assert.Equal(t, Nested{Container: Primitive("Option"), Nested: []Type{Flat{Name: Primitive("u32")}}}, item.Fields[1].Type)
	assert.Equal(t, Flat{Name: Link("Config")}, item.Fields[2].Type)

	empty, ok := model.Lookup("Empty")
	require.True(t, ok)
	assert.Empty(t, empty.Fields)

	_, ok = model.Lookup("Missing")
	assert.False(t, ok)
}

func TestDecodeModelSingleStruct(t *testing.T) {
	t.Parallel()

	model, err := DecodeModel([]byte(`
name: Config
docs: A config.
fields:
  - name: path
    required: true
    type: String
`))
	require.NoError(t, err)
	require.Len(t, model.Structs, 1)

	want := Struct{
		Name: "Config",
		Docs: "A config.",
		Fields: []Field{
			{Name: "path", Required: true, Type: Flat{Name: Primitive("String")}},
		},
	}
	assert.Equal(t, want, model.Structs[0])
}

func TestDecodeModelJSON(t *testing.T) {
	t.Parallel()

	model, err := DecodeModel([]byte(`{
  "structs": [
    {
      "name": "Config",
      "docs": "A config.",
      "fields": [
        {"name": "items", "type": {"name": "Vec", "nested": ["HashMap<String, @Item>"]}},
        {"name": "empty", "type": {"name": "Vec", "nested": []}}
      ]
    }
  ]
}`))
	require.NoError(t, err)

	fields := model.Structs[0].Fields
	require.Len(t, fields, 2)

	rendered, err := RenderType(fields[0].Type)
	require.NoError(t, err)
	assert.Equal(t, "Vec<Map<String, <<Item>>>>", rendered)

	rendered, err = RenderType(fields[1].Type)
	require.NoError(t, err)
	assert.Equal(t, "Vec<>", rendered)
}

func TestDecodeModelErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want error
	}{
		{name: "empty document", data: "", want: ErrDecodeModel},
		{name: "no structs", data: "structs: []", want: ErrInvalidModel},
		{name: "unknown key", data: "structs:\n  - name: A\n    colour: red\n", want: ErrDecodeModel},
		{name: "unknown field key", data: "name: A\nfields:\n  - name: f\n    type: u8\n    requird: true\n", want: ErrDecodeModel},
		{name: "unknown type key", data: "name: A\nfields:\n  - name: f\n    type: {name: Vec, nestd: [u8]}\n", want: ErrDecodeModel},
		{name: "unknown nested type key", data: "name: A\nfields:\n  - name: f\n    type: {name: Vec, nested: [{lnk: B}]}\n", want: ErrDecodeModel},
		{name: "unknown field example key", data: "name: A\nfields:\n  - name: f\n    type: u8\n    examples:\n      - lang: x\n        contnt: y\n", want: ErrDecodeModel},
		{name: "bad expression", data: "name: A\nfields:\n  - name: f\n    type: Vec<\n", want: ErrParseType},
		{name: "missing struct name", data: "structs:\n  - docs: nameless\n", want: ErrInvalidModel},
		{name: "duplicate struct", data: "structs:\n  - name: A\n  - name: A\n", want: ErrInvalidModel},
		{name: "missing field name", data: "name: A\nfields:\n  - type: u8\n", want: ErrInvalidModel},
		{name: "missing field type", data: "name: A\nfields:\n  - name: f\n", want: ErrInvalidModel},
		{name: "missing example lang", data: "name: A\nexamples:\n  - content: x\n", want: ErrInvalidModel},
		{name: "missing field example lang", data: "name: A\nfields:\n  - name: f\n    type: u8\n    examples:\n      - content: x\n", want: ErrInvalidModel},
		{name: "type name and link", data: "name: A\nfields:\n  - name: f\n    type: {name: u8, link: B}\n", want: ErrDecodeModel},
		{name: "type without name", data: "name: A\nfields:\n  - name: f\n    type: {nested: [u8]}\n", want: ErrDecodeModel},
		{name: "type sequence", data: "name: A\nfields:\n  - name: f\n    type: [u8]\n", want: ErrDecodeModel},
		{name: "nested null", data: "name: A\nfields:\n  - name: f\n    type: {name: Vec, nested: [~]}\n", want: ErrDecodeModel},
	}

	for _, tc := range cases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeModel([]byte(tc.data))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeModelUnknownKeyLine(t *testing.T) {
	t.Parallel()

	_, err := DecodeModel([]byte("name: A\nfields:\n  - name: f\n    type: u8\n    requird: true\n"))
	require.ErrorIs(t, err, ErrDecodeModel)
	assert.Contains(t, err.Error(), `line 5: unknown key "requird"`)
}

func TestLoadModelMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadModel(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrReadModelFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStructLinks(t *testing.T) {
	t.Parallel()

	s := Struct{
		Name: "Graph",
		Fields: []Field{
			{Name: "root", Type: MustParseType("@Node")},
			{Name: "edges", Type: MustParseType("Vec<@Edge<@Node, u8>>")},
			{Name: "index", Type: MustParseType("HashMap<String, @Edge>")},
			{Name: "size", Type: MustParseType("usize")},
		},
	}

	assert.Equal(t, []string{"Node", "Edge"}, s.Links())
	assert.Empty(t, Struct{Name: "Plain"}.Links())
}

func TestEncodeModelRoundTrip(t *testing.T) {
	t.Parallel()

	model, err := LoadModel(filepath.Join("testdata", "model.yaml"))
	require.NoError(t, err)

	data, err := EncodeModel(model)
	require.NoError(t, err)

	decoded, err := DecodeModel(data)
	require.NoError(t, err)
	assert.Equal(t, model, decoded)

	again, err := EncodeModel(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestEncodeModelCanonicalTypes(t *testing.T) {
	t.Parallel()

	data, err := EncodeModel(Model{Structs: []Struct{{
		Name: "Config",
		Fields: []Field{
			{
				Name:     "items",
				Required: true,
				Type:     Nested{Container: Primitive("Vec"), Nested: []Type{Flat{Name: Link("Item")}}},
				Docs:     "First.\n\nSecond.\n",
			},
		},
	}}})
	require.NoError(t, err)

	want := `structs:
  - name: Config
    fields:
      - name: items
        required: true
        type: Vec<@Item>
        docs: |
          First.

          Second.
`
	assert.Equal(t, want, string(data))
}
