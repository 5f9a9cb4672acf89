// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

/*
Package structdoc renders AsciiDoc reference pages from documentation models.

A model describes one data structure: its name, prose, usage examples and
ordered fields. Field types are expressions over primitive names and
cross-references to other documented structs, nested to any depth. Output is
streamed into an io.Writer in one pass and is byte-for-byte deterministic.

Render one struct:

	doc := structdoc.Struct{
		Name: "Config",
		Docs: "A config.",
		Fields: []structdoc.Field{
			{
				Name:     "path",
				Required: true,
				Type:     structdoc.Flat{Name: structdoc.Primitive("String")},
			},
			{
				Name: "items",
				Type: structdoc.MustParseType("Vec<HashMap<String, @Item>>"),
				Docs: "First paragraph.\n\nSecond paragraph.\n",
			},
		},
	}

	if err := structdoc.Render(os.Stdout, doc, structdoc.Options{}); err != nil {
		return err
	}

Output:

	= Config

	A config.

	.Fields
	* `path` _(required)_
	+
	Type: `String`
	* `items` _(optional)_
	+
	Type: `Vec<Map<String, <<Item>>>>`
	+
	First paragraph.
	+
	Second paragraph.

Load a YAML or JSON model file and render every struct with banner:

	model, err := structdoc.LoadModel("model.yaml")
	if err != nil {
		return err
	}

	for _, s := range model.Structs {
		text, err := structdoc.RenderString(s, structdoc.Options{Banner: true})
		if err != nil {
			return err
		}

		fmt.Print(text)
	}
*/
package structdoc
