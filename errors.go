// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/structdoc

package structdoc

import "errors"

var (
	// ErrNilType is returned when a field type or type name is missing.
	ErrNilType = errors.New("nil type")
	// ErrTypeDepth is returned when type nesting exceeds Options.MaxTypeDepth.
	ErrTypeDepth = errors.New("type nesting too deep")
	// ErrParseType is returned when a type expression cannot be parsed.
	ErrParseType = errors.New("parse type expression")
	// ErrReadModelFile is returned when model file loading fails.
	ErrReadModelFile = errors.New("read model file")
	// ErrDecodeModel is returned when model YAML decoding fails.
	ErrDecodeModel = errors.New("decode model")
	// ErrInvalidModel is returned when a decoded model misses required values.
	ErrInvalidModel = errors.New("invalid model")
	// ErrEncodeModel is returned when model YAML encoding fails.
	ErrEncodeModel = errors.New("encode model")
)
