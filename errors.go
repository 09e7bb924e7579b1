// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzsave

package lzsave

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrUnexpectedEOF      = errors.New("unexpected end of input before output is complete")
	ErrTruncatedMatch     = errors.New("unexpected end of input inside back-reference")
	ErrLookBehindUnderrun = errors.New("back-reference points before start of output")
	ErrOutputOverrun      = errors.New("back-reference runs past end of output")
	ErrTrailingData       = errors.New("trailing bytes after lzss stream")
	ErrNilReader          = errors.New("reader is nil")
	ErrNegativeOutLen     = errors.New("output length must be non-negative")
	ErrInvalidConfig      = errors.New("invalid format config")
)
