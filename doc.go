// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fields provides Perl-like functions for splitting a string
// into fields and for joining collections of values into a single
// string.
//
// Split divides a source string at each occurrence of a separator,
// which may be a single rune, a literal substring, a compiled regular
// expression or, by default, a run of whitespace. An optional maximum
// field count caps the output, with the final field absorbing the
// remainder of the source verbatim; without a cap, empty fields at the
// tail of the source are suppressed. The returned fields are
// subslices of the source, no copies are made.
//
// Join concatenates the textual representation of the elements of a
// slice or sequence, optionally using a different joiner before the
// final element. The two joiner form is intended for rendering natural
// language lists:
//
//	fields.JoinWith([]string{"x", "y", "z"}, ", ", " and ")
//
// yields "x, y and z".
//
// Both operations are pure functions with no shared mutable state and
// are safe for concurrent use.
package fields
