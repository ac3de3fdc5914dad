// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fields

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Join returns the concatenation of the textual representation of the
// elements of elems with joiner between consecutive elements. An
// empty slice yields the empty string and a single element yields its
// representation alone.
func Join[T any](elems []T, joiner string) string {
	return JoinSeqWith(slices.Values(elems), joiner, joiner)
}

// JoinWith is like Join except that lastJoiner, rather than joiner,
// is placed between the second to last and last elements. It is
// intended for rendering natural language lists:
//
//	JoinWith([]string{"x", "y", "z"}, ", ", " or ") == "x, y or z"
func JoinWith[T any](elems []T, joiner, lastJoiner string) string {
	return JoinSeqWith(slices.Values(elems), joiner, lastJoiner)
}

// JoinSeq is like Join but accepts any sequence.
func JoinSeq[T any](seq iter.Seq[T], joiner string) string {
	return JoinSeqWith(seq, joiner, joiner)
}

// JoinSeqWith is like JoinWith but accepts any sequence. The sequence
// is consumed exactly once.
func JoinSeqWith[T any](seq iter.Seq[T], joiner, lastJoiner string) string {
	out := &strings.Builder{}
	var held string
	n := 0
	// Hold each element back until its successor arrives so that the
	// final junction, and only that one, uses lastJoiner.
	for v := range seq {
		if n > 0 {
			if n > 1 {
				out.WriteString(joiner)
			}
			out.WriteString(held)
		}
		held = text(v)
		n++
	}
	switch n {
	case 0:
		return ""
	case 1:
		return held
	}
	out.WriteString(lastJoiner)
	out.WriteString(held)
	return out.String()
}

// text returns the string representation of v, bypassing the fmt
// machinery for values that are already strings.
func text[T any](v T) string {
	if s, ok := any(v).(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
