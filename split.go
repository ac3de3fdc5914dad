// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fields

import "iter"

// Split divides s into the fields separated by sep, scanning left to
// right. The returned fields are subslices of s and an empty s yields
// no fields at all.
//
// With maxFields == 0 the number of fields is unbounded but a run of
// empty fields at the tail of s is suppressed; empty fields at the
// start or interior are preserved:
//
//	Split("a,b,,c", Literal(","), 0) == []string{"a", "b", "", "c"}
//	Split("a,b,,", Literal(","), 0)  == []string{"a", "b"}
//
// With maxFields > 0 at most maxFields fields are returned and no
// empty fields are suppressed; once maxFields-1 fields have been cut,
// the final field absorbs the remainder of s verbatim, including any
// further separator occurrences:
//
//	Split("a,b,c", Literal(","), 2) == []string{"a", "b,c"}
//
// A source that contains no separator occurrences, or a maxFields of
// 1, yields a single field equal to s.
func Split(s string, sep Separator, maxFields uint) []string {
	if len(s) == 0 {
		return nil
	}
	if maxFields > 0 {
		return splitBounded(s, sep, maxFields)
	}
	return splitAll(s, sep)
}

func splitBounded(s string, sep Separator, maxFields uint) []string {
	var fields []string
	a := 0
	for {
		b, next, ok := len(s), len(s), false
		if uint(len(fields)) < maxFields-1 {
			b, next, ok = cut(s, a, sep)
		}
		fields = append(fields, s[a:min(b, len(s))])
		a = next
		// A cut landing exactly on the end of s produces one final
		// empty field; a cut overrunning it does not.
		if !ok || a > len(s) {
			return fields
		}
	}
}

func splitAll(s string, sep Separator) []string {
	var fields []string
	trailingEmpty := 0
	a := 0
	for {
		b, next, ok := cut(s, a, sep)
		if b == a {
			trailingEmpty++
		} else {
			for ; trailingEmpty > 0; trailingEmpty-- {
				fields = append(fields, "")
			}
			fields = append(fields, s[a:min(b, len(s))])
		}
		a = next
		if !ok || a >= len(s) {
			return fields
		}
	}
}

// All returns an iterator over the fields of s separated by sep,
// yielding the 0-based index of each field and the field itself in
// left to right order. It is the iterator form of Split with an
// unbounded field count: collecting the yielded fields into a slice
// gives exactly Split(s, sep, 0).
func All(s string, sep Separator) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if len(s) == 0 {
			return
		}
		i := 0
		trailingEmpty := 0
		a := 0
		for {
			b, next, ok := cut(s, a, sep)
			if b == a {
				trailingEmpty++
			} else {
				for ; trailingEmpty > 0; trailingEmpty-- {
					if !yield(i, "") {
						return
					}
					i++
				}
				if !yield(i, s[a:min(b, len(s))]) {
					return
				}
				i++
			}
			a = next
			if !ok || a >= len(s) {
				return
			}
		}
	}
}
