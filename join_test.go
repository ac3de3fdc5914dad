// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fields_test

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/fields"
)

func TestJoinWith(t *testing.T) {
	for _, tc := range []struct {
		name   string
		elems  []string
		joiner string
		last   string
		want   string
	}{
		{"empty", nil, ",", " and ", ""},
		{"one", []string{"x"}, ",", " and ", "x"},
		{"two", []string{"x", "y"}, ",", " and ", "x and y"},
		{"three", []string{"x", "y", "z"}, ",", " and ", "x,y and z"},
		{"four", []string{"a", "b", "c", "d"}, ", ", " or ", "a, b, c or d"},
		{"empty elements", []string{"", "", ""}, ",", ",", ",,"},
		{"empty joiners", []string{"x", "y", "z"}, "", "", "xyz"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := fields.JoinWith(tc.elems, tc.joiner, tc.last); got != tc.want {
				t.Errorf("JoinWith(%v, %q, %q) = %q, want %q", tc.elems, tc.joiner, tc.last, got, tc.want)
			}
		})
	}
}

func TestJoinVsStrings(t *testing.T) {
	for _, tc := range [][]string{
		nil,
		{"a"},
		{"a", "b"},
		{"a", "b", "c"},
		{"", "x", ""},
	} {
		for _, sep := range []string{"", ",", " :: "} {
			if got, want := fields.Join(tc, sep), strings.Join(tc, sep); got != want {
				t.Errorf("Join(%v, %q) = %q, want strings.Join = %q", tc, sep, got, want)
			}
		}
	}
}

type celsius float64

func (c celsius) String() string {
	return fmt.Sprintf("%.1fC", float64(c))
}

func TestJoinConversion(t *testing.T) {
	if got, want := fields.Join([]int{1, 2, 3}, "-"), "1-2-3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	temps := []celsius{20.5, 21}
	if got, want := fields.JoinWith(temps, ", ", " and "), "20.5C and 21.0C"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// countingSeq yields the supplied elements and records how many times
// the sequence is iterated.
func countingSeq(elems []string, passes *int) iter.Seq[string] {
	return func(yield func(string) bool) {
		*passes++
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}
}

func TestJoinSeq(t *testing.T) {
	var passes int
	seq := countingSeq([]string{"x", "y", "z"}, &passes)
	if got, want := fields.JoinSeqWith(seq, ", ", " and "), "x, y and z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if passes != 1 {
		t.Errorf("sequence consumed %d times, want 1", passes)
	}
	if got, want := fields.JoinSeq(slices.Values([]string{"a", "b"}), "+"), "a+b"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoinSplitComposition(t *testing.T) {
	src := "x,y,z"
	sep := fields.Literal(",")
	if got := fields.Join(fields.Split(src, sep, 0), ","); got != src {
		t.Errorf("Join(Split(%q)) = %q, want %q", src, got, src)
	}
	if got, want := fields.JoinWith(fields.Split(src, sep, 0), ", ", " and "), "x, y and z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
