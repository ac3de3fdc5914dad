// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fields

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Separator locates field boundaries within a source string. Rune,
// Literal and Pattern construct the supported separator kinds and
// Whitespace returns the default used when no explicit separator is
// appropriate. Separators are immutable and safe for concurrent use.
type Separator interface {
	// match reports the first occurrence of the separator in s as the
	// byte offset at which it starts and its width in bytes. ok is
	// false if s contains no occurrence.
	match(s string) (start, width int, ok bool)
}

// Rune returns a Separator matching each occurrence of the rune r.
func Rune(r rune) Separator {
	return runeSeparator(r)
}

type runeSeparator rune

func (r runeSeparator) match(s string) (int, int, bool) {
	idx := strings.IndexRune(s, rune(r))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, utf8.RuneLen(rune(r)), true
}

// Literal returns a Separator matching each occurrence of the literal
// text sep. An empty literal matches a zero width position at every
// point in the source and hence splits it into individual characters.
func Literal(sep string) Separator {
	return literalSeparator(sep)
}

type literalSeparator string

func (l literalSeparator) match(s string) (int, int, bool) {
	idx := strings.Index(s, string(l))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, len(l), true
}

// Pattern returns a Separator matching the leftmost match of the
// compiled regular expression re. A zero width match is treated
// exactly as for an empty Literal.
func Pattern(re *regexp.Regexp) Separator {
	return patternSeparator{re}
}

type patternSeparator struct {
	re *regexp.Regexp
}

func (p patternSeparator) match(s string) (int, int, bool) {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1] - loc[0], true
}

// CompilePattern compiles expr and returns a Pattern Separator for it.
// A malformed expression is reported here, before any splitting takes
// place; splitting itself cannot fail.
func CompilePattern(expr string) (Separator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return Pattern(re), nil
}

var whitespaceRE = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`\s+`)
})

// Whitespace returns the default separator, one or more whitespace
// characters, equivalent to Pattern(regexp.MustCompile(`\s+`)). The
// pattern is compiled at most once for the lifetime of the process.
func Whitespace() Separator {
	return patternSeparator{whitespaceRE()}
}

// cut determines the end of the field starting at byte offset a of s
// and the offset at which the scan resumes, one separator width
// later. ok is false when s contains no separator occurrence at or
// after a, in which case the field runs to the end of s. A zero width
// occurrence cuts the field one rune after the occurrence itself so
// that the scan always advances; for a zero width occurrence at the
// very end of s the returned end exceeds len(s) and callers clamp it.
func cut(s string, a int, sep Separator) (end, resume int, ok bool) {
	start, width, ok := sep.match(s[a:])
	if !ok {
		return len(s), len(s), false
	}
	end = a + start
	if width == 0 {
		_, n := utf8.DecodeRuneInString(s[end:])
		if n == 0 {
			n = 1
		}
		end += n
	}
	return end, end + width, true
}
