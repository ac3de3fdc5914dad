// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package testfields provides support for generating random fields
// and separators for testing split and join operations.
package testfields

import (
	"math/rand"
	"strings"
	"time"
)

// Random can be used to generate random fields whose contents are
// guaranteed not to collide with a chosen separator.
type Random struct {
	options
	r *rand.Rand
}

type options struct {
	seed     int64
	maxBytes int
}

// Option represents an option to the factory methods in this package.
type Option func(o *options)

// SeedOpt fixes the generator's seed so that failing tests reproduce.
func SeedOpt(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// RuneLenOpt restricts generated runes to those that encode to at
// most nBytes (1 to 4) bytes of UTF-8.
func RuneLenOpt(nBytes int) Option {
	return func(o *options) {
		o.maxBytes = nBytes
	}
}

// NewRandom returns a new instance of Random. Unless SeedOpt is
// supplied the generator is seeded from the current time.
func NewRandom(opts ...Option) *Random {
	r := &Random{}
	r.seed = time.Now().UnixNano()
	r.maxBytes = 4
	for _, fn := range opts {
		fn(&r.options)
	}
	r.r = rand.New(rand.NewSource(r.seed))
	return r
}

// Seed returns the seed in use.
func (r *Random) Seed() int64 {
	return r.seed
}

// tableRange is a contiguous run of code points whose members all
// encode to the same number of UTF-8 bytes.
type tableRange struct {
	lo, hi rune
}

var tableRanges = []tableRange{
	{33, 126},        // ASCII, printable, 1 byte
	{248, 696},       // Latin, 2 byte
	{7680, 7935},     // Latin, 3 byte
	{118784, 119029}, // Common, 4 byte
}

func (r *Random) genRune(avoid string) rune {
	for {
		tr := tableRanges[r.r.Intn(r.maxBytes)]
		c := rune(r.r.Int31n(int32(tr.hi-tr.lo))) + tr.lo
		if !strings.ContainsRune(avoid, c) {
			return c
		}
	}
}

// Field returns a string of nRunes randomly chosen runes, none of
// which occur in avoid.
func (r *Random) Field(nRunes int, avoid string) string {
	sb := &strings.Builder{}
	for i := 0; i < nRunes; i++ {
		sb.WriteRune(r.genRune(avoid))
	}
	return sb.String()
}

// Fields returns n fields of 1 to maxRunes runes each, none of which
// contain any rune occurring in avoid.
func (r *Random) Fields(n, maxRunes int, avoid string) []string {
	fields := make([]string, n)
	for i := range fields {
		fields[i] = r.Field(1+r.r.Intn(maxRunes), avoid)
	}
	return fields
}
