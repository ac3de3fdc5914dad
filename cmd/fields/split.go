// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"cloudeng.io/fields"
)

type splitFlags struct {
	Separator string `subcmd:"sep,,literal separator text"`
	Rune      string `subcmd:"rune,,separator as a single character"`
	Pattern   string `subcmd:"pattern,,separator as a regular expression"`
	Chars     bool   `subcmd:"chars,false,split into individual characters"`
	Max       uint   `subcmd:"max,0,maximum number of fields - 0 means unbounded"`
	OutputSep string `subcmd:"ofs,,text printed between output fields - a tab when unset"`
}

// separator returns the Separator requested by the flags, defaulting
// to whitespace when none was specified. A malformed --pattern is
// reported here, before any input is read.
func (sf *splitFlags) separator() (fields.Separator, error) {
	var seps []fields.Separator
	if len(sf.Separator) > 0 {
		seps = append(seps, fields.Literal(sf.Separator))
	}
	if len(sf.Rune) > 0 {
		r, n := utf8.DecodeRuneInString(sf.Rune)
		if n != len(sf.Rune) || r == utf8.RuneError {
			return nil, fmt.Errorf("--rune must be a single character: %q", sf.Rune)
		}
		seps = append(seps, fields.Rune(r))
	}
	if len(sf.Pattern) > 0 {
		sep, err := fields.CompilePattern(sf.Pattern)
		if err != nil {
			return nil, fmt.Errorf("--pattern: %v", err)
		}
		seps = append(seps, sep)
	}
	if sf.Chars {
		seps = append(seps, fields.Literal(""))
	}
	switch len(seps) {
	case 0:
		return fields.Whitespace(), nil
	case 1:
		return seps[0], nil
	}
	return nil, fmt.Errorf("--sep, --rune, --pattern and --chars are mutually exclusive")
}

func splitCmd(_ context.Context, values interface{}, args []string) error {
	sf := values.(*splitFlags)
	sep, err := sf.separator()
	if err != nil {
		return err
	}
	ofs := sf.OutputSep
	if len(ofs) == 0 {
		ofs = "\t"
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	return forEachInput(args, func(line string) error {
		_, err := fmt.Fprintln(out, fields.Join(fields.Split(line, sep, sf.Max), ofs))
		return err
	})
}
