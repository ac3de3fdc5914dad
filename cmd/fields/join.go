// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/fields"
)

type joinFlags struct {
	Joiner string `subcmd:"joiner,,text inserted between elements"`
	Last   string `subcmd:"last,,text inserted before the final element - the joiner when unset"`
}

func joinCmd(_ context.Context, values interface{}, args []string) error {
	jf := values.(*joinFlags)
	last := jf.Last
	if len(last) == 0 {
		last = jf.Joiner
	}
	elems := args
	if len(elems) == 0 {
		if err := forEachInput(nil, func(line string) error {
			elems = append(elems, line)
			return nil
		}); err != nil {
			return err
		}
	}
	fmt.Println(fields.JoinWith(elems, jf.Joiner, last))
	return nil
}
