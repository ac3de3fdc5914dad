// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command fields splits text into fields and joins values into a
// single string, using the cloudeng.io/fields package.
package main

import (
	"bufio"
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
)

var cmdSet subcmd.CommandSet

func init() {
	splitFlagsSpec := subcmd.NewFlags("split", "split each argument, or each line of stdin, into fields", "<text>...")
	splitFlagsSpec.MustRegisterFlagStruct("subcmd", &splitFlags{}, nil, nil)

	joinFlagsSpec := subcmd.NewFlags("join", "join the arguments, or the lines of stdin, into a single string", "<element>...")
	joinFlagsSpec.MustRegisterFlagStruct("subcmd", &joinFlags{},
		map[string]interface{}{"joiner": ", "}, nil)

	cmdSet = subcmd.First(splitFlagsSpec, splitCmd).Append(joinFlagsSpec, joinCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// forEachInput applies fn to each argument, or to each line of stdin
// when no arguments were supplied, and aggregates the errors.
func forEachInput(args []string, fn func(string) error) error {
	errs := &errors.M{}
	if len(args) > 0 {
		for _, arg := range args {
			errs.Append(fn(arg))
		}
		return errs.Err()
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		errs.Append(fn(sc.Text()))
	}
	errs.Append(sc.Err())
	return errs.Err()
}
