/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// This file contains some functions for error handling. Library code returns
// errors; these helpers are for the few places where a failure can only be a
// programming error (static tables) or a fatal startup condition (flags, config).
// (1) You receive an error and would like to log fatal: use x.Check, x.Checkf.
//     For a boolean condition use x.AssertTruef.
// (2) You want to pass an error on with some context: use errors.Wrapf.

import (
	"log"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		err = errors.Wrap(err, "")
		log.Fatalf("%+v", err)
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		err = errors.Wrapf(err, format, args...)
		log.Fatalf("%+v", err)
	}
}

// AssertTruef logs fatal with the formatted message if b is false.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		log.Fatalf("%+v", errors.Errorf(format, args...))
	}
}

// Fatalf logs fatal.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("%+v", errors.Errorf(format, args...))
}
