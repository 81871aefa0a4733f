/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/hypermodeinc/stemmer/stemmer/cmd"
)

func main() {
	cmd.Execute()
}
