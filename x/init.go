/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
	"os"
)

var (
	// These variables are set using -ldflags
	stemmerVersion string
	gitBranch      string
	lastCommitSHA  string
	lastCommitTime string
)

// BuildDetails returns a string containing details about the stemmer binary.
func BuildDetails() string {
	return fmt.Sprintf(`
Stemmer version  : %v
Commit SHA-1     : %v
Commit timestamp : %v
Branch           : %v

Licensed under the Apache Public License 2.0.

`,
		Version(), lastCommitSHA, lastCommitTime, gitBranch)
}

// PrintVersionOnly prints version and other helpful information if --version.
func PrintVersionOnly() {
	fmt.Println(BuildDetails())
	os.Exit(0)
}

// Version returns the version set at build time, or "dev" for local builds.
func Version() string {
	if stemmerVersion == "" {
		return "dev"
	}
	return stemmerVersion
}
