/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package version

import (
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/stemmer/x"
)

// Version is the sub-command invoked when running "stemmer version".
var Version x.SubCommand

func init() {
	Version.Cmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the stemmer version details",
		Long:  "Version prints the stemmer version as reported by the build details.",
		Run: func(cmd *cobra.Command, args []string) {
			x.PrintVersionOnly()
		},
	}
	Version.EnvPrefix = "STEMMER_VERSION"
}
