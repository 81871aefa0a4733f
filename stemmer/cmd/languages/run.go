/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package languages

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypermodeinc/stemmer/stem"
	"github.com/hypermodeinc/stemmer/x"
)

// Languages is the sub-command invoked when running "stemmer languages".
var Languages x.SubCommand

func init() {
	Languages.Cmd = &cobra.Command{
		Use:   "languages",
		Short: "List the supported language identifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run(os.Stdout, Languages.GetBoolP("list", "", false))
		},
	}
	Languages.EnvPrefix = "STEMMER_LANGUAGES"
	Languages.Cmd.Flags().Bool("list", false,
		"Print one identifier per line along with the algorithm it selects.")
}

func run(w io.Writer, list bool) {
	if !list {
		fmt.Fprintln(w, stem.AvailableLanguages())
		return
	}
	for _, lang := range stem.Languages() {
		algo, err := stem.Resolve(lang)
		x.Check(err)
		fmt.Fprintf(w, "%s\t%s\n", lang, algo)
	}
}
