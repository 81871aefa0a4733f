/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"github.com/blevesearch/bleve/v2/analysis"

	"github.com/hypermodeinc/stemmer/stem"
)

// filterStemmers replaces every term of input with its stem. A nil stemmer
// leaves the stream unmodified.
func filterStemmers(st stem.Stemmer, input analysis.TokenStream) analysis.TokenStream {
	if st == nil || len(input) == 0 {
		return input
	}
	for _, t := range input {
		t.Term = []byte(st.Stem(string(t.Term)))
	}
	return input
}
