/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"github.com/blevesearch/bleve/v2/analysis"
	// Each package registers the stop_<code> filter of its language.
	_ "github.com/blevesearch/bleve/v2/analysis/lang/da"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/de"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/en"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/es"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/fi"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/fr"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/hu"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/it"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/nl"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/no"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/pt"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/ro"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/ru"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/sv"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/tr"
	"github.com/golang/glog"
)

// stopFilters maps the base of every language with a stemmer to the bleve
// filter holding its stop words.
var stopFilters = make(map[string]string)

func init() {
	for _, code := range langCodes {
		stopFilters[code] = "stop_" + code
	}
}

// filterStopwords drops the stop words of base from input. Bases without a
// stemmer keep all their words.
func filterStopwords(base string, input analysis.TokenStream) analysis.TokenStream {
	name, ok := stopFilters[base]
	if !ok || len(input) == 0 {
		return input
	}
	filter, err := bleveCache.TokenFilterNamed(name)
	if err != nil {
		glog.Errorf("Error while fetching stop words of %q: %s", base, err)
		return input
	}
	return filter.Filter(input)
}
