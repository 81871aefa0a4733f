/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/hypermodeinc/stemmer/stem"
	"github.com/hypermodeinc/stemmer/x"
)

const enBase = "en"

// langCodes is the BCP47 base of the text each algorithm stems.
var langCodes = map[stem.Algorithm]string{
	stem.Danish:         "da",
	stem.Dutch:          "nl",
	stem.English:        "en",
	stem.Finnish:        "fi",
	stem.French:         "fr",
	stem.German:         "de",
	stem.German2:        "de",
	stem.Hungarian:      "hu",
	stem.Italian:        "it",
	stem.KraaijPohlmann: "nl",
	stem.Lovins:         "en",
	stem.Norwegian:      "no",
	stem.Porter:         "en",
	stem.Portuguese:     "pt",
	stem.Romanian:       "ro",
	stem.Russian:        "ru",
	stem.Spanish:        "es",
	stem.Swedish:        "sv",
	stem.Turkish:        "tr",
}

// baseAlgorithms picks the algorithm for text only known by its BCP47 base.
// The first algorithm of a base in catalog order wins, so "nl" stems with
// Dutch and "de" with German.
var baseAlgorithms = make(map[string]stem.Algorithm)

func init() {
	for _, algo := range stem.Algorithms() {
		code, ok := langCodes[algo]
		x.AssertTruef(ok, "Algorithm %s has no language code", algo)
		if _, ok := baseAlgorithms[code]; !ok {
			baseAlgorithms[code] = algo
		}
	}
}

// LangBase returns the BCP47 base of a language tag. Tags that do not parse,
// or whose base is only a guess, count as English.
func LangBase(lang string) string {
	if lang == "" {
		return enBase
	}
	tag, _ := language.Parse(lang)
	if tag == language.Und {
		return enBase
	}
	if base, conf := tag.Base(); conf > language.No {
		return base.String()
	}
	return enBase
}

// analysisLang returns the algorithm stemming text tagged lang and the base
// whose stop words are removed from it. Catalog identifiers are tried before
// BCP47 parsing, so "german2" keeps its own algorithm with the German stop
// words while "de-AT" falls back to German. Algorithm is zero when no
// algorithm covers the language.
func analysisLang(lang string) (stem.Algorithm, string) {
	if algo, err := stem.Resolve(lang); err == nil && algo.Valid() {
		return algo, langCodes[algo]
	}
	base := LangBase(lang)
	algo, ok := baseAlgorithms[base]
	if !ok {
		glog.V(2).Infof("No stemmer for language %q (base %q), leaving tokens unstemmed", lang, base)
	}
	return algo, base
}

// CheckLang returns an error unless lang is empty, a catalog identifier or a
// well-formed BCP47 tag. Tokens accepts any lang; callers taking lang from
// users check it first.
func CheckLang(lang string) error {
	if lang == "" {
		return nil
	}
	if _, err := stem.Resolve(lang); err == nil {
		return nil
	}
	if _, err := language.Parse(lang); err != nil {
		return errors.Wrapf(err, "invalid language %q", lang)
	}
	return nil
}
