/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"strings"

	"github.com/hypermodeinc/stemmer/x"
)

type alias struct {
	lang string
	algo Algorithm
}

// aliases lists every accepted language identifier in catalog order: the
// canonical name of each algorithm followed by its short codes. Dutch has no
// "nl" code and "german2" is its own algorithm, not an alias of German.
var aliases = []alias{
	{"danish", Danish}, {"da", Danish},
	{"dutch", Dutch},
	{"english", English}, {"en", English},
	{"finnish", Finnish}, {"fi", Finnish},
	{"french", French}, {"fr", French},
	{"german", German}, {"de", German},
	{"german2", German2},
	{"hungarian", Hungarian}, {"hu", Hungarian},
	{"italian", Italian}, {"it", Italian},
	{"kraaij_pohlmann", KraaijPohlmann},
	{"lovins", Lovins},
	{"norwegian", Norwegian}, {"no", Norwegian},
	{"porter", Porter},
	{"portuguese", Portuguese}, {"pt", Portuguese},
	{"romanian", Romanian}, {"ro", Romanian},
	{"russian", Russian}, {"ru", Russian},
	{"spanish", Spanish}, {"es", Spanish},
	{"swedish", Swedish}, {"sv", Swedish},
	{"turkish", Turkish}, {"tr", Turkish},
}

var (
	langs     = make(map[string]Algorithm, len(aliases))
	langNames []string
)

func init() {
	for _, a := range aliases {
		_, ok := langs[a.lang]
		x.AssertTruef(!ok, "Duplicate stemmer language: %s", a.lang)
		x.AssertTruef(a.algo.Valid(), "Invalid algorithm %d for language %s", a.algo, a.lang)
		langs[a.lang] = a.algo
		langNames = append(langNames, a.lang)
	}
	for _, a := range Algorithms() {
		_, ok := langs[a.String()]
		x.AssertTruef(ok, "Algorithm %s has no catalog entry", a)
	}
}

// Resolve maps a language identifier to its algorithm. Identifiers match
// exactly: no case folding, trimming or prefix matching. The empty identifier
// resolves to the zero Algorithm, meaning no algorithm selected.
func Resolve(lang string) (Algorithm, error) {
	if lang == "" {
		return 0, nil
	}
	algo, ok := langs[lang]
	if !ok {
		return 0, &UnknownLanguageError{Lang: lang}
	}
	return algo, nil
}

// Languages returns every accepted identifier in catalog order.
func Languages() []string {
	out := make([]string, len(langNames))
	copy(out, langNames)
	return out
}

// Aliases returns the identifiers that resolve to a, canonical name first.
func Aliases(a Algorithm) []string {
	var out []string
	for _, al := range aliases {
		if al.algo == a {
			out = append(out, al.lang)
		}
	}
	return out
}

// AvailableLanguages returns the space separated catalog of every accepted
// identifier, as used in help text.
func AvailableLanguages() string {
	return strings.Join(langNames, " ")
}
