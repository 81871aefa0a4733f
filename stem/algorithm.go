/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/danish"
	"github.com/blevesearch/snowballstem/dutch"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/finnish"
	"github.com/blevesearch/snowballstem/french"
	"github.com/blevesearch/snowballstem/german"
	"github.com/blevesearch/snowballstem/hungarian"
	"github.com/blevesearch/snowballstem/italian"
	"github.com/blevesearch/snowballstem/norwegian"
	"github.com/blevesearch/snowballstem/porter"
	"github.com/blevesearch/snowballstem/portuguese"
	"github.com/blevesearch/snowballstem/romanian"
	"github.com/blevesearch/snowballstem/russian"
	"github.com/blevesearch/snowballstem/spanish"
	"github.com/blevesearch/snowballstem/swedish"
	"github.com/blevesearch/snowballstem/turkish"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/stemmer/stem/german2"
	"github.com/hypermodeinc/stemmer/stem/kraaijpohlmann"
	"github.com/hypermodeinc/stemmer/stem/lovins"
)

// Algorithm identifies a stemming algorithm. The zero value selects no
// algorithm and must not be used to stem.
type Algorithm uint8

const (
	Danish Algorithm = iota + 1
	Dutch
	English
	Finnish
	French
	German
	German2
	Hungarian
	Italian
	KraaijPohlmann
	Lovins
	Norwegian
	Porter
	Portuguese
	Romanian
	Russian
	Spanish
	Swedish
	Turkish

	numAlgorithms
)

type variant struct {
	name string
	stem func(env *snowballstem.Env) bool
}

// variants is indexed by Algorithm. Entry 0 is the unselected tag.
var variants = [numAlgorithms]variant{
	Danish:         {"danish", danish.Stem},
	Dutch:          {"dutch", dutch.Stem},
	English:        {"english", english.Stem},
	Finnish:        {"finnish", finnish.Stem},
	French:         {"french", french.Stem},
	German:         {"german", german.Stem},
	German2:        {"german2", german2.Stem},
	Hungarian:      {"hungarian", hungarian.Stem},
	Italian:        {"italian", italian.Stem},
	KraaijPohlmann: {"kraaij_pohlmann", kraaijpohlmann.Stem},
	Lovins:         {"lovins", lovins.Stem},
	Norwegian:      {"norwegian", norwegian.Stem},
	Porter:         {"porter", porter.Stem},
	Portuguese:     {"portuguese", portuguese.Stem},
	Romanian:       {"romanian", romanian.Stem},
	Russian:        {"russian", russian.Stem},
	Spanish:        {"spanish", spanish.Stem},
	Swedish:        {"swedish", swedish.Stem},
	Turkish:        {"turkish", turkish.Stem},
}

// Algorithms returns every algorithm, in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, numAlgorithms-1)
	for a := Danish; a < numAlgorithms; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a names an algorithm.
func (a Algorithm) Valid() bool {
	return a > 0 && a < numAlgorithms
}

// String returns the canonical name of the algorithm, or "none".
func (a Algorithm) String() string {
	if !a.Valid() {
		return "none"
	}
	return variants[a].name
}

// Stem returns the stem of word. Stemming with an invalid Algorithm is a
// programming error and panics.
func (a Algorithm) Stem(word string) string {
	if word == "" {
		return word
	}
	if !a.Valid() {
		panic(errors.Wrapf(ErrNoAlgorithm, "stem %q with algorithm %d", word, a))
	}
	env := snowballstem.NewEnv(word)
	variants[a].stem(env)
	return env.Current()
}
