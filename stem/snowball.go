/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package stem selects a stemming algorithm by language identifier and
// layers exception lists on top of it.
//
// A Snowball is built from a language identifier such as "en" or "english".
// The empty identifier is valid and selects no algorithm; stemming through
// such a Snowball returns ErrNoAlgorithm. Any other identifier missing from
// the catalog returned by AvailableLanguages fails with an error matching
// ErrUnknownLanguage.
//
// Algorithms, Snowballs and Cached stemmers are safe for concurrent use. A
// NoStemList is not: build its word set before stemming concurrently.
package stem

import "fmt"

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
	String() string
}

// Snowball holds the algorithm selected for a language, if any. It never
// changes after New.
type Snowball struct {
	algo Algorithm
}

// New returns a Snowball for lang. An empty lang gives a Snowball with no
// algorithm selected.
func New(lang string) (*Snowball, error) {
	algo, err := Resolve(lang)
	if err != nil {
		return nil, err
	}
	return &Snowball{algo: algo}, nil
}

// Algorithm returns the selected algorithm and whether there is one.
func (s *Snowball) Algorithm() (Algorithm, bool) {
	return s.algo, s.algo.Valid()
}

// Stem returns the stem of word. The empty word stems to itself, even with no
// algorithm selected.
func (s *Snowball) Stem(word string) (string, error) {
	if word == "" {
		return word, nil
	}
	if !s.algo.Valid() {
		return "", ErrNoAlgorithm
	}
	return s.algo.Stem(word), nil
}

func (s *Snowball) String() string {
	if !s.algo.Valid() {
		return "Snowball(none)"
	}
	return fmt.Sprintf("Snowball(%q)", s.algo.String())
}
