/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package german2 is the German stemmer for text written without umlauts:
// the digraphs ae, oe and ue are read as ä, ö and ü.
package german2

import (
	"strings"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/german"
)

// Stem folds umlaut digraphs in the current word and applies the German
// algorithm. It has the signature of the snowballstem language packages.
func Stem(env *snowballstem.Env) bool {
	env.SetCurrent(Fold(env.Current()))
	return german.Stem(env)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'ä', 'ö', 'ü':
		return true
	}
	return false
}

// Fold rewrites ae, oe and ue as ä, ö and ü. The u of "qu" is left alone,
// and so is a u standing between two vowels, which the German algorithm
// treats as a consonant.
func Fold(word string) string {
	rs := []rune(word)
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if i+1 < len(rs) && rs[i+1] == 'e' {
			switch r {
			case 'a':
				b.WriteRune('ä')
				i++
				continue
			case 'o':
				b.WriteRune('ö')
				i++
				continue
			case 'u':
				if i == 0 || (rs[i-1] != 'q' && !isVowel(rs[i-1])) {
					b.WriteRune('ü')
					i++
					continue
				}
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
