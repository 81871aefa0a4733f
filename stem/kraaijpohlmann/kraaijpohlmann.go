/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package kraaijpohlmann implements the Kraaij-Pohlmann stemmer for Dutch.
// Unlike the Snowball Dutch stemmer it removes the ge- prefix and infix of
// past participles and restores long vowels in open syllables (lopen -> loop).
package kraaijpohlmann

import (
	"strings"

	"github.com/blevesearch/snowballstem"
)

// Stem applies the Kraaij-Pohlmann algorithm to the current word. It has the
// signature of the snowballstem language packages.
func Stem(env *snowballstem.Env) bool {
	env.SetCurrent(Word(env.Current()))
	return true
}

func isV(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isAOU(r rune) bool  { return r == 'a' || r == 'o' || r == 'u' }
func isAIOU(r rune) bool { return r == 'a' || r == 'i' || r == 'o' || r == 'u' }

type word struct {
	r      []rune
	p1, p2 int
}

func (w *word) at(i int) rune {
	if i < 0 || i >= len(w.r) {
		return 0
	}
	return w.r[i]
}

// endsAt reports whether s ends at position pos.
func (w *word) endsAt(pos int, s string) bool {
	rs := []rune(s)
	if pos < len(rs) || pos > len(w.r) {
		return false
	}
	return string(w.r[pos-len(rs):pos]) == s
}

func (w *word) ends(s string) bool { return w.endsAt(len(w.r), s) }

// longest returns the longest of suffixes the word ends with.
func (w *word) longest(suffixes ...string) string {
	best := ""
	for _, s := range suffixes {
		if len(s) > len(best) && w.ends(s) {
			best = s
		}
	}
	return best
}

func (w *word) r1(pos int) bool { return pos >= w.p1 }
func (w *word) r2(pos int) bool { return pos >= w.p2 }

// vowelBefore: the letter before pos is a vowel, or pos follows "ij".
func (w *word) vowelBefore(pos int) bool {
	return isV(w.at(pos-1)) || w.endsAt(pos, "ij")
}

// vowelBeforeNext is vowelBefore one letter further back.
func (w *word) vowelBeforeNext(pos int) bool {
	return pos >= 1 && w.vowelBefore(pos-1)
}

// consonantBefore: the letter before pos is a consonant that does not end "ij".
func (w *word) consonantBefore(pos int) bool {
	if pos < 1 || w.endsAt(pos, "ij") {
		return false
	}
	return !isV(w.at(pos - 1))
}

// replace swaps the last n letters for s.
func (w *word) replace(n int, s string) {
	w.r = append(w.r[:len(w.r)-n], []rune(s)...)
}

func (w *word) trim(n int) { w.r = w.r[:len(w.r)-n] }

// lengthenV doubles the vowel of a closed final syllable: lop -> loop.
func (w *word) lengthenV() {
	n := len(w.r)
	last := w.at(n - 1)
	if n < 2 || isV(last) || last == 'w' || last == 'x' {
		return
	}
	v, i := w.r[n-2], n-2
	switch {
	case isAOU(v):
		if i == 0 || !isV(w.at(i-1)) {
			w.insert(i, v)
		}
	case v == 'e':
		if i > 0 && isV(w.at(i-1)) {
			return
		}
		if i >= 2 && isAIOU(w.at(i-2)) {
			return
		}
		if i >= 3 && isAIOU(w.at(i-3)) && !isV(w.at(i-4)) && i-4 >= 0 {
			return
		}
		w.insert(i, v)
	}
}

func (w *word) insert(i int, r rune) {
	w.r = append(w.r[:i], append([]rune{r}, w.r[i:]...)...)
}

func (w *word) step1() bool {
	n := len(w.r)
	switch suf := w.longest("'s", "s", "ies", "es", "aus", "en", "nde"); suf {
	case "'s":
		w.trim(2)
	case "s":
		if !w.r1(n-1) || !w.consonantBefore(n-1) {
			return false
		}
		w.trim(1)
	case "ies":
		if !w.r1(n - 3) {
			return false
		}
		w.replace(3, "ie")
	case "es":
		s := n - 2
		switch {
		case w.endsAt(s, "ar") && w.r1(s-2) && w.consonantBefore(s-2):
			w.trim(4)
			w.lengthenV()
		case w.endsAt(s, "er") && w.r1(s-2) && w.consonantBefore(s-2):
			w.trim(4)
		case w.r1(s) && w.consonantBefore(s):
			w.replace(2, "e")
		default:
			return false
		}
	case "aus":
		if !w.r1(n-3) || !w.vowelBefore(n-3) {
			return false
		}
		w.replace(3, "au")
	case "en":
		s := n - 2
		switch {
		case w.endsAt(s, "hed") && w.r1(s-3):
			w.replace(5, "heid")
		case w.endsAt(s, "nd"):
			w.trim(2)
		case w.endsAt(s, "d") && w.r1(s-1) && w.consonantBefore(s-1):
			w.trim(3)
		case (w.at(s-1) == 'i' || w.at(s-1) == 'j') && w.vowelBefore(s-1):
			w.trim(2)
		case w.r1(s) && w.consonantBefore(s):
			w.trim(2)
			w.lengthenV()
		default:
			return false
		}
	case "nde":
		w.replace(3, "nd")
	default:
		return false
	}
	return true
}

func (w *word) step2() bool {
	n := len(w.r)
	suf := w.longest("je", "ge", "lijke", "ische", "de", "te", "se", "re", "le", "ene", "ieve")
	if suf == "" {
		return false
	}
	s := n - len([]rune(suf))
	switch suf {
	case "je":
		switch {
		case w.endsAt(s, "'t"):
			w.trim(4)
		case w.endsAt(s, "et") && w.r1(s-2) && w.consonantBefore(s-2):
			w.trim(4)
		case w.endsAt(s, "rnt"):
			w.replace(5, "rn")
		case w.endsAt(s, "t") && w.r1(s-1) && w.vowelBeforeNext(s-1):
			w.trim(3)
		case w.endsAt(s, "ink"):
			w.replace(5, "ing")
		case w.endsAt(s, "mp"):
			w.replace(4, "m")
		case w.endsAt(s, "'") && w.r1(s-1):
			w.trim(3)
		case w.r1(s) && w.consonantBefore(s):
			w.trim(2)
		default:
			return false
		}
		return true
	case "de", "ene", "ieve":
		if !w.r1(s) || !w.consonantBefore(s) {
			return false
		}
	default:
		if !w.r1(s) {
			return false
		}
	}
	switch suf {
	case "ge":
		w.replace(2, "g")
	case "lijke":
		w.replace(5, "lijk")
	case "ische":
		w.replace(5, "isch")
	case "de":
		w.trim(2)
	case "te", "se", "re":
		w.trim(1)
	case "le":
		w.replace(2, "l")
		w.lengthenV()
	case "ene":
		w.replace(3, "en")
		w.lengthenV()
	case "ieve":
		w.replace(4, "ief")
	}
	return true
}

func (w *word) step3() bool {
	n := len(w.r)
	suf := w.longest("atie", "iteit", "heid", "sel", "ster", "rder", "ing", "isme",
		"erij", "arij", "fie", "gie", "tst", "dst")
	if suf == "" {
		return false
	}
	l := len([]rune(suf))
	s := n - l
	switch suf {
	case "atie":
		if !w.r1(s) {
			return false
		}
		w.replace(l, "eer")
	case "iteit", "ing", "isme", "erij":
		if !w.r1(s) {
			return false
		}
		w.trim(l)
		w.lengthenV()
	case "heid", "sel", "ster":
		if !w.r1(s) {
			return false
		}
		w.trim(l)
	case "rder":
		w.replace(l, "r")
	case "arij":
		if !w.r1(s) || !w.consonantBefore(s) {
			return false
		}
		w.replace(l, "aar")
	case "fie", "gie":
		if !w.r2(s) {
			return false
		}
		w.replace(l, suf[:1])
		w.lengthenV()
	case "tst", "dst":
		if !w.r1(s) || !w.consonantBefore(s) {
			return false
		}
		w.replace(l, suf[:1])
	}
	return true
}

func (w *word) step4() bool {
	n := len(w.r)
	suf := w.longest("ioneel", "atief", "baar", "naar", "laar", "raar", "tant",
		"lijker", "lijkst", "achtig", "achtiger", "achtigst", "eriger", "erigst", "erig", "end")
	l := len([]rune(suf))
	s := n - l
	ok := true
	switch suf {
	case "ioneel":
		ok = w.r1(s)
		if ok {
			w.replace(l, "ie")
		}
	case "atief":
		ok = w.r1(s)
		if ok {
			w.replace(l, "eer")
		}
	case "baar", "achtig", "achtiger", "achtigst":
		ok = w.r1(s)
		if ok {
			w.trim(l)
		}
	case "naar", "laar", "raar":
		ok = w.r1(s) && w.vowelBefore(s)
		if ok {
			w.replace(l, suf[:1])
		}
	case "tant":
		ok = w.r1(s)
		if ok {
			w.replace(l, "teer")
		}
	case "lijker", "lijkst":
		ok = w.r1(s)
		if ok {
			w.replace(l, "lijk")
		}
	case "eriger", "erigst", "erig", "end":
		ok = w.r1(s) && w.consonantBefore(s)
		if ok {
			w.trim(l)
			w.lengthenV()
		}
	default:
		ok = false
	}
	if ok {
		return true
	}

	suf = w.longest("iger", "igst", "ig")
	if suf == "" {
		return false
	}
	l = len(suf)
	s = len(w.r) - l
	if !w.r1(s) || !w.consonantBefore(s) {
		return false
	}
	w.trim(l)
	w.lengthenV()
	return true
}

func (w *word) step7() bool {
	switch w.longest("kt", "ft", "pt") {
	case "":
		return false
	default:
		w.trim(1)
	}
	return true
}

func (w *word) step6() bool {
	n := len(w.r)
	if n >= 2 && w.r[n-1] == w.r[n-2] && !isV(w.r[n-1]) && w.r[n-1] >= 'a' && w.r[n-1] <= 'z' {
		w.trim(1)
		return true
	}
	switch w.at(n - 1) {
	case 'v':
		w.replace(1, "f")
	case 'z':
		w.replace(1, "s")
	default:
		return false
	}
	return true
}

// step1c removes the final d or t of a participle whose ge- was removed.
func (w *word) step1c() {
	n := len(w.r)
	last := w.at(n - 1)
	if last != 'd' && last != 't' {
		return
	}
	if !w.r1(n-1) || !w.consonantBefore(n-1) {
		return
	}
	keep := 'n'
	if last == 't' {
		keep = 'h'
	}
	if w.at(n-2) == keep && w.r1(n-2) {
		return
	}
	w.trim(1)
}

// vowelThenConsonant reports whether a vowel and then a consonant follow from.
func (w *word) vowelThenConsonant(from int) bool {
	i := from
	for i < len(w.r) && !isV(w.r[i]) {
		i++
	}
	if i == len(w.r) {
		return false
	}
	for i < len(w.r) && isV(w.r[i]) {
		i++
	}
	return i < len(w.r)
}

func (w *word) losePrefix() bool {
	if !w.endsAt(2, "ge") || len(w.r)-2 < 3 || !w.vowelThenConsonant(2) {
		return false
	}
	w.r = w.r[2:]
	return true
}

func (w *word) loseInfix() bool {
	if len(w.r) < 1 {
		return false
	}
	i := strings.Index(string(w.r[1:]), "ge")
	if i < 0 {
		return false
	}
	// i is a byte offset; convert to a rune offset.
	at := 1 + len([]rune(string(w.r[1:])[:i]))
	if len(w.r)-(at+2) < 3 || !w.vowelThenConsonant(at+2) {
		return false
	}
	w.r = append(w.r[:at], w.r[at+2:]...)
	return true
}

// measure sets p1 and p2 to the end of the first and second
// consonant-vowel-consonant regions, or to the word end.
func (w *word) measure() {
	n := len(w.r)
	w.p1, w.p2 = n, n
	i := 0
	region := func() bool {
		for i < n && !isV(w.r[i]) {
			i++
		}
		vowels := 0
		for i < n {
			if w.r[i] == 'i' && w.at(i+1) == 'j' {
				i += 2
			} else if isV(w.r[i]) {
				i++
			} else {
				break
			}
			vowels++
		}
		if vowels == 0 || i >= n {
			return false
		}
		i++
		return true
	}
	if !region() {
		return
	}
	w.p1 = i
	if !region() {
		return
	}
	w.p2 = i
}

// Word returns the Kraaij-Pohlmann stem of s.
func Word(s string) string {
	w := &word{r: []rune(s)}

	yFound := false
	for i, r := range w.r {
		if r == 'y' && (i == 0 || isV(w.r[i-1])) {
			w.r[i] = 'Y'
			yFound = true
		}
	}

	w.measure()
	stemmed := false
	stemmed = w.step1() || stemmed
	stemmed = w.step2() || stemmed
	stemmed = w.step3() || stemmed
	stemmed = w.step4() || stemmed

	if w.losePrefix() {
		w.measure()
		w.step1c()
	}
	geRemoved := false
	if w.loseInfix() {
		geRemoved = true
		w.measure()
		w.step1c()
	}

	stemmed = w.step7() || stemmed
	if stemmed || geRemoved {
		w.step6()
	}

	out := string(w.r)
	if yFound {
		out = strings.ReplaceAll(out, "Y", "y")
	}
	return out
}
