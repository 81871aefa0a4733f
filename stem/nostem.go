/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// NoStemList wraps a Stemmer so that the words in its list are returned
// unchanged. The list may be changed at any time, but not concurrently with Stem.
type NoStemList struct {
	stemmer Stemmer
	words   map[string]struct{}
}

// WithNoStemList wraps s with an exception list holding words.
func WithNoStemList(s Stemmer, words ...string) (*NoStemList, error) {
	if isNil(s) {
		return nil, ErrNullStemmer
	}
	l := &NoStemList{
		stemmer: s,
		words:   make(map[string]struct{}, len(words)),
	}
	l.Add(words...)
	return l, nil
}

// NoStemListFrom wraps the algorithm selected by sb. It fails with
// ErrNullStemmer when sb is nil or selects no algorithm.
func NoStemListFrom(sb *Snowball, words ...string) (*NoStemList, error) {
	if sb == nil {
		return nil, ErrNullStemmer
	}
	algo, ok := sb.Algorithm()
	if !ok {
		return nil, ErrNullStemmer
	}
	return WithNoStemList(algo, words...)
}

func isNil(s Stemmer) bool {
	if s == nil {
		return true
	}
	if a, ok := s.(Algorithm); ok {
		return !a.Valid()
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Stem returns word unchanged if it is empty or in the list, and the wrapped
// stemmer's result otherwise.
func (l *NoStemList) Stem(word string) string {
	if word == "" {
		return word
	}
	if _, ok := l.words[word]; ok {
		return word
	}
	return l.stemmer.Stem(word)
}

// Add puts words in the list. Empty words are ignored.
func (l *NoStemList) Add(words ...string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		l.words[w] = struct{}{}
	}
}

// Remove takes words out of the list.
func (l *NoStemList) Remove(words ...string) {
	for _, w := range words {
		delete(l.words, w)
	}
}

func (l *NoStemList) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

func (l *NoStemList) Len() int { return len(l.words) }

// Words returns the list in sorted order.
func (l *NoStemList) Words() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Stemmer returns the wrapped stemmer.
func (l *NoStemList) Stemmer() Stemmer { return l.stemmer }

func (l *NoStemList) String() string {
	return fmt.Sprintf("NoStemList(%s, [%s])", l.stemmer, strings.Join(l.Words(), ","))
}
