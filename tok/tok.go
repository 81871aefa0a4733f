/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package tok turns text into index terms. The fulltext tokenizer runs the
// stemmer selected for the text's language over every non stop word.
package tok

import (
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/stemmer/stem"
	"github.com/hypermodeinc/stemmer/x"
)

// Tokenizer defines what a tokenizer must provide.
type Tokenizer interface {
	// Name is name of tokenizer. This should be unique.
	Name() string

	// Tokens returns the deduplicated, sorted terms of s.
	Tokens(s string) ([]string, error)
}

var tokenizers = make(map[string]Tokenizer)

func init() {
	setupBleve()
	registerTokenizer(TermTokenizer{})
	registerTokenizer(FullTextTokenizer{})
}

// GetTokenizer returns tokenizer given unique name.
func GetTokenizer(name string) (Tokenizer, bool) {
	t, found := tokenizers[name]
	return t, found
}

// GetTokenizers returns a list of tokenizer given a list of unique names.
func GetTokenizers(names []string) ([]Tokenizer, error) {
	var out []Tokenizer
	for _, name := range names {
		t, found := GetTokenizer(name)
		if !found {
			return nil, errors.Errorf("Invalid tokenizer %s", name)
		}
		out = append(out, t)
	}
	return out, nil
}

func registerTokenizer(t Tokenizer) {
	_, ok := tokenizers[t.Name()]
	x.AssertTruef(!ok, "Duplicate tokenizer: %s", t.Name())
	tokenizers[t.Name()] = t
}

func analyze(name, s string) (analysis.TokenStream, error) {
	analyzer, err := bleveCache.AnalyzerNamed(name)
	if err != nil {
		return nil, errors.Wrapf(err, "while fetching analyzer %s", name)
	}
	return analyzer.Analyze([]byte(s)), nil
}

func terms(tokens analysis.TokenStream) []string {
	out := make([]string, 0, len(tokens))
	for i := range tokens {
		out = append(out, string(tokens[i].Term))
	}
	return x.RemoveDuplicates(out)
}

// TermTokenizer splits on word boundaries, lowercases and normalizes.
type TermTokenizer struct{}

func (t TermTokenizer) Name() string { return "term" }
func (t TermTokenizer) Tokens(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	tokens, err := analyze(termAnalyzer, s)
	if err != nil {
		return nil, err
	}
	return terms(tokens), nil
}

// FullTextTokenizer removes stop words and stems what is left.
type FullTextTokenizer struct {
	// Lang is a language identifier or BCP47 tag. Empty means English. It
	// selects both the stop words and the stemmer.
	Lang string
	// NoStem words are kept as they are. They are matched against lowercased,
	// NFKC normalized tokens.
	NoStem []string
	// Stemmer, when set, is used instead of the one selected by Lang.
	Stemmer stem.Stemmer
}

func (t FullTextTokenizer) Name() string { return "fulltext" }
func (t FullTextTokenizer) Tokens(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	algo, base := analysisLang(t.Lang)
	// pass 1 - lowercase and normalize input
	tokens, err := analyze(fulltextAnalyzer, s)
	if err != nil {
		return nil, err
	}
	// pass 2 - filter stop words
	tokens = filterStopwords(base, tokens)
	// pass 3 - filter stems
	st, err := t.stemmer(algo)
	if err != nil {
		return nil, err
	}
	tokens = filterStemmers(st, tokens)
	return terms(tokens), nil
}

func (t FullTextTokenizer) stemmer(algo stem.Algorithm) (stem.Stemmer, error) {
	st := t.Stemmer
	if st == nil {
		if !algo.Valid() {
			return nil, nil
		}
		st = algo
	}
	if len(t.NoStem) == 0 {
		return st, nil
	}
	return stem.WithNoStemList(st, t.NoStem...)
}
