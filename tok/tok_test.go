/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tok

import (
	"testing"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/stemmer/stem"
)

func TestTermTokens(t *testing.T) {
	tokens, err := TermTokenizer{}.Tokens("Hello  WORLD, hello")
	require.NoError(t, err)
	require.Equal(t, []string{"hello", "world"}, tokens)

	tokens, err = TermTokenizer{}.Tokens("")
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestFullTextTokens(t *testing.T) {
	tests := []struct {
		lang   string
		nostem []string
		in     string
		out    []string
	}{
		{lang: "en", in: "the quick brown foxes jumped",
			out: []string{"brown", "fox", "jump", "quick"}},
		{lang: "", in: "The quick brown foxes jumped",
			out: []string{"brown", "fox", "jump", "quick"}},
		{lang: "en", nostem: []string{"foxes"}, in: "the quick brown foxes jumped",
			out: []string{"brown", "foxes", "jump", "quick"}},
		// Unparseable tags fall back to English.
		{lang: "x-klingon", in: "foxes jumped",
			out: []string{"fox", "jump"}},
		// Languages without a stemmer keep every word.
		{lang: "zh", in: "foxes jumped",
			out: []string{"foxes", "jumped"}},
		{lang: "german2", in: "gruesse",
			out: []string{stem.German2.Stem("gruesse")}},
	}
	for _, tc := range tests {
		tokens, err := FullTextTokenizer{Lang: tc.lang, NoStem: tc.nostem}.Tokens(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.out, tokens, "lang %q: %q", tc.lang, tc.in)
	}
}

func TestFullTextCustomStemmer(t *testing.T) {
	tokens, err := FullTextTokenizer{Lang: "en", Stemmer: stem.Porter}.Tokens("running dogs")
	require.NoError(t, err)
	require.Equal(t, []string{"dog", "run"}, tokens)
}

func TestGetTokenizer(t *testing.T) {
	tk, ok := GetTokenizer("fulltext")
	require.True(t, ok)
	require.Equal(t, "fulltext", tk.Name())

	_, ok = GetTokenizer("trigram")
	require.False(t, ok)

	_, err := GetTokenizers([]string{"term", "trigram"})
	require.Error(t, err)
	tks, err := GetTokenizers([]string{"term", "fulltext"})
	require.NoError(t, err)
	require.Len(t, tks, 2)
}

func TestFullTextCatalogLanguages(t *testing.T) {
	// German stop words go, the English "the" stays.
	tokens, err := FullTextTokenizer{Lang: "german2"}.Tokens("die Haeuser und the dogs")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		stem.German2.Stem("haeuser"), stem.German2.Stem("the"), stem.German2.Stem("dogs"),
	}, tokens)
	require.NotContains(t, tokens, "die")
	require.NotContains(t, tokens, "und")

	for _, tc := range []struct {
		lang string
		algo stem.Algorithm
	}{
		{"dutch", stem.Dutch},
		{"nl", stem.Dutch},
		{"nl-BE", stem.Dutch},
		{"kraaij_pohlmann", stem.KraaijPohlmann},
	} {
		tokens, err := FullTextTokenizer{Lang: tc.lang}.Tokens("de honden en de katten")
		require.NoError(t, err)
		require.ElementsMatch(t,
			[]string{tc.algo.Stem("honden"), tc.algo.Stem("katten")}, tokens, "lang %q", tc.lang)
	}
}

func TestLangBase(t *testing.T) {
	require.Equal(t, "en", LangBase(""))
	require.Equal(t, "en", LangBase("en-US"))
	require.Equal(t, "de", LangBase("de-AT"))
	require.Equal(t, "nl", LangBase("nl"))
	require.Equal(t, "en", LangBase("x-klingon"))
}

func TestAnalysisLang(t *testing.T) {
	tests := []struct {
		lang string
		algo stem.Algorithm
		base string
	}{
		{"", stem.English, "en"},
		{"english", stem.English, "en"},
		{"porter", stem.Porter, "en"},
		{"german2", stem.German2, "de"},
		{"de-AT", stem.German, "de"},
		{"dutch", stem.Dutch, "nl"},
		{"nl", stem.Dutch, "nl"},
		{"kraaij_pohlmann", stem.KraaijPohlmann, "nl"},
		{"no", stem.Norwegian, "no"},
		{"x-klingon", stem.English, "en"},
		{"zh", 0, "zh"},
	}
	for _, tc := range tests {
		algo, base := analysisLang(tc.lang)
		require.Equal(t, tc.algo, algo, "lang %q", tc.lang)
		require.Equal(t, tc.base, base, "lang %q", tc.lang)
	}
}

func TestLanguageCodes(t *testing.T) {
	for _, algo := range stem.Algorithms() {
		code, ok := langCodes[algo]
		require.True(t, ok, "%s", algo)
		require.Contains(t, stopFilters, code)
		require.True(t, baseAlgorithms[code].Valid(), "%s", code)
	}
}

func TestCheckLang(t *testing.T) {
	for _, lang := range []string{"", "en", "german2", "kraaij_pohlmann", "de-AT", "nl", "zh-Hant"} {
		require.NoError(t, CheckLang(lang), "lang %q", lang)
	}
	for _, lang := range []string{"klingon", "not a tag!"} {
		require.Error(t, CheckLang(lang), "lang %q", lang)
	}
}

func TestFilterStopwords(t *testing.T) {
	in := analysis.TokenStream{
		&analysis.Token{Term: []byte("the")},
		&analysis.Token{Term: []byte("quick")},
	}
	out := filterStopwords("en", in)
	require.Len(t, out, 1)
	require.Equal(t, "quick", string(out[0].Term))

	in = analysis.TokenStream{
		&analysis.Token{Term: []byte("die")},
		&analysis.Token{Term: []byte("the")},
	}
	out = filterStopwords("de", in)
	require.Len(t, out, 1)
	require.Equal(t, "the", string(out[0].Term))

	// no stop list without a stemmer.
	in = analysis.TokenStream{
		&analysis.Token{Term: []byte("the")},
		&analysis.Token{Term: []byte("quick")},
	}
	require.Len(t, filterStopwords("tlh", in), 2)
}
