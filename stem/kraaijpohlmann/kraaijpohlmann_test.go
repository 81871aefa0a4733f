/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package kraaijpohlmann

import (
	"testing"

	"github.com/blevesearch/snowballstem"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		// Plural -en with vowel lengthening in the open syllable.
		{"lopen", "loop"},
		{"boeken", "boek"},
		// Diminutive.
		{"huisje", "huis"},
		// Past participle: ge- prefix and final t removed.
		{"gewerkt", "werk"},
		{"werk", "werk"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.out, Word(tc.in), "stemming %q", tc.in)
	}
}

func TestStemEnv(t *testing.T) {
	env := snowballstem.NewEnv("lopen")
	require.True(t, Stem(env))
	require.Equal(t, "loop", env.Current())
}

func TestMeasure(t *testing.T) {
	w := &word{r: []rune("lopen")}
	w.measure()
	require.Equal(t, 3, w.p1)
	require.Equal(t, 5, w.p2)

	w = &word{r: []rune("str")}
	w.measure()
	require.Equal(t, 3, w.p1)
	require.Equal(t, 3, w.p2)
}

func TestLengthenV(t *testing.T) {
	w := &word{r: []rune("lop")}
	w.lengthenV()
	require.Equal(t, "loop", string(w.r))

	w = &word{r: []rune("boek")}
	w.lengthenV()
	require.Equal(t, "boek", string(w.r))
}
