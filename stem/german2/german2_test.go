/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package german2

import (
	"testing"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/german"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"gruesse", "grüsse"},
		{"schoen", "schön"},
		{"maedchen", "mädchen"},
		{"quelle", "quelle"},
		{"quer", "quer"},
		{"bauer", "bauer"},
		{"treue", "treue"},
		{"ueber", "über"},
		{"haus", "haus"},
		{"", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.out, Fold(tc.in), "folding %q", tc.in)
	}
}

func germanStem(word string) string {
	env := snowballstem.NewEnv(word)
	german.Stem(env)
	return env.Current()
}

func TestStemMatchesGermanOnUmlauts(t *testing.T) {
	for _, pair := range [][2]string{
		{"gruesse", "grüsse"},
		{"schoenen", "schönen"},
		{"maedchen", "mädchen"},
		{"quellen", "quellen"},
	} {
		env := snowballstem.NewEnv(pair[0])
		Stem(env)
		require.Equal(t, germanStem(pair[1]), env.Current(), "stemming %q", pair[0])
	}
}
