/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package lovins

import (
	"testing"

	"github.com/blevesearch/snowballstem"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"sitting", "sit"},
		{"rubbing", "rub"},
		{"nationally", "nat"},
		{"magnesia", "magnes"},
		{"dependent", "depens"},
		// Too short to leave a two letter stem.
		{"as", "as"},
		{"a", "a"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.out, Word(tc.in), "stemming %q", tc.in)
	}
}

func TestStemEnv(t *testing.T) {
	env := snowballstem.NewEnv("sitting")
	require.True(t, Stem(env))
	require.Equal(t, "sit", env.Current())
}

func TestRecode(t *testing.T) {
	require.Equal(t, "sit", recode("sitt"))
	require.Equal(t, "absorb", recode("absorpt"))
	require.Equal(t, "extens", recode("extend"))
	// "end" is kept after s.
	require.Equal(t, "send", recode("send"))
	require.Equal(t, "aul", recode("aul"))
}

func TestEndingConditions(t *testing.T) {
	// Condition E: no removal after e.
	require.Equal(t, "freed", removeEnding("freed"))
	// Condition B: at least three letters left.
	require.Equal(t, "sly", removeEnding("sly"))
	require.Equal(t, "bal", removeEnding("bally"))
}
