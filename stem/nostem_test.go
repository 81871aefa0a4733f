/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type upper struct{}

func (upper) Stem(word string) string { return strings.ToUpper(word) }
func (upper) String() string          { return "upper" }

func TestNoStemListBypass(t *testing.T) {
	sb, err := New("english")
	require.NoError(t, err)
	l, err := NoStemListFrom(sb, "running")
	require.NoError(t, err)

	require.Equal(t, "running", l.Stem("running"))
	require.Equal(t, English.Stem("runs"), l.Stem("runs"))
	require.Equal(t, "", l.Stem(""))
}

func TestNoStemListDelegates(t *testing.T) {
	words := []string{"cats", "ponies", "caresses", "generously"}
	l, err := WithNoStemList(English, "ponies")
	require.NoError(t, err)
	for _, w := range words {
		if w == "ponies" {
			require.Equal(t, w, l.Stem(w))
			continue
		}
		require.Equal(t, English.Stem(w), l.Stem(w))
	}
}

func TestNoStemListNil(t *testing.T) {
	_, err := WithNoStemList(nil)
	require.Equal(t, ErrNullStemmer, err)

	var l *NoStemList
	_, err = WithNoStemList(l)
	require.Equal(t, ErrNullStemmer, err)

	var c *Cached
	_, err = WithNoStemList(c)
	require.Equal(t, ErrNullStemmer, err)

	_, err = WithNoStemList(Algorithm(0))
	require.Equal(t, ErrNullStemmer, err)

	_, err = NoStemListFrom(nil)
	require.Equal(t, ErrNullStemmer, err)

	sb, err := New("")
	require.NoError(t, err)
	_, err = NoStemListFrom(sb, "running")
	require.Equal(t, ErrNullStemmer, err)
}

func TestNoStemListMutation(t *testing.T) {
	l, err := WithNoStemList(upper{}, "keep")
	require.NoError(t, err)
	require.Equal(t, "keep", l.Stem("keep"))
	require.Equal(t, "WORD", l.Stem("word"))

	l.Add("word", "")
	require.Equal(t, 2, l.Len())
	require.True(t, l.Contains("word"))
	require.Equal(t, "word", l.Stem("word"))

	l.Remove("keep")
	require.False(t, l.Contains("keep"))
	require.Equal(t, "KEEP", l.Stem("keep"))
	require.Equal(t, []string{"word"}, l.Words())
}

func TestNoStemListString(t *testing.T) {
	l, err := WithNoStemList(English, "walks", "running")
	require.NoError(t, err)
	require.Equal(t, "NoStemList(english, [running,walks])", l.String())

	outer, err := WithNoStemList(l, "zebra")
	require.NoError(t, err)
	require.Equal(t, "NoStemList(NoStemList(english, [running,walks]), [zebra])", outer.String())
	require.Equal(t, "running", outer.Stem("running"))
	require.Equal(t, "zebra", outer.Stem("zebra"))
	require.Same(t, l, outer.Stemmer())
}

func TestNoStemListShared(t *testing.T) {
	a, err := WithNoStemList(English, "running")
	require.NoError(t, err)
	b, err := WithNoStemList(English)
	require.NoError(t, err)
	require.Equal(t, "running", a.Stem("running"))
	require.Equal(t, "run", b.Stem("running"))
}
