/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stemword

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/stemmer/stem"
)

func TestBuild(t *testing.T) {
	st, closer, err := Build("en", nil, "", 0)
	require.NoError(t, err)
	defer closer()
	require.Equal(t, stem.English, st)
	require.Equal(t, "run", st.Stem("running"))
}

func TestBuildNoStemAndCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nostem.txt")
	require.NoError(t, os.WriteFile(path, []byte("# keep\nrunning\n"), 0600))

	st, closer, err := Build("english", []string{"jumping"}, path, 100)
	require.NoError(t, err)
	defer closer()

	l, ok := st.(*stem.NoStemList)
	require.True(t, ok)
	require.Equal(t, []string{"jumping", "running"}, l.Words())
	require.Equal(t, "running", st.Stem("running"))
	require.Equal(t, "jumping", st.Stem("jumping"))
	require.Equal(t, "walk", st.Stem("walking"))
	require.Equal(t, "NoStemList(Cached(english), [jumping,running])", st.String())
}

func TestBuildErrors(t *testing.T) {
	_, _, err := Build("xx", nil, "", 0)
	require.ErrorIs(t, err, stem.ErrUnknownLanguage)

	_, _, err = Build("", nil, "", 0)
	require.ErrorIs(t, err, stem.ErrNoAlgorithm)

	_, _, err = Build("en", nil, filepath.Join(t.TempDir(), "missing"), 0)
	require.Error(t, err)
}

func TestStemWords(t *testing.T) {
	var buf bytes.Buffer
	stemWords(&buf, stem.English, []string{"cats", "running"})
	require.Equal(t, "cats\tcat\nrunning\trun\n", buf.String())
}

func TestRun(t *testing.T) {
	StemWord.Conf = viper.New()
	require.NoError(t, StemWord.Conf.BindPFlags(StemWord.Cmd.Flags()))
	StemWord.Conf.Set("lang", "en")
	StemWord.Conf.Set("nostem", []string{"cats"})

	var out bytes.Buffer
	require.NoError(t, run([]string{"cats", "dogs"}, nil, &out))
	require.Equal(t, "cats\tcats\ndogs\tdog\n", out.String())

	out.Reset()
	require.NoError(t, run(nil, strings.NewReader("jumping  foxes\nran"), &out))
	require.Equal(t, "jumping\tjump\nfoxes\tfox\nran\tran\n", out.String())

	StemWord.Conf.Set("lang", "klingon")
	require.ErrorIs(t, run([]string{"x"}, nil, &out), stem.ErrUnknownLanguage)
}
