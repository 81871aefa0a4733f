/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWords(t *testing.T) {
	in := `# plural forms kept as is
news
  series  

# more
physics
`
	words, err := LoadWords(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"news", "series", "physics"}, words)

	words, err = LoadWords(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestLoadWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nostem.txt")
	require.NoError(t, os.WriteFile(path, []byte("running\nwalks\n"), 0644))
	words, err := LoadWordsFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"running", "walks"}, words)

	_, err = LoadWordsFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
