/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stemword

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/stemmer/stem"
	"github.com/hypermodeinc/stemmer/x"
)

// StemWord is the sub-command invoked when running "stemmer stem".
var StemWord x.SubCommand

func init() {
	StemWord.Cmd = &cobra.Command{
		Use:   "stem [words...]",
		Short: "Print the stem of each word",
		Long: `
Prints each word followed by a tab and its stem. Words are read from the
arguments or, when there are none, from standard input split on whitespace.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer x.StartProfile(StemWord.Conf).Stop()
			return run(args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	StemWord.EnvPrefix = "STEMMER_STEM"

	flag := StemWord.Cmd.Flags()
	flag.StringP("lang", "l", "english",
		"Language of the words, one of: "+stem.AvailableLanguages())
	flag.StringSlice("nostem", nil, "Comma separated words to leave unstemmed.")
	flag.String("nostem_file", "",
		"File with words to leave unstemmed, one per line. Lines starting with # are ignored.")
	flag.Int64("cache_words", 0, "Number of stems to keep in memory. 0 disables the cache.")
}

func run(args []string, in io.Reader, out io.Writer) error {
	st, closer, err := Build(StemWord.GetStringP("lang", "l", "english"),
		StemWord.GetStringSliceP("nostem", "", nil),
		StemWord.GetStringP("nostem_file", "", ""),
		StemWord.GetInt64P("cache_words", "", 0))
	if err != nil {
		return err
	}
	defer closer()
	glog.V(2).Infof("Stemming with %s", st)

	w := bufio.NewWriter(out)
	if len(args) > 0 {
		stemWords(w, st, args)
		return w.Flush()
	}
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		stemWords(w, st, []string{sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "while reading words")
	}
	return w.Flush()
}

func stemWords(w io.Writer, st stem.Stemmer, words []string) {
	for _, word := range words {
		fmt.Fprintf(w, "%s\t%s\n", word, st.Stem(word))
	}
}

// Build returns the stemmer configured by the stemming flags, and a function
// releasing its resources. The exception list wraps the cache so that
// exception words never reach it.
func Build(lang string, nostem []string, nostemFile string,
	cacheWords int64) (stem.Stemmer, func(), error) {
	sb, err := stem.New(lang)
	if err != nil {
		return nil, nil, err
	}
	algo, ok := sb.Algorithm()
	if !ok {
		return nil, nil, errors.Wrap(stem.ErrNoAlgorithm, "no language given")
	}

	var st stem.Stemmer = algo
	closer := func() {}
	if cacheWords > 0 {
		c, err := stem.NewCached(st, cacheWords)
		if err != nil {
			return nil, nil, err
		}
		st, closer = c, c.Close
	}

	words := append([]string{}, nostem...)
	if nostemFile != "" {
		fw, err := stem.LoadWordsFile(nostemFile)
		if err != nil {
			closer()
			return nil, nil, err
		}
		words = append(words, fw...)
	}
	if len(words) == 0 {
		return st, closer, nil
	}
	l, err := stem.WithNoStemList(st, words...)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return l, closer, nil
}
