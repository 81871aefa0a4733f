/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package serve

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hypermodeinc/stemmer/stem"
	"github.com/hypermodeinc/stemmer/x"
)

// Serve is the sub-command invoked when running "stemmer serve".
var Serve x.SubCommand

func init() {
	Serve.Cmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve stems and full-text tokens over HTTP",
		Long: `
Starts an HTTP server answering stem and tokenization requests. Requests name
their language with the lang query parameter; requests without one use the
language given by --lang.

GET /stem takes a language identifier. POST /tokens also takes a BCP47 tag,
whose base language picks the stop words and the stemmer; text in a language
without a stemmer keeps every word. Anything else is a bad request.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer x.StartProfile(Serve.Conf).Stop()
			return run()
		},
	}
	Serve.EnvPrefix = "STEMMER_SERVE"

	flag := Serve.Cmd.Flags()
	flag.String("addr", "localhost:8090", "Address to listen on.")
	flag.StringP("lang", "l", "english",
		"Language used when a request names none. Empty requires every request to name one.")
	flag.StringSlice("nostem", nil, "Comma separated words to leave unstemmed.")
	flag.String("nostem_file", "",
		"File with words to leave unstemmed, one per line. Lines starting with # are ignored.")
	flag.Int64("cache_words", 0,
		"Number of stems each language keeps in memory. 0 disables the cache.")
}

func run() error {
	nostem := Serve.GetStringSliceP("nostem", "", nil)
	if path := Serve.GetStringP("nostem_file", "", ""); path != "" {
		words, err := stem.LoadWordsFile(path)
		if err != nil {
			return err
		}
		nostem = append(nostem, words...)
	}
	s := newServer(Serve.GetStringP("lang", "l", "english"), nostem,
		Serve.GetInt64P("cache_words", "", 0))
	defer s.Close()

	srv := &http.Server{
		Addr:              Serve.GetStringP("addr", "", "localhost:8090"),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		glog.Infof("Serving stems on %s with default language %q, %s exception words",
			srv.Addr, s.lang, humanize.Comma(int64(len(nostem))))
		if s.cacheWords > 0 {
			glog.Infof("Caching up to %s stems per language", humanize.Comma(s.cacheWords))
		}
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "while serving on %s", srv.Addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		glog.Infof("Shutting down...")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	glog.Infof("Server stopped.")
	return nil
}
