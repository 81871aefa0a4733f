/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package serve

import (
	"io"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hypermodeinc/stemmer/stem"
	"github.com/hypermodeinc/stemmer/stemmer/cmd/stemword"
	"github.com/hypermodeinc/stemmer/tok"
	"github.com/hypermodeinc/stemmer/x"
)

// maxBodySize bounds the text accepted by the tokens endpoint.
const maxBodySize = 1 << 20

type server struct {
	lang       string
	nostem     []string
	cacheWords int64

	sync.Mutex
	stemmers map[stem.Algorithm]stem.Stemmer
	closers  []func()
}

func newServer(lang string, nostem []string, cacheWords int64) *server {
	return &server{
		lang:       lang,
		nostem:     nostem,
		cacheWords: cacheWords,
		stemmers:   make(map[stem.Algorithm]stem.Stemmer),
	}
}

// Router returns the routes served by s.
func (s *server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/stem", s.stemHandler).Methods(http.MethodGet)
	r.HandleFunc("/languages", languagesHandler).Methods(http.MethodGet)
	r.HandleFunc("/tokens", s.tokensHandler).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		x.SetStatus(w, x.ErrorInvalidMethod, "Invalid method "+r.Method)
	})
	return r
}

// Close releases the caches of every stemmer built so far.
func (s *server) Close() {
	s.Lock()
	defer s.Unlock()
	for _, c := range s.closers {
		c()
	}
	s.closers = nil
	s.stemmers = make(map[stem.Algorithm]stem.Stemmer)
}

// requestLang returns the lang query parameter, or the default language when
// the request does not carry one.
func (s *server) requestLang(r *http.Request) string {
	q := r.URL.Query()
	if q.Has("lang") {
		return q.Get("lang")
	}
	return s.lang
}

// stemmer returns the stemmer for lang, building it on first use. Aliases of
// an algorithm share one stemmer. Stemmers are shared between requests and
// never mutated after they are built.
func (s *server) stemmer(lang string) (stem.Stemmer, error) {
	algo, err := stem.Resolve(lang)
	if err != nil {
		return nil, err
	}
	s.Lock()
	defer s.Unlock()
	if st, ok := s.stemmers[algo]; ok {
		return st, nil
	}
	st, closer, err := stemword.Build(lang, s.nostem, "", s.cacheWords)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("Built %s for language %q", st, lang)
	s.stemmers[algo] = st
	s.closers = append(s.closers, closer)
	return st, nil
}

type stemResponse struct {
	Lang  string            `json:"lang"`
	Stems map[string]string `json:"stems"`
}

func (s *server) stemHandler(w http.ResponseWriter, r *http.Request) {
	lang := s.requestLang(r)
	label := algorithmLabel(lang)
	st, err := s.stemmer(lang)
	if err != nil {
		stemRequests.WithLabelValues(label, "error").Inc()
		x.SetStatus(w, x.ErrorInvalidRequest, err.Error())
		return
	}
	words := r.URL.Query()["word"]
	resp := stemResponse{Lang: lang, Stems: make(map[string]string, len(words))}
	for _, word := range words {
		resp.Stems[word] = st.Stem(word)
	}
	stemRequests.WithLabelValues(label, "ok").Inc()
	wordsStemmed.WithLabelValues(label).Add(float64(len(words)))
	x.Reply(w, resp)
}

// algorithmLabel names the algorithm lang selects, keeping metric labels
// bounded by the catalog whatever clients send.
func algorithmLabel(lang string) string {
	algo, err := stem.Resolve(lang)
	if err != nil || !algo.Valid() {
		return "invalid"
	}
	return algo.String()
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

func languagesHandler(w http.ResponseWriter, r *http.Request) {
	x.Reply(w, languagesResponse{Languages: stem.Languages()})
}

type tokensResponse struct {
	Lang   string   `json:"lang"`
	Tokens []string `json:"tokens"`
}

func (s *server) tokensHandler(w http.ResponseWriter, r *http.Request) {
	lang := s.requestLang(r)
	if err := tok.CheckLang(lang); err != nil {
		tokenRequests.WithLabelValues("error").Inc()
		x.SetStatus(w, x.ErrorInvalidRequest, err.Error())
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		x.SetStatus(w, x.ErrorInvalidRequest, err.Error())
		return
	}
	t := tok.FullTextTokenizer{Lang: lang, NoStem: s.nostem}
	tokens, err := t.Tokens(string(body))
	if err != nil {
		tokenRequests.WithLabelValues("error").Inc()
		x.SetStatus(w, x.Error, err.Error())
		return
	}
	tokenRequests.WithLabelValues("ok").Inc()
	x.Reply(w, tokensResponse{Lang: lang, Tokens: tokens})
}
