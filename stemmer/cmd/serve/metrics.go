/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package serve

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	stemRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stemmer",
		Name:      "stem_requests_total",
		Help:      "Stem requests by selected algorithm and outcome.",
	}, []string{"algorithm", "status"})

	wordsStemmed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stemmer",
		Name:      "words_stemmed_total",
		Help:      "Words stemmed by algorithm.",
	}, []string{"algorithm"})

	tokenRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stemmer",
		Name:      "token_requests_total",
		Help:      "Full-text tokenization requests by outcome.",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(stemRequests, wordsStemmed, tokenRequests)
}
