/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
)

// Cached memoises the stems computed by another Stemmer. The wrapped stemmer
// must be deterministic: wrap a NoStemList around a Cached, not the other way
// round, if the exception list is going to change.
type Cached struct {
	stemmer Stemmer
	cache   *ristretto.Cache[string, string]
}

// NewCached wraps s with a cache holding up to maxWords stems.
func NewCached(s Stemmer, maxWords int64) (*Cached, error) {
	if isNil(s) {
		return nil, ErrNullStemmer
	}
	if maxWords <= 0 {
		return nil, errors.Errorf("stem cache size must be positive, got %d", maxWords)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 10 * maxWords,
		MaxCost:     maxWords,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "while creating stem cache")
	}
	return &Cached{stemmer: s, cache: cache}, nil
}

func (c *Cached) Stem(word string) string {
	if word == "" {
		return word
	}
	if st, ok := c.cache.Get(word); ok {
		return st
	}
	st := c.stemmer.Stem(word)
	c.cache.Set(word, st, 1)
	return st
}

func (c *Cached) String() string {
	return fmt.Sprintf("Cached(%s)", c.stemmer)
}

// Close stops the cache's background goroutines.
func (c *Cached) Close() {
	c.cache.Close()
}
