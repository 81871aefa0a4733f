/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownLanguage matches every *UnknownLanguageError under errors.Is.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrNullStemmer is returned when a decorator is built around no stemmer.
	ErrNullStemmer = errors.New("nil stemmer supplied to NoStemList")
	// ErrNoAlgorithm is returned when stemming through a Snowball with no
	// algorithm selected.
	ErrNoAlgorithm = errors.New("no stemming algorithm selected")
)

// UnknownLanguageError reports a language identifier missing from the alias table.
type UnknownLanguageError struct {
	Lang string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("language code %q unknown", e.Lang)
}

func (e *UnknownLanguageError) Is(target error) bool {
	return target == ErrUnknownLanguage
}
