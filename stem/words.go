/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stem

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadWords reads an exception list, one word per line. Blank lines and lines
// starting with '#' are skipped.
func LoadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "while reading exception list")
	}
	return words, nil
}

// LoadWordsFile is LoadWords on the file at path.
func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening exception list %s", path)
	}
	defer f.Close()
	return LoadWords(f)
}
