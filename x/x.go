/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// Error constants representing different types of errors.
const (
	Success             = "Success"
	ErrorInvalidMethod  = "ErrorInvalidMethod"
	ErrorInvalidRequest = "ErrorInvalidRequest"
	Error               = "Error"
)

type Status struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SetStatus sets the error code and message in the http response.
func SetStatus(w http.ResponseWriter, code, msg string) {
	r := &Status{Code: code, Message: msg}
	if js, err := json.Marshal(r); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusFor(code))
		_, _ = w.Write(js)
	} else {
		panic(fmt.Sprintf("Unable to marshal: %+v", r))
	}
}

func statusFor(code string) int {
	switch code {
	case Success:
		return http.StatusOK
	case ErrorInvalidMethod:
		return http.StatusMethodNotAllowed
	case ErrorInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Reply writes rep as JSON.
func Reply(w http.ResponseWriter, rep interface{}) {
	if js, err := json.Marshal(rep); err == nil {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, string(js))
	} else {
		SetStatus(w, Error, "Internal server error")
	}
}

// RemoveDuplicates sorts s and removes duplicates in place.
func RemoveDuplicates(s []string) (out []string) {
	sort.Strings(s)
	out = s[:0]
	for i := range s {
		if i > 0 && s[i] == s[i-1] {
			continue
		}
		out = append(out, s[i])
	}
	return
}
