/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestRemoveDuplicates(t *testing.T) {
	set := RemoveDuplicates([]string{"a", "a", "a", "b", "b", "c", "c"})
	require.Equal(t, []string{"a", "b", "c"}, set)

	require.Empty(t, RemoveDuplicates(nil))
	require.Equal(t, []string{"a", "b"}, RemoveDuplicates([]string{"b", "a", "b"}))
}

func TestSetStatus(t *testing.T) {
	w := httptest.NewRecorder()
	SetStatus(w, ErrorInvalidRequest, "bad lang")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"code":"ErrorInvalidRequest","message":"bad lang"}`, w.Body.String())
}

func TestReply(t *testing.T) {
	w := httptest.NewRecorder()
	Reply(w, map[string]string{"en": "english"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"en":"english"}`, w.Body.String())
}

func TestStartProfileDisabled(t *testing.T) {
	conf := viper.New()
	s := StartProfile(conf)
	require.IsType(t, noOpStopper{}, s)
	s.Stop()
}

func TestStartProfileCPU(t *testing.T) {
	conf := viper.New()
	conf.Set("profile_mode", "cpu")
	conf.Set("profile_dir", t.TempDir())
	StartProfile(conf).Stop()
	require.FileExists(t, filepath.Join(conf.GetString("profile_dir"), "cpu.pprof"))
}
