/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubCommand pairs a cobra command with the viper instance its flags are bound to.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

func (s SubCommand) GetStringSliceP(name, shorthand string, def []string) (v []string) {
	if ok := s.Conf.IsSet(name); ok {
		return s.Conf.GetStringSlice(name)
	}
	if ok := s.Conf.IsSet(shorthand); ok {
		return s.Conf.GetStringSlice(shorthand)
	}
	return def
}

func (s SubCommand) GetStringP(name, shorthand, def string) string {
	if ok := s.Conf.IsSet(name); ok {
		return s.Conf.GetString(name)
	}
	if ok := s.Conf.IsSet(shorthand); ok {
		return s.Conf.GetString(shorthand)
	}
	return def
}

func (s SubCommand) GetInt64P(name, shorthand string, def int64) int64 {
	if ok := s.Conf.IsSet(name); ok {
		return s.Conf.GetInt64(name)
	}
	if ok := s.Conf.IsSet(shorthand); ok {
		return s.Conf.GetInt64(shorthand)
	}
	return def
}

func (s SubCommand) GetBoolP(name, shorthand string, def bool) bool {
	if ok := s.Conf.IsSet(name); ok {
		return s.Conf.GetBool(name)
	}
	if ok := s.Conf.IsSet(shorthand); ok {
		return s.Conf.GetBool(shorthand)
	}
	return def
}
