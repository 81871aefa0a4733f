/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/viper"
)

type stopper interface {
	Stop()
}

// StartProfile starts the profile named by the profile_mode setting. Profiles
// are written under profile_dir, or a temporary directory when it is unset.
// An unknown mode is fatal.
func StartProfile(conf *viper.Viper) stopper {
	opts := []func(*profile.Profile){profile.Quiet}
	if dir := conf.GetString("profile_dir"); dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}

	switch mode := conf.GetString("profile_mode"); mode {
	case "cpu":
		return profile.Start(append(opts, profile.CPUProfile)...)
	case "mem":
		return profile.Start(append(opts, profile.MemProfile)...)
	case "mutex":
		return profile.Start(append(opts, profile.MutexProfile)...)
	case "block":
		runtime.SetBlockProfileRate(conf.GetInt("block_rate"))
		return profile.Start(append(opts, profile.BlockProfile)...)
	case "":
		return noOpStopper{}
	default:
		Fatalf("Invalid profile mode: %q", mode)
		return noOpStopper{}
	}
}

type noOpStopper struct{}

func (noOpStopper) Stop() {}
