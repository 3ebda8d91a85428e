// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [Options] carry everything the bootstrap
// needs before any file is read.
func (o *Options) validate() error {
	if o.ConfigPath == "" {
		return ErrMissingConfigPath
	}

	return nil
}
