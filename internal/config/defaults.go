// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.jsonc
var defaultConfig []byte

// Default returns the built-in configuration tree.
//
// The embedded document is parsed on every call, so each caller owns an
// independent tree and may mutate it freely.
func Default() (Tree, error) {
	tree, err := parseJSONWithComments(defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing default config: %w", err)
	}

	return tree, nil
}
