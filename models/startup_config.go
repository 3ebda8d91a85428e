// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StartUpConfig carries the runtime values derived during bootstrap that the
// framework needs to proxy requests to the agent.
type StartUpConfig struct {
	// ProxiedHost is the agent host requests are proxied to.
	ProxiedHost string `json:"proxiedHost"`
	// ProxiedPort is the agent port requests are proxied to.
	ProxiedPort int `json:"proxiedPort"`
	// AllowInvalidTLSProxy permits invalid TLS certificates on the proxied
	// connection.
	AllowInvalidTLSProxy bool `json:"allowInvalidTLSProxy"`
}
