// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Options holds the startup options recognized by the server bootstrap.
// It is populated by merging command-line flags with environment variables.
//
// Struct tags:
//   - env: environment variable name, looked up with the ZLUX_ prefix
//     (caarlos0/env).
type Options struct {
	// ConfigPath is the path to the JSON (with comments) configuration file.
	// Required.
	// Flags: -config, -c. Env: ZLUX_CONFIG
	ConfigPath string `env:"CONFIG"`

	// HostServer is the agent host requests are proxied to.
	// Flags: -hostServer, -h. Env: ZLUX_HOST_SERVER
	HostServer string `env:"HOST_SERVER"`

	// HostPort is the agent port requests are proxied to. Takes precedence
	// over the ports of the configured agent.
	// Flags: -hostPort, -P. Env: ZLUX_HOST_PORT
	HostPort int `env:"HOST_PORT"`

	// Port overrides node.http.port, creating the section when missing.
	// Flags: -port, -p. Env: ZLUX_PORT
	Port int `env:"PORT"`

	// SecurePort overrides node.https.port when that section exists.
	// Flags: -securePort, -s. Env: ZLUX_SECURE_PORT
	SecurePort int `env:"SECURE_PORT"`

	// NoPrompt disables interactive prompts.
	// Flag: -noPrompt. Env: ZLUX_NO_PROMPT
	NoPrompt bool `env:"NO_PROMPT"`

	// NoChild removes node.childProcesses so that no child processes are
	// spawned by the framework.
	// Flag: -noChild. Env: ZLUX_NO_CHILD
	NoChild bool `env:"NO_CHILD"`

	// AllowInvalidTLSProxy permits invalid TLS certificates on the proxied
	// connection. Only the exact string "true" enables it.
	// Flag: -allowInvalidTLSProxy. Env: ZLUX_ALLOW_INVALID_TLS_PROXY
	AllowInvalidTLSProxy string `env:"ALLOW_INVALID_TLS_PROXY"`

	// MLUser and MLPass are the mediation layer credentials. The mediation
	// layer is enabled only when both are present.
	// Flags: -mlUser, -mu, -mlPass, -mp. Env: ZLUX_ML_USER, ZLUX_ML_PASS
	MLUser string `env:"ML_USER"`
	MLPass string `env:"ML_PASS"`

	// Ignored lists the command-line arguments that were not recognized.
	Ignored []string
}

// InvalidTLSProxyAllowed reports whether AllowInvalidTLSProxy is exactly
// "true".
func (o *Options) InvalidTLSProxyAllowed() bool {
	return o.AllowInvalidTLSProxy == "true"
}

// MediationLayerCredentials reports whether both mediation layer credentials
// are present.
func (o *Options) MediationLayerCredentials() bool {
	return o.MLUser != "" && o.MLPass != ""
}

// GetOptions loads, merges, and validates the startup options in the
// following priority order (first source wins for non-zero fields):
//  1. Command-line flags parsed from args
//  2. Environment variables
//
// Returns an error wrapping [ErrMissingConfigPath] when neither source names
// a configuration file.
func GetOptions(args []string) (*Options, error) {
	return newOptionsBuilder().
		withFlags(args).
		withEnv().
		build()
}
