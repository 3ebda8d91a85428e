package config

import "errors"

// Startup errors. All of them are fatal: the server framework must not be
// started with a partially derived configuration.
var (
	// ErrMissingConfigPath indicates that no configuration file path was
	// supplied on the command line or in the environment.
	ErrMissingConfigPath = errors.New("missing required config file path")
	// ErrInvalidArguments indicates that a recognized command-line argument
	// carries a malformed value (for example, a non-numeric port).
	ErrInvalidArguments = errors.New("invalid command-line arguments")
	// ErrInvalidConfigFile indicates that the configuration file could not be
	// read or is not a JSON object.
	ErrInvalidConfigFile = errors.New("invalid configuration file")
	// ErrMediationLayerMisconfigured indicates that mediation layer
	// credentials were supplied but the merged configuration lacks the
	// fields needed to register with it.
	ErrMediationLayerMisconfigured = errors.New("mediation layer is misconfigured")
	// ErrUnresolvedProxiedPort indicates that no agent port could be derived
	// from the arguments or the merged configuration.
	ErrUnresolvedProxiedPort = errors.New("unable to resolve proxied agent port")
)
