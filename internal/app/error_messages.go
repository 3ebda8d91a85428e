// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// server bootstrap and its binary.
//
// All Msg* constants are human-readable message strings written to the
// console or to log entries. Keeping them in one place ensures consistent
// wording for operators and for scripts that scrape startup output.
package app

const (
	// MsgMissingParameters is printed to standard output when a required
	// startup argument is missing.
	MsgMissingParameters = "Missing one or more parameters required to run."

	// MsgConfigFileNotSpecified follows MsgMissingParameters when the
	// configuration file path is the missing argument.
	MsgConfigFileNotSpecified = "config file was not specified"

	// MsgAgentWithoutPort is logged when the configuration declares an agent
	// section without an http or https port.
	MsgAgentWithoutPort = "Invalid server configuration. Agent specified without http or https port"

	// MsgMediationLayerPasswordPrompt is the interactive prompt label for the
	// mediation layer password. It is formatted with the user name.
	MsgMediationLayerPasswordPrompt = "Mediation layer password for %s: "
)
