// Package config provides the configuration tree handed to the server
// framework together with the startup options that shape it.
//
// The configuration tree is assembled from two sources:
//  1. The built-in defaults (defaults.jsonc, embedded in the binary).
//  2. A user-supplied JSON file that may contain comments and trailing
//     commas. Every top-level key of the user file replaces the default
//     value of the same key wholesale.
//
// Startup options are assembled from the command line and the environment
// (later sources only fill fields earlier sources left empty):
//  1. Command-line flags
//  2. Environment variables prefixed with ZLUX_
//
// The main entry points are [GetOptions], [Default] and [LoadFile].
package config
