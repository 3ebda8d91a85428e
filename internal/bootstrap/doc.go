// Package bootstrap turns startup options and configuration files into the
// bundle handed to the server framework.
//
// A run proceeds once, synchronously:
//  1. options are read from the command line and the environment;
//  2. the user configuration file is overlaid on the built-in defaults;
//  3. the mediation layer is enabled when credentials are supplied;
//  4. the proxied agent host and port are resolved;
//  5. listener ports and child-process overrides are applied.
//
// The resulting [Bundle] is never mutated by this package after it is
// returned.
package bootstrap
