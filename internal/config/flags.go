package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const flagSetName = "zlux-app-server"

// parseFlags parses the recognized command-line arguments in args.
//
// Flags (long / short):
//
//	-config / -c              configuration file path
//	-hostServer / -h          agent host to proxy to
//	-hostPort / -P            agent port to proxy to
//	-port / -p                HTTP port of the server
//	-securePort / -s          HTTPS port of the server
//	-noPrompt                 disable interactive prompts
//	-noChild                  do not spawn child processes
//	-allowInvalidTLSProxy     "true" to accept invalid agent certificates
//	-mlUser / -mu             mediation layer user
//	-mlPass / -mp             mediation layer password
//
// Both -name and --name forms are accepted. Unrecognized arguments are
// skipped and reported in [Options.Ignored]. A malformed value does not stop
// the remaining flags from being parsed: the returned options are always
// non-nil and hold every value that could be parsed.
func parseFlags(args []string) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.ConfigPath, "config", "", "Configuration file path")
	fs.StringVar(&opts.ConfigPath, "c", "", "Configuration file path (alias)")
	fs.StringVar(&opts.HostServer, "hostServer", "", "Agent host to proxy to")
	fs.StringVar(&opts.HostServer, "h", "", "Agent host to proxy to (alias)")
	fs.IntVar(&opts.HostPort, "hostPort", 0, "Agent port to proxy to")
	fs.IntVar(&opts.HostPort, "P", 0, "Agent port to proxy to (alias)")
	fs.IntVar(&opts.Port, "port", 0, "HTTP port")
	fs.IntVar(&opts.Port, "p", 0, "HTTP port (alias)")
	fs.IntVar(&opts.SecurePort, "securePort", 0, "HTTPS port")
	fs.IntVar(&opts.SecurePort, "s", 0, "HTTPS port (alias)")
	fs.BoolVar(&opts.NoPrompt, "noPrompt", false, "Disable interactive prompts")
	fs.BoolVar(&opts.NoChild, "noChild", false, "Do not spawn child processes")
	fs.StringVar(&opts.AllowInvalidTLSProxy, "allowInvalidTLSProxy", "", `"true" to accept invalid agent certificates`)
	fs.StringVar(&opts.MLUser, "mlUser", "", "Mediation layer user")
	fs.StringVar(&opts.MLUser, "mu", "", "Mediation layer user (alias)")
	fs.StringVar(&opts.MLPass, "mlPass", "", "Mediation layer password")
	fs.StringVar(&opts.MLPass, "mp", "", "Mediation layer password (alias)")

	known, ignored := splitKnownArgs(fs, args)
	opts.Ignored = ignored

	var errs []error
	for _, group := range known {
		if err := fs.Parse(group); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return opts, fmt.Errorf("%w: %w", ErrInvalidArguments, errors.Join(errs...))
	}

	return opts, nil
}

// splitKnownArgs separates the arguments defined in fs, each grouped with
// the value that belongs to it, from everything else. The flag package stops
// at the first unknown or malformed flag, so unknown ones are removed and
// every group is parsed on its own.
func splitKnownArgs(fs *flag.FlagSet, args []string) (known [][]string, ignored []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		name, hasValue, ok := flagName(arg)
		if !ok {
			ignored = append(ignored, arg)
			continue
		}

		f := fs.Lookup(name)
		if f == nil {
			ignored = append(ignored, arg)
			continue
		}

		group := []string{arg}
		if !hasValue && !isBoolFlag(f) && i+1 < len(args) {
			i++
			group = append(group, args[i])
		}
		known = append(known, group)
	}

	return known, ignored
}

func flagName(arg string) (name string, hasValue bool, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}

	name = strings.TrimPrefix(arg[1:], "-")
	name, _, hasValue = strings.Cut(name, "=")
	if name == "" || strings.HasPrefix(name, "-") {
		return "", false, false
	}

	return name, hasValue, true
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
