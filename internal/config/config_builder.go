package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	sources []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		sources: make([]*Options, 0, 2),
	}
}

// build merges the collected sources. Sources that failed to parse still
// contribute the values they did parse, so a missing config path is reported
// as ErrMissingConfigPath even alongside malformed arguments.
func (b *optionsBuilder) build() (*Options, error) {
	opts := new(Options)
	for _, src := range b.sources {
		if err := mergo.Merge(opts, src); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if b.err != nil {
		return nil, fmt.Errorf("error occured during building options: %w", errors.Join(opts.validate(), b.err))
	}

	return opts, opts.validate()
}

func (b *optionsBuilder) withFlags(args []string) *optionsBuilder {
	flagOpts, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
	}

	b.sources = append(b.sources, flagOpts)
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
	}

	b.sources = append(b.sources, envOpts)
	return b
}
