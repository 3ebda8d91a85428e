// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"fmt"
	"math/rand/v2"

	"github.com/MKhiriev/zlux-app-server/internal/appconfig"
	"github.com/MKhiriev/zlux-app-server/internal/config"
	"github.com/MKhiriev/zlux-app-server/internal/logger"
	"github.com/MKhiriev/zlux-app-server/models"
)

// DefaultProxiedHost is used when no agent host is given on the command line.
const DefaultProxiedHost = "127.0.0.1"

// Bundle is everything the server framework needs to start.
type Bundle struct {
	// AppConfig is the static route/auth descriptor.
	AppConfig models.AppConfig `json:"appConfig"`
	// ConfigJSON is the merged configuration tree.
	ConfigJSON config.Tree `json:"configJSON"`
	// StartUpConfig holds the derived proxy parameters.
	StartUpConfig models.StartUpConfig `json:"startUpConfig"`
}

// Bootstrapper builds a [Bundle] from startup options.
type Bootstrapper struct {
	logger     *logger.Logger
	loadConfig ConfigLoader
	prompter   Prompter
	intN       func(n int) int
}

// Option customizes a [Bootstrapper].
type Option func(*Bootstrapper)

// WithPrompter enables interactive prompting for missing secrets.
func WithPrompter(p Prompter) Option {
	return func(b *Bootstrapper) {
		b.prompter = p
	}
}

// WithConfigLoader replaces [config.LoadFile] as the user configuration
// reader.
func WithConfigLoader(loader ConfigLoader) Option {
	return func(b *Bootstrapper) {
		b.loadConfig = loader
	}
}

// WithRandom replaces the source of mediation layer instance numbers.
// intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(b *Bootstrapper) {
		b.intN = intN
	}
}

// New returns a Bootstrapper logging to log.
func New(log *logger.Logger, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		logger:     log.WithComponent("bootstrap"),
		loadConfig: config.LoadFile,
		intN:       rand.IntN,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run parses args together with the ZLUX_* environment and builds the
// bundle. It returns an error wrapping [config.ErrMissingConfigPath] before
// touching the filesystem when no configuration file is named.
func (b *Bootstrapper) Run(args []string) (*Bundle, error) {
	opts, err := config.GetOptions(args)
	if err != nil {
		return nil, fmt.Errorf("error getting startup options: %w", err)
	}

	if len(opts.Ignored) > 0 {
		b.logger.Debug().Strs("args", opts.Ignored).Msg("ignoring unrecognized arguments")
	}

	return b.Build(opts)
}

// Build derives the bundle from already parsed options. opts is not
// modified.
func (b *Bootstrapper) Build(opts *config.Options) (*Bundle, error) {
	if opts.ConfigPath == "" {
		return nil, config.ErrMissingConfigPath
	}

	o := *opts

	cfg, err := config.Default()
	if err != nil {
		return nil, err
	}

	userCfg, err := b.loadConfig(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error loading user config: %w", err)
	}
	cfg.Overlay(userCfg)
	b.logger.Info().Str("path", o.ConfigPath).Msg("loaded user config")

	if err := b.promptMediationLayerPassword(&o); err != nil {
		return nil, err
	}

	if o.MediationLayerCredentials() {
		if err := enableMediationLayer(cfg, o.MLUser, o.MLPass, b.intN(maxInstanceNumber)); err != nil {
			return nil, err
		}
		b.logger.Info().Msg("mediation layer enabled")
	}

	startUp := models.StartUpConfig{
		ProxiedHost:          resolveProxiedHost(&o),
		ProxiedPort:          b.resolveProxiedPort(cfg, &o),
		AllowInvalidTLSProxy: o.InvalidTLSProxyAllowed(),
	}

	applyListenerOverrides(cfg, &o)
	if o.NoChild {
		cfg.Delete("node", "childProcesses")
	}

	if startUp.ProxiedPort <= 0 {
		return nil, config.ErrUnresolvedProxiedPort
	}

	b.logger.Debug().
		Str("proxied_host", startUp.ProxiedHost).
		Int("proxied_port", startUp.ProxiedPort).
		Bool("allow_invalid_tls_proxy", startUp.AllowInvalidTLSProxy).
		Msg("resolved startup config")

	return &Bundle{
		AppConfig:     appconfig.New(),
		ConfigJSON:    cfg,
		StartUpConfig: startUp,
	}, nil
}
