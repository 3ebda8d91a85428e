package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/zlux-app-server/internal/app"
	"github.com/MKhiriev/zlux-app-server/internal/bootstrap"
	"github.com/MKhiriev/zlux-app-server/internal/config"
	"github.com/MKhiriev/zlux-app-server/internal/logger"
	"github.com/MKhiriev/zlux-app-server/internal/prompt"
	"github.com/MKhiriev/zlux-app-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Fprint(os.Stderr)

	log := logger.NewLogger("zlux-app-server", os.Stderr)
	b := bootstrap.New(log, bootstrap.WithPrompter(prompt.NewTerminal(os.Stdin, os.Stderr)))

	bundle, err := b.Run(os.Args[1:])
	if errors.Is(err, config.ErrMissingConfigPath) {
		printMissingConfig(os.Stdout)
		os.Exit(-1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping server")
	}

	log.Info().
		Str("proxied_host", bundle.StartUpConfig.ProxiedHost).
		Int("proxied_port", bundle.StartUpConfig.ProxiedPort).
		Msg("handing off to server framework")

	if err := writeBundle(os.Stdout, bundle); err != nil {
		log.Fatal().Err(err).Msg("error writing bundle")
	}
}

func printMissingConfig(w io.Writer) {
	fmt.Fprintln(w, app.MsgMissingParameters)
	fmt.Fprintln(w, app.MsgConfigFileNotSpecified)
}

// writeBundle encodes the bundle for the server framework process.
func writeBundle(w io.Writer, bundle *bootstrap.Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("error encoding bundle: %w", err)
	}

	return nil
}
