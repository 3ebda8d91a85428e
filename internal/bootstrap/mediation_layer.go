package bootstrap

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/MKhiriev/zlux-app-server/internal/app"
	"github.com/MKhiriev/zlux-app-server/internal/config"
	"github.com/MKhiriev/zlux-app-server/internal/prompt"
)

// maxInstanceNumber bounds the random suffix of the instance ID: [0, 9998].
const maxInstanceNumber = 9999

const eurekaAppsPath = "/eureka/apps/"

// enableMediationLayer turns on registration with the mediation layer and
// fills in the instance ID and the credentialed discovery service URL.
//
// node.mediationLayer.server.hostname, .server.port and .instance.app must
// be present in cfg. The eureka.serviceUrls section is created if missing.
// Credentials are percent-escaped in the URL userinfo.
func enableMediationLayer(cfg config.Tree, user, pass string, instanceNumber int) error {
	ml := cfg.Section("node", "mediationLayer")
	if ml == nil {
		return fmt.Errorf("%w: node.mediationLayer section is missing", config.ErrMediationLayerMisconfigured)
	}

	hostname, ok := ml.String("server", "hostname")
	if !ok || hostname == "" {
		return fmt.Errorf("%w: node.mediationLayer.server.hostname is required", config.ErrMediationLayerMisconfigured)
	}

	port, ok := ml.Int("server", "port")
	if !ok || port <= 0 {
		return fmt.Errorf("%w: node.mediationLayer.server.port is required", config.ErrMediationLayerMisconfigured)
	}

	appName, ok := ml.String("instance", "app")
	if !ok || appName == "" {
		return fmt.Errorf("%w: node.mediationLayer.instance.app is required", config.ErrMediationLayerMisconfigured)
	}

	// Discovery is always registered over plain http, whatever server.isHttps
	// says; the gateway exposes its eureka endpoint there.
	serviceURL := url.URL{
		Scheme: "http",
		User:   url.UserPassword(user, pass),
		Host:   net.JoinHostPort(hostname, strconv.Itoa(port)),
		Path:   eurekaAppsPath,
	}

	ml.Set(true, "enabled")
	ml.Set(fmt.Sprintf("%s:%d", appName, instanceNumber), "instance", "instanceId")
	ml.Set([]any{serviceURL.String()}, "eureka", "serviceUrls", "default")

	return nil
}

// promptMediationLayerPassword asks for the mediation layer password when
// only the user was supplied, unless prompting is disabled.
func (b *Bootstrapper) promptMediationLayerPassword(opts *config.Options) error {
	if opts.MLUser == "" || opts.MLPass != "" || opts.NoPrompt || b.prompter == nil {
		return nil
	}

	pass, err := b.prompter.Password(fmt.Sprintf(app.MsgMediationLayerPasswordPrompt, opts.MLUser))
	if errors.Is(err, prompt.ErrNotInteractive) {
		b.logger.Debug().Msg("not prompting for mediation layer password: input is not a terminal")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error prompting for mediation layer password: %w", err)
	}

	opts.MLPass = pass
	return nil
}
