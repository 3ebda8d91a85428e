package bootstrap

import (
	"encoding/json"

	"github.com/MKhiriev/zlux-app-server/internal/app"
	"github.com/MKhiriev/zlux-app-server/internal/config"
)

func resolveProxiedHost(opts *config.Options) string {
	if opts.HostServer != "" {
		return opts.HostServer
	}

	return DefaultProxiedHost
}

// resolveProxiedPort prefers the explicit host port, then the agent's https
// port, then its http port. The legacy top-level zssPort is consulted only
// when no agent is configured: the key is absent, null, false, zero or an
// empty string. Zero means unresolved.
func (b *Bootstrapper) resolveProxiedPort(cfg config.Tree, opts *config.Options) int {
	if opts.HostPort != 0 {
		return opts.HostPort
	}

	if agentValue, _ := cfg.Lookup("agent"); present(agentValue) {
		agent := cfg.Section("agent")
		switch {
		case agent.Section("https") != nil:
			port, _ := agent.Int("https", "port")
			return port
		case agent.Section("http") != nil:
			port, _ := agent.Int("http", "port")
			return port
		default:
			b.logger.Warn().Msg(app.MsgAgentWithoutPort)
			return 0
		}
	}

	port, _ := cfg.Int("zssPort")
	return port
}

// applyListenerOverrides sets node.http.port, creating the section when it
// is missing, and node.https.port only when that section already exists.
func applyListenerOverrides(cfg config.Tree, opts *config.Options) {
	if opts.Port != 0 {
		cfg.Set(opts.Port, "node", "http", "port")
	}

	if opts.SecurePort != 0 {
		if https := cfg.Section("node", "https"); https != nil {
			https.Set(opts.SecurePort, "port")
		}
	}
}

// present reports whether a configuration value counts as set: anything but
// null, false, numeric zero and the empty string.
func present(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	case float64:
		return value != 0
	case int:
		return value != 0
	default:
		return true
	}
}
