package bootstrap

import "github.com/MKhiriev/zlux-app-server/internal/config"

// Prompter asks the operator for a secret value.
type Prompter interface {
	// Password displays label and returns the entered secret. It returns
	// prompt.ErrNotInteractive when no operator can answer.
	Password(label string) (string, error)
}

// ConfigLoader reads the user configuration file at path.
type ConfigLoader func(path string) (config.Tree, error)
