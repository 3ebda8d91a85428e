// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RootService declares one root-level URL pattern served by the framework
// and whether requests to it must carry an authenticated session.
type RootService struct {
	// Method is the HTTP method the entry applies to; "*" matches any.
	Method string `json:"method"`
	// URL is the root-relative path pattern (e.g. "/login").
	URL string `json:"url"`
	// RequiresAuth reports whether the framework must authenticate requests
	// before dispatching them to the service.
	RequiresAuth bool `json:"requiresAuth"`
}

// AppConfig is the static route/auth descriptor handed to the server
// framework. It never depends on user configuration.
type AppConfig struct {
	ProductCode     string        `json:"productCode"`
	RootRedirectURL string        `json:"rootRedirectURL"`
	RootServices    []RootService `json:"rootServices"`
}
