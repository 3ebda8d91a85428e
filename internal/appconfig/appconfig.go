// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appconfig declares the static route/auth descriptor of the app
// server: the product code, the root redirect and the root services that
// the framework mounts with or without authentication.
package appconfig

import "github.com/MKhiriev/zlux-app-server/models"

// ProductCode identifies the product in URLs and deployment paths.
const ProductCode = "ZLUX"

const anyMethod = "*"

// RootRedirectURL is where the framework redirects requests for "/".
const RootRedirectURL = "/" + ProductCode + "/plugins/org.zowe.zlux.bootstrap/web/"

// authenticatedRoots are served only to authenticated sessions.
var authenticatedRoots = []string{
	"/logout",
	"/unixfile",
	"/datasetContents",
	"/VSAMdatasetContents",
	"/datasetMetadata",
	"/config",
	"/ras",
	"/security-mgmt",
	"/saf-auth",
}

// New returns the route/auth descriptor. Every call builds a new value, so
// callers may modify the result without affecting others.
func New() models.AppConfig {
	services := make([]models.RootService, 0, len(authenticatedRoots)+1)
	services = append(services, models.RootService{
		Method:       anyMethod,
		URL:          "/login",
		RequiresAuth: false,
	})

	for _, url := range authenticatedRoots {
		services = append(services, models.RootService{
			Method:       anyMethod,
			URL:          url,
			RequiresAuth: true,
		})
	}

	return models.AppConfig{
		ProductCode:     ProductCode,
		RootRedirectURL: RootRedirectURL,
		RootServices:    services,
	}
}
