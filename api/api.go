// Package api holds the OpenAPI document of the admin HTTP API.
package api

import _ "embed"

// AdminOpenAPI is the OpenAPI 3 document requests to the admin API are validated against.
//
//go:embed admin.openapi.yaml
var AdminOpenAPI []byte
