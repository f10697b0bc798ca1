// Package api holds the OpenAPI document the HTTP adapter is generated from
// and serves at /swagger.
package api

import (
	_ "embed"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=oapi-codegen.yaml openapi.yaml

//go:embed openapi.yaml
var OpenAPI []byte
