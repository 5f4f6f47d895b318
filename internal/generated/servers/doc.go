// Package servers holds the HTTP contract of the shipping API: the embedded
// OpenAPI document, the request and response types it defines and the echo
// server stubs. The layout follows oapi-codegen's echo-server output so the
// package can be regenerated from openapi.yaml without touching callers.
package servers

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger parses and validates the embedded OpenAPI document. The result is
// cached; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = err
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = err
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}
