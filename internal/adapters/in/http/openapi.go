package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// DocInstanceName is the swag instance the API document is registered under.
const DocInstanceName = "shippinglabel"

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadAPI parses and validates the embedded OpenAPI document.
func LoadAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// apiDoc serves the OpenAPI document to swag as JSON.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

// RegisterDoc makes doc available to the swagger UI under DocInstanceName.
// Registering twice is a no-op.
func RegisterDoc(doc *openapi3.T) error {
	if swag.GetSwagger(DocInstanceName) != nil {
		return nil
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	swag.Register(DocInstanceName, apiDoc{json: string(data)})
	return nil
}

// RequestValidator rejects requests that do not match doc with 400. Paths
// the document does not describe pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) {
					return next(c)
				}
				if errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return c.JSON(http.StatusMethodNotAllowed, newError(http.StatusMethodNotAllowed, findErr.Error()))
				}
				return c.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, findErr.Error()))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, err.Error()))
			}

			return next(c)
		}
	}, nil
}
