package http

import (
	"fmt"
	"net/http"
	"sync"

	"bakery/internal/generated/servers"
	"bakery/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the echo instance serving s. Requests are validated
// against the embedded API document, counted by serverMetrics and the
// metrics endpoint serves metricsHandler; either may be nil to leave
// metrics out. The document is browsable under /swagger/.
func NewRouter(s *Server, serverMetrics *metrics.ServerMetrics, metricsHandler http.Handler) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if serverMetrics != nil {
		e.Use(serverMetrics.Middleware())
	}
	e.Use(validator)

	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)

	return e, nil
}

// swaggerDoc serves the API document to the swagger UI.
type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerDocOnce sync.Once

func registerSwaggerDoc(swagger *openapi3.T) error {
	raw, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(raw))
	})
	return nil
}
