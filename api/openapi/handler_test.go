package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/marketbridge/api/openapi"
)

type pingOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func newServer() *echo.Echo {
	e := echo.New()
	api := humaecho.New(e, huma.DefaultConfig("marketbridge API", "test"))
	openapi.RegisterRoutes(e, api)

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/api/v1/ping",
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})
	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantContains string
		wantLocation string
	}{
		{
			name:         "json spec includes late routes",
			path:         "/swagger/swagger.json",
			wantStatus:   http.StatusOK,
			wantContains: `"/api/v1/ping"`,
		},
		{
			name:         "yaml spec",
			path:         "/swagger/swagger.yaml",
			wantStatus:   http.StatusOK,
			wantContains: "title: marketbridge API",
		},
		{
			name:         "ui page",
			path:         "/swagger/index.html",
			wantStatus:   http.StatusOK,
			wantContains: "swagger-ui",
		},
		{
			name:         "bare path redirects",
			path:         "/swagger",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
	}

	e := newServer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantContains != "" {
				assert.Contains(t, rec.Body.String(), tt.wantContains)
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}
