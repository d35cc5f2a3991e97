package handlers

import (
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/marketbridge/internal/bridge"
	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/connector"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
)

// toHTTPError maps a bridge error onto the status the API reports for it.
func toHTTPError(err error) error {
	var (
		apiErr *connector.APIError
		reqErr *dispatch.RequestError
	)

	switch {
	case errors.Is(err, bridge.ErrUnknownMarketplace):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, bridge.ErrUnsupported):
		return huma.Error501NotImplemented(err.Error())
	case errors.Is(err, connector.ErrInvalidQuery):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, connector.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.As(err, &apiErr):
		return huma.Error502BadGateway(
			fmt.Sprintf("%s upstream status %d", apiErr.Marketplace, apiErr.StatusCode),
		)
	case errors.Is(err, auth.ErrConfiguration):
		return huma.Error500InternalServerError(err.Error())
	case errors.Is(err, auth.ErrAuthentication):
		return huma.Error502BadGateway(err.Error())
	case errors.As(err, &reqErr):
		return huma.Error502BadGateway(
			fmt.Sprintf("%s request failed", reqErr.Marketplace),
		)
	default:
		return huma.Error500InternalServerError("marketplace request failed")
	}
}
