package httpapi

import (
	"errors"
	"net/http"

	catalogapp "storefront/internal/catalog/app"
)

// httpStatusFromErr maps service errors onto the HTTP status and stable
// error code carried in the response body.
func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, catalogapp.ErrUpstream):
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL", err.Error()
	}
}
