package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	catalogapp "storefront/internal/catalog/app"
)

func TestHTTPStatusFromErr(t *testing.T) {
	t.Run("NotFound -> 404", func(t *testing.T) {
		err := fmt.Errorf("%w: id 42", catalogapp.ErrNotFound)
		gotStatus, gotCode, _ := httpStatusFromErr(err)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("Upstream -> 502", func(t *testing.T) {
		err := fmt.Errorf("%w: status 500", catalogapp.ErrUpstream)
		gotStatus, gotCode, _ := httpStatusFromErr(err)
		if gotStatus != http.StatusBadGateway || gotCode != "UPSTREAM_UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		err := errors.New("boom")
		gotStatus, gotCode, _ := httpStatusFromErr(err)
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
