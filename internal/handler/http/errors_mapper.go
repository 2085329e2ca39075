package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/service"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrNoIdentity, http.StatusUnauthorized},

	{crypto.ErrInput, http.StatusBadRequest},
	{crypto.ErrDecode, http.StatusBadRequest},
	{crypto.ErrDerivation, http.StatusBadRequest},
	{crypto.ErrAuthentication, http.StatusUnprocessableEntity},
	{crypto.ErrEmptyResult, http.StatusUnprocessableEntity},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoUserID, http.StatusUnauthorized},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrAccessDenied, http.StatusForbidden},
	{service.ErrUpstreamUnavailable, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
