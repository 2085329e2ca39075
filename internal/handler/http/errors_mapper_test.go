package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/service"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("decode: %w", ErrInvalidJSON), want: http.StatusBadRequest},
		{err: ErrNoIdentity, want: http.StatusUnauthorized},
		{err: fmt.Errorf("encrypt: %w", crypto.ErrInput), want: http.StatusBadRequest},
		{err: crypto.ErrDecode, want: http.StatusBadRequest},
		{err: crypto.ErrDerivation, want: http.StatusBadRequest},
		{err: fmt.Errorf("open: %w", crypto.ErrAuthentication), want: http.StatusUnprocessableEntity},
		{err: crypto.ErrEmptyResult, want: http.StatusUnprocessableEntity},
		{err: service.ErrRecordNotFound, want: http.StatusNotFound},
		{err: service.ErrAccessDenied, want: http.StatusForbidden},
		{err: service.ErrUpstreamUnavailable, want: http.StatusBadGateway},
		{err: context.Canceled, want: http.StatusInternalServerError},
		{err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
