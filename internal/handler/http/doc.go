// Package http is the local HTTP agent: a small REST surface over the field
// encryption core so that non-Go frontends can encrypt, decrypt and reconcile
// vault values without holding key material themselves.
//
// Every /api route except /api/version requires the caller's identity,
// taken from the X-User-ID header or from the user_id (or sub) claim of a
// bearer token. Requests are traced, logged and compressed by middleware
// before reaching the handlers.
package http
