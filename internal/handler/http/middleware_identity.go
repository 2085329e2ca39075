package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
)

const userIDHeader = "X-User-ID"

// withIdentity resolves the caller's stable user identifier and stores it
// in the request context under [utils.UserIDCtxKey]. X-User-ID wins over
// the Authorization header. The token signature is not verified: the agent
// only needs the identifier, which is the key-derivation input.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			if header := r.Header.Get("Authorization"); header != "" {
				token, err := utils.ParseBearerToken(header)
				if err == nil {
					userID, err = utils.UserIDFromToken(token)
				}
				if err != nil {
					log.Err(err).Str("func", "Handler.withIdentity").Msg("unusable bearer token")
				}
			}
		}

		if userID == "" {
			log.Warn().Err(ErrNoIdentity).Str("func", "Handler.withIdentity").Send()
			utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}
