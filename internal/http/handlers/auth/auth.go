package auth

import (
	"context"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/http/handlers/response"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 4096
)

type contextKey string

const CONTEXT_CLAIMS_KEY = contextKey("token-claims")

func ParseToken(r *http.Request) (token user.AccessToken, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 {
		return token, false
	}
	if len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.AccessToken(parts[1]), true
}

// RequireAuthentication rejects requests without a valid access token
// and puts the token claims on the request context.
func RequireAuthentication(parser user.AccessTokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			token, ok := ParseToken(r)
			if !ok {
				response.RenderUnauthorized(rw)
				return
			}
			claims, err := parser.ParseAccessToken(token)
			if err != nil {
				response.RenderUnauthorized(rw)
				return
			}
			ctx := context.WithValue(r.Context(), CONTEXT_CLAIMS_KEY, claims)
			next.ServeHTTP(rw, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (claims user.TokenClaims, ok bool) {
	claims, ok = ctx.Value(CONTEXT_CLAIMS_KEY).(user.TokenClaims)
	return claims, ok
}
