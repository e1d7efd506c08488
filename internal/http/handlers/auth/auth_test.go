package auth

import (
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/user"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	claims user.TokenClaims
	err    error
}

func (p *stubParser) ParseAccessToken(token user.AccessToken) (user.TokenClaims, error) {
	if p.err != nil {
		return user.TokenClaims{}, p.err
	}
	return p.claims, nil
}

func TestRequireAuthentication(t *testing.T) {
	cases := []struct {
		id             string
		header         string
		parserErr      error
		expectedStatus int
	}{
		{
			id:             "valid token",
			header:         "Bearer some-token",
			expectedStatus: http.StatusOK,
		},
		{
			id:             "no header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "not a bearer token",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "invalid token",
			header:         "Bearer some-token",
			parserErr:      user.ErrInvalidAccessToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			parser := &stubParser{
				claims: user.TokenClaims{
					Username:    user.Username("alice"),
					Email:       c.Email("alice@test.test"),
					IsSuperuser: true,
				},
				err: testcase.parserErr,
			}

			var gotClaims user.TokenClaims
			var claimsOK bool
			next := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
				gotClaims, claimsOK = ClaimsFromContext(r.Context())
				rw.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/events", nil)
			if testcase.header != "" {
				request.Header.Set("Authorization", testcase.header)
			}
			recorder := httptest.NewRecorder()
			RequireAuthentication(parser)(next).ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedStatus == http.StatusOK {
				require.True(t, claimsOK)
				assert.Equal(t, user.Username("alice"), gotClaims.Username)
			}
		})
	}
}
