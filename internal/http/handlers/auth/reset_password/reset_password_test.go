package resetpassword

import (
	"context"
	"exchanger/internal/core/domain/user"
	service "exchanger/internal/core/services/reset_password"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func serve(stub *stubService, url string, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Post("/auth/password-reset/{uid}/{token}", New(stub).ServeHTTP)

	request := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"new_password": "new-password-1", "confirm_password": "new-password-1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "missing confirmation",
			body:           `{"new_password": "new-password-1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid link",
			body:           `{"new_password": "new-password-1", "confirm_password": "new-password-1"}`,
			serviceErr:     user.ErrInvalidResetLink,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid token",
			body:           `{"new_password": "new-password-1", "confirm_password": "new-password-1"}`,
			serviceErr:     user.ErrInvalidResetToken,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "passwords do not match",
			body:           `{"new_password": "new-password-1", "confirm_password": "other"}`,
			serviceErr:     user.ErrPasswordsDoNotMatch,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "password too short",
			body:           `{"new_password": "short", "confirm_password": "short"}`,
			serviceErr:     user.ErrPasswordTooShort,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			recorder := serve(stub, "/auth/password-reset/NDI/some-token", testcase.body)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestPathParamsArePassedToService(t *testing.T) {
	stub := &stubService{}
	recorder := serve(
		stub,
		"/auth/password-reset/NDI/8a19f5b121b22f8fd11dbb5de6532ed6",
		`{"new_password": "new-password-1", "confirm_password": "new-password-1"}`,
	)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, "NDI", stub.input.EncodedUserID)
	assert.Equal(t, user.PasswordResetToken("8a19f5b121b22f8fd11dbb5de6532ed6"), stub.input.Token)
	assert.Equal(t, user.RawPassword("new-password-1"), stub.input.NewPassword)
}
