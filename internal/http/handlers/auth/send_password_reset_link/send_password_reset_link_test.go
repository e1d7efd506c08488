package sendpasswordresetlink

import (
	"context"
	"encoding/json"
	ratelimiter "exchanger/internal/core/domain/rate_limiter"
	"exchanger/internal/core/domain/user"
	service "exchanger/internal/core/services/send_password_reset_link"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const TOKEN = "8a19f5b121b22f8fd11dbb5de6532ed6"

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Token = user.PasswordResetToken(TOKEN)
	result.Link = user.PasswordResetLink("https://exchanger.test/reset-password/NDI/" + TOKEN)
	return result, nil
}

func TestSendPasswordResetLinkHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"contact": "alice@test.test"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "missing contact",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "unknown contact",
			body:           `{"contact": "nobody@test.test"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "delivery failed",
			body:           `{"contact": "alice@test.test"}`,
			serviceErr:     user.ErrResetDeliveryFailed,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"contact": "alice@test.test"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub, false)

			request := httptest.NewRequest(
				http.MethodPost,
				"/auth/password-reset",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestContactRouting(t *testing.T) {
	cases := []struct {
		id            string
		contact       string
		expectedEmail string
		expectedPhone string
	}{
		{"email", "Alice@Test.Test", "alice@test.test", ""},
		{"phone with plus", "+15550001111", "", "+15550001111"},
		{"phone without at sign", "15550001111", "", "15550001111"},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub, false)

			request := httptest.NewRequest(
				http.MethodPost,
				"/auth/password-reset",
				strings.NewReader(`{"contact": "`+testcase.contact+`"}`),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusOK, recorder.Code)
			require.NotNil(t, stub.input)
			if testcase.expectedEmail != "" {
				assert.True(t, stub.input.Contact.Email.IsPresent)
				assert.Equal(t, testcase.expectedEmail, string(stub.input.Contact.Email.Value))
			} else {
				assert.True(t, stub.input.Contact.Phone.IsPresent)
				assert.Equal(t, testcase.expectedPhone, string(stub.input.Contact.Phone.Value))
			}
		})
	}
}

func TestTokenOnlyReturnedInTestMode(t *testing.T) {
	body := `{"contact": "alice@test.test"}`

	handler := New(&stubService{}, false)
	request := httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	result := Result{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	assert.Empty(t, result.Token)

	handler = New(&stubService{}, true)
	request = httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(body))
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	result = Result{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	assert.Equal(t, TOKEN, result.Token)
}
