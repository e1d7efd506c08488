package checksuperuser

import (
	"context"
	"exchanger/internal/core/domain/user"
	service "exchanger/internal/core/services/check_superuser"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	isSuperuser bool
	err         error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	result.IsSuperuser = s.isSuperuser
	return result, nil
}

func TestCheckSuperuserHandler(t *testing.T) {
	cases := []struct {
		id             string
		isSuperuser    bool
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "superuser",
			isSuperuser:    true,
			expectedStatus: http.StatusNoContent,
		},
		{
			id:             "regular user",
			isSuperuser:    false,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "unknown user",
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			router := chi.NewRouter()
			router.Get(
				"/auth/superuser/{username}",
				New(&stubService{isSuperuser: testcase.isSuperuser, err: testcase.serviceErr}).ServeHTTP,
			)

			request := httptest.NewRequest(http.MethodGet, "/auth/superuser/alice", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}
