package authenticate

import (
	"context"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	USERNAME = "alice"
	PASSWORD = "alice-password"
	EMAIL    = "alice@test.test"
)

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
	issuer   *user.FakeTokenPairIssuer
}

func setupSuite(t *testing.T) *suite {
	hasher := user.NewFakePasswordHasher()
	hash, err := hasher.HashPassword(user.RawPassword(PASSWORD))
	require.NoError(t, err)

	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:           user.ID(1),
		Username:     user.Username(USERNAME),
		Email:        c.Email(EMAIL),
		PasswordHash: hash,
		IsSuperuser:  true,
	}}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   user.NewFakeTokenPairIssuer(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, s.issuer)
}

func TestSuccessfulAuthentication(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	result, err := service.Run(
		context.Background(),
		Input{Username: user.Username(USERNAME), Password: user.RawPassword(PASSWORD)},
	)

	require.NoError(t, err)
	require.NotEmpty(t, result.TokenPair.Access)
	require.NotEmpty(t, result.TokenPair.Refresh)
	require.Len(t, suite.issuer.IssuedFor, 1)
	require.Equal(t, user.Username(USERNAME), suite.issuer.IssuedFor[0].Username)
	require.Equal(t, c.Email(EMAIL), suite.issuer.IssuedFor[0].Email)
	require.True(t, suite.issuer.IssuedFor[0].IsSuperuser)
}

func TestInvalidPassword(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	_, err := service.Run(
		context.Background(),
		Input{Username: user.Username(USERNAME), Password: user.RawPassword("wrong-password")},
	)

	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	require.Empty(t, suite.issuer.IssuedFor)
}

func TestUnknownUser(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	_, err := service.Run(
		context.Background(),
		Input{Username: user.Username("nobody"), Password: user.RawPassword(PASSWORD)},
	)

	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
	require.Empty(t, suite.issuer.IssuedFor)
}

func TestIssuerError(t *testing.T) {
	suite := setupSuite(t)
	suite.issuer.ReturnError = true
	service := suite.createService()

	_, err := service.Run(
		context.Background(),
		Input{Username: user.Username(USERNAME), Password: user.RawPassword(PASSWORD)},
	)

	require.Error(t, err)
}
