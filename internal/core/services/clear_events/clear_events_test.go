package clearevents

import (
	"context"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ADMIN_USERNAME = "admin"
	ADMIN_PASSWORD = "admin-password"
)

type suite struct {
	log       *logging.FakeLogger
	userRepo  *user.FakeUserRepository
	hasher    *user.FakePasswordHasher
	eventRepo *event.FakeEventRepository
}

func setupSuite(t *testing.T) *suite {
	hasher := user.NewFakePasswordHasher()
	adminHash, err := hasher.HashPassword(user.RawPassword(ADMIN_PASSWORD))
	require.NoError(t, err)
	regularHash, err := hasher.HashPassword(user.RawPassword("bob-password"))
	require.NoError(t, err)

	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{
		{
			ID:           user.ID(1),
			Username:     user.Username(ADMIN_USERNAME),
			Email:        c.Email("admin@test.test"),
			PasswordHash: adminHash,
			IsSuperuser:  true,
		},
		{
			ID:           user.ID(2),
			Username:     user.Username("bob"),
			Email:        c.Email("bob@test.test"),
			PasswordHash: regularHash,
		},
	}

	eventRepo := event.NewFakeEventRepository()
	eventRepo.Events = []event.Event{
		{ID: event.ID(1), Type: "buy", Currency: "USD", Amount: 100, Date: "15.03", Rate: 2, Total: 200},
		{ID: event.ID(2), Type: "sell", Currency: "EUR", Amount: 50, Date: "16.03", Rate: 3, Total: 150},
	}
	return &suite{
		log:       logging.NewFakeLogger(),
		userRepo:  userRepo,
		hasher:    hasher,
		eventRepo: eventRepo,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, s.eventRepo)
}

func TestClearsAllEvents(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Username: user.Username(ADMIN_USERNAME),
		Password: user.RawPassword(ADMIN_PASSWORD),
	})

	require.NoError(t, err)
	require.Empty(t, suite.eventRepo.Events)
}

func TestInvalidPassword(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Username: user.Username(ADMIN_USERNAME),
		Password: user.RawPassword("wrong-password"),
	})

	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	require.Len(t, suite.eventRepo.Events, 2)
}

func TestUnknownUser(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Username: user.Username("nobody"),
		Password: user.RawPassword(ADMIN_PASSWORD),
	})

	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	require.Len(t, suite.eventRepo.Events, 2)
}

func TestRegularUserMayNotClear(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Username: user.Username("bob"),
		Password: user.RawPassword("bob-password"),
	})

	require.ErrorIs(t, err, user.ErrNotSuperuser)
	require.Len(t, suite.eventRepo.Events, 2)
}
