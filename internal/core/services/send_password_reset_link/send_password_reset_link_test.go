package sendpasswordresetlink

import (
	"context"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	EMAIL = "alice@test.test"
	PHONE = "+15550001111"
	TOKEN = "8a19f5b121b22f8fd11dbb5de6532ed6"
)

type suite struct {
	log         *logging.FakeLogger
	userRepo    *user.FakeUserRepository
	resetter    *user.FakePasswordResetter
	emailSender *user.FakeResetLinkSender
	smsSender   *user.FakeResetLinkSender
}

func setupSuite(t *testing.T) *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:       user.ID(42),
		Username: user.Username("alice"),
		Email:    c.Email(EMAIL),
		Phone:    c.Phone(PHONE),
	}}
	return &suite{
		log:         logging.NewFakeLogger(),
		userRepo:    userRepo,
		resetter:    user.NewFakePasswordResetter(TOKEN),
		emailSender: user.NewFakeResetLinkSender(),
		smsSender:   user.NewFakeResetLinkSender(),
	}
}

func (s *suite) createService(t *testing.T) services.Service[Input, Result] {
	baseURL, err := url.Parse("https://exchanger.test/reset-password")
	require.NoError(t, err)
	return New(s.log, s.userRepo, s.resetter, s.emailSender, s.smsSender, baseURL)
}

func TestSendsLinkByEmail(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService(t)

	result, err := service.Run(
		context.Background(),
		Input{Contact: c.NewEmailContact(c.NewEmail(EMAIL))},
	)

	require.NoError(t, err)
	require.Equal(t, user.PasswordResetToken(TOKEN), result.Token)
	// 42 encodes to NDI in unpadded url-safe base64
	require.Equal(
		t,
		user.PasswordResetLink("https://exchanger.test/reset-password/NDI/"+TOKEN),
		result.Link,
	)
	require.Equal(t, 1, suite.emailSender.SentCount())
	require.Equal(t, 0, suite.smsSender.SentCount())
}

func TestSendsLinkBySms(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService(t)

	result, err := service.Run(
		context.Background(),
		Input{Contact: c.NewPhoneContact(c.NewPhone(PHONE))},
	)

	require.NoError(t, err)
	require.Equal(t, 0, suite.emailSender.SentCount())
	require.Equal(t, 1, suite.smsSender.SentCount())
	require.Equal(t, result.Link, suite.smsSender.Sent[0])
}

func TestUnknownEmail(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService(t)

	_, err := service.Run(
		context.Background(),
		Input{Contact: c.NewEmailContact(c.NewEmail("nobody@test.test"))},
	)

	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
	require.Equal(t, 0, suite.emailSender.SentCount())
}

func TestUnknownPhone(t *testing.T) {
	suite := setupSuite(t)
	service := suite.createService(t)

	_, err := service.Run(
		context.Background(),
		Input{Contact: c.NewPhoneContact(c.NewPhone("+15559998888"))},
	)

	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
	require.Equal(t, 0, suite.smsSender.SentCount())
}

func TestDeliveryFailure(t *testing.T) {
	suite := setupSuite(t)
	suite.emailSender.ReturnError = true
	service := suite.createService(t)

	_, err := service.Run(
		context.Background(),
		Input{Contact: c.NewEmailContact(c.NewEmail(EMAIL))},
	)

	require.ErrorIs(t, err, user.ErrResetDeliveryFailed)
}
