package sendpasswordresetlink

import (
	"context"
	"errors"
	c "exchanger/internal/core/domain/common"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	"net/url"
)

type Input struct {
	Contact c.Contact
}

func (i Input) GetRateLimitKey() string {
	switch {
	case i.Contact.Email.IsPresent:
		return "password-reset::" + string(i.Contact.Email.Value)
	case i.Contact.Phone.IsPresent:
		return "password-reset::" + string(i.Contact.Phone.Value)
	}
	return "password-reset::"
}

type Result struct {
	Token user.PasswordResetToken
	Link  user.PasswordResetLink
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
	emailSender      user.PasswordResetLinkSender
	smsSender        user.PasswordResetLinkSender
	baseURL          *url.URL
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
	emailSender user.PasswordResetLinkSender,
	smsSender user.PasswordResetLinkSender,
	baseURL *url.URL,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if emailSender == nil {
		panic(e.NewNilArgumentError("emailSender"))
	}
	if smsSender == nil {
		panic(e.NewNilArgumentError("smsSender"))
	}
	if baseURL == nil {
		panic(e.NewNilArgumentError("baseURL"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
		emailSender:      emailSender,
		smsSender:        smsSender,
		baseURL:          baseURL,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	var u user.User
	var sender user.PasswordResetLinkSender
	switch {
	case input.Contact.Email.IsPresent:
		u, err = s.userRepository.GetByEmail(ctx, input.Contact.Email.Value)
		sender = s.emailSender
	case input.Contact.Phone.IsPresent:
		u, err = s.userRepository.GetByPhone(ctx, input.Contact.Phone.Value)
		sender = s.smsSender
	default:
		return result, e.NewInvalidStateError("contact has neither email nor phone")
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.passwordResetter.GenerateToken(u)
	link := user.PasswordResetLink(s.baseURL.JoinPath(user.EncodeID(u.ID), string(token)).String())
	if err := sender.SendResetLink(ctx, u, link); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not send password reset link.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrResetDeliveryFailed
	}

	s.log.Info(
		ctx,
		"Password reset link successfully sent.",
		logging.Entry("userID", u.ID),
	)
	return Result{Token: token, Link: link}, nil
}
