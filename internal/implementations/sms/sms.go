package sms

import (
	"context"
	"exchanger/internal/core/domain/user"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// ResetLinkSender delivers password reset links as SMS messages over SNS.
type ResetLinkSender struct {
	sns *sns.Client
}

func NewResetLinkSender(awsConfig aws.Config) *ResetLinkSender {
	return &ResetLinkSender{sns: sns.NewFromConfig(awsConfig)}
}

func (s *ResetLinkSender) SendResetLink(ctx context.Context, u user.User, link user.PasswordResetLink) error {
	_, err := s.sns.Publish(
		ctx,
		&sns.PublishInput{
			PhoneNumber: aws.String(string(u.Phone)),
			Message:     aws.String(fmt.Sprintf("Your password reset link: %s", string(link))),
		},
	)
	return err
}
