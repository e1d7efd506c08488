package email

import (
	"context"
	"exchanger/internal/core/domain/user"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

// ResetLinkSender delivers password reset links over SES.
type ResetLinkSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender  string
	subject string
}

func NewResetLinkSender(awsConfig aws.Config, sender string, subject string) *ResetLinkSender {
	return &ResetLinkSender{
		ses:     ses.NewFromConfig(awsConfig),
		sender:  sender,
		subject: subject,
	}
}

func (s *ResetLinkSender) SendResetLink(ctx context.Context, u user.User, link user.PasswordResetLink) error {
	htmlBody := fmt.Sprintf(
		"<h1>Password reset</h1>"+
			"<p>A password reset was requested for user %s. "+
			"If it was not you, ignore this message.</p>"+
			"<p><a href=%q>Reset password</a></p>",
		u.Username,
		string(link),
	)
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				ToAddresses: []string{string(u.Email)},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(s.subject),
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String(charset),
					},
				},
			},
		},
	)
	return err
}
