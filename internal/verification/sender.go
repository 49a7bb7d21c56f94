package verification

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Sender delivers a verification code to one recipient. Delivery is an
// external collaborator; the default implementations below log the
// code instead of sending it, the way the original system behaved
// without mail/SMS credentials.
type Sender interface {
	Send(ctx context.Context, recipient, code string) error
}

type ConsoleEmailSender struct{}

func (ConsoleEmailSender) Send(_ context.Context, recipient, code string) error {
	log.Info().
		Str("email", recipient).
		Str("code", code).
		Msg("email verification code (console mode)")
	return nil
}

type ConsoleSMSSender struct{}

func (ConsoleSMSSender) Send(_ context.Context, recipient, code string) error {
	log.Info().
		Str("phone", recipient).
		Str("code", code).
		Msg("sms verification code (console mode)")
	return nil
}
