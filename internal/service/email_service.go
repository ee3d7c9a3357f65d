package service

import "context"

type EmailService interface {
	// SendOtp delivers the one-time code to the address. A non-nil error
	// means the mail was not accepted for delivery.
	SendOtp(ctx context.Context, to, code, displayName string) error
}
