// Package mail sends transactional email for the admin panel. The only
// message in scope is the password-reset link.
package mail

import "context"

// Mailer delivers notifications to users. It is constructed once at process
// start and injected into the services that need it, so tests can substitute
// a fake.
type Mailer interface {
	// SendPasswordReset emails the reset link to the given address. The URL
	// embeds the plaintext reset token; it must not be logged.
	SendPasswordReset(ctx context.Context, to string, resetURL string) error
}
