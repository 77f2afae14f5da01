package usecase

// TokenManager issues and verifies the self-contained session tokens.
type TokenManager interface {
	Generate(userID string) (string, error)
	Verify(token string) (string, error)
}

// Mailer delivers transactional email. Delivery failures are logged by the
// caller and never propagate to HTTP clients.
type Mailer interface {
	Send(to, subject, body string) error
}
