package service

// Claims carries the identity extracted from a validated access token.
// AccountID is only unique within the role's partition, so both fields
// are needed to locate the account again.
type Claims struct {
	AccountID int
	Role      string
	Type      string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an account.
	GenerateTokens(accountID int, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
