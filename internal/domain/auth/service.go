package auth

import "context"

// AuthService handles account lifecycle and token issuance.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)

	// AcceptInvitation redeems an invitation token, creating the user
	// account linked to the invited employee.
	AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (TokenResponse, error)

	// GoogleRedirectURL starts the OAuth2 flow.
	GoogleRedirectURL(ctx context.Context, userAgent string) (string, error)
	// GoogleCallback finishes the OAuth2 flow and logs the user in.
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)

	// SeedSuperAdmin creates the platform operator account if it does not
	// exist yet. Called once at startup.
	SeedSuperAdmin(ctx context.Context, email, password string) error
}
