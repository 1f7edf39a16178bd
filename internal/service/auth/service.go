package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/auth"
	"github.com/bambooclone/hr-backend-go/internal/domain/invitation"
	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/pkg/jwt"
	"github.com/bambooclone/hr-backend-go/internal/pkg/oauth"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo       user.UserRepository
	invitationRepo invitation.InvitationRepository
	jwtSvc         jwt.Service
	googleSvc      oauth.GoogleService
}

// NewAuthService wires the auth service. googleSvc may be nil when Google
// SSO is not configured.
func NewAuthService(
	userRepo user.UserRepository,
	invitationRepo invitation.InvitationRepository,
	jwtSvc jwt.Service,
	googleSvc oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		jwtSvc:         jwtSvc,
		googleSvc:      googleSvc,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if user.Role(req.Role).IsSuperAdmin() {
		return auth.TokenResponse{}, validator.ValidationErrors{{
			Field:   "role",
			Message: "role is not a recognized role",
		}}
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		TenantID:     req.TenantID,
		Email:        req.Email,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(created)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !account.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}
	if account.PasswordHash == nil {
		// Account exists but only through Google SSO.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(account)
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.UserResponse, error) {
	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return toUserResponse(account), nil
}

func (s *AuthServiceImpl) AcceptInvitation(ctx context.Context, req auth.AcceptInvitationRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	inv, err := s.invitationRepo.GetByToken(ctx, req.Token)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if time.Now().UTC().After(inv.ExpiresAt) {
		return auth.TokenResponse{}, invitation.ErrInvitationExpired
	}

	if _, err := s.userRepo.GetByEmail(ctx, inv.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		TenantID:     &inv.TenantID,
		EmployeeID:   &inv.EmployeeID,
		Email:        inv.Email,
		PasswordHash: &hashStr,
		FullName:     inv.Email,
		Role:         user.RoleEmployee,
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(created)
}

func (s *AuthServiceImpl) GoogleRedirectURL(ctx context.Context, userAgent string) (string, error) {
	if s.googleSvc == nil {
		return "", auth.ErrOAuthNotConfigured
	}
	state := s.googleSvc.GenerateState(userAgent)
	return s.googleSvc.RedirectURL(state), nil
}

func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	if s.googleSvc == nil {
		return auth.TokenResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := s.googleSvc.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := s.googleSvc.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrOAuthNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !account.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	if account.OAuthProviderID == nil {
		provider := "google"
		account.OAuthProvider = &provider
		account.OAuthProviderID = &info.GoogleID
		if err := s.userRepo.Update(ctx, account); err != nil {
			slog.Error("Failed to link google account", "user_id", account.ID, "error", err)
		}
	}

	return s.issueToken(account)
}

func (s *AuthServiceImpl) SeedSuperAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		slog.Info("Super admin seed skipped, credentials not configured")
		return nil
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to look up super admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	_, err = s.userRepo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Platform Administrator",
		Role:         user.RoleSuperAdmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed super admin: %w", err)
	}

	slog.Info("Super admin account seeded", "email", email)
	return nil
}

func (s *AuthServiceImpl) issueToken(account user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(
		account.ID, account.Email, account.EmployeeID, account.TenantID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(account),
	}, nil
}

func toUserResponse(account user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         account.ID,
		Email:      account.Email,
		FullName:   account.FullName,
		Role:       string(account.Role),
		TenantID:   account.TenantID,
		EmployeeID: account.EmployeeID,
	}
}
