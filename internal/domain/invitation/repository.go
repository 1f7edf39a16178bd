package invitation

import "context"

// InvitationRepository - interface for invitations table
type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByToken(ctx context.Context, token string) (Invitation, error)
	UpdateEmailStatus(ctx context.Context, id string, status EmailStatus) error
}
