package postgresql

import (
	"context"
	"errors"

	"github.com/bambooclone/hr-backend-go/internal/domain/invitation"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type invitationRepositoryImpl struct {
	db *database.DB
}

func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (id, tenant_id, employee_id, email, token, expires_at, email_status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, LOWER($3), $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		inv.TenantID, inv.EmployeeID, inv.Email, inv.Token, inv.ExpiresAt, inv.EmailStatus,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return invitation.Invitation{}, err
	}

	return inv, nil
}

func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, email, token, expires_at, email_status, created_at, updated_at
		FROM invitations
		WHERE token = $1
	`

	var inv invitation.Invitation
	err := q.QueryRow(ctx, query, token).Scan(
		&inv.ID, &inv.TenantID, &inv.EmployeeID, &inv.Email, &inv.Token,
		&inv.ExpiresAt, &inv.EmailStatus, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, err
	}

	return inv, nil
}

func (r *invitationRepositoryImpl) UpdateEmailStatus(ctx context.Context, id string, status invitation.EmailStatus) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE invitations SET email_status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return invitation.ErrInvitationNotFound
	}
	return nil
}
