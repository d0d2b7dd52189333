package repository

import (
	"context"

	"github.com/google/uuid"

	"wedding/guesthub/internal/model"
)

type InviteeRepository interface {
	// CreateBatch inserts every invitee in one statement; used for
	// comma-separated batch creation.
	CreateBatch(ctx context.Context, invitees []*model.Invitee) error
	// GetByToken returns (nil, nil) when no invitee carries the token.
	GetByToken(ctx context.Context, token string) (*model.Invitee, error)
	// GetByID returns (nil, nil) when the invitee does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invitee, error)
	// List returns all invitees ordered by creation time ascending.
	List(ctx context.Context) ([]model.Invitee, error)
	// DeleteCascade removes the invitee together with its RSVP and that
	// RSVP's additional guests in a single transaction. The store schema
	// declares no cascade, so the children go first.
	DeleteCascade(ctx context.Context, inviteeID uuid.UUID) error

	// Count and Sample back the diagnostic report only.
	Count(ctx context.Context) (int64, error)
	Sample(ctx context.Context, limit int) ([]model.Invitee, error)
}
