package repository

import (
	"context"

	"github.com/google/uuid"

	"wedding/guesthub/internal/model"
)

type RSVPRepository interface {
	Create(ctx context.Context, rsvp *model.RSVP) error
	// GetByInviteeID returns (nil, nil) when the invitee has not responded.
	GetByInviteeID(ctx context.Context, inviteeID uuid.UUID) (*model.RSVP, error)
	ListByInviteeIDs(ctx context.Context, inviteeIDs []uuid.UUID) ([]model.RSVP, error)

	Count(ctx context.Context) (int64, error)
	Sample(ctx context.Context, limit int) ([]model.RSVP, error)
}
