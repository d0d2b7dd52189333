package repository

import (
	"context"

	"github.com/google/uuid"

	"wedding/guesthub/internal/model"
)

type AdditionalGuestRepository interface {
	CreateBatch(ctx context.Context, guests []*model.AdditionalGuest) error
	ListByRSVPIDs(ctx context.Context, rsvpIDs []uuid.UUID) ([]model.AdditionalGuest, error)

	Count(ctx context.Context) (int64, error)
	Sample(ctx context.Context, limit int) ([]model.AdditionalGuest, error)
}
