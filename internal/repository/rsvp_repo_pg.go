package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
)

type pgRSVPRepository struct {
	db *gorm.DB
}

func NewPGRSVPRepository(db *gorm.DB) RSVPRepository {
	return &pgRSVPRepository{db: db}
}

func (r *pgRSVPRepository) Create(ctx context.Context, rsvp *model.RSVP) error {
	return r.db.WithContext(ctx).Create(rsvp).Error
}

func (r *pgRSVPRepository) GetByInviteeID(ctx context.Context, inviteeID uuid.UUID) (*model.RSVP, error) {
	var rsvp model.RSVP
	err := r.db.WithContext(ctx).Where("invitee_id = ?", inviteeID).First(&rsvp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (r *pgRSVPRepository) ListByInviteeIDs(ctx context.Context, inviteeIDs []uuid.UUID) ([]model.RSVP, error) {
	var rsvps []model.RSVP
	if err := r.db.WithContext(ctx).Where("invitee_id IN ?", inviteeIDs).Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}

func (r *pgRSVPRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.RSVP{}).Count(&n).Error
	return n, err
}

func (r *pgRSVPRepository) Sample(ctx context.Context, limit int) ([]model.RSVP, error) {
	var rsvps []model.RSVP
	if err := r.db.WithContext(ctx).Limit(limit).Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}
