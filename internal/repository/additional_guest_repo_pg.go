package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
)

type pgAdditionalGuestRepository struct {
	db *gorm.DB
}

func NewPGAdditionalGuestRepository(db *gorm.DB) AdditionalGuestRepository {
	return &pgAdditionalGuestRepository{db: db}
}

func (r *pgAdditionalGuestRepository) CreateBatch(ctx context.Context, guests []*model.AdditionalGuest) error {
	return r.db.WithContext(ctx).Create(guests).Error
}

func (r *pgAdditionalGuestRepository) ListByRSVPIDs(ctx context.Context, rsvpIDs []uuid.UUID) ([]model.AdditionalGuest, error) {
	var guests []model.AdditionalGuest
	if err := r.db.WithContext(ctx).Where("rsvp_id IN ?", rsvpIDs).Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *pgAdditionalGuestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.AdditionalGuest{}).Count(&n).Error
	return n, err
}

func (r *pgAdditionalGuestRepository) Sample(ctx context.Context, limit int) ([]model.AdditionalGuest, error) {
	var guests []model.AdditionalGuest
	if err := r.db.WithContext(ctx).Limit(limit).Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}
