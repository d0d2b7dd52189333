package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
)

type pgInviteeRepository struct {
	db *gorm.DB
}

func NewPGInviteeRepository(db *gorm.DB) InviteeRepository {
	return &pgInviteeRepository{db: db}
}

func (r *pgInviteeRepository) CreateBatch(ctx context.Context, invitees []*model.Invitee) error {
	return r.db.WithContext(ctx).Create(invitees).Error
}

func (r *pgInviteeRepository) GetByToken(ctx context.Context, token string) (*model.Invitee, error) {
	var invitee model.Invitee
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&invitee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitee, nil
}

func (r *pgInviteeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Invitee, error) {
	var invitee model.Invitee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&invitee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitee, nil
}

func (r *pgInviteeRepository) List(ctx context.Context) ([]model.Invitee, error) {
	var invitees []model.Invitee
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&invitees).Error; err != nil {
		return nil, err
	}
	return invitees, nil
}

func (r *pgInviteeRepository) DeleteCascade(ctx context.Context, inviteeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rsvp model.RSVP
		err := tx.Where("invitee_id = ?", inviteeID).First(&rsvp).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no RSVP on record, only the invitee row goes
		case err != nil:
			return err
		default:
			if err := tx.Where("rsvp_id = ?", rsvp.ID).Delete(&model.AdditionalGuest{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", rsvp.ID).Delete(&model.RSVP{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", inviteeID).Delete(&model.Invitee{}).Error
	})
}

func (r *pgInviteeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Invitee{}).Count(&n).Error
	return n, err
}

func (r *pgInviteeRepository) Sample(ctx context.Context, limit int) ([]model.Invitee, error) {
	var invitees []model.Invitee
	if err := r.db.WithContext(ctx).Limit(limit).Find(&invitees).Error; err != nil {
		return nil, err
	}
	return invitees, nil
}
