package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVP is a single attendance response. At most one exists per invitee,
// enforced by the unique index on InviteeID. GuestCount is always zero when
// Attending is false.
type RSVP struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InviteeID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"invitee_id"`
	SubmitterName string    `gorm:"type:varchar(255);not null" json:"submitter_name"`
	Attending     bool      `gorm:"not null" json:"attending"`
	GuestCount    int       `gorm:"not null;default:0" json:"guest_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func (RSVP) TableName() string { return "rsvps" }

func (r *RSVP) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
