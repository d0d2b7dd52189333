package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitee is a party on the guest list. Name may cover a whole family when the
// host created it as part of a comma-separated batch. Token is the opaque
// capability that grants access to the RSVP form; it is generated once at
// creation and never changes.
type Invitee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (Invitee) TableName() string { return "invitees" }

func (i *Invitee) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
