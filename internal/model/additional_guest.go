package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdditionalGuest is a named companion listed under one RSVP.
type AdditionalGuest struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RSVPID uuid.UUID `gorm:"type:uuid;index;not null" json:"rsvp_id"`
	Name   string    `gorm:"type:varchar(255);not null" json:"name"`
}

func (AdditionalGuest) TableName() string { return "additional_guests" }

func (g *AdditionalGuest) BeforeCreate(_ *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
