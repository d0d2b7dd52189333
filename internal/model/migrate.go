package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models. The unique index on
// rsvps.invitee_id is what ultimately holds the one-RSVP-per-invitee rule
// under concurrent submissions; the application-level existence check only
// produces the friendlier error message.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Invitee{},
		&RSVP{},
		&AdditionalGuest{},
	)
}
