package database

import (
	"ballroomly/internal/ballrooms"
	"ballroomly/internal/bookings"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ballrooms.Ballroom{},
		&bookings.Booking{},
	)
}
