package bookings

import (
	"errors"
	"time"

	"ballroomly/internal/ballrooms"
)

var (
	// ErrNotFound is returned when a booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidTransition is returned when a status change is not allowed
	// from the booking's current status.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Booking struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	BallroomID      uint      `json:"ballroomId" gorm:"not null;index"`
	CustomerName    string    `json:"customerName" gorm:"size:100;not null"`
	CustomerEmail   string    `json:"customerEmail" gorm:"size:100;not null"`
	CustomerPhone   string    `json:"customerPhone" gorm:"size:20"`
	EventDate       time.Time `json:"eventDate" gorm:"not null"`
	EventType       string    `json:"eventType" gorm:"size:50"`
	GuestCount      int       `json:"guestCount" gorm:"not null"`
	SpecialRequests string    `json:"specialRequests" gorm:"size:500"`
	Status          Status    `json:"status" gorm:"type:varchar(20);not null;default:PENDING"`
	CreatedAt       time.Time `json:"createdAt"`
	// UpdatedAt is only stamped on status changes, never on insert.
	UpdatedAt *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`

	Ballroom *ballrooms.Ballroom `json:"-" gorm:"foreignKey:BallroomID;constraint:OnDelete:RESTRICT"`
}

func (Booking) TableName() string {
	return "bookings"
}
