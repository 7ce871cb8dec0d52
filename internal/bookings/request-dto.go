package bookings

import "time"

type CreateBookingRequest struct {
	BallroomID      uint      `json:"ballroomId" binding:"required"`
	CustomerName    string    `json:"customerName" binding:"required,max=100"`
	CustomerEmail   string    `json:"customerEmail" binding:"required,email,max=100"`
	CustomerPhone   string    `json:"customerPhone" binding:"required,max=20"`
	EventDate       time.Time `json:"eventDate" binding:"required"`
	EventType       string    `json:"eventType" binding:"required,max=50"`
	GuestCount      int       `json:"guestCount" binding:"required,min=1,max=1000"`
	SpecialRequests string    `json:"specialRequests" binding:"max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
