package bookings

import "time"

// BookingResponse is a booking row joined with its ballroom name.
type BookingResponse struct {
	ID              uint       `json:"id"`
	BallroomID      uint       `json:"ballroomId"`
	BallroomName    string     `json:"ballroomName"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	CustomerPhone   string     `json:"customerPhone"`
	EventDate       time.Time  `json:"eventDate"`
	EventType       string     `json:"eventType"`
	GuestCount      int        `json:"guestCount"`
	SpecialRequests string     `json:"specialRequests"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

func toResponse(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		BallroomID:      b.BallroomID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		EventDate:       b.EventDate,
		EventType:       b.EventType,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Ballroom != nil {
		resp.BallroomName = b.Ballroom.Name
	}
	return resp
}
