package ballrooms

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a ballroom or a stored image does not exist.
var ErrNotFound = errors.New("ballroom not found")

type Ballroom struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:500"`
	Dimensions  string    `json:"dimensions" gorm:"size:50"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl" gorm:"size:255"`
	IsAvailable bool      `json:"isAvailable" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Ballroom) TableName() string {
	return "ballrooms"
}

// ImageUpload carries a decoded multipart file through the service layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Image is a downloaded ballroom image ready to be written to a response.
type Image struct {
	ContentType string
	Data        []byte
}
