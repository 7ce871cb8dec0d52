package ballrooms

// CreateBallroomRequest is bound from the multipart form on POST /ballrooms.
// The image file itself is read separately by the controller.
type CreateBallroomRequest struct {
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"max=500"`
	Dimensions  string `form:"dimensions" binding:"max=50"`
	Capacity    int    `form:"capacity" binding:"required,min=1"`
	IsAvailable *bool  `form:"isAvailable"`
}

// UpdateBallroomRequest overwrites every mutable field of a ballroom.
type UpdateBallroomRequest struct {
	ID          uint   `form:"id"`
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"max=500"`
	Dimensions  string `form:"dimensions" binding:"max=50"`
	Capacity    int    `form:"capacity" binding:"required,min=1"`
	IsAvailable *bool  `form:"isAvailable"`
}
