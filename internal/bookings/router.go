package bookings

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the booking endpoints under the given router group.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller) {
	booking := rg.Group("/booking")
	{
		booking.GET("", ctrl.GetBookings)
		booking.POST("", ctrl.CreateBooking)
		booking.GET("/:id", ctrl.GetBooking)
		booking.PUT("/:id/status", ctrl.UpdateBookingStatus)
	}
}
