package ballrooms

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the ballroom endpoints under the given router group.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller) {
	ballrooms := rg.Group("/ballrooms")
	{
		ballrooms.GET("", ctrl.GetBallrooms)
		ballrooms.POST("", ctrl.CreateBallroom)
		ballrooms.GET("/images/:filename", ctrl.GetImage)
		ballrooms.GET("/:id", ctrl.GetBallroom)
		ballrooms.PUT("/:id", ctrl.UpdateBallroom)
		ballrooms.DELETE("/:id", ctrl.DeleteBallroom)
	}
}
