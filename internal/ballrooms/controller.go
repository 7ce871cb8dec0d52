package ballrooms

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"ballroomly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service       Service
	maxUploadSize int64
}

func NewController(service Service, maxUploadSize int64) *Controller {
	return &Controller{
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

// GetBallrooms handles GET /ballrooms
func (ctrl *Controller) GetBallrooms(c *gin.Context) {
	list, err := ctrl.service.ListBallrooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch ballrooms", nil)
		return
	}

	response.Success(c, http.StatusOK, "Ballrooms fetched successfully", list)
}

// GetBallroom handles GET /ballrooms/:id
func (ctrl *Controller) GetBallroom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ballroom, err := ctrl.service.GetBallroom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Ballroom not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch ballroom", nil)
		return
	}

	response.Success(c, http.StatusOK, "Ballroom fetched successfully", ballroom)
}

// CreateBallroom handles POST /ballrooms (multipart form, optional image)
func (ctrl *Controller) CreateBallroom(c *gin.Context) {
	var req CreateBallroomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ballroom data", response.ValidationDetails(err))
		return
	}

	image, ok := ctrl.readImage(c)
	if !ok {
		return
	}

	ballroom, err := ctrl.service.CreateBallroom(c.Request.Context(), req, image)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create ballroom", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Ballroom created successfully", ballroom)
}

// UpdateBallroom handles PUT /ballrooms/:id
func (ctrl *Controller) UpdateBallroom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBallroomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ballroom data", response.ValidationDetails(err))
		return
	}

	if req.ID != 0 && req.ID != id {
		response.Error(c, http.StatusBadRequest, "Ballroom ID mismatch", nil)
		return
	}

	image, ok := ctrl.readImage(c)
	if !ok {
		return
	}

	if err := ctrl.service.UpdateBallroom(c.Request.Context(), id, req, image); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Ballroom not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update ballroom", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBallroom handles DELETE /ballrooms/:id
func (ctrl *Controller) DeleteBallroom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteBallroom(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete ballroom", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetImage handles GET /ballrooms/images/:filename
func (ctrl *Controller) GetImage(c *gin.Context) {
	img, err := ctrl.service.GetImage(c.Request.Context(), c.Param("filename"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Image not found", nil)
		return
	}

	c.Data(http.StatusOK, img.ContentType, img.Data)
}

// readImage pulls the optional "image" file out of the multipart form.
// Returns ok=false when it already wrote an error response.
func (ctrl *Controller) readImage(c *gin.Context) (*ImageUpload, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		response.Error(c, http.StatusBadRequest, "Invalid image upload", nil)
		return nil, false
	}

	if ctrl.maxUploadSize > 0 && file.Size > ctrl.maxUploadSize {
		response.Error(c, http.StatusBadRequest, "Image exceeds the maximum allowed size", nil)
		return nil, false
	}

	data, err := readFileHeader(file)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read image upload", nil)
		return nil, false
	}

	return &ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

func readFileHeader(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ballroom ID", nil)
		return 0, false
	}
	return uint(id), true
}
