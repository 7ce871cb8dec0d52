package ballrooms

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	ballroomCacheKeyPrefix = "ballroom:"
	ballroomListCacheKey   = "ballrooms:all"
)

func ballroomCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", ballroomCacheKeyPrefix, id)
}

// newBlobName generates a unique object name keeping the original extension.
func newBlobName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

// contentTypeForImage maps a stored object name to the content type served
// on image downloads.
func contentTypeForImage(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
