package ballrooms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"ballroomly/pkg/cache"
	"ballroomly/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// BlobStore is the object storage the service keeps ballroom images in.
type BlobStore interface {
	Upload(ctx context.Context, name string, contentType string, data []byte) error
	Download(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

type Service interface {
	ListBallrooms(ctx context.Context) ([]Ballroom, error)
	GetBallroom(ctx context.Context, id uint) (*Ballroom, error)
	CreateBallroom(ctx context.Context, req CreateBallroomRequest, image *ImageUpload) (*Ballroom, error)
	UpdateBallroom(ctx context.Context, id uint, req UpdateBallroomRequest, image *ImageUpload) error
	DeleteBallroom(ctx context.Context, id uint) error
	GetImage(ctx context.Context, name string) (*Image, error)
}

type service struct {
	repo         Repository
	blobs        BlobStore
	redis        *redis.Client
	cacheTTL     time.Duration
	imageBaseURL string
}

// NewService builds the ballroom service. imageBaseURL is the public path
// prefix stored image references are served under.
func NewService(repo Repository, blobs BlobStore, redisClient *redis.Client, cacheTTL time.Duration, imageBaseURL string) Service {
	return &service{
		repo:         repo,
		blobs:        blobs,
		redis:        redisClient,
		cacheTTL:     cacheTTL,
		imageBaseURL: imageBaseURL,
	}
}

func (s *service) ListBallrooms(ctx context.Context) ([]Ballroom, error) {
	var cached []Ballroom
	if err := cache.Get(ctx, s.redis, ballroomListCacheKey, &cached); err == nil {
		return cached, nil
	}

	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, s.redis, ballroomListCacheKey, list, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache ballroom list: %v", err)
	}

	return list, nil
}

func (s *service) GetBallroom(ctx context.Context, id uint) (*Ballroom, error) {
	key := ballroomCacheKey(id)

	var cached Ballroom
	if err := cache.Get(ctx, s.redis, key, &cached); err == nil {
		return &cached, nil
	}

	ballroom, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, s.redis, key, ballroom, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache ballroom %d: %v", id, err)
	}

	return ballroom, nil
}

func (s *service) CreateBallroom(ctx context.Context, req CreateBallroomRequest, image *ImageUpload) (*Ballroom, error) {
	ballroom := &Ballroom{
		Name:        req.Name,
		Description: req.Description,
		Dimensions:  req.Dimensions,
		Capacity:    req.Capacity,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		ballroom.IsAvailable = *req.IsAvailable
	}

	if image != nil {
		name := newBlobName(image.Filename)
		if err := s.blobs.Upload(ctx, name, image.ContentType, image.Data); err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		url := s.imageBaseURL + name
		ballroom.ImageURL = &url
	}

	if err := s.repo.Create(ctx, ballroom); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return ballroom, nil
}

func (s *service) UpdateBallroom(ctx context.Context, id uint, req UpdateBallroomRequest, image *ImageUpload) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	updates := map[string]interface{}{
		"name":         req.Name,
		"description":  req.Description,
		"dimensions":   req.Dimensions,
		"capacity":     req.Capacity,
		"is_available": isAvailable,
	}

	var oldImage string
	if image != nil {
		name := newBlobName(image.Filename)
		if err := s.blobs.Upload(ctx, name, image.ContentType, image.Data); err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}
		updates["image_url"] = s.imageBaseURL + name
		if existing.ImageURL != nil {
			oldImage = path.Base(*existing.ImageURL)
		}
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return err
	}

	// The replaced image is orphaned at worst; the row already points at
	// the new one.
	if oldImage != "" {
		if err := s.blobs.Delete(ctx, oldImage); err != nil {
			log.Printf("Warning: failed to delete replaced image %s: %v", oldImage, err)
		}
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) DeleteBallroom(ctx context.Context, id uint) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	imageDeleted := false
	if existing.ImageURL != nil {
		name := path.Base(*existing.ImageURL)
		if err := s.blobs.Delete(ctx, name); err != nil {
			log.Printf("Warning: failed to delete image %s for ballroom %d: %v", name, id, err)
		} else {
			imageDeleted = true
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.GetDefault().LogBallroomDeleted(ctx, id, imageDeleted)

	s.invalidateCache(ctx)

	return nil
}

func (s *service) GetImage(ctx context.Context, name string) (*Image, error) {
	// Callers may hand over a full reference; only the object name counts.
	name = path.Base(name)

	data, err := s.blobs.Download(ctx, name)
	if err != nil {
		// Missing object and storage failure look the same to the caller.
		return nil, ErrNotFound
	}

	return &Image{
		ContentType: contentTypeForImage(name),
		Data:        data,
	}, nil
}

// invalidateCache drops the cached list and every cached ballroom. Writes
// are rare enough that wiping all item entries beats tracking them.
func (s *service) invalidateCache(ctx context.Context) {
	err := cache.InvalidatePattern(ctx, s.redis, ballroomListCacheKey, ballroomCacheKeyPrefix+"*")
	if err != nil {
		log.Printf("Warning: failed to invalidate ballroom cache: %v", err)
	}
}
