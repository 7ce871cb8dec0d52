package ballrooms

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createFn  func(ctx context.Context, ballroom *Ballroom) error
	getByIDFn func(ctx context.Context, id uint) (*Ballroom, error)
	getAllFn  func(ctx context.Context) ([]Ballroom, error)
	updateFn  func(ctx context.Context, id uint, updates map[string]interface{}) error
	deleteFn  func(ctx context.Context, id uint) error
}

func (m *mockRepository) Create(ctx context.Context, ballroom *Ballroom) error {
	return m.createFn(ctx, ballroom)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*Ballroom, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetAll(ctx context.Context) ([]Ballroom, error) {
	return m.getAllFn(ctx)
}

func (m *mockRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return m.updateFn(ctx, id, updates)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockBlobStore struct {
	uploaded    map[string][]byte
	deleted     []string
	uploadErr   error
	downloadErr error
	deleteErr   error
	objects     map[string][]byte
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{
		uploaded: make(map[string][]byte),
		objects:  make(map[string][]byte),
	}
}

func (m *mockBlobStore) Upload(ctx context.Context, name string, contentType string, data []byte) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	m.uploaded[name] = data
	return nil
}

func (m *mockBlobStore) Download(ctx context.Context, name string) ([]byte, error) {
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	data, ok := m.objects[name]
	if !ok {
		return nil, errors.New("no such object")
	}
	return data, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, name string) error {
	m.deleted = append(m.deleted, name)
	return m.deleteErr
}

func newTestService(repo Repository, blobs BlobStore) Service {
	return NewService(repo, blobs, nil, 0, "/api/ballrooms/images/")
}

func boolPtr(b bool) *bool { return &b }

func TestCreateBallroomWithoutImage(t *testing.T) {
	repo := &mockRepository{
		createFn: func(ctx context.Context, ballroom *Ballroom) error {
			ballroom.ID = 1
			return nil
		},
	}
	svc := newTestService(repo, newMockBlobStore())

	ballroom, err := svc.CreateBallroom(context.Background(), CreateBallroomRequest{
		Name:     "Garden Pavilion",
		Capacity: 200,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, uint(1), ballroom.ID)
	assert.Nil(t, ballroom.ImageURL)
	assert.True(t, ballroom.IsAvailable, "availability defaults to true")
}

func TestCreateBallroomWithImage(t *testing.T) {
	repo := &mockRepository{
		createFn: func(ctx context.Context, ballroom *Ballroom) error {
			ballroom.ID = 2
			return nil
		},
	}
	blobs := newMockBlobStore()
	svc := newTestService(repo, blobs)

	ballroom, err := svc.CreateBallroom(context.Background(), CreateBallroomRequest{
		Name:        "Grand Crystal Hall",
		Capacity:    500,
		IsAvailable: boolPtr(false),
	}, &ImageUpload{
		Filename:    "Hall Photo.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("image-bytes"),
	})

	require.NoError(t, err)
	require.NotNil(t, ballroom.ImageURL)
	assert.False(t, ballroom.IsAvailable)

	assert.True(t, strings.HasPrefix(*ballroom.ImageURL, "/api/ballrooms/images/"))
	assert.True(t, strings.HasSuffix(*ballroom.ImageURL, ".jpg"), "extension is kept and lowercased: %s", *ballroom.ImageURL)

	require.Len(t, blobs.uploaded, 1)
	for name := range blobs.uploaded {
		assert.True(t, strings.HasSuffix(name, ".jpg"))
		assert.NotEqual(t, "Hall Photo.JPG", name, "object name must be generated, not the original filename")
	}
}

func TestCreateBallroomUploadFailureAborts(t *testing.T) {
	created := false
	repo := &mockRepository{
		createFn: func(ctx context.Context, ballroom *Ballroom) error {
			created = true
			return nil
		},
	}
	blobs := newMockBlobStore()
	blobs.uploadErr = errors.New("storage unreachable")
	svc := newTestService(repo, blobs)

	_, err := svc.CreateBallroom(context.Background(), CreateBallroomRequest{
		Name:     "Heritage Room",
		Capacity: 80,
	}, &ImageUpload{Filename: "room.png", Data: []byte("x")})

	assert.Error(t, err)
	assert.False(t, created, "no row should be persisted when the upload fails")
}

func TestUpdateBallroomReplacesImage(t *testing.T) {
	oldURL := "/api/ballrooms/images/old-object.png"
	var gotUpdates map[string]interface{}
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uint) (*Ballroom, error) {
			return &Ballroom{ID: id, Name: "Garden Pavilion", Capacity: 200, ImageURL: &oldURL}, nil
		},
		updateFn: func(ctx context.Context, id uint, updates map[string]interface{}) error {
			gotUpdates = updates
			return nil
		},
	}
	blobs := newMockBlobStore()
	svc := newTestService(repo, blobs)

	err := svc.UpdateBallroom(context.Background(), 2, UpdateBallroomRequest{
		Name:        "Garden Pavilion",
		Description: "Refurbished",
		Capacity:    220,
		IsAvailable: boolPtr(true),
	}, &ImageUpload{Filename: "new.png", Data: []byte("new-bytes")})

	require.NoError(t, err)
	assert.Equal(t, 220, gotUpdates["capacity"])
	assert.Contains(t, gotUpdates, "image_url")
	assert.Equal(t, []string{"old-object.png"}, blobs.deleted, "old object is removed by name")
}

func TestUpdateBallroomOldImageDeleteFailureIsIgnored(t *testing.T) {
	oldURL := "/api/ballrooms/images/old-object.png"
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uint) (*Ballroom, error) {
			return &Ballroom{ID: id, Name: "Garden Pavilion", Capacity: 200, ImageURL: &oldURL}, nil
		},
		updateFn: func(ctx context.Context, id uint, updates map[string]interface{}) error {
			return nil
		},
	}
	blobs := newMockBlobStore()
	blobs.deleteErr = errors.New("storage unreachable")
	svc := newTestService(repo, blobs)

	err := svc.UpdateBallroom(context.Background(), 2, UpdateBallroomRequest{
		Name:     "Garden Pavilion",
		Capacity: 200,
	}, &ImageUpload{Filename: "new.png", Data: []byte("new-bytes")})

	assert.NoError(t, err)
}

func TestUpdateBallroomNotFound(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uint) (*Ballroom, error) {
			return nil, ErrNotFound
		},
	}
	svc := newTestService(repo, newMockBlobStore())

	err := svc.UpdateBallroom(context.Background(), 42, UpdateBallroomRequest{Name: "X", Capacity: 1}, nil)

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteBallroomRemovesImage(t *testing.T) {
	url := "/api/ballrooms/images/hall.jpg"
	deleted := false
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uint) (*Ballroom, error) {
			return &Ballroom{ID: id, Name: "Grand Crystal Hall", Capacity: 500, ImageURL: &url}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	blobs := newMockBlobStore()
	svc := newTestService(repo, blobs)

	err := svc.DeleteBallroom(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"hall.jpg"}, blobs.deleted)
}

func TestDeleteBallroomAbsentIsNoOp(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uint) (*Ballroom, error) {
			return nil, ErrNotFound
		},
	}
	svc := newTestService(repo, newMockBlobStore())

	err := svc.DeleteBallroom(context.Background(), 99)

	assert.NoError(t, err)
}

func TestDeleteBallroomBlobFailureStillDeletesRow(t *testing.T) {
	url := "/api/ballrooms/images/hall.jpg"
	deleted := false
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uint) (*Ballroom, error) {
			return &Ballroom{ID: id, ImageURL: &url}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	blobs := newMockBlobStore()
	blobs.deleteErr = errors.New("storage unreachable")
	svc := newTestService(repo, blobs)

	err := svc.DeleteBallroom(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestGetImage(t *testing.T) {
	blobs := newMockBlobStore()
	blobs.objects["hall.png"] = []byte("png-bytes")
	svc := newTestService(&mockRepository{}, blobs)

	img, err := svc.GetImage(context.Background(), "hall.png")

	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, []byte("png-bytes"), img.Data)
}

func TestGetImageStripsPathComponents(t *testing.T) {
	blobs := newMockBlobStore()
	blobs.objects["hall.jpg"] = []byte("jpg-bytes")
	svc := newTestService(&mockRepository{}, blobs)

	img, err := svc.GetImage(context.Background(), "../secret/hall.jpg")

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.ContentType)
}

func TestGetImageStorageFailureIsNotFound(t *testing.T) {
	blobs := newMockBlobStore()
	blobs.downloadErr = errors.New("storage unreachable")
	svc := newTestService(&mockRepository{}, blobs)

	_, err := svc.GetImage(context.Background(), "hall.jpg")

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestContentTypeForImage(t *testing.T) {
	tests := map[string]string{
		"a.jpg":    "image/jpeg",
		"a.JPEG":   "image/jpeg",
		"a.png":    "image/png",
		"a.gif":    "image/gif",
		"a.webp":   "application/octet-stream",
		"noext":    "application/octet-stream",
		"b.PNG":    "image/png",
		"dir.d/.c": "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, contentTypeForImage(name), "name %q", name)
	}
}

func TestNewBlobName(t *testing.T) {
	name := newBlobName("My Photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, " ")
	assert.NotEqual(t, newBlobName("My Photo.JPG"), name, "names are unique per call")
}
