package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/config"
	"github.com/Gob26/beautycity/internal/imageprocessor"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/internal/storage"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

const (
	testOwnerID = "owner-user-1"
	testSalonID = "salon-1"
)

// fakePhotoRepo is an in-memory PhotoRepository. Setting failCreateAt to N
// makes the Nth Create call fail.
type fakePhotoRepo struct {
	mu           sync.Mutex
	photos       map[string]*models.Photo
	creates      int
	failCreateAt int
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[string]*models.Photo)}
}

func (r *fakePhotoRepo) Create(db *gorm.DB, photo *models.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.failCreateAt != 0 && r.creates == r.failCreateAt {
		return fmt.Errorf("simulated insert failure")
	}
	photo.ID = uuid.NewString()
	clone := *photo
	r.photos[photo.ID] = &clone
	return nil
}

func (r *fakePhotoRepo) FindByID(db *gorm.DB, id string) (*models.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.photos[id]
	if !ok {
		return nil, repositories.ErrPhotoNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePhotoRepo) FindByEntity(db *gorm.DB, kind models.EntityKind, entityID string, onlyMain bool) ([]models.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Photo
	for _, p := range r.photos {
		if p.EntityKind == kind && p.EntityID == entityID && (!onlyMain || p.IsMain) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePhotoRepo) CountByEntity(db *gorm.DB, kind models.EntityKind, entityID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.photos {
		if p.EntityKind == kind && p.EntityID == entityID {
			n++
		}
	}
	return n, nil
}

func (r *fakePhotoRepo) Update(db *gorm.DB, photo *models.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.photos[photo.ID]; !ok {
		return repositories.ErrPhotoNotFound
	}
	clone := *photo
	r.photos[photo.ID] = &clone
	return nil
}

func (r *fakePhotoRepo) Delete(db *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.photos[id]; !ok {
		return repositories.ErrPhotoNotFound
	}
	delete(r.photos, id)
	return nil
}

func (r *fakePhotoRepo) SetMainPhoto(db *gorm.DB, kind models.EntityKind, entityID, photoID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.photos[photoID]
	if !ok || target.EntityKind != kind || target.EntityID != entityID {
		return false, nil
	}
	for _, p := range r.photos {
		if p.EntityKind == kind && p.EntityID == entityID {
			p.IsMain = false
		}
	}
	target.IsMain = true
	return true, nil
}

func (r *fakePhotoRepo) Reorder(db *gorm.DB, kind models.EntityKind, entityID string, orderedIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pos, id := range orderedIDs {
		if p, ok := r.photos[id]; ok && p.EntityKind == kind && p.EntityID == entityID {
			p.SortOrder = pos
		}
	}
	return nil
}

func (r *fakePhotoRepo) mainCount(kind models.EntityKind, entityID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.photos {
		if p.EntityKind == kind && p.EntityID == entityID && p.IsMain {
			n++
		}
	}
	return n
}

// fakeSalonRepo serves a single salon.
type fakeSalonRepo struct {
	salon *models.Salon
}

func (r *fakeSalonRepo) Create(db *gorm.DB, salon *models.Salon) error { return nil }

func (r *fakeSalonRepo) FindByID(db *gorm.DB, id string) (*models.Salon, error) {
	if r.salon != nil && r.salon.ID == id {
		return r.salon, nil
	}
	return nil, repositories.ErrSalonNotFound
}

func (r *fakeSalonRepo) FindBySlug(db *gorm.DB, slug string) (*models.Salon, error) {
	return nil, repositories.ErrSalonNotFound
}

func (r *fakeSalonRepo) FindByUser(db *gorm.DB, userID string) (*models.Salon, error) {
	return nil, repositories.ErrSalonNotFound
}

func (r *fakeSalonRepo) ListByCity(db *gorm.DB, cityID string, limit, offset int) ([]models.Salon, error) {
	return nil, nil
}

func (r *fakeSalonRepo) Update(db *gorm.DB, salon *models.Salon) error { return nil }
func (r *fakeSalonRepo) Delete(db *gorm.DB, id string) error           { return nil }

type fakeMasterRepo struct{}

func (fakeMasterRepo) Create(db *gorm.DB, master *models.Master) error { return nil }
func (fakeMasterRepo) FindByID(db *gorm.DB, id string) (*models.Master, error) {
	return nil, repositories.ErrMasterNotFound
}
func (fakeMasterRepo) FindBySlug(db *gorm.DB, slug string) (*models.Master, error) {
	return nil, repositories.ErrMasterNotFound
}
func (fakeMasterRepo) FindByUser(db *gorm.DB, userID string) (*models.Master, error) {
	return nil, repositories.ErrMasterNotFound
}
func (fakeMasterRepo) ListByCity(db *gorm.DB, cityID string, limit, offset int) ([]models.Master, error) {
	return nil, nil
}
func (fakeMasterRepo) Update(db *gorm.DB, master *models.Master) error { return nil }
func (fakeMasterRepo) Delete(db *gorm.DB, id string) error             { return nil }

type fakeServiceRepo struct{}

func (fakeServiceRepo) CreateCategory(db *gorm.DB, c *models.ServiceCategory) error { return nil }
func (fakeServiceRepo) FindCategoryByID(db *gorm.DB, id string) (*models.ServiceCategory, error) {
	return nil, repositories.ErrCategoryNotFound
}
func (fakeServiceRepo) FindCategoryBySlug(db *gorm.DB, slug string) (*models.ServiceCategory, error) {
	return nil, repositories.ErrCategoryNotFound
}
func (fakeServiceRepo) ListCategories(db *gorm.DB) ([]models.ServiceCategory, error) {
	return nil, nil
}
func (fakeServiceRepo) Create(db *gorm.DB, s *models.Service) error { return nil }
func (fakeServiceRepo) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	return nil, repositories.ErrServiceNotFound
}
func (fakeServiceRepo) ListBySalon(db *gorm.DB, salonID string) ([]models.Service, error) {
	return nil, nil
}
func (fakeServiceRepo) ListByMaster(db *gorm.DB, masterID string) ([]models.Service, error) {
	return nil, nil
}
func (fakeServiceRepo) Update(db *gorm.DB, s *models.Service) error { return nil }
func (fakeServiceRepo) Delete(db *gorm.DB, id string) error         { return nil }

// flakyStorage delegates to a real store but refuses saves or deletes for
// paths containing the respective marker.
type flakyStorage struct {
	storage.Storage
	failSaveMarker   string
	failDeleteMarker string
}

func (s *flakyStorage) Save(ctx context.Context, path string, reader io.Reader) error {
	if s.failSaveMarker != "" && strings.Contains(path, s.failSaveMarker) {
		return fmt.Errorf("simulated save failure for %s", path)
	}
	return s.Storage.Save(ctx, path, reader)
}

func (s *flakyStorage) Delete(ctx context.Context, path string) error {
	if s.failDeleteMarker != "" && strings.Contains(path, s.failDeleteMarker) {
		return fmt.Errorf("simulated delete failure for %s", path)
	}
	return s.Storage.Delete(ctx, path)
}

type photoFixture struct {
	svc       PhotoService
	photoRepo *fakePhotoRepo
	store     storage.Storage
	cfg       *config.Config
}

func newPhotoFixture(t *testing.T, wrap func(storage.Storage) storage.Storage) *photoFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Media.Root = t.TempDir()
	cfg.Media.BaseURL = "/media"
	cfg.Media.MaxUploadMB = 10
	cfg.Media.MaxPerEntity = 30
	cfg.Media.JPEGQuality = 85
	cfg.Media.MaxVariantKB = 700
	cfg.Media.Sizes.Small = 300
	cfg.Media.Sizes.Medium = 800
	cfg.Media.Sizes.Large = 1600

	localStore, err := storage.NewLocalStorage(cfg.Media.Root, cfg.Media.BaseURL)
	require.NoError(t, err)
	var store storage.Storage = localStore
	if wrap != nil {
		store = wrap(store)
	}
	resolver := storage.NewPathResolver(cfg.Media.Root)
	processor := imageprocessor.NewProcessor(cfg.Media.JPEGQuality)
	generator := imageprocessor.NewGenerator(processor, store, resolver, 4)

	photoRepo := newFakePhotoRepo()
	salonRepo := &fakeSalonRepo{salon: &models.Salon{
		UserID: testOwnerID,
		CityID: "city-1",
		Name:   "Nail Bar",
		Slug:   "nail-bar",
		City:   &models.City{Name: "Moscow", Slug: "moscow"},
	}}
	salonRepo.salon.ID = testSalonID

	svc := NewPhotoService(photoRepo, salonRepo, fakeMasterRepo{}, fakeServiceRepo{}, generator, store, cfg)

	return &photoFixture{svc: svc, photoRepo: photoRepo, store: store, cfg: cfg}
}

// mediaFileCount counts the files currently under the media root.
func mediaFileCount(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// makeFileHeader builds a real multipart.FileHeader the way gin receives it.
func makeFileHeader(t *testing.T, fileName string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("files", fileName)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	reader := multipart.NewReader(&body, mw.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File["files"]
	require.Len(t, files, 1)
	return files[0]
}

func uploadRequest(t *testing.T, files ...*multipart.FileHeader) *dto.UploadPhotosRequest {
	t.Helper()
	return &dto.UploadPhotosRequest{
		EntityKind: string(models.EntityKindSalon),
		EntityID:   testSalonID,
		ImageType:  "gallery",
		Files:      files,
	}
}

func TestAddPhotosEndToEnd(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	ctx := context.Background()

	img := testPNG(t, 1200, 900)
	req := uploadRequest(t,
		makeFileHeader(t, "Front Desk.PNG", img),
		makeFileHeader(t, "interior.png", img),
	)

	resp, err := fx.svc.AddPhotos(ctx, nil, testOwnerID, auth.RoleSalon, req)
	require.NoError(t, err)
	require.Len(t, resp.Photos, 2)
	assert.Empty(t, resp.Failures)

	for _, photo := range resp.Photos {
		assert.Equal(t, 1200, photo.Width)
		assert.Equal(t, 900, photo.Height)
		assert.Equal(t, "image/png", photo.MimeType)
		assert.Equal(t, int64(len(img)), photo.SizeBytes)

		for _, variant := range []string{models.VariantOriginal, models.VariantSmall, models.VariantMedium, models.VariantLarge} {
			url, ok := photo.URLs[variant]
			require.True(t, ok, "variant %s missing", variant)
			assert.True(t, strings.HasPrefix(url, "/media/moscow/salon/nail-bar/gallery/"), url)
			assert.True(t, strings.HasSuffix(url, "_"+variant+".jpg"), url)

			rel := strings.TrimPrefix(url, "/media/")
			exists, err := fx.store.Exists(ctx, rel)
			require.NoError(t, err)
			assert.True(t, exists, "file for %s should be on disk", variant)
		}
	}

	// The first stored photo becomes the entity's main photo.
	assert.True(t, resp.Photos[0].IsMain)
	assert.Equal(t, 1, fx.photoRepo.mainCount(models.EntityKindSalon, testSalonID))
}

// One non-image input poisons the whole batch before anything is written,
// including the images that would have been fine on their own.
func TestAddPhotosRejectsBatchWithNonImage(t *testing.T) {
	fx := newPhotoFixture(t, nil)

	good := makeFileHeader(t, "ok.png", testPNG(t, 400, 300))
	bad := makeFileHeader(t, "notes.txt", []byte("definitely not an image"))

	_, err := fx.svc.AddPhotos(context.Background(), nil, testOwnerID, auth.RoleSalon, uploadRequest(t, good, bad))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidUpload, appErr.Code)
	assert.Contains(t, appErr.Message, "notes.txt")

	count, err := fx.photoRepo.CountByEntity(nil, models.EntityKindSalon, testSalonID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, mediaFileCount(t, fx.cfg.Media.Root), "no file may be written for a rejected batch")
}

// A record-store failure for one image mid-batch is reported per index while
// the other images stay committed, and the failed image's files are swept.
func TestAddPhotosPartialPersistFailure(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	fx.photoRepo.failCreateAt = 2

	img := testPNG(t, 400, 300)
	resp, err := fx.svc.AddPhotos(context.Background(), nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t, makeFileHeader(t, "a.png", img), makeFileHeader(t, "b.png", img)))
	require.NoError(t, err)

	require.Len(t, resp.Photos, 1)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, 1, resp.Failures[0].Index)
	assert.Equal(t, "b.png", resp.Failures[0].FileName)

	count, err := fx.photoRepo.CountByEntity(nil, models.EntityKindSalon, testSalonID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 4, mediaFileCount(t, fx.cfg.Media.Root), "only the committed photo's variants remain")
}

// When the original variant cannot be written the image fails as a whole:
// no record, and the scaled variants that did land are removed again.
func TestAddPhotosRequiresOriginalVariant(t *testing.T) {
	var flaky *flakyStorage
	fx := newPhotoFixture(t, func(s storage.Storage) storage.Storage {
		flaky = &flakyStorage{Storage: s, failSaveMarker: "_original"}
		return flaky
	})

	resp, err := fx.svc.AddPhotos(context.Background(), nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t, makeFileHeader(t, "a.png", testPNG(t, 900, 600))))
	require.NoError(t, err)

	assert.Empty(t, resp.Photos)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, 0, resp.Failures[0].Index)

	count, err := fx.photoRepo.CountByEntity(nil, models.EntityKindSalon, testSalonID)
	require.NoError(t, err)
	assert.Zero(t, count, "a record without its original variant must not be committed")
	assert.Zero(t, mediaFileCount(t, fx.cfg.Media.Root), "partial variants must be swept")
}

func TestAddPhotosQuota(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	fx.cfg.Media.MaxPerEntity = 30

	// 28 pre-existing records, 3 incoming: the whole batch is rejected and
	// nothing is written.
	for i := 0; i < 28; i++ {
		require.NoError(t, fx.photoRepo.Create(nil, &models.Photo{
			EntityKind: models.EntityKindSalon,
			EntityID:   testSalonID,
			FileName:   fmt.Sprintf("old_%d.jpg", i),
		}))
	}

	img := testPNG(t, 200, 200)
	req := uploadRequest(t,
		makeFileHeader(t, "a.png", img),
		makeFileHeader(t, "b.png", img),
		makeFileHeader(t, "c.png", img),
	)

	_, err := fx.svc.AddPhotos(context.Background(), nil, testOwnerID, auth.RoleSalon, req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeQuotaExceeded, appErr.Code)

	count, err := fx.photoRepo.CountByEntity(nil, models.EntityKindSalon, testSalonID)
	require.NoError(t, err)
	assert.Equal(t, int64(28), count)
}

func TestAddPhotosConcurrentQuota(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	fx.cfg.Media.MaxPerEntity = 4

	img := testPNG(t, 200, 200)
	run := func() error {
		req := uploadRequest(t,
			makeFileHeader(t, "x.png", img),
			makeFileHeader(t, "y.png", img),
			makeFileHeader(t, "z.png", img),
		)
		_, err := fx.svc.AddPhotos(context.Background(), nil, testOwnerID, auth.RoleSalon, req)
		return err
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- run()
		}()
	}
	wg.Wait()
	close(errs)

	failures := 0
	for err := range errs {
		if err != nil {
			failures++
		}
	}
	// 3+3 over a cap of 4: exactly one batch gets through.
	assert.Equal(t, 1, failures)

	count, err := fx.photoRepo.CountByEntity(nil, models.EntityKindSalon, testSalonID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAddPhotosUnauthorized(t *testing.T) {
	fx := newPhotoFixture(t, nil)

	req := uploadRequest(t, makeFileHeader(t, "a.png", testPNG(t, 100, 100)))
	_, err := fx.svc.AddPhotos(context.Background(), nil, "someone-else", auth.RoleSalon, req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Admins bypass ownership.
	_, err = fx.svc.AddPhotos(context.Background(), nil, "someone-else", auth.RoleAdmin, req)
	assert.NoError(t, err)
}

func TestDeletePhotoCountsOrphans(t *testing.T) {
	var flaky *flakyStorage
	fx := newPhotoFixture(t, func(s storage.Storage) storage.Storage {
		flaky = &flakyStorage{Storage: s}
		return flaky
	})
	ctx := context.Background()

	resp, err := fx.svc.AddPhotos(ctx, nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t, makeFileHeader(t, "a.png", testPNG(t, 900, 600))))
	require.NoError(t, err)
	require.Len(t, resp.Photos, 1)
	photoID := resp.Photos[0].ID

	// One of the four variant files refuses to be deleted. The record must
	// go anyway, with the orphan reported.
	flaky.failDeleteMarker = "_medium"

	del, err := fx.svc.DeletePhoto(ctx, nil, testOwnerID, auth.RoleSalon, photoID)
	require.NoError(t, err)
	assert.True(t, del.Deleted)
	assert.Equal(t, 1, del.OrphanCleanupWarnings)

	_, err = fx.photoRepo.FindByID(nil, photoID)
	assert.ErrorIs(t, err, repositories.ErrPhotoNotFound)
}

func TestSetMainPhotoSwitches(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	ctx := context.Background()

	img := testPNG(t, 300, 300)
	resp, err := fx.svc.AddPhotos(ctx, nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t, makeFileHeader(t, "a.png", img), makeFileHeader(t, "b.png", img)))
	require.NoError(t, err)
	require.Len(t, resp.Photos, 2)

	second := resp.Photos[1].ID
	require.NoError(t, fx.svc.SetMainPhoto(nil, testOwnerID, auth.RoleSalon, second))

	assert.Equal(t, 1, fx.photoRepo.mainCount(models.EntityKindSalon, testSalonID))
	photo, err := fx.photoRepo.FindByID(nil, second)
	require.NoError(t, err)
	assert.True(t, photo.IsMain)
}

func TestReplacePhotoKeepsOldOnFailureAndSwapsOnSuccess(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	ctx := context.Background()

	resp, err := fx.svc.AddPhotos(ctx, nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t, makeFileHeader(t, "before.png", testPNG(t, 800, 600))))
	require.NoError(t, err)
	require.Len(t, resp.Photos, 1)
	photoID := resp.Photos[0].ID
	oldURL := resp.Photos[0].URLs[models.VariantOriginal]

	// A bad replacement leaves the existing photo untouched.
	_, err = fx.svc.ReplacePhoto(ctx, nil, testOwnerID, auth.RoleSalon, photoID,
		makeFileHeader(t, "bad.bin", []byte("garbage")), "gallery")
	require.Error(t, err)

	kept, err := fx.photoRepo.FindByID(nil, photoID)
	require.NoError(t, err)
	assert.Equal(t, 800, kept.Width)

	// A good replacement swaps content and removes the old files.
	newPhoto, err := fx.svc.ReplacePhoto(ctx, nil, testOwnerID, auth.RoleSalon, photoID,
		makeFileHeader(t, "after.png", testPNG(t, 1000, 500)), "gallery")
	require.NoError(t, err)
	assert.Equal(t, 1000, newPhoto.Width)
	assert.Equal(t, 500, newPhoto.Height)
	assert.NotEqual(t, oldURL, newPhoto.URLs[models.VariantOriginal])

	oldRel := strings.TrimPrefix(oldURL, "/media/")
	exists, err := fx.store.Exists(ctx, oldRel)
	require.NoError(t, err)
	assert.False(t, exists, "old original should be gone")

	// The stored record reflects the new file, not just new dimensions.
	stored, err := fx.photoRepo.FindByID(nil, photoID)
	require.NoError(t, err)
	assert.Equal(t, 1000, stored.Width)
	assert.Equal(t, 500, stored.Height)
	assert.NotEqual(t, kept.FileName, stored.FileName)
	assert.Equal(t, newPhoto.URLs[models.VariantOriginal], "/media/"+stored.VariantPath(models.VariantOriginal))
}

func TestGetEntityPhotosOnlyMain(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	ctx := context.Background()

	img := testPNG(t, 300, 300)
	resp, err := fx.svc.AddPhotos(ctx, nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t, makeFileHeader(t, "a.png", img), makeFileHeader(t, "b.png", img)))
	require.NoError(t, err)
	require.Len(t, resp.Photos, 2)

	all, err := fx.svc.GetEntityPhotos(nil, models.EntityKindSalon, testSalonID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	main, err := fx.svc.GetEntityPhotos(nil, models.EntityKindSalon, testSalonID, true)
	require.NoError(t, err)
	require.Len(t, main, 1)
	assert.True(t, main[0].IsMain)
	assert.Equal(t, resp.Photos[0].ID, main[0].ID)
}

func TestReorderPhotos(t *testing.T) {
	fx := newPhotoFixture(t, nil)
	ctx := context.Background()

	img := testPNG(t, 200, 200)
	resp, err := fx.svc.AddPhotos(ctx, nil, testOwnerID, auth.RoleSalon,
		uploadRequest(t,
			makeFileHeader(t, "a.png", img),
			makeFileHeader(t, "b.png", img),
			makeFileHeader(t, "c.png", img)))
	require.NoError(t, err)
	require.Len(t, resp.Photos, 3)

	reversed := []string{resp.Photos[2].ID, resp.Photos[1].ID, resp.Photos[0].ID}
	require.NoError(t, fx.svc.ReorderPhotos(nil, testOwnerID, auth.RoleSalon, &dto.ReorderPhotosRequest{
		EntityKind: string(models.EntityKindSalon),
		EntityID:   testSalonID,
		PhotoIDs:   reversed,
	}))

	for pos, id := range reversed {
		photo, err := fx.photoRepo.FindByID(nil, id)
		require.NoError(t, err)
		assert.Equal(t, pos, photo.SortOrder)
	}
}
