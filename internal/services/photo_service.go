package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime/multipart"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/config"
	"github.com/Gob26/beautycity/internal/imageprocessor"
	"github.com/Gob26/beautycity/internal/logger"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/internal/storage"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

// PhotoService ingests uploaded images for salons, masters, services and
// news entries: multi-size variants on disk, one record per upload in the
// database.
type PhotoService interface {
	AddPhotos(ctx context.Context, db *gorm.DB, userID string, role auth.Role, req *dto.UploadPhotosRequest) (*dto.UploadPhotosResponse, error)
	ReplacePhoto(ctx context.Context, db *gorm.DB, userID string, role auth.Role, photoID string, file *multipart.FileHeader, imageType string) (*dto.PhotoDTO, error)
	DeletePhoto(ctx context.Context, db *gorm.DB, userID string, role auth.Role, photoID string) (*dto.DeletePhotoResponse, error)
	SetMainPhoto(db *gorm.DB, userID string, role auth.Role, photoID string) error
	ReorderPhotos(db *gorm.DB, userID string, role auth.Role, req *dto.ReorderPhotosRequest) error
	GetEntityPhotos(db *gorm.DB, kind models.EntityKind, entityID string, onlyMain bool) ([]dto.PhotoDTO, error)
}

// entityRef is the resolved storage location and ownership of a photo's
// owning entity.
type entityRef struct {
	citySlug string
	role     string
	slug     string
	ownerID  string // user who owns the entity; empty means admin-only
}

type photoService struct {
	photoRepo  repositories.PhotoRepository
	salonRepo  repositories.SalonRepository
	masterRepo repositories.MasterRepository
	svcRepo    repositories.ServiceRepository
	generator  *imageprocessor.Generator
	store      storage.Storage
	cfg        *config.Config

	// locks serializes quota-check-then-insert per owning entity.
	locks entityLocks
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	salonRepo repositories.SalonRepository,
	masterRepo repositories.MasterRepository,
	svcRepo repositories.ServiceRepository,
	generator *imageprocessor.Generator,
	store storage.Storage,
	cfg *config.Config,
) PhotoService {
	return &photoService{
		photoRepo:  photoRepo,
		salonRepo:  salonRepo,
		masterRepo: masterRepo,
		svcRepo:    svcRepo,
		generator:  generator,
		store:      store,
		cfg:        cfg,
		locks:      entityLocks{held: make(map[string]*sync.Mutex)},
	}
}

// validUpload is one image of a batch that survived pre-validation.
type validUpload struct {
	index    int
	fileName string
	data     []byte
	mimeType string
}

func (s *photoService) AddPhotos(ctx context.Context, db *gorm.DB, userID string, role auth.Role, req *dto.UploadPhotosRequest) (*dto.UploadPhotosResponse, error) {
	if len(req.Files) == 0 {
		return nil, apperrors.ErrInvalidUpload("no files submitted")
	}

	kind := models.EntityKind(req.EntityKind)
	ref, err := s.resolveEntity(db, kind, req.EntityID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ref, userID, role); err != nil {
		return nil, err
	}

	// Validation rejects the whole batch before any file I/O: one oversized
	// or non-image input fails every file. Partial success only applies to
	// failures later in the pipeline.
	resp := &dto.UploadPhotosResponse{}
	valid := make([]validUpload, 0, len(req.Files))
	maxBytes := s.cfg.Media.MaxUploadMB << 20

	for i, fh := range req.Files {
		if fh.Size > maxBytes {
			return nil, apperrors.ErrInvalidUpload(
				fmt.Sprintf("%s exceeds the %d MB limit", fh.Filename, s.cfg.Media.MaxUploadMB))
		}
		data, err := readUpload(fh)
		if err != nil {
			return nil, apperrors.ErrInvalidUpload(fmt.Sprintf("%s could not be read", fh.Filename))
		}
		_, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, apperrors.ErrInvalidUpload(fmt.Sprintf("%s is not a decodable image", fh.Filename))
		}
		valid = append(valid, validUpload{
			index:    i,
			fileName: fh.Filename,
			data:     data,
			mimeType: "image/" + format,
		})
	}

	// Quota check and inserts are serialized per entity so concurrent
	// batches cannot overshoot the cap.
	unlock := s.locks.lock(string(kind) + ":" + req.EntityID)
	defer unlock()

	current, err := s.photoRepo.CountByEntity(db, kind, req.EntityID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	maxPhotos := s.cfg.Media.MaxPerEntity
	if int(current)+len(valid) > maxPhotos {
		return nil, apperrors.ErrPhotoQuotaExceeded(int(current), len(valid), maxPhotos)
	}

	sizes := s.variantSizes()
	sortBase := int(current)

	for _, up := range valid {
		photo, err := s.ingestOne(ctx, db, kind, req.EntityID, ref, req.ImageType, up, sizes, sortBase+len(resp.Photos))
		if err != nil {
			resp.Failures = append(resp.Failures, dto.PhotoUploadFailure{
				Index: up.index, FileName: up.fileName, Reason: failureReason(err),
			})
			continue
		}
		// The first photo an entity ever gets becomes its main photo.
		if current == 0 && len(resp.Photos) == 0 {
			if _, err := s.photoRepo.SetMainPhoto(db, kind, req.EntityID, photo.ID); err == nil {
				photo.IsMain = true
			}
		}
		resp.Photos = append(resp.Photos, PhotoToDTO(photo, s.store.URL))
	}

	return resp, nil
}

// ingestOne runs the full pipeline for a single image: unique name, variant
// fan-out, then the database record. On a record failure the freshly written
// files are removed best-effort.
func (s *photoService) ingestOne(ctx context.Context, db *gorm.DB, kind models.EntityKind, entityID string, ref entityRef, imageType string, up validUpload, sizes []imageprocessor.VariantSpec, sortOrder int) (*models.Photo, error) {
	uniqueName := storage.GenerateUniqueName(up.fileName)

	set, err := s.generator.Generate(ctx, imageprocessor.GenerateRequest{
		Data:       up.data,
		City:       ref.citySlug,
		Role:       ref.role,
		EntitySlug: ref.slug,
		ImageType:  imageType,
		BaseName:   uniqueName,
		Sizes:      sizes,
		Quality:    s.cfg.Media.JPEGQuality,
		BudgetKB:   s.cfg.Media.MaxVariantKB,
	})
	if err != nil {
		return nil, err
	}

	for _, failed := range set.Failed() {
		logger.WithError(failed.Err).Warn("variant generation failed",
			"file", up.fileName, "variant", failed.Name)
	}

	// A stored photo must always carry the original plus at least one scaled
	// variant. Anything less is a failed ingestion, and the partial files on
	// disk are swept.
	paths := set.Paths()
	if err := requireCoreVariants(paths); err != nil {
		s.removeFiles(ctx, paths)
		return nil, apperrors.ErrStorageWrite(fmt.Errorf("%s: %w", up.fileName, err))
	}

	variantPaths := make(datatypes.JSONMap, len(paths))
	for name, p := range paths {
		variantPaths[name] = p
	}

	mime := up.mimeType
	photo := &models.Photo{
		EntityKind:   kind,
		EntityID:     entityID,
		FileName:     uniqueName,
		VariantPaths: variantPaths,
		MimeType:     &mime,
		SizeBytes:    int64(len(up.data)),
		Width:        set.Width,
		Height:       set.Height,
		SortOrder:    sortOrder,
	}
	if err := s.photoRepo.Create(db, photo); err != nil {
		s.removeFiles(ctx, paths)
		return nil, apperrors.InternalError(err)
	}

	return photo, nil
}

func (s *photoService) ReplacePhoto(ctx context.Context, db *gorm.DB, userID string, role auth.Role, photoID string, file *multipart.FileHeader, imageType string) (*dto.PhotoDTO, error) {
	photo, ref, err := s.ownedPhoto(db, userID, role, photoID)
	if err != nil {
		return nil, err
	}

	maxBytes := s.cfg.Media.MaxUploadMB << 20
	if file.Size > maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	data, err := readUpload(file)
	if err != nil {
		return nil, apperrors.ErrInvalidUpload("failed to read upload")
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, apperrors.ErrUnsupportedImageFormat(err)
	}

	oldPaths := pathsFromRecord(photo)

	// New files are written before anything old is touched, so a failure
	// here leaves the previous image fully intact.
	uniqueName := storage.GenerateUniqueName(file.Filename)
	set, err := s.generator.Generate(ctx, imageprocessor.GenerateRequest{
		Data:       data,
		City:       ref.citySlug,
		Role:       ref.role,
		EntitySlug: ref.slug,
		ImageType:  imageType,
		BaseName:   uniqueName,
		Sizes:      s.variantSizes(),
		Quality:    s.cfg.Media.JPEGQuality,
		BudgetKB:   s.cfg.Media.MaxVariantKB,
	})
	if err != nil {
		return nil, err
	}

	paths := set.Paths()
	if err := requireCoreVariants(paths); err != nil {
		s.removeFiles(ctx, paths)
		return nil, apperrors.ErrStorageWrite(fmt.Errorf("%s: %w", file.Filename, err))
	}

	variantPaths := make(datatypes.JSONMap, len(paths))
	for name, p := range paths {
		variantPaths[name] = p
	}

	mime := "image/" + set.Format
	photo.FileName = uniqueName
	photo.VariantPaths = variantPaths
	photo.MimeType = &mime
	photo.SizeBytes = int64(len(data))
	photo.Width = set.Width
	photo.Height = set.Height

	if err := s.photoRepo.Update(db, photo); err != nil {
		s.removeFiles(ctx, paths)
		if err == repositories.ErrPhotoNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	s.removeFiles(ctx, oldPaths)

	out := PhotoToDTO(photo, s.store.URL)
	return &out, nil
}

func (s *photoService) DeletePhoto(ctx context.Context, db *gorm.DB, userID string, role auth.Role, photoID string) (*dto.DeletePhotoResponse, error) {
	photo, _, err := s.ownedPhoto(db, userID, role, photoID)
	if err != nil {
		return nil, err
	}

	// The record goes first: a photo must never resurface because its files
	// outlived the row. Leftover files are orphans, reported as warnings.
	if err := s.photoRepo.Delete(db, photoID); err != nil {
		if err == repositories.ErrPhotoNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	warnings := 0
	for _, p := range pathsFromRecord(photo) {
		if err := s.store.Delete(ctx, p); err != nil {
			logger.WithError(err).Warn("orphaned variant file left on disk", "path", p)
			warnings++
		}
	}

	return &dto.DeletePhotoResponse{Deleted: true, OrphanCleanupWarnings: warnings}, nil
}

func (s *photoService) SetMainPhoto(db *gorm.DB, userID string, role auth.Role, photoID string) error {
	photo, _, err := s.ownedPhoto(db, userID, role, photoID)
	if err != nil {
		return err
	}

	found, err := s.photoRepo.SetMainPhoto(db, photo.EntityKind, photo.EntityID, photoID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !found {
		return apperrors.ErrNotFound(repositories.ErrPhotoNotFound)
	}
	return nil
}

func (s *photoService) ReorderPhotos(db *gorm.DB, userID string, role auth.Role, req *dto.ReorderPhotosRequest) error {
	kind := models.EntityKind(req.EntityKind)
	ref, err := s.resolveEntity(db, kind, req.EntityID)
	if err != nil {
		return err
	}
	if err := s.authorize(ref, userID, role); err != nil {
		return err
	}

	if err := s.photoRepo.Reorder(db, kind, req.EntityID, req.PhotoIDs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *photoService) GetEntityPhotos(db *gorm.DB, kind models.EntityKind, entityID string, onlyMain bool) ([]dto.PhotoDTO, error) {
	if !models.ValidEntityKind(kind) {
		return nil, apperrors.NewBadRequestError("Unknown entity kind")
	}
	photos, err := s.photoRepo.FindByEntity(db, kind, entityID, onlyMain)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.PhotoDTO, 0, len(photos))
	for i := range photos {
		out = append(out, PhotoToDTO(&photos[i], s.store.URL))
	}
	return out, nil
}

// resolveEntity maps an entity reference to the storage layout segments and
// the owning user.
func (s *photoService) resolveEntity(db *gorm.DB, kind models.EntityKind, entityID string) (entityRef, error) {
	switch kind {
	case models.EntityKindSalon:
		salon, err := s.salonRepo.FindByID(db, entityID)
		if err != nil {
			if err == repositories.ErrSalonNotFound {
				return entityRef{}, apperrors.ErrNotFound(err)
			}
			return entityRef{}, apperrors.InternalError(err)
		}
		return entityRef{
			citySlug: citySlugOf(salon.City),
			role:     "salon",
			slug:     salon.Slug,
			ownerID:  salon.UserID,
		}, nil

	case models.EntityKindMaster:
		master, err := s.masterRepo.FindByID(db, entityID)
		if err != nil {
			if err == repositories.ErrMasterNotFound {
				return entityRef{}, apperrors.ErrNotFound(err)
			}
			return entityRef{}, apperrors.InternalError(err)
		}
		return entityRef{
			citySlug: citySlugOf(master.City),
			role:     "master",
			slug:     master.Slug,
			ownerID:  master.UserID,
		}, nil

	case models.EntityKindService:
		service, err := s.svcRepo.FindByID(db, entityID)
		if err != nil {
			if err == repositories.ErrServiceNotFound {
				return entityRef{}, apperrors.ErrNotFound(err)
			}
			return entityRef{}, apperrors.InternalError(err)
		}
		// Service photos live under the owning salon's or master's slug.
		if service.SalonID != nil {
			salon, err := s.salonRepo.FindByID(db, *service.SalonID)
			if err != nil {
				return entityRef{}, apperrors.InternalError(err)
			}
			return entityRef{
				citySlug: citySlugOf(salon.City),
				role:     "service",
				slug:     salon.Slug,
				ownerID:  salon.UserID,
			}, nil
		}
		if service.MasterID != nil {
			master, err := s.masterRepo.FindByID(db, *service.MasterID)
			if err != nil {
				return entityRef{}, apperrors.InternalError(err)
			}
			return entityRef{
				citySlug: citySlugOf(master.City),
				role:     "service",
				slug:     master.Slug,
				ownerID:  master.UserID,
			}, nil
		}
		return entityRef{}, apperrors.InternalError(fmt.Errorf("service %s has no owner", entityID))

	case models.EntityKindNews:
		// News photos are platform content, managed by admins only.
		return entityRef{
			citySlug: "common",
			role:     "news",
			slug:     entityID,
		}, nil
	}

	return entityRef{}, apperrors.NewBadRequestError("Unknown entity kind")
}

// authorize allows the entity owner and any admin.
func (s *photoService) authorize(ref entityRef, userID string, role auth.Role) error {
	if role == auth.RoleAdmin {
		return nil
	}
	if ref.ownerID != "" && ref.ownerID == userID {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

func (s *photoService) ownedPhoto(db *gorm.DB, userID string, role auth.Role, photoID string) (*models.Photo, entityRef, error) {
	photo, err := s.photoRepo.FindByID(db, photoID)
	if err != nil {
		if err == repositories.ErrPhotoNotFound {
			return nil, entityRef{}, apperrors.ErrNotFound(err)
		}
		return nil, entityRef{}, apperrors.InternalError(err)
	}

	ref, err := s.resolveEntity(db, photo.EntityKind, photo.EntityID)
	if err != nil {
		return nil, entityRef{}, err
	}
	if err := s.authorize(ref, userID, role); err != nil {
		return nil, entityRef{}, err
	}
	return photo, ref, nil
}

func (s *photoService) variantSizes() []imageprocessor.VariantSpec {
	return []imageprocessor.VariantSpec{
		{Name: models.VariantSmall, MaxDim: s.cfg.Media.Sizes.Small},
		{Name: models.VariantMedium, MaxDim: s.cfg.Media.Sizes.Medium},
		{Name: models.VariantLarge, MaxDim: s.cfg.Media.Sizes.Large},
	}
}

func (s *photoService) removeFiles(ctx context.Context, paths map[string]string) {
	for _, p := range paths {
		if err := s.store.Delete(ctx, p); err != nil {
			logger.WithError(err).Warn("failed to remove variant file", "path", p)
		}
	}
}

// PhotoToDTO converts a record, mapping stored paths through urlFor when
// given (nil leaves relative paths).
func PhotoToDTO(p *models.Photo, urlFor func(string) string) dto.PhotoDTO {
	urls := make(map[string]string, len(p.VariantPaths))
	for name := range p.VariantPaths {
		path := p.VariantPath(name)
		if path == "" {
			continue
		}
		if urlFor != nil {
			urls[name] = urlFor(path)
		} else {
			urls[name] = path
		}
	}

	mime := ""
	if p.MimeType != nil {
		mime = *p.MimeType
	}

	return dto.PhotoDTO{
		ID:         p.ID,
		EntityKind: p.EntityKind,
		EntityID:   p.EntityID,
		FileName:   p.FileName,
		URLs:       urls,
		MimeType:   mime,
		SizeBytes:  p.SizeBytes,
		Width:      p.Width,
		Height:     p.Height,
		IsMain:     p.IsMain,
		SortOrder:  p.SortOrder,
		CreatedAt:  p.CreatedAt,
	}
}

// requireCoreVariants enforces the minimum a committed photo must carry:
// the original plus at least one scaled variant.
func requireCoreVariants(paths map[string]string) error {
	if paths[models.VariantOriginal] == "" {
		return fmt.Errorf("original variant was not written")
	}
	if len(paths) < 2 {
		return fmt.Errorf("no scaled variant was written")
	}
	return nil
}

func pathsFromRecord(p *models.Photo) map[string]string {
	paths := make(map[string]string, len(p.VariantPaths))
	for name := range p.VariantPaths {
		if v := p.VariantPath(name); v != "" {
			paths[name] = v
		}
	}
	return paths
}

func citySlugOf(city *models.City) string {
	if city == nil {
		return "city"
	}
	return city.Slug
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := bytes.NewBuffer(make([]byte, 0, fh.Size))
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// failureReason flattens an ingestion error to the short per-image message
// returned in a batch response.
func failureReason(err error) string {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// entityLocks hands out one mutex per key, created on demand.
type entityLocks struct {
	mu   sync.Mutex
	held map[string]*sync.Mutex
}

func (l *entityLocks) lock(key string) func() {
	l.mu.Lock()
	m, ok := l.held[key]
	if !ok {
		m = &sync.Mutex{}
		l.held[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
