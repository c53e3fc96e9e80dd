package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/playvenue/sports-booking-backend/internal/facility"
	"github.com/playvenue/sports-booking-backend/internal/pkg/storage"
)

const (
	thumbWidth  = 320
	thumbHeight = 320
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, facilityID string) (*Photo, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	facService facility.Service
	storage    storage.Storage
	imgProc    *storage.ImageProcessor
}

func NewService(repo Repository, facService facility.Service, store storage.Storage) Service {
	return &service{
		repo:       repo,
		facService: facService,
		storage:    store,
		imgProc:    storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, facilityID string) (*Photo, error) {
	// The facility must exist and not be soft-deleted.
	if _, err := s.facService.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the whole image; photos are small enough for this.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Sharded path: photos/ab/UUID.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	// Thumbnail failures never fail the upload.
	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), thumbWidth, thumbHeight)
	if err != nil {
		logrus.Warnf("thumbnail generation failed for photo %s: %v", photoID, err)
	} else {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err != nil {
			logrus.Warnf("failed to save thumbnail for photo %s: %v", photoID, err)
		} else {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		FacilityID:    facilityID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Best-effort cleanup when the metadata write fails.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByFacility(ctx context.Context, facilityID string) ([]*Photo, error) {
	if _, err := s.facService.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}
	return s.repo.ListByFacility(ctx, facilityID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}

	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, p.StoragePath); err != nil {
		logrus.Warnf("failed to delete photo blob %s: %v", p.StoragePath, err)
	}
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
