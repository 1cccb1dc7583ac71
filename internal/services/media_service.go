package services

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"portfolio-service/internal/models"
	"portfolio-service/internal/repository"
)

// ErrUnsupportedFormat is returned for uploads that are not one of the
// accepted image formats.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// MediaService stores uploaded portfolio images in object storage and
// their metadata records in the database.
type MediaService struct {
	repo   *repository.MediaRepository
	minio  *minio.Client
	bucket string
}

func NewMediaService(repo *repository.MediaRepository, minioClient *minio.Client, bucket string) *MediaService {
	return &MediaService{
		repo:   repo,
		minio:  minioClient,
		bucket: bucket,
	}
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// UploadImage streams an uploaded image into object storage and records its
// metadata. The returned record carries the URL to embed in project or post
// documents.
func (s *MediaService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*models.MediaObject, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not open uploaded file")
	}
	defer src.Close()

	storageKey := uuid.New().String() + ext
	_, err = s.minio.PutObject(
		ctx,
		s.bucket,
		storageKey,
		src,
		fileHeader.Size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload to MinIO")
	}

	media := &models.MediaObject{
		OriginalFilename: fileHeader.Filename,
		ContentType:      contentType,
		Size:             fileHeader.Size,
		StorageKey:       storageKey,
		UploadedAt:       time.Now().UTC(),
	}
	if err := s.repo.CreateMedia(ctx, media); err != nil {
		// Best effort: do not leave an orphaned object behind.
		_ = s.minio.RemoveObject(ctx, s.bucket, storageKey, minio.RemoveObjectOptions{})
		return nil, err
	}
	media.URL = "/api/media/" + media.ID.Hex() + "/download"
	return media, nil
}

// DownloadImage resolves the media identifier and opens a stream from
// object storage. The caller owns the returned reader.
func (s *MediaService) DownloadImage(ctx context.Context, identifier string) (io.ReadCloser, *models.MediaObject, error) {
	media, err := s.repo.GetMedia(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}
	obj, err := s.minio.GetObject(ctx, s.bucket, media.StorageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch from MinIO")
	}
	return obj, media, nil
}
