package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/model"
	"folio/internal/domain/repository/database"
	"folio/internal/domain/repository/storage"
	"folio/pkg/logger"
	"folio/pkg/utils"
)

// UploadInput is one accepted multipart upload plus its metadata fields.
type UploadInput struct {
	Data         []byte
	OriginalName string
	Section      string
	MediaType    string
	Title        string
	Description  string
}

type Uploader struct {
	validator *Validator
	storage   storage.Storage
	writer    database.Writer
	resolver  *Resolver
}

func NewUploader(validator *Validator, store storage.Storage, writer database.Writer,
	resolver *Resolver,
) *Uploader {
	return &Uploader{
		validator: validator,
		storage:   store,
		writer:    writer,
		resolver:  resolver,
	}
}

// Upload runs the pipeline: validate, store the blob, persist the record,
// resolve the URL. A rejection ends the flow with no side effects. If the
// insert fails after the blob was stored, the blob is left behind as an
// orphan (logged, not rolled back).
func (u *Uploader) Upload(ctx context.Context, in UploadInput) (*dto.MediaItem, error) {
	if err := u.validator.ValidateFields(in.Section, in.MediaType, in.Title, in.Description); err != nil {
		return nil, err
	}

	size := int64(len(in.Data))
	mediaType, err := u.validator.ValidateFile(in.OriginalName, size)
	if err != nil {
		return nil, err
	}
	if mediaType != in.MediaType {
		return nil, apperr.New(apperr.Validation,
			fmt.Sprintf("mediaType %q does not match the uploaded file", in.MediaType))
	}

	mimeType, err := u.validator.ValidateContent(in.Data, mediaType)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), utils.ExtensionFromName(in.OriginalName))
	key := in.Section + "/" + filename

	stored, err := u.storage.Put(ctx, key, bytes.NewReader(in.Data), size, mimeType, false)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Error uploading media", err)
	}

	media := &model.Media{
		Filename:     filename,
		OriginalName: in.OriginalName,
		Title:        in.Title,
		Description:  in.Description,
		Section:      in.Section,
		MediaType:    mediaType,
		StorageKey:   stored.Key,
		FileSize:     size,
		MimeType:     mimeType,
		ProviderURL:  stored.PublicURL,
	}

	if err := u.writer.Insert(ctx, media); err != nil {
		logger.Error("media insert failed, blob left orphaned", "key", stored.Key, "err", err)

		return nil, apperr.Wrap(apperr.Persistence, "Error uploading media", err)
	}

	item := u.resolver.Item(media)

	return &item, nil
}
