package usecase

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const MaxAttachmentSize int64 = 10 << 20

var (
	ErrAttachmentTooLarge  = errors.New("attachment too large")
	ErrAttachmentEmpty     = errors.New("attachment is empty")
	ErrAttachmentType      = errors.New("attachment type not allowed")
	ErrAttachmentForbidden = errors.New("only the paying authority uploads receipts")
	ErrAttachmentsDisabled = errors.New("attachment storage not configured")
)

var attachmentTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

type UploadedAttachment struct {
	Ref string
	URL string
}

type IAttachmentUseCase interface {
	Upload(ctx context.Context, actor entities.Actor, filename string, size int64, body io.Reader) (UploadedAttachment, error)
}

type AttachmentUseCase struct {
	store interfaces.IAttachmentStore
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(store interfaces.IAttachmentStore) *AttachmentUseCase {
	return &AttachmentUseCase{store: store}
}

func (u *AttachmentUseCase) Upload(ctx context.Context, actor entities.Actor, filename string, size int64, body io.Reader) (UploadedAttachment, error) {
	if actor.Role != entities.RolePayingAuthority {
		return UploadedAttachment{}, ErrAttachmentForbidden
	}
	if u.store == nil {
		return UploadedAttachment{}, ErrAttachmentsDisabled
	}
	if size <= 0 {
		return UploadedAttachment{}, ErrAttachmentEmpty
	}
	if size > MaxAttachmentSize {
		return UploadedAttachment{}, ErrAttachmentTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := attachmentTypes[ext]
	if !ok {
		return UploadedAttachment{}, ErrAttachmentType
	}

	ref := "receipts/" + uuid.NewString() + ext
	log.Printf("[attachment][usecase] upload start actor=%s ref=%s size=%d", actor.ID, ref, size)
	if err := u.store.Upload(ctx, ref, io.LimitReader(body, size), size, contentType); err != nil {
		log.WithError(err).Printf("[attachment][usecase] upload failed ref=%s", ref)
		return UploadedAttachment{}, err
	}

	url, err := u.store.ResolveURL(ctx, ref)
	if err != nil {
		log.WithError(err).Printf("[attachment][usecase] resolve failed ref=%s", ref)
		return UploadedAttachment{}, err
	}
	return UploadedAttachment{Ref: ref, URL: url}, nil
}
