package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/database"
	"github.com/akramas2005/backend-as-space/internal/models"
)

// MaxUploadSize caps attachment payloads at 50 MiB.
const MaxUploadSize = 50 << 20

// AttachmentService stores attachment payloads in the files store and writes
// a companion message row to the text store for each upload.
type AttachmentService struct {
	files    database.FileRepository
	messages database.MessageRepository
	baseURL  string
	log      zerolog.Logger
}

// NewAttachmentService creates an AttachmentService. baseURL is the public
// prefix used to build retrieval URLs.
func NewAttachmentService(files database.FileRepository, messages database.MessageRepository, baseURL string, log zerolog.Logger) *AttachmentService {
	return &AttachmentService{files: files, messages: messages, baseURL: baseURL, log: log}
}

// UploadInput carries one decoded multipart upload.
type UploadInput struct {
	Filename       string
	MimeType       string
	Data           []byte
	ConversationID *string
}

// Upload inserts the attachment into the files store and a companion message
// row into the text store. The two inserts are sequential and independently
// committed: if the message insert fails the files row stays behind and the
// failure is reported to the caller.
func (s *AttachmentService) Upload(ctx context.Context, in UploadInput) (*models.Attachment, string, error) {
	if int64(len(in.Data)) > MaxUploadSize {
		return nil, "", TooLarge("FILE_TOO_LARGE", "file must be under 50 MB")
	}

	att := &models.Attachment{
		Filename:       filepath.Base(in.Filename),
		MimeType:       in.MimeType,
		FileData:       in.Data,
		ConversationID: in.ConversationID,
	}
	if err := s.files.Create(ctx, att); err != nil {
		s.log.Error().Err(err).Msg("file insert failed")
		return nil, "", storeError(err)
	}

	url := s.FileURL(att.ID)
	msg := &models.Message{
		Role:           "user",
		Content:        "",
		AttachmentID:   &att.ID,
		AttachmentURL:  &url,
		AttachmentName: &att.Filename,
		AttachmentType: &att.MimeType,
		ConversationID: in.ConversationID,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		s.log.Error().Err(err).Int64("file_id", att.ID).Msg("companion message insert failed, files row left behind")
		return nil, "", storeError(err)
	}

	return att, url, nil
}

// FileURL formats the retrieval URL for an attachment id.
func (s *AttachmentService) FileURL(id int64) string {
	return fmt.Sprintf("%s/api/files/%d", s.baseURL, id)
}

// Retrieve returns the stored attachment with its payload.
func (s *AttachmentService) Retrieve(ctx context.Context, id int64) (*models.Attachment, error) {
	att, err := s.files.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("file_id", id).Msg("file fetch failed")
		return nil, storeError(err)
	}
	if att == nil {
		return nil, NotFound("FILE_NOT_FOUND", "file not found")
	}
	return att, nil
}

// Delete removes exactly one files row. Messages referencing it keep their
// now-dangling pointer.
func (s *AttachmentService) Delete(ctx context.Context, id int64) error {
	affected, err := s.files.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("file_id", id).Msg("file delete failed")
		return storeError(err)
	}
	if affected == 0 {
		return NotFound("FILE_NOT_FOUND", "file not found")
	}
	return nil
}
