package response

import (
	"time"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/domain/snapshot"
	"faepa_workflow/internal/usecase"
)

type SubmissionResponse struct {
	ID        string            `json:"id"`
	AuthorID  string            `json:"author_id"`
	Fields    map[string]string `json:"fields"`
	Preview   SnapshotsResponse `json:"preview"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FromSubmission includes the snapshot a batch would freeze if submitted now.
func FromSubmission(s entities.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		AuthorID:  s.AuthorID,
		Fields:    s.Fields,
		Preview:   FromSnapshots(snapshot.Build(s)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type ChannelAliasResponse struct {
	Channel string `json:"channel"`
	Alias   string `json:"alias"`
}

type AttachmentResponse struct {
	Ref string `json:"attachment_ref"`
	URL string `json:"url"`
}

func FromUploadedAttachment(a usecase.UploadedAttachment) AttachmentResponse {
	return AttachmentResponse{Ref: a.Ref, URL: a.URL}
}
