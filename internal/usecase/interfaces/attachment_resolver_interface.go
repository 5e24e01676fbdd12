package interfaces

import (
	"context"
	"io"
)

// IAttachmentResolver turns a stored object reference into a URL that can be
// opened by the people reviewing the payment.
type IAttachmentResolver interface {
	ResolveURL(ctx context.Context, ref string) (string, error)
}

// IAttachmentStore persists receipt files and returns their object reference.
type IAttachmentStore interface {
	IAttachmentResolver
	Upload(ctx context.Context, ref string, body io.Reader, size int64, contentType string) error
}
