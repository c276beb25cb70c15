package models

import "time"

// ContentType categorizes a stored item and selects its MIME allow-list.
type ContentType string

const (
	ContentDocument ContentType = "document"
	ContentImage    ContentType = "image"
	ContentVideo    ContentType = "video"
	ContentAudio    ContentType = "audio"
	ContentKeyfile  ContentType = "keyfile"
)

// ContentItem is a finalized piece of vault content. Payload is the opaque
// (client-encrypted) bytes when stored inline; StorageKey is set instead
// when the blob was offloaded to object storage.
type ContentItem struct {
	ID      string
	VaultID string

	Type     ContentType
	Title    string
	MimeType string

	Payload    []byte
	StorageKey string

	SizeBytes int64
	Checksum  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UploadSession is the ephemeral state of an in-progress chunked upload.
// Sessions live in process memory only and do not survive a restart.
type UploadSession struct {
	ID      string
	VaultID string
	UserID  string

	Type     ContentType
	Title    string
	FileName string
	MimeType string

	DeclaredSize int64

	ExpectedChunks int
	ReceivedChunks int
	Buffer         []byte

	CreatedAt time.Time
}
