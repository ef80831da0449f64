// Package store defines the persistence interface for the indexing side
// of the system: analyzed documents and their token postings.
package store

import (
	"context"
	"time"
)

// Store persists analyzed documents and token postings.
type Store interface {
	Close() error

	// Docs
	UpsertDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id string) (Doc, bool, error)
	GetDocByURL(ctx context.Context, url string) (Doc, bool, error)
	DocCount(ctx context.Context) (int64, error)

	// Postings
	ReplacePostings(ctx context.Context, docID, field string, postings []Posting) error
	PostingsForToken(ctx context.Context, text string, limit int) ([]Posting, error)
}

// Doc is a stored document. ID is a ULID assigned at index time.
type Doc struct {
	ID        string
	URL       string
	Title     string
	IndexedAt time.Time
}

// Posting records one analyzed token occurrence: which document and
// field it came from, its token position and its byte offsets in the
// original field text.
type Posting struct {
	DocID    string
	Field    string
	Text     string
	Position int
	Start    int
	End      int
}
