package storage

import (
	"context"
	"io"
)

// Store abstracts where uploaded binaries live. The catalog only records the
// public path; placement is delegated here.
type Store interface {
	Put(ctx context.Context, object string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, object string) error
}

// Default is the active binary store instance.
var Default Store
