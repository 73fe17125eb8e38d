package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Client-correctable failures. Everything else propagates as-is and surfaces
// as a generic server error.
var (
	ErrNameRequired   = errors.New("name is required")
	ErrNameExists     = errors.New("name already exists")
	ErrFileRequired   = errors.New("file is required")
	ErrMimeNotAllowed = errors.New("mime type not allowed")
	ErrItemNotFound   = errors.New("file system item not found")
	ErrFolderNotEmpty = errors.New("folder is not empty")
)

var errStorageNotInitialized = errors.New("storage not initialized")

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicateKey reports whether an insert hit the global name uniqueness
// constraint. The constraint is the source of truth; the service-level name
// check is only a fast path, so both report ErrNameExists identically.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}

// isForeignKeyViolation reports whether a delete was blocked by the
// parent-child RESTRICT constraint.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
